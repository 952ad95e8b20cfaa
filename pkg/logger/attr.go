package logger

import "log/slog"

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a validated field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Fields records field names under the key "fields". An empty list yields an
// empty Attr.
func Fields(names ...string) slog.Attr {
	if len(names) == 0 {
		return slog.Attr{}
	}
	return slog.Any("fields", names)
}

func RuleKind(kind string) slog.Attr {
	return slog.String("rule_kind", kind)
}

// FailureCount records the number of failures under the key "failures".
func FailureCount(n int) slog.Attr {
	return slog.Int("failures", n)
}
