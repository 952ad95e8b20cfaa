package weather

import "context"

type requestIDKey struct{}

// WithRequestID attaches id to ctx. Validator.ValidateContext log records
// produced by Config.Logger include it as "request_id".
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}
