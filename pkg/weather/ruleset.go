package weather

import (
	_ "embed"
	"fmt"

	"github.com/dmitrymomot/rulekit/pkg/ruleset"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

//go:embed rules.yaml
var defaultRules []byte

// Schema exposes the forecast fields to rule documents. TemperatureF has no
// binding since it is derived from TemperatureC.
func Schema() ruleset.Schema[Forecast] {
	return ruleset.Schema[Forecast]{
		Fields: map[string]ruleset.Binding[Forecast]{
			FieldDate:         ruleset.Date(selectDate),
			FieldTemperatureC: ruleset.Int(selectTemperatureC),
			FieldSummary:      ruleset.Text(selectSummary),
			FieldLocationID:   ruleset.UUID(selectLocationID),
		},
	}
}

// DefaultRuleset returns the embedded rule document.
func DefaultRuleset() (ruleset.Document, error) {
	return ruleset.Parse(defaultRules)
}

// NewValidatorFromRuleset compiles a YAML rule document against Schema.
func NewValidatorFromRuleset(data []byte, opts ...validator.Option) (*validator.Validator[Forecast], error) {
	doc, err := ruleset.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse forecast rules: %w", err)
	}
	return ruleset.Compile(doc, Schema(), opts...)
}
