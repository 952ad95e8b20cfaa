package ruleset

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// Document is a declarative list of field rule chains.
//
//	fields:
//	  - name: summary
//	    rules:
//	      - kind: not_null
//	        message: You must enter a summary
//	      - kind: min_length
//	        length: 3
//	        state: record
type Document struct {
	Fields []FieldSpec `yaml:"fields"`
}

// FieldSpec describes the chain for one field. Cascade is "stop", "continue"
// or empty for the validator default.
type FieldSpec struct {
	Name    string     `yaml:"name"`
	Cascade string     `yaml:"cascade,omitempty"`
	Rules   []RuleSpec `yaml:"rules"`
}

// RuleSpec is one rule descriptor. Which parameters apply depends on Kind:
//
//   - not_null, not_empty: none
//   - min_length: length
//   - range: min and max, both inclusive
//   - greater_than: bound (integer)
//   - after: bound, "now" (or empty) for the validation date, or YYYY-MM-DD
//   - predicate: predicate, the name of a function registered in the Schema
//
// State is "record" to attach the validated record to failures, or "none".
type RuleSpec struct {
	Kind      validator.Kind `yaml:"kind"`
	Length    *int           `yaml:"length,omitempty"`
	Min       *int           `yaml:"min,omitempty"`
	Max       *int           `yaml:"max,omitempty"`
	Bound     string         `yaml:"bound,omitempty"`
	Predicate string         `yaml:"predicate,omitempty"`
	Message   string         `yaml:"message,omitempty"`
	State     string         `yaml:"state,omitempty"`
}

// Parse decodes a YAML rule document. Unknown keys are rejected so typos in
// parameter names do not silently disable a rule.
func Parse(data []byte) (Document, error) {
	return Decode(bytes.NewReader(data))
}

func Decode(r io.Reader) (Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, ErrEmptyDocument
		}
		return Document{}, errors.Join(ErrFailedToParseYAML, err)
	}
	if len(doc.Fields) == 0 {
		return Document{}, ErrEmptyDocument
	}
	return doc, nil
}
