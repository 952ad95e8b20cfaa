package validator_test

import (
	"time"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type observation struct {
	Date    time.Time
	Value   int
	Note    *string
	Station string
}

var fixedNow = time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func ptr(s string) *string { return &s }

func selectDate(o *observation) time.Time { return o.Date }
func selectValue(o *observation) int { return o.Value }
func selectNote(o *observation) *string { return o.Note }
func selectStation(o *observation) string { return o.Station }

// noteChain registers the not-null + min-length pair used throughout the tests.
func noteChain(b *validator.Builder[observation]) *validator.RuleChain[observation, *string] {
	return validator.RuleFor(b, "note", selectNote,
		validator.NotNull[observation, string]().WithMessage("note is required"),
		validator.MinLength[observation](3).WithMessage("note is too short"),
	)
}
