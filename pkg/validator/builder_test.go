package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestBuilder_Build(t *testing.T) {
	t.Run("empty builder yields a validator that accepts everything", func(t *testing.T) {
		v, err := validator.NewBuilder[observation]().Build()
		require.NoError(t, err)
		assert.Empty(t, v.Fields())
		assert.True(t, v.Validate(&observation{}).IsValid())
	})

	t.Run("fields keep registration order", func(t *testing.T) {
		b := validator.NewBuilder[observation]()
		validator.RuleFor(b, "value", selectValue, validator.Range[observation](0, 1))
		validator.RuleFor(b, "date", selectDate, validator.FutureDate[observation]())
		noteChain(b)

		v, err := b.Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"value", "date", "note"}, v.Fields())
	})
}

func TestBuilder_RegistrationErrors(t *testing.T) {
	tests := []struct {
		name     string
		register func(b *validator.Builder[observation])
		opts     []validator.Option
		want     error
	}{
		{
			name: "empty field name",
			register: func(b *validator.Builder[observation]) {
				validator.RuleFor(b, "", selectValue, validator.Range[observation](0, 1))
			},
			want: validator.ErrEmptyField,
		},
		{
			name: "nil selector",
			register: func(b *validator.Builder[observation]) {
				validator.RuleFor[observation, int](b, "value", nil, validator.Range[observation](0, 1))
			},
			want: validator.ErrNilSelector,
		},
		{
			name: "no rules",
			register: func(b *validator.Builder[observation]) {
				validator.RuleFor(b, "value", selectValue)
			},
			want: validator.ErrNoRules,
		},
		{
			name: "duplicate field",
			register: func(b *validator.Builder[observation]) {
				validator.RuleFor(b, "value", selectValue, validator.Range[observation](0, 1))
				validator.RuleFor(b, "value", selectValue, validator.GreaterThan[observation](0))
			},
			want: validator.ErrDuplicateField,
		},
		{
			name: "zero rule",
			register: func(b *validator.Builder[observation]) {
				validator.RuleFor(b, "value", selectValue, validator.Rule[observation, int]{})
			},
			want: validator.ErrInvalidRule,
		},
		{
			name: "nil predicate",
			register: func(b *validator.Builder[observation]) {
				validator.RuleFor(b, "value", selectValue, validator.Predicate[observation, int](nil))
			},
			want: validator.ErrNilPredicate,
		},
		{
			name: "invalid chain cascade",
			register: func(b *validator.Builder[observation]) {
				validator.RuleFor(b, "value", selectValue, validator.Range[observation](0, 1)).
					Cascade(validator.Cascade(42))
			},
			want: validator.ErrInvalidCascade,
		},
		{
			name: "invalid default cascade",
			register: func(b *validator.Builder[observation]) {
				validator.RuleFor(b, "value", selectValue, validator.Range[observation](0, 1))
			},
			opts: []validator.Option{validator.WithCascade(validator.Cascade(42))},
			want: validator.ErrInvalidCascade,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validator.NewBuilder[observation]()
			tt.register(b)

			v, err := b.Build(tt.opts...)
			require.Error(t, err)
			assert.Nil(t, v)
			assert.ErrorIs(t, err, validator.ErrInvalidRegistration)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuilder_ReportsAllProblems(t *testing.T) {
	b := validator.NewBuilder[observation]()
	validator.RuleFor(b, "value", selectValue, validator.Range[observation](5, 1))
	validator.RuleFor(b, "note", selectNote, validator.MinLength[observation](-3))

	_, err := b.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, validator.ErrInvalidRange)
	assert.ErrorIs(t, err, validator.ErrInvalidLength)
}

func TestBuilder_MustBuildPanics(t *testing.T) {
	b := validator.NewBuilder[observation]()
	validator.RuleFor(b, "value", selectValue, validator.Range[observation](5, 1))
	assert.Panics(t, func() { b.MustBuild() })
}

func TestBuilder_BuildSnapshotsChains(t *testing.T) {
	b := validator.NewBuilder[observation]()
	chain := noteChain(b)
	v := b.MustBuild()

	chain.Cascade(validator.CascadeContinue)

	assert.Len(t, v.ValidateAt(&observation{}, fixedNow).Failures(), 1)

	again := b.MustBuild()
	assert.Len(t, again.ValidateAt(&observation{}, fixedNow).Failures(), 2)
}

func TestBuilder_RulesSliceIsCopied(t *testing.T) {
	rules := []validator.Rule[observation, int]{validator.Range[observation](0, 10)}

	b := validator.NewBuilder[observation]()
	validator.RuleFor(b, "value", selectValue, rules...)
	rules[0] = validator.Range[observation](100, 200)
	v := b.MustBuild()

	assert.True(t, v.ValidateAt(&observation{Value: 5}, fixedNow).IsValid())
}
