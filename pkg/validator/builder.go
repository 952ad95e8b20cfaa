package validator

import (
	"errors"
	"fmt"
	"slices"
)

// Builder collects rule chains for records of type T. It is not safe for
// concurrent use; build once at startup and share the resulting Validator.
type Builder[T any] struct {
	chains []registration[T]
}

func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// RuleFor registers a chain for field. selector extracts the field value from
// the record; rules run in the order given. Chains are evaluated in
// registration order, which is also the order of failures in a Result.
//
// RuleFor never fails: malformed input is reported by Build.
func RuleFor[T, V any](b *Builder[T], field string, selector func(*T) V, rules ...Rule[T, V]) *RuleChain[T, V] {
	c := &RuleChain[T, V]{
		field:    field,
		selector: selector,
		rules:    slices.Clone(rules),
	}
	b.chains = append(b.chains, c)
	return c
}

// Build validates every registration and returns an immutable Validator.
// All problems are reported together, joined under ErrInvalidRegistration.
func (b *Builder[T]) Build(opts ...Option) (*Validator[T], error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(cfg)
	}

	var errs []error
	if !cfg.cascade.valid() {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidCascade, cfg.cascade))
	}

	chains := make([]fieldChain[T], 0, len(b.chains))
	seen := make(map[string]bool, len(b.chains))
	for _, reg := range b.chains {
		name := reg.Field()
		if name != "" && seen[name] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateField, name))
			continue
		}
		seen[name] = true

		chain, chainErrs := reg.compile(cfg.cascade)
		if len(chainErrs) > 0 {
			errs = append(errs, chainErrs...)
			continue
		}
		chains = append(chains, chain)
	}

	if len(errs) > 0 {
		return nil, errors.Join(append([]error{ErrInvalidRegistration}, errs...)...)
	}

	return &Validator[T]{
		chains: chains,
		now:    cfg.now,
		logger: cfg.logger,
	}, nil
}

// MustBuild works like Build but panics on a malformed registration. Useful
// for validators declared at package level.
func (b *Builder[T]) MustBuild(opts ...Option) *Validator[T] {
	v, err := b.Build(opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to build validator: %v", err))
	}
	return v
}
