// SPDX-License-Identifier: MIT

package enumeration

import (
	"context"
	"errors"

	"github.com/katalvlaran/bayesnet/cpt"
)

// Sentinel errors for enumeration.
var (
	// ErrNilModel is returned when a nil Model is passed to Ask or Enumerate.
	ErrNilModel = errors.New("enumeration: model is nil")

	// ErrCycleDetected indicates that resolving parents led back to a variable
	// already waiting on its own parents.
	ErrCycleDetected = errors.New("enumeration: cycle detected")

	// ErrUnknownValue indicates an evidence value outside its variable's levels.
	ErrUnknownValue = errors.New("enumeration: value is not a level of the variable")

	// ErrUnresolvedParent indicates a parent that is neither in the evidence nor
	// among the variables still to enumerate.
	ErrUnresolvedParent = errors.New("enumeration: parent cannot be resolved")

	// ErrDepthExceeded indicates that the WithMaxDepth limit was reached.
	ErrDepthExceeded = errors.New("enumeration: recursion depth limit exceeded")

	// ErrDegenerateDistribution indicates that every query level received zero
	// weight, i.e. the evidence is impossible under the model.
	ErrDegenerateDistribution = errors.New("enumeration: evidence has zero probability")
)

// Model is the view of a Bayesian network the engine needs.
type Model interface {
	// Variables returns every variable name, in a stable order.
	Variables() []string

	// Parents returns the ordered parent names of a variable.
	Parents(name string) ([]string, error)

	// Levels returns the ordered levels of a variable.
	Levels(name string) ([]string, error)

	// Distribution returns P(name | parents = parentValues) over the levels.
	Distribution(name string, parentValues []string) (cpt.Distribution, error)
}

// Stats collects diagnostics from one Ask or Enumerate call.
type Stats struct {
	// Calls counts invocations of the joint routine, base cases included.
	Calls int

	// MaxDepth is the deepest recursion level reached.
	MaxDepth int
}

// Option configures an Ask or Enumerate call.
type Option func(*options)

type options struct {
	ctx      context.Context
	maxDepth int
	lenient  bool
	stats    *Stats
}

func defaultOptions() options {
	return options{
		ctx:      context.Background(),
		maxDepth: -1,
	}
}

// WithContext enables cancellation; ctx is checked on every recursive call.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxDepth bounds the recursion depth. A negative limit (the default)
// disables the check.
func WithMaxDepth(limit int) Option {
	return func(o *options) {
		o.maxDepth = limit
	}
}

// WithLenientNormalization makes Ask return an all-zero distribution with a
// nil error when the evidence is impossible, instead of
// ErrDegenerateDistribution.
func WithLenientNormalization() Option {
	return func(o *options) {
		o.lenient = true
	}
}

// WithStats records call diagnostics into s. s is reset at the start of the call.
func WithStats(s *Stats) Option {
	return func(o *options) {
		o.stats = s
	}
}
