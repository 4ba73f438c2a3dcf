// SPDX-License-Identifier: MIT

package enumeration

import (
	"fmt"
	"strings"
)

// enumerator carries the model and per-call settings through the recursion.
type enumerator struct {
	model Model
	opts  options
	stats *Stats
}

func newEnumerator(m Model, opts []Option) *enumerator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &enumerator{model: m, opts: o, stats: o.stats}
	if e.stats == nil {
		e.stats = &Stats{}
	}
	*e.stats = Stats{}

	return e
}

// enumerate sums the joint probability of ev over the open variables in vars.
//
// pick, when non-empty, forces the next variable to evaluate: it is set when
// the previously chosen variable had a parent without a value. waiting holds
// the chain of variables that redirected to their parents since the last
// evaluated variable; meeting one of them again means the parent graph has a
// cycle.
func (e *enumerator) enumerate(vars []string, ev map[string]string, pick string, waiting []string, depth int) (float64, error) {
	// 1. Diagnostics, cancellation and depth ceiling
	e.stats.Calls++
	if depth > e.stats.MaxDepth {
		e.stats.MaxDepth = depth
	}
	if err := e.opts.ctx.Err(); err != nil {
		return 0, err
	}
	if e.opts.maxDepth >= 0 && depth > e.opts.maxDepth {
		return 0, fmt.Errorf("%w: limit %d", ErrDepthExceeded, e.opts.maxDepth)
	}

	// 2. Base case: nothing left to sum over
	if len(vars) == 0 {
		return 1.0, nil
	}

	// 3. Choose Y: forced pick, else the first remaining variable
	y := pick
	if y == "" {
		y = vars[0]
	}
	parents, err := e.model.Parents(y)
	if err != nil {
		return 0, err
	}

	// 4. Parent readiness: resolve the first parent without a value first
	for _, p := range parents {
		if _, ok := ev[p]; ok {
			// evidence alone does not make p a variable of the model
			if _, err = e.model.Levels(p); err != nil {
				return 0, err
			}
			continue
		}
		if p == y || contains(waiting, p) {
			chain := append(append([]string(nil), waiting...), y, p)
			return 0, fmt.Errorf("%w: %s", ErrCycleDetected, strings.Join(chain, " -> "))
		}
		if !contains(vars, p) {
			// let the model name the problem (typically an unknown variable)
			if _, err = e.model.Levels(p); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("%w: %q (parent of %q)", ErrUnresolvedParent, p, y)
		}
		next := append(append(make([]string, 0, len(waiting)+1), waiting...), y)

		return e.enumerate(vars, ev, p, next, depth+1)
	}

	// 5. All parents have values: look up P(Y | parents)
	parentValues := make([]string, len(parents))
	for i, p := range parents {
		parentValues[i] = ev[p]
	}
	dist, err := e.model.Distribution(y, parentValues)
	if err != nil {
		return 0, err
	}
	rest := without(vars, y)

	// 6a. Observed Y: multiply its probability into the remaining sum
	if v, ok := ev[y]; ok {
		prob, known := dist[v]
		if !known {
			return 0, fmt.Errorf("%w: %s=%q", ErrUnknownValue, y, v)
		}
		r, err := e.enumerate(rest, ev, "", nil, depth+1)
		if err != nil {
			return 0, err
		}

		return prob * r, nil
	}

	// 6b. Hidden Y: sum over its levels in level order
	levels, err := e.model.Levels(y)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, lv := range levels {
		r, err := e.enumerate(rest, extend(ev, y, lv), "", nil, depth+1)
		if err != nil {
			return 0, err
		}
		total += dist[lv] * r
	}

	return total, nil
}

// contains reports whether s holds v.
func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}

	return false
}

// without returns a new slice holding s minus every occurrence of v.
func without(s []string, v string) []string {
	out := make([]string, 0, len(s))
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}

	return out
}
