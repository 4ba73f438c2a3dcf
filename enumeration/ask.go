// SPDX-License-Identifier: MIT

package enumeration

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/bayesnet/cpt"
)

// Ask returns P(query | evidence) over the levels of query.
//
// Implementation:
//   - Stage 1: resolve the levels of query through the model.
//   - Stage 2: if query is observed, return the point distribution (1 for the
//     observed level, 0 elsewhere) without enumerating.
//   - Stage 3: for each level v, weight(v) = Enumerate(all variables,
//     evidence ∪ {query = v}).
//   - Stage 4: normalise the weights. A zero total leaves them untouched and is
//     reported as ErrDegenerateDistribution (nil with WithLenientNormalization);
//     the unnormalised distribution is returned in both cases.
//
// evidence is never modified. Entries naming variables outside the model are
// never enumerated; they only matter if some variable lists them as a parent.
func Ask(m Model, query string, evidence map[string]string, opts ...Option) (cpt.Distribution, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	e := newEnumerator(m, opts)

	// Stage 1
	levels, err := m.Levels(query)
	if err != nil {
		return nil, err
	}

	// Stage 2
	if fixed, ok := evidence[query]; ok {
		return pointDistribution(query, levels, fixed)
	}

	// Stage 3
	vars := m.Variables()
	dist := make(cpt.Distribution, len(levels))
	for _, lv := range levels {
		w, err := e.enumerate(vars, extend(evidence, query, lv), "", nil, 0)
		if err != nil {
			return nil, err
		}
		dist[lv] = w
	}

	// Stage 4
	if err = dist.Normalize(); err != nil {
		if e.opts.lenient {
			return dist, nil
		}
		return dist, fmt.Errorf("%w: query %s given %s", ErrDegenerateDistribution, query, formatEvidence(evidence))
	}

	return dist, nil
}

// Enumerate returns the joint probability of evidence summed over every
// assignment of the variables in vars that evidence leaves open.
// With vars = all model variables this is P(evidence).
func Enumerate(m Model, vars []string, evidence map[string]string, opts ...Option) (float64, error) {
	if m == nil {
		return 0, ErrNilModel
	}

	return newEnumerator(m, opts).enumerate(vars, evidence, "", nil, 0)
}

// pointDistribution builds the distribution of an observed variable.
func pointDistribution(name string, levels []string, fixed string) (cpt.Distribution, error) {
	dist := make(cpt.Distribution, len(levels))
	found := false
	for _, lv := range levels {
		if lv == fixed {
			dist[lv] = 1.0
			found = true
			continue
		}
		dist[lv] = 0.0
	}
	if !found {
		return nil, fmt.Errorf("%w: %s=%q", ErrUnknownValue, name, fixed)
	}

	return dist, nil
}

// extend returns a copy of ev with k set to v.
func extend(ev map[string]string, k, v string) map[string]string {
	out := make(map[string]string, len(ev)+1)
	for key, val := range ev {
		out[key] = val
	}
	out[k] = v

	return out
}

// formatEvidence renders ev as "{A=T, B=F}" in key order.
func formatEvidence(ev map[string]string) string {
	keys := make([]string, 0, len(ev))
	for k := range ev {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + ev[k]
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
