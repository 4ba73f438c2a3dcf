// SPDX-License-Identifier: MIT

package cpt

import (
	"errors"
	"fmt"
	"math"
)

// Validate checks the table eagerly.
//
// Implementation:
//   - Stage 1: levels are non-empty and unique.
//   - Stage 2: every row has one finite, non-negative entry per level and sums
//     to 1 within Tolerance. Rows are visited in key order.
//   - Stage 3: if parentLevels is non-nil, every combination of parent levels
//     (the Cartesian product, in parent order) has a row.
//
// All problems found are joined with errors.Join; match them with errors.Is.
//
// Complexity: O(R·L + Π|parentLevels[i]|).
func (c *CPT) Validate(parentLevels [][]string) error {
	// Stage 1: level set
	if len(c.levels) == 0 {
		return ErrNoLevels
	}
	seen := make(map[string]struct{}, len(c.levels))
	for _, lv := range c.levels {
		if _, dup := seen[lv]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateLevel, lv)
		}
		seen[lv] = struct{}{}
	}

	// Stage 2: row shape and mass
	keys := make([]Key, 0, len(c.table))
	for k := range c.table {
		keys = append(keys, k)
	}
	sortKeys(keys)

	var errs []error
	for _, k := range keys {
		if err := c.validateRow(k, c.table[k]); err != nil {
			errs = append(errs, err)
		}
	}

	// Stage 3: completeness over the parent domains
	if parentLevels != nil {
		for _, combo := range Combinations(parentLevels) {
			key := KeyOf(combo...)
			if _, ok := c.table[key]; !ok {
				errs = append(errs, fmt.Errorf("%w: missing %s", ErrIncomplete, key))
			}
		}
	}

	return errors.Join(errs...)
}

func (c *CPT) validateRow(k Key, row []float64) error {
	if len(row) != len(c.levels) {
		return fmt.Errorf("%w: %s has %d entries, want %d",
			ErrShapeMismatch, k, len(row), len(c.levels))
	}
	total := 0.0
	for _, p := range row {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return fmt.Errorf("%w: %s contains %v", ErrBadProbability, k, p)
		}
		total += p
	}
	if math.Abs(total-1) > Tolerance {
		return fmt.Errorf("%w: %s sums to %v", ErrNotNormalized, k, total)
	}

	return nil
}

// Combinations returns the Cartesian product of domains in odometer order:
// the last domain varies fastest. An empty domains slice yields the single
// empty combination; any empty domain yields none.
func Combinations(domains [][]string) [][]string {
	out := [][]string{{}}
	for _, dom := range domains {
		next := make([][]string, 0, len(out)*len(dom))
		for _, prefix := range out {
			for _, v := range dom {
				combo := make([]string, len(prefix)+1)
				copy(combo, prefix)
				combo[len(prefix)] = v
				next = append(next, combo)
			}
		}
		out = next
	}

	return out
}
