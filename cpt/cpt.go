// SPDX-License-Identifier: MIT

package cpt

import (
	"fmt"
)

// New creates a CPT with the given levels and a full table keyed by
// parent-value tuples. levels and every row are copied; no shape checks are
// performed here (see Validate).
//
// Complexity: O(R·L) for R rows and L levels.
func New(levels []string, table map[Key][]float64) *CPT {
	c := &CPT{
		levels: append([]string(nil), levels...),
		table:  make(map[Key][]float64, len(table)),
	}
	for k, row := range table {
		c.table[k] = append([]float64(nil), row...)
	}

	return c
}

// Unconditioned creates a CPT for a variable without parents: probs becomes
// the single row stored under the empty tuple KeyOf().
func Unconditioned(levels []string, probs []float64) *CPT {
	return New(levels, map[Key][]float64{KeyOf(): probs})
}

// Values returns a copy of the ordered levels of the variable.
func (c *CPT) Values() []string {
	return append([]string(nil), c.levels...)
}

// Distribution returns the probability of each level given parentValues
// (in the owning node's parent order).
//
// Errors:
//   - ErrLookup when the table has no row for parentValues.
//   - ErrShapeMismatch when that row has a different length than the levels.
//
// Complexity: O(L).
func (c *CPT) Distribution(parentValues []string) (Distribution, error) {
	key := KeyOf(parentValues...)
	row, ok := c.table[key]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrLookup, key)
	}
	if len(row) != len(c.levels) {
		return nil, fmt.Errorf("%w: %s has %d entries, want %d",
			ErrShapeMismatch, key, len(row), len(c.levels))
	}

	dist := make(Distribution, len(c.levels))
	for i, level := range c.levels {
		dist[level] = row[i]
	}

	return dist, nil
}

// Rows returns a deep copy of the table.
func (c *CPT) Rows() map[Key][]float64 {
	out := make(map[Key][]float64, len(c.table))
	for k, row := range c.table {
		out[k] = append([]float64(nil), row...)
	}

	return out
}

// Len reports the number of rows in the table.
func (c *CPT) Len() int {
	return len(c.table)
}

// Normalize rescales every row in place so that it sums to 1.
// Rows with zero total mass are left untouched and reported as ErrZeroMass;
// the remaining rows are still normalised.
func (c *CPT) Normalize() error {
	var zero []Key
	for k, row := range c.table {
		if err := normalizeVector(row); err != nil {
			zero = append(zero, k)
		}
	}
	if len(zero) > 0 {
		sortKeys(zero)
		return fmt.Errorf("%w: rows %v", ErrZeroMass, zero)
	}

	return nil
}
