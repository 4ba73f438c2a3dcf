// SPDX-License-Identifier: MIT

package cpt

import (
	"slices"
	"sort"
)

// Distribution maps each level of a variable to its probability.
type Distribution map[string]float64

// Sum returns the total mass of d.
func (d Distribution) Sum() float64 {
	// iterate in key order so that repeated calls return the same float
	keys := d.keys()
	total := 0.0
	for _, k := range keys {
		total += d[k]
	}

	return total
}

// Clone returns an independent copy of d.
func (d Distribution) Clone() Distribution {
	out := make(Distribution, len(d))
	for k, v := range d {
		out[k] = v
	}

	return out
}

// Normalize rescales d in place so it sums to 1.
// If the total is exactly 0, d is left unmodified and ErrZeroMass is returned.
func (d Distribution) Normalize() error {
	total := d.Sum()
	if total == 0 {
		return ErrZeroMass
	}
	for k, v := range d {
		d[k] = v / total
	}

	return nil
}

// keys returns the levels of d in lexical order.
func (d Distribution) keys() []string {
	out := make([]string, 0, len(d))
	for k := range d {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// normalizeVector rescales v in place; a zero total leaves v unchanged.
func normalizeVector(v []float64) error {
	total := 0.0
	for _, p := range v {
		total += p
	}
	if total == 0 {
		return ErrZeroMass
	}
	for i := range v {
		v[i] /= total
	}

	return nil
}

// sortKeys orders keys by their decoded values.
func sortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool {
		return slices.Compare(keys[i].Values(), keys[j].Values()) < 0
	})
}
