// SPDX-License-Identifier: MIT

package cpt

import (
	"errors"
	"strconv"
	"strings"
)

// Tolerance is the absolute error accepted when checking that a probability
// vector sums to 1.
const Tolerance = 1e-9

// Sentinel errors for CPT operations.
var (
	// ErrLookup indicates that no row exists for a parent-value tuple.
	ErrLookup = errors.New("cpt: no entry for parent values")

	// ErrShapeMismatch indicates a row whose length differs from the level count.
	ErrShapeMismatch = errors.New("cpt: row length does not match levels")

	// ErrNoLevels indicates a CPT with an empty level list.
	ErrNoLevels = errors.New("cpt: no levels")

	// ErrDuplicateLevel indicates the same level listed more than once.
	ErrDuplicateLevel = errors.New("cpt: duplicate level")

	// ErrBadProbability indicates a NaN, infinite or negative probability.
	ErrBadProbability = errors.New("cpt: probability must be finite and non-negative")

	// ErrNotNormalized indicates a row that does not sum to 1 within Tolerance.
	ErrNotNormalized = errors.New("cpt: row does not sum to 1")

	// ErrIncomplete indicates a parent-value combination without a row.
	ErrIncomplete = errors.New("cpt: table is incomplete")

	// ErrZeroMass indicates normalisation of a vector whose total is zero.
	ErrZeroMass = errors.New("cpt: total probability mass is zero")
)

// Key identifies one parent-value tuple, in parent-list order.
//
// Each value is stored as "<byte length>:<value>", so distinct tuples always
// get distinct keys, whatever characters the values contain.
type Key string

// KeyOf builds the Key for the given parent values. KeyOf() is the empty tuple
// used by unconditioned variables; KeyOf("") is a one-element tuple.
func KeyOf(parentValues ...string) Key {
	var b strings.Builder
	for _, v := range parentValues {
		b.WriteString(strconv.Itoa(len(v)))
		b.WriteByte(':')
		b.WriteString(v)
	}

	return Key(b.String())
}

// Values decodes k back into its parent values.
// The empty tuple decodes to nil. A malformed tail decodes as one last value.
func (k Key) Values() []string {
	var out []string
	for s := string(k); s != ""; {
		i := strings.IndexByte(s, ':')
		if i < 0 {
			return append(out, s)
		}
		n, err := strconv.Atoi(s[:i])
		if err != nil || n < 0 || n > len(s)-i-1 {
			return append(out, s)
		}
		out = append(out, s[i+1:i+1+n])
		s = s[i+1+n:]
	}

	return out
}

// String renders k as a human-readable tuple, e.g. "(T, F)". Empty values
// show as "" so that KeyOf("") and KeyOf() stay distinguishable.
func (k Key) String() string {
	vals := k.Values()
	for i, v := range vals {
		if v == "" {
			vals[i] = `""`
		}
	}

	return "(" + strings.Join(vals, ", ") + ")"
}

// CPT is the conditional probability table of one discrete variable.
//
// levels is fixed at construction. table maps each parent-value tuple to a
// probability vector aligned with levels.
type CPT struct {
	levels []string
	table  map[Key][]float64
}
