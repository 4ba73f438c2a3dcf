// SPDX-License-Identifier: MIT

// Package cpt implements discrete Conditional Probability Tables.
//
// What:
//
//   - A CPT stores, for one discrete variable, an ordered list of levels
//     (the values the variable may take) and one probability vector per
//     combination of parent values.
//   - Parent-value combinations are encoded as a Key built with KeyOf; the
//     empty combination KeyOf() is the only row of an unconditioned variable.
//   - Distribution(parentValues) returns the row for that combination zipped
//     against the levels as a value→probability map.
//
// Validation is lazy by default: a missing row (ErrLookup) or a row whose
// length differs from the level count (ErrShapeMismatch) is reported only when
// Distribution is called. Validate performs the same checks eagerly, plus
// normalisation and completeness checks, for loaders that want to fail early.
//
// Errors:
//
//   - ErrLookup          no row for the requested parent-value tuple
//   - ErrShapeMismatch   row length differs from the number of levels
//   - ErrNoLevels        CPT has no levels
//   - ErrDuplicateLevel  the same level appears twice
//   - ErrBadProbability  NaN, ±Inf or negative entry
//   - ErrNotNormalized   row does not sum to 1 within Tolerance
//   - ErrIncomplete      a parent-value combination has no row
//   - ErrZeroMass        normalising a vector whose total is 0
//
// Complexity:
//
//   - Distribution: O(L) for L levels (one map lookup plus the zip).
//   - Validate:     O(R·L + Π|parent levels|) for R rows.
package cpt
