// SPDX-License-Identifier: MIT

// Package enumeration implements exact inference by enumeration
// (Enumeration-Ask) over discrete Bayesian networks.
//
// What:
//
//   - Ask computes the posterior distribution of one query variable given hard
//     evidence: a point distribution when the query is itself observed,
//     otherwise one joint enumeration per query level followed by
//     normalisation.
//   - Enumerate is the joint routine: it sums the full joint probability over
//     every assignment of the hidden variables, multiplying CPT entries along
//     the way.
//
// The engine works on the Model interface, so any network representation that
// can report its variables, parents, levels and conditional distributions can
// be queried. Parent names are resolved through the Model on every step; no
// pointers between variables are kept.
//
// Variable selection is deterministic: the first remaining variable is
// evaluated, unless one of its parents has no value yet, in which case that
// parent is evaluated first (recursively). The caller therefore need not sort
// variables topologically. A parent chain that loops back on itself is
// reported as ErrCycleDetected instead of recursing forever.
//
// Complexity:
//
//   - Time:   O(V · Π|levels(h)|) over the hidden variables h, i.e. exponential
//     in the number of hidden variables. Nothing is cached between branches;
//     this is the ceiling of the engine, not an accident.
//   - Memory: O(V) stack frames plus one evidence copy per frame.
//
// Errors:
//
//   - ErrNilModel                model is nil
//   - ErrCycleDetected           parent chain loops back on itself
//   - ErrUnknownValue            evidence value is not a level of its variable
//   - ErrUnresolvedParent        parent is neither observed nor enumerable
//   - ErrDepthExceeded           WithMaxDepth limit reached
//   - ErrDegenerateDistribution  evidence has zero probability
//   - context errors             WithContext cancelled
//   - Model errors               propagated unchanged (e.g. cpt.ErrLookup)
package enumeration
