// SPDX-License-Identifier: MIT

// Package network provides discrete Bayesian networks: named nodes with
// ordered parent lists and conditional probability tables, assembled into a
// Network that answers structural queries and exact marginal/posterior
// queries.
//
// What:
//
//   - Node: a named discrete variable, its parent names and its cpt.CPT.
//   - Network: owns its nodes (insertion-ordered), a name→node lookup and the
//     evidence mapping. It exposes mutation (AddNode, DeleteNode, RenameNode,
//     Reset), structure (ParentsOf, ChildrenOf, Structure, TopologicalOrder,
//     Validate), evidence (SetEvidence, Observe, Retract, ClearEvidence,
//     Evidence) and inference (Marginal, Posterior, EvidenceProbability).
//
// Parents are referenced by name only. A Node never points at another Node;
// every resolution goes through the owning Network's lookup, so renaming a
// node rewrites the parent lists of its children and deleting a node is only
// allowed once nothing lists it as a parent.
//
// Validation is lazy. AddNode does not check that parents exist, that the
// graph is acyclic or that tables are complete, and SetEvidence accepts any
// assignment. Such problems surface when a query touches them (ErrNotFound,
// cpt.ErrLookup, enumeration.ErrCycleDetected, enumeration.ErrUnknownValue).
// Call Validate to check everything up front.
//
// Concurrency: a Network has no internal locking and assumes a single writer.
// Queries do not mutate the network, so concurrent Marginal calls (or
// Posterior calls while evidence is not being changed) are safe.
//
// Errors:
//
//   - ErrNilNode         AddNode(nil)
//   - ErrEmptyName       empty node name on add or rename
//   - ErrDuplicate       name already present on add or rename
//   - ErrNotFound        node or parent not in the network
//   - ErrDependentNodes  DeleteNode on a node that still has children
//   - ErrCycle           TopologicalOrder or Validate found a directed cycle
package network
