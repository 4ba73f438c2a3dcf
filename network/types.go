// SPDX-License-Identifier: MIT

package network

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/bayesnet/cpt"
	"github.com/katalvlaran/bayesnet/enumeration"
	"github.com/katalvlaran/bayesnet/metrics"
)

// Sentinel errors for network operations.
var (
	// ErrNilNode indicates a nil *Node was passed to AddNode.
	ErrNilNode = errors.New("network: node is nil")

	// ErrEmptyName indicates an empty node name.
	ErrEmptyName = errors.New("network: node name is empty")

	// ErrDuplicate indicates that a node with the same name already exists.
	ErrDuplicate = errors.New("network: duplicate node name")

	// ErrNotFound indicates that a node or parent is not in the network.
	ErrNotFound = errors.New("network: node not found")

	// ErrDependentNodes indicates an attempt to delete a node that has children.
	ErrDependentNodes = errors.New("network: node has dependent children")

	// ErrCycle indicates that the parent graph contains a directed cycle.
	ErrCycle = errors.New("network: cycle detected")
)

// Node is a named discrete random variable.
//
// parents holds names, not nodes; they are resolved through the owning
// Network. table is never nil (a fresh node has an empty CPT).
type Node struct {
	name    string
	parents []string
	table   *cpt.CPT
}

// Network is a discrete Bayesian network.
//
// nodes keeps insertion order, which is also the variable order used by the
// inference engine. lookup indexes the same nodes by name.
type Network struct {
	id       uuid.UUID
	name     string
	nodes    []*Node
	lookup   map[string]*Node
	evidence map[string]string

	logger  *zap.Logger
	metrics *metrics.Registry
	engine  []enumeration.Option
}

// Option configures a Network at construction.
type Option func(*Network)

// WithLogger sets the structured logger. A nil logger has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithMetrics records query and mutation metrics into r.
func WithMetrics(r *metrics.Registry) Option {
	return func(n *Network) {
		n.metrics = r
	}
}

// WithEngineOptions appends options passed to every inference call,
// e.g. enumeration.WithMaxDepth or enumeration.WithLenientNormalization.
func WithEngineOptions(opts ...enumeration.Option) Option {
	return func(n *Network) {
		n.engine = append(n.engine, opts...)
	}
}
