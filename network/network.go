// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Mutation labels reported to metrics.
const (
	opAdd    = "add"
	opDelete = "delete"
	opRename = "rename"
	opReset  = "reset"
)

// New creates an empty network.
// Complexity: O(len(opts)).
func New(name string, opts ...Option) *Network {
	n := &Network{
		id:       uuid.New(),
		name:     name,
		lookup:   make(map[string]*Node),
		evidence: make(map[string]string),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.logger = n.logger.With(zap.String("network", n.name), zap.Stringer("network_id", n.id))

	return n
}

// Build creates a network and adds nodes in order, stopping at the first
// AddNode error.
func Build(name string, nodes []*Node, opts ...Option) (*Network, error) {
	n := New(name, opts...)
	for _, nd := range nodes {
		if err := n.AddNode(nd); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// ID returns the unique identifier assigned at construction.
func (n *Network) ID() uuid.UUID {
	return n.id
}

// Name returns the network name.
func (n *Network) Name() string {
	return n.name
}

// Len returns the number of nodes.
func (n *Network) Len() int {
	return len(n.nodes)
}

// AddNode attaches nd to the network. Parents need not exist yet.
//
// Errors:
//   - ErrNilNode if nd is nil.
//   - ErrEmptyName if nd has an empty name.
//   - ErrDuplicate if a node with the same name is already present.
//
// Complexity: O(1) amortised.
func (n *Network) AddNode(nd *Node) error {
	if nd == nil {
		return ErrNilNode
	}
	if nd.name == "" {
		return ErrEmptyName
	}
	if _, exists := n.lookup[nd.name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, nd.name)
	}
	n.nodes = append(n.nodes, nd)
	n.lookup[nd.name] = nd

	n.mutated(opAdd, zap.String("node", nd.name), zap.Strings("parents", nd.parents))

	return nil
}

// DeleteNode removes the named node. Only nodes without children may be
// deleted, so no parent reference is ever left dangling by a delete.
//
// Errors:
//   - ErrNotFound if the node is absent.
//   - ErrDependentNodes if some node lists it as a parent.
//
// Complexity: O(V·P) for the child scan.
func (n *Network) DeleteNode(name string) error {
	if _, ok := n.lookup[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if children := n.children(name); len(children) > 0 {
		return fmt.Errorf("%w: %q is a parent of %v", ErrDependentNodes, name, children)
	}

	for i, nd := range n.nodes {
		if nd.name == name {
			n.nodes = append(n.nodes[:i], n.nodes[i+1:]...)
			break
		}
	}
	delete(n.lookup, name)

	n.mutated(opDelete, zap.String("node", name))

	return nil
}

// RenameNode renames a node and rewrites every parent reference to it, as
// well as a stored evidence entry under the old name.
// Renaming a node to its current name is a no-op.
//
// Errors:
//   - ErrNotFound if old is absent.
//   - ErrEmptyName if name is empty.
//   - ErrDuplicate if name is already taken.
//
// Complexity: O(V·P).
func (n *Network) RenameNode(old, name string) error {
	nd, ok := n.lookup[old]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, old)
	}
	if name == "" {
		return ErrEmptyName
	}
	if name == old {
		return nil
	}
	if _, taken := n.lookup[name]; taken {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}

	// 1. Re-key the lookup and rename the node itself
	delete(n.lookup, old)
	n.lookup[name] = nd
	nd.rename(name)

	// 2. Rewrite parent references held by every node
	var rewritten []string
	for _, other := range n.nodes {
		if other.replaceParent(old, name) {
			rewritten = append(rewritten, other.name)
		}
	}

	// 3. Carry evidence over to the new name
	if v, observed := n.evidence[old]; observed {
		delete(n.evidence, old)
		n.evidence[name] = v
	}

	n.mutated(opRename, zap.String("from", old), zap.String("to", name), zap.Strings("children", rewritten))

	return nil
}

// Reset removes every node and clears the evidence.
func (n *Network) Reset() {
	n.nodes = nil
	n.lookup = make(map[string]*Node)
	n.evidence = make(map[string]string)

	n.mutated(opReset)
}

// Node returns the named node.
func (n *Network) Node(name string) (*Node, error) {
	nd, ok := n.lookup[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return nd, nil
}

// Nodes returns the nodes in insertion order. The slice is a copy; the nodes
// are the network's own.
func (n *Network) Nodes() []*Node {
	return append([]*Node(nil), n.nodes...)
}

// Names returns node names in insertion order.
func (n *Network) Names() []string {
	out := make([]string, len(n.nodes))
	for i, nd := range n.nodes {
		out[i] = nd.name
	}

	return out
}

// mutated logs and counts a structural change.
func (n *Network) mutated(op string, fields ...zap.Field) {
	n.logger.Debug("network "+op, fields...)
	if n.metrics != nil {
		n.metrics.RecordMutation(op)
	}
}
