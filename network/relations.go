// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
)

// ParentsOf returns the parent names of a node, each resolved through the
// network lookup.
//
// Errors:
//   - ErrNotFound if the node, or one of its parents, is not in the network.
func (n *Network) ParentsOf(name string) ([]string, error) {
	nd, ok := n.lookup[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	out := make([]string, 0, len(nd.parents))
	for _, p := range nd.parents {
		parent, ok := n.lookup[p]
		if !ok {
			return nil, fmt.Errorf("%w: parent %q of %q", ErrNotFound, p, name)
		}
		out = append(out, parent.name)
	}

	return out, nil
}

// ChildrenOf returns, in insertion order, the names of nodes that list the
// named node as a parent.
//
// Errors:
//   - ErrNotFound if the node is not in the network.
func (n *Network) ChildrenOf(name string) ([]string, error) {
	if _, ok := n.lookup[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return n.children(name), nil
}

// Structure returns every node name mapped to a copy of its live parent list.
func (n *Network) Structure() map[string][]string {
	out := make(map[string][]string, len(n.nodes))
	for _, nd := range n.nodes {
		out[nd.name] = nd.Parents()
	}

	return out
}

func (n *Network) children(name string) []string {
	var out []string
	for _, nd := range n.nodes {
		if nd.hasParent(name) {
			out = append(out, nd.name)
		}
	}

	return out
}
