// SPDX-License-Identifier: MIT

package network

import (
	"github.com/katalvlaran/bayesnet/cpt"
)

// NewNode creates a node with the given name and ordered parent names and an
// empty CPT. parents is copied.
func NewNode(name string, parents []string) *Node {
	return &Node{
		name:    name,
		parents: append([]string(nil), parents...),
		table:   cpt.New(nil, nil),
	}
}

// Name returns the node name.
func (nd *Node) Name() string {
	return nd.name
}

// Parents returns a copy of the ordered parent names; never nil.
func (nd *Node) Parents() []string {
	out := make([]string, len(nd.parents))
	copy(out, nd.parents)

	return out
}

// Levels returns the levels of the node's variable, as defined by its CPT.
func (nd *Node) Levels() []string {
	return nd.table.Values()
}

// CPT returns the node's conditional probability table.
func (nd *Node) CPT() *cpt.CPT {
	return nd.table
}

// SetCPT replaces the node's table. The table is not checked against the
// parents here; mismatches surface during inference or Validate.
// A nil table resets the node to an empty CPT.
func (nd *Node) SetCPT(c *cpt.CPT) {
	if c == nil {
		c = cpt.New(nil, nil)
	}
	nd.table = c
}

// rename changes only this node's own name.
func (nd *Node) rename(name string) {
	nd.name = name
}

// replaceParent rewrites every occurrence of old in the parent list.
// It reports whether anything changed.
func (nd *Node) replaceParent(old, name string) bool {
	changed := false
	for i, p := range nd.parents {
		if p == old {
			nd.parents[i] = name
			changed = true
		}
	}

	return changed
}

// hasParent reports whether name is one of the node's parents.
func (nd *Node) hasParent(name string) bool {
	for _, p := range nd.parents {
		if p == name {
			return true
		}
	}

	return false
}
