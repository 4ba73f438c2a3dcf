// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/bayesnet/enumeration"
)

// Visitation states for the depth-first walk over parent links.
const (
	white = iota // not visited yet
	gray         // on the current path
	black        // node and all its ancestors done
)

// topoSorter holds the state of one TopologicalOrder walk.
type topoSorter struct {
	net         *Network
	skipMissing bool // ignore dangling parent names instead of failing
	state       map[string]int
	path        []string // current gray path, for cycle reporting
	order       []string // post-order over parent links: parents before children
}

// TopologicalOrder returns node names ordered so that every node appears
// after all of its parents. Among independent nodes, insertion order is kept.
//
// Errors:
//   - ErrNotFound if some node lists a parent that is not in the network.
//   - ErrCycle if the parent graph has a directed cycle; the message names it.
//
// Complexity: Time O(V + E), Memory O(V).
func (n *Network) TopologicalOrder() ([]string, error) {
	return n.topoSort(false)
}

func (n *Network) topoSort(skipMissing bool) ([]string, error) {
	s := &topoSorter{
		net:         n,
		skipMissing: skipMissing,
		state:       make(map[string]int, len(n.nodes)),
		order:       make([]string, 0, len(n.nodes)),
	}
	for _, nd := range n.nodes {
		if s.state[nd.name] == white {
			if err := s.visit(nd.name); err != nil {
				return nil, err
			}
		}
	}

	return s.order, nil
}

// visit walks from id up through its parents, appending id once every
// ancestor has been appended.
func (s *topoSorter) visit(id string) error {
	// 1. Back-edge to a gray node closes a cycle
	if s.state[id] == gray {
		idx := 0
		for i, p := range s.path {
			if p == id {
				idx = i
				break
			}
		}
		cycle := append(append([]string(nil), s.path[idx:]...), id)
		return fmt.Errorf("%w: %s", ErrCycle, strings.Join(cycle, " <- "))
	}
	// 2. Already finished
	if s.state[id] == black {
		return nil
	}

	// 3. Resolve the node; a dangling parent name ends the walk
	nd, ok := s.net.lookup[id]
	if !ok {
		if s.skipMissing {
			return nil
		}
		from := ""
		if len(s.path) > 0 {
			from = s.path[len(s.path)-1]
		}
		return fmt.Errorf("%w: parent %q of %q", ErrNotFound, id, from)
	}

	// 4. Mark gray and recurse into every parent
	s.state[id] = gray
	s.path = append(s.path, id)
	for _, p := range nd.parents {
		if err := s.visit(p); err != nil {
			return err
		}
	}
	s.path = s.path[:len(s.path)-1]

	// 5. Mark black and record
	s.state[id] = black
	s.order = append(s.order, id)

	return nil
}

// Validate checks the whole network eagerly and returns every problem found,
// joined with errors.Join:
//   - dangling parent names (ErrNotFound),
//   - a directed cycle (ErrCycle),
//   - CPT problems per node, including rows missing for some combination of
//     the parents' levels (cpt.ErrIncomplete and friends),
//   - evidence on attached nodes whose value is not one of their levels
//     (enumeration.ErrUnknownValue).
//
// Evidence on names that are not attached is allowed and ignored.
func (n *Network) Validate() error {
	var errs []error

	// 1. Dangling parents and per-node tables
	for _, nd := range n.nodes {
		parentLevels := make([][]string, 0, len(nd.parents))
		complete := true
		for _, p := range nd.parents {
			parent, ok := n.lookup[p]
			if !ok {
				errs = append(errs, fmt.Errorf("%w: parent %q of %q", ErrNotFound, p, nd.name))
				complete = false
				continue
			}
			parentLevels = append(parentLevels, parent.Levels())
		}
		if !complete {
			parentLevels = nil // completeness cannot be judged without every parent
		}
		if err := nd.table.Validate(parentLevels); err != nil {
			errs = append(errs, fmt.Errorf("node %q: %w", nd.name, err))
		}
	}

	// 2. Acyclicity; dangling parents were reported above
	if _, err := n.topoSort(true); err != nil {
		errs = append(errs, err)
	}

	// 3. Evidence values
	for _, nd := range n.nodes {
		v, observed := n.evidence[nd.name]
		if !observed {
			continue
		}
		if !containsLevel(nd.Levels(), v) {
			errs = append(errs, fmt.Errorf("%w: %s=%q", enumeration.ErrUnknownValue, nd.name, v))
		}
	}

	return errors.Join(errs...)
}

func containsLevel(levels []string, v string) bool {
	for _, lv := range levels {
		if lv == v {
			return true
		}
	}

	return false
}
