// SPDX-License-Identifier: MIT

package network

import (
	"go.uber.org/zap"
)

// SetEvidence replaces the stored evidence with a copy of e.
// Nothing is validated here: names may refer to nodes that are not attached
// yet and values are checked only when a query uses them.
func (n *Network) SetEvidence(e map[string]string) {
	n.evidence = make(map[string]string, len(e))
	for k, v := range e {
		n.evidence[k] = v
	}
	n.logger.Debug("evidence set", zap.Int("entries", len(n.evidence)))
}

// Observe sets a single evidence entry, keeping the others.
func (n *Network) Observe(name, value string) {
	n.evidence[name] = value
	n.logger.Debug("evidence observed", zap.String("node", name), zap.String("value", value))
}

// Retract removes a single evidence entry, if present.
func (n *Network) Retract(name string) {
	delete(n.evidence, name)
	n.logger.Debug("evidence retracted", zap.String("node", name))
}

// ClearEvidence removes all evidence.
func (n *Network) ClearEvidence() {
	n.evidence = make(map[string]string)
	n.logger.Debug("evidence cleared")
}

// Evidence returns a copy of the stored evidence.
func (n *Network) Evidence() map[string]string {
	out := make(map[string]string, len(n.evidence))
	for k, v := range n.evidence {
		out[k] = v
	}

	return out
}
