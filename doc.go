// SPDX-License-Identifier: MIT

// Package bayesnet is a small toolkit for discrete Bayesian networks with
// exact inference by enumeration.
//
// A network is a set of named nodes. Each node holds its parents' names and a
// conditional probability table keyed by parent values. Parents are resolved
// by name at query time, so nodes may be added in any order and a missing
// parent is only an error once something needs it.
//
// Everything is organized under a handful of subpackages:
//
//	cpt/         conditional probability tables, distributions, table checks
//	network/     Node and Network: structure, evidence, queries, validation
//	enumeration/ the Enumeration-Ask engine over any Model
//	netfile/     YAML network descriptions
//	metrics/     Prometheus counters and histograms for queries and mutations
//	config/      tool settings
//	cmd/bayesnet command-line front end
//
// Quick start:
//
//	rain := network.NewNode("Rain", nil)
//	rain.SetCPT(cpt.Unconditioned([]string{"T", "F"}, []float64{0.2, 0.8}))
//	n, _ := network.Build("weather", []*network.Node{rain})
//	d, _ := n.Marginal("Rain") // map[F:0.8 T:0.2]
//
// Inference is exact and exponential in the number of hidden variables; it
// suits networks of a few dozen nodes at most. A Network is not safe for
// concurrent mutation; read-only queries may run in parallel.
package bayesnet
