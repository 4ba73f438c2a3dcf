// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/bayesnet/cpt"
	"github.com/katalvlaran/bayesnet/enumeration"
	"github.com/katalvlaran/bayesnet/metrics"
)

// Marginal returns the distribution of the named variable with no evidence.
// Stored evidence is neither used nor modified.
func (n *Network) Marginal(name string) (cpt.Distribution, error) {
	return n.ask(metrics.KindMarginal, name, map[string]string{})
}

// Posterior returns the distribution of the named variable given the stored
// evidence. If the variable itself is observed, the result is a point
// distribution.
//
// Errors are those of enumeration.Ask, plus ErrNotFound for unknown variables
// or parents and cpt.ErrLookup for missing table rows.
func (n *Network) Posterior(name string) (cpt.Distribution, error) {
	return n.ask(metrics.KindPosterior, name, n.evidence)
}

// EvidenceProbability returns P(evidence), the joint probability of the stored
// evidence with every other variable summed out. It is 1 with no evidence.
func (n *Network) EvidenceProbability() (float64, error) {
	var stats enumeration.Stats
	start := time.Now()

	p, err := enumeration.Enumerate(model{n}, n.Names(), n.evidence, n.engineOptions(&stats)...)
	n.observe(metrics.KindEvidenceProbability, "", start, stats, err)

	return p, err
}

func (n *Network) ask(kind, name string, evidence map[string]string) (cpt.Distribution, error) {
	var stats enumeration.Stats
	start := time.Now()

	dist, err := enumeration.Ask(model{n}, name, evidence, n.engineOptions(&stats)...)
	n.observe(kind, name, start, stats, err)

	return dist, err
}

func (n *Network) engineOptions(stats *enumeration.Stats) []enumeration.Option {
	opts := make([]enumeration.Option, 0, len(n.engine)+1)
	opts = append(opts, n.engine...)

	return append(opts, enumeration.WithStats(stats))
}

// observe logs and records a finished query.
func (n *Network) observe(kind, variable string, start time.Time, stats enumeration.Stats, err error) {
	elapsed := time.Since(start)
	status := metrics.StatusOK
	switch {
	case errors.Is(err, enumeration.ErrDegenerateDistribution):
		status = metrics.StatusDegenerate
	case err != nil:
		status = metrics.StatusError
	}
	if n.metrics != nil {
		n.metrics.RecordQuery(kind, status, elapsed, stats.Calls)
	}

	fields := []zap.Field{
		zap.String("kind", kind),
		zap.String("variable", variable),
		zap.Int("calls", stats.Calls),
		zap.Int("depth", stats.MaxDepth),
		zap.Duration("elapsed", elapsed),
	}
	if err != nil {
		n.logger.Warn("query failed", append(fields, zap.Error(err))...)
		return
	}
	n.logger.Debug("query done", fields...)
}

// model adapts a Network to enumeration.Model.
type model struct {
	n *Network
}

func (m model) Variables() []string {
	return m.n.Names()
}

func (m model) Parents(name string) ([]string, error) {
	nd, err := m.n.Node(name)
	if err != nil {
		return nil, err
	}

	return nd.parents, nil
}

func (m model) Levels(name string) ([]string, error) {
	nd, err := m.n.Node(name)
	if err != nil {
		return nil, err
	}

	return nd.table.Values(), nil
}

func (m model) Distribution(name string, parentValues []string) (cpt.Distribution, error) {
	nd, err := m.n.Node(name)
	if err != nil {
		return nil, err
	}

	return nd.table.Distribution(parentValues)
}
