// SPDX-License-Identifier: MIT

package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayesnet/cpt"
	"github.com/katalvlaran/bayesnet/network"
)

// Common names and levels used across network tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"

	True  = "true"
	False = "false"
)

var boolLevels = []string{True, False}

// node builds a node with a CPT in one call.
func node(name string, parents []string, table *cpt.CPT) *network.Node {
	nd := network.NewNode(name, parents)
	nd.SetCPT(table)

	return nd
}

// chain builds A -> B with P(A=true)=0.6, P(B=true|A=true)=0.9, P(B=true|A=false)=0.2.
func chain(t testing.TB, opts ...network.Option) *network.Network {
	t.Helper()
	n, err := network.Build("chain", []*network.Node{
		node(NodeA, nil, cpt.Unconditioned(boolLevels, []float64{0.6, 0.4})),
		node(NodeB, []string{NodeA}, cpt.New(boolLevels, map[cpt.Key][]float64{
			cpt.KeyOf(True):  {0.9, 0.1},
			cpt.KeyOf(False): {0.2, 0.8},
		})),
	}, opts...)
	require.NoError(t, err)

	return n
}

// sprinkler builds the classic Cloudy/Sprinkler/Rain/WetGrass network with the
// nodes inserted children first.
func sprinkler(t testing.TB, opts ...network.Option) *network.Network {
	t.Helper()
	n, err := network.Build("sprinkler", []*network.Node{
		node("WetGrass", []string{"Sprinkler", "Rain"}, cpt.New(boolLevels, map[cpt.Key][]float64{
			cpt.KeyOf(True, True):   {0.99, 0.01},
			cpt.KeyOf(True, False):  {0.90, 0.10},
			cpt.KeyOf(False, True):  {0.90, 0.10},
			cpt.KeyOf(False, False): {0.00, 1.00},
		})),
		node("Sprinkler", []string{"Cloudy"}, cpt.New(boolLevels, map[cpt.Key][]float64{
			cpt.KeyOf(True):  {0.1, 0.9},
			cpt.KeyOf(False): {0.5, 0.5},
		})),
		node("Rain", []string{"Cloudy"}, cpt.New(boolLevels, map[cpt.Key][]float64{
			cpt.KeyOf(True):  {0.8, 0.2},
			cpt.KeyOf(False): {0.2, 0.8},
		})),
		node("Cloudy", nil, cpt.Unconditioned(boolLevels, []float64{0.5, 0.5})),
	}, opts...)
	require.NoError(t, err)

	return n
}
