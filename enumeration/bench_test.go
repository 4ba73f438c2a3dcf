// SPDX-License-Identifier: MIT

package enumeration_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/bayesnet/cpt"
	"github.com/katalvlaran/bayesnet/enumeration"
)

// BenchmarkAsk_Chain measures a marginal at the end of a chain N0 -> N1 -> ... -> N11.
// Every variable except the query is hidden, so the cost grows as 2^N.
func BenchmarkAsk_Chain(b *testing.B) {
	const n = 12
	m := newMapModel().add("N0", nil, cpt.Unconditioned(tf, []float64{0.5, 0.5}))
	for i := 1; i < n; i++ {
		m.add(fmt.Sprintf("N%d", i), []string{fmt.Sprintf("N%d", i-1)}, cpt.New(tf, map[cpt.Key][]float64{
			cpt.KeyOf("T"): {0.7, 0.3},
			cpt.KeyOf("F"): {0.2, 0.8},
		}))
	}
	query := fmt.Sprintf("N%d", n-1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = enumeration.Ask(m, query, nil)
	}
}
