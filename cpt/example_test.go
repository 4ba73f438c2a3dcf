// SPDX-License-Identifier: MIT

package cpt_test

import (
	"fmt"

	"github.com/katalvlaran/bayesnet/cpt"
)

// ExampleCPT_Distribution shows a table for Alarm conditioned on (Burglary, Earthquake).
func ExampleCPT_Distribution() {
	alarm := cpt.New([]string{"T", "F"}, map[cpt.Key][]float64{
		cpt.KeyOf("T", "T"): {0.95, 0.05},
		cpt.KeyOf("T", "F"): {0.94, 0.06},
		cpt.KeyOf("F", "T"): {0.29, 0.71},
		cpt.KeyOf("F", "F"): {0.001, 0.999},
	})

	d, err := alarm.Distribution([]string{"F", "T"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("P(Alarm=T | B=F, E=T) = %.2f\n", d["T"])

	_, err = alarm.Distribution([]string{"maybe", "T"})
	fmt.Println(err)

	// Output:
	// P(Alarm=T | B=F, E=T) = 0.29
	// cpt: no entry for parent values (maybe, T)
}
