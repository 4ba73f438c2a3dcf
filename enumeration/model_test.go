// SPDX-License-Identifier: MIT

package enumeration_test

import (
	"fmt"

	"github.com/katalvlaran/bayesnet/cpt"
)

var errNoVariable = fmt.Errorf("test model: no such variable")

// variable is one entry of mapModel.
type variable struct {
	parents []string
	table   *cpt.CPT
}

// mapModel is a minimal enumeration.Model backed by plain maps.
type mapModel struct {
	order []string
	vars  map[string]variable
}

func newMapModel() *mapModel {
	return &mapModel{vars: make(map[string]variable)}
}

func (m *mapModel) add(name string, parents []string, table *cpt.CPT) *mapModel {
	m.order = append(m.order, name)
	m.vars[name] = variable{parents: parents, table: table}

	return m
}

func (m *mapModel) Variables() []string { return append([]string(nil), m.order...) }

func (m *mapModel) Parents(name string) ([]string, error) {
	v, ok := m.vars[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errNoVariable, name)
	}

	return v.parents, nil
}

func (m *mapModel) Levels(name string) ([]string, error) {
	v, ok := m.vars[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errNoVariable, name)
	}

	return v.table.Values(), nil
}

func (m *mapModel) Distribution(name string, parentValues []string) (cpt.Distribution, error) {
	v, ok := m.vars[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errNoVariable, name)
	}

	return v.table.Distribution(parentValues)
}

var tf = []string{"T", "F"}

// chainModel is A -> B with P(A)=0.6 and P(B|A) = 0.9 / 0.2.
func chainModel() *mapModel {
	return newMapModel().
		add("A", nil, cpt.Unconditioned(tf, []float64{0.6, 0.4})).
		add("B", []string{"A"}, cpt.New(tf, map[cpt.Key][]float64{
			cpt.KeyOf("T"): {0.9, 0.1},
			cpt.KeyOf("F"): {0.2, 0.8},
		}))
}

// alarmModel is the burglary network, listed children first on purpose.
func alarmModel() *mapModel {
	return newMapModel().
		add("JohnCalls", []string{"Alarm"}, cpt.New(tf, map[cpt.Key][]float64{
			cpt.KeyOf("T"): {0.90, 0.10},
			cpt.KeyOf("F"): {0.05, 0.95},
		})).
		add("MaryCalls", []string{"Alarm"}, cpt.New(tf, map[cpt.Key][]float64{
			cpt.KeyOf("T"): {0.70, 0.30},
			cpt.KeyOf("F"): {0.01, 0.99},
		})).
		add("Alarm", []string{"Burglary", "Earthquake"}, cpt.New(tf, map[cpt.Key][]float64{
			cpt.KeyOf("T", "T"): {0.95, 0.05},
			cpt.KeyOf("T", "F"): {0.94, 0.06},
			cpt.KeyOf("F", "T"): {0.29, 0.71},
			cpt.KeyOf("F", "F"): {0.001, 0.999},
		})).
		add("Burglary", nil, cpt.Unconditioned(tf, []float64{0.001, 0.999})).
		add("Earthquake", nil, cpt.Unconditioned(tf, []float64{0.002, 0.998}))
}
