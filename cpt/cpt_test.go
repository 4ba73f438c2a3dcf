// SPDX-License-Identifier: MIT

package cpt_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayesnet/cpt"
)

// Common levels used across cpt tests.
var (
	boolLevels = []string{"T", "F"}
	triLevels  = []string{"low", "mid", "high"}
)

// TestUnconditioned_Distribution checks that a flat vector becomes the empty-tuple row.
func TestUnconditioned_Distribution(t *testing.T) {
	c := cpt.Unconditioned(boolLevels, []float64{0.6, 0.4})

	d, err := c.Distribution(nil)
	require.NoError(t, err)
	assert.Equal(t, cpt.Distribution{"T": 0.6, "F": 0.4}, d)

	// an empty, non-nil slice is the same tuple
	d, err = c.Distribution([]string{})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d.Sum(), cpt.Tolerance)
	assert.Equal(t, 1, c.Len())
}

// TestDistribution_Conditioned looks rows up by parent tuple.
func TestDistribution_Conditioned(t *testing.T) {
	c := cpt.New(boolLevels, map[cpt.Key][]float64{
		cpt.KeyOf("T", "T"): {0.99, 0.01},
		cpt.KeyOf("T", "F"): {0.9, 0.1},
		cpt.KeyOf("F", "T"): {0.9, 0.1},
		cpt.KeyOf("F", "F"): {0.0, 1.0},
	})

	d, err := c.Distribution([]string{"T", "F"})
	require.NoError(t, err)
	assert.Equal(t, 0.9, d["T"])
	assert.Equal(t, 0.1, d["F"])

	d, err = c.Distribution([]string{"F", "F"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, d["T"])
}

// TestDistribution_Lookup verifies that a missing tuple is a lookup error, not a default.
func TestDistribution_Lookup(t *testing.T) {
	c := cpt.New(boolLevels, map[cpt.Key][]float64{
		cpt.KeyOf("T"): {0.9, 0.1},
	})

	d, err := c.Distribution([]string{"F"})
	assert.Nil(t, d)
	assert.ErrorIs(t, err, cpt.ErrLookup)
	assert.Contains(t, err.Error(), "(F)")

	// wrong arity is also just a missing row
	_, err = c.Distribution([]string{"T", "T"})
	assert.ErrorIs(t, err, cpt.ErrLookup)
}

// TestDistribution_ShapeMismatch verifies lazy detection of row/level mismatches.
func TestDistribution_ShapeMismatch(t *testing.T) {
	c := cpt.Unconditioned(triLevels, []float64{0.5, 0.5})

	_, err := c.Distribution(nil)
	assert.ErrorIs(t, err, cpt.ErrShapeMismatch)
}

// TestNew_CopiesInputs ensures the CPT does not alias caller slices.
func TestNew_CopiesInputs(t *testing.T) {
	levels := []string{"a", "b"}
	row := []float64{0.25, 0.75}
	c := cpt.Unconditioned(levels, row)

	levels[0] = "z"
	row[0] = 9

	assert.Equal(t, []string{"a", "b"}, c.Values())
	d, err := c.Distribution(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.25, d["a"])

	// Values and Rows hand out copies as well
	c.Values()[1] = "y"
	c.Rows()[cpt.KeyOf()][1] = 42
	assert.Equal(t, []string{"a", "b"}, c.Values())
	assert.Equal(t, []float64{0.25, 0.75}, c.Rows()[cpt.KeyOf()])
}

// TestKey round-trips parent tuples and renders them.
func TestKey(t *testing.T) {
	assert.Equal(t, cpt.Key(""), cpt.KeyOf())
	assert.Nil(t, cpt.KeyOf().Values())
	assert.Equal(t, []string{"T", "F"}, cpt.KeyOf("T", "F").Values())
	assert.Equal(t, "(T, F)", cpt.KeyOf("T", "F").String())
	assert.Equal(t, "()", cpt.KeyOf().String())
	assert.NotEqual(t, cpt.KeyOf("ab"), cpt.KeyOf("a", "b"))
}

// TestKey_Distinct keeps tuples apart even when values are empty or contain
// separator-like characters.
func TestKey_Distinct(t *testing.T) {
	tuples := [][]string{
		{},
		{""},
		{"", ""},
		{"a\x1fb"},
		{"a", "b"},
		{"1:a"},
		{"a", ""},
		{"", "a"},
		{"a:b", "c"},
		{"a", "b:c"},
	}
	seen := make(map[cpt.Key][]string, len(tuples))
	for _, tup := range tuples {
		k := cpt.KeyOf(tup...)
		prev, dup := seen[k]
		require.Falsef(t, dup, "KeyOf(%q) collides with KeyOf(%q)", tup, prev)
		seen[k] = tup
		if len(tup) == 0 {
			assert.Nil(t, k.Values())
		} else {
			assert.Equal(t, tup, k.Values())
		}
	}
	assert.Equal(t, `("")`, cpt.KeyOf("").String())
}

// TestCPT_EmptyLevelParent looks up the exact tuple, never the unconditioned row.
func TestCPT_EmptyLevelParent(t *testing.T) {
	c := cpt.New(boolLevels, map[cpt.Key][]float64{
		cpt.KeyOf("x"): {0.5, 0.5},
		cpt.KeyOf():    {0.5, 0.5},
	})

	_, err := c.Distribution([]string{""})
	assert.ErrorIs(t, err, cpt.ErrLookup)

	err = c.Validate([][]string{{"", "x"}})
	assert.ErrorIs(t, err, cpt.ErrIncomplete)
	assert.Contains(t, err.Error(), `missing ("")`)

	d, err := c.Distribution([]string{"x"})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, d["T"], 1e-12)
}

// TestCPT_Normalize rescales every row and reports zero-mass rows.
func TestCPT_Normalize(t *testing.T) {
	c := cpt.New(boolLevels, map[cpt.Key][]float64{
		cpt.KeyOf("T"): {3, 1},
		cpt.KeyOf("F"): {1, 1},
	})
	require.NoError(t, c.Normalize())

	rows := c.Rows()
	assert.InDeltaSlice(t, []float64{0.75, 0.25}, rows[cpt.KeyOf("T")], 1e-12)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, rows[cpt.KeyOf("F")], 1e-12)
	require.NoError(t, c.Validate([][]string{boolLevels}))

	z := cpt.New(boolLevels, map[cpt.Key][]float64{
		cpt.KeyOf("T"): {0, 0},
		cpt.KeyOf("F"): {2, 2},
	})
	err := z.Normalize()
	assert.ErrorIs(t, err, cpt.ErrZeroMass)
	rows = z.Rows()
	assert.Equal(t, []float64{0, 0}, rows[cpt.KeyOf("T")], "zero row left untouched")
	assert.Equal(t, []float64{0.5, 0.5}, rows[cpt.KeyOf("F")], "other rows still normalised")
}

// TestDistribution_Normalize covers the zero-total contract of Distribution.Normalize.
func TestDistribution_Normalize(t *testing.T) {
	d := cpt.Distribution{"a": 1, "b": 3}
	require.NoError(t, d.Normalize())
	assert.Equal(t, cpt.Distribution{"a": 0.25, "b": 0.75}, d)

	zero := cpt.Distribution{"a": 0, "b": 0}
	assert.ErrorIs(t, zero.Normalize(), cpt.ErrZeroMass)
	assert.Equal(t, cpt.Distribution{"a": 0, "b": 0}, zero)

	c := d.Clone()
	c["a"] = 1
	assert.Equal(t, 0.25, d["a"])
}

// TestValidate walks the eager validation stages.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cpt     *cpt.CPT
		parents [][]string
		want    error
	}{
		{
			name: "valid unconditioned",
			cpt:  cpt.Unconditioned(triLevels, []float64{0.2, 0.3, 0.5}),
		},
		{
			name: "no levels",
			cpt:  cpt.Unconditioned(nil, nil),
			want: cpt.ErrNoLevels,
		},
		{
			name: "duplicate level",
			cpt:  cpt.Unconditioned([]string{"a", "a"}, []float64{0.5, 0.5}),
			want: cpt.ErrDuplicateLevel,
		},
		{
			name: "short row",
			cpt:  cpt.Unconditioned(triLevels, []float64{1}),
			want: cpt.ErrShapeMismatch,
		},
		{
			name: "negative entry",
			cpt:  cpt.Unconditioned(boolLevels, []float64{1.5, -0.5}),
			want: cpt.ErrBadProbability,
		},
		{
			name: "NaN entry",
			cpt:  cpt.Unconditioned(boolLevels, []float64{math.NaN(), 1}),
			want: cpt.ErrBadProbability,
		},
		{
			name: "not normalised",
			cpt:  cpt.Unconditioned(boolLevels, []float64{0.5, 0.6}),
			want: cpt.ErrNotNormalized,
		},
		{
			name: "incomplete",
			cpt: cpt.New(boolLevels, map[cpt.Key][]float64{
				cpt.KeyOf("T", "low"): {0.5, 0.5},
			}),
			parents: [][]string{boolLevels, triLevels},
			want:    cpt.ErrIncomplete,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cpt.Validate(tc.parents)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestCombinations checks odometer order and edge cases.
func TestCombinations(t *testing.T) {
	got := cpt.Combinations([][]string{{"T", "F"}, {"x", "y"}})
	assert.Equal(t, [][]string{{"T", "x"}, {"T", "y"}, {"F", "x"}, {"F", "y"}}, got)

	assert.Equal(t, [][]string{{}}, cpt.Combinations(nil))
	assert.Empty(t, cpt.Combinations([][]string{{"T"}, {}}))
}
