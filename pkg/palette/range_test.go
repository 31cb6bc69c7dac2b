package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeIncludesStart(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, step float64
		wantLen           int
		wantLast          float64
	}{
		{"unit step", 0, 10, 1, 11, 10},
		{"exact multiple", 0, 10, 5, 3, 10},
		{"half degree", -90, -75, 0.5, 31, -75},
		{"non divisible", 0, 1, 0.3, 4, 0.9},
		// 1/0.1 and 1/0.01 are exact in doubles, so stop is included.
		{"tenth step", 0, 1, 0.1, 11, 1},
		{"hundredth step", 0, 1, 0.01, 101, 1},
		{"single point", 3, 3, 1, 1, 3},
		{"negative span", -60, -45, 0.5, 31, -45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vals := Range(tt.start, tt.stop, tt.step)
			require.Len(t, vals, tt.wantLen)
			assert.Equal(t, tt.start, vals[0])
			assert.InDelta(t, tt.wantLast, vals[len(vals)-1], 1e-9)
		})
	}
}

func TestRangeStepSpacing(t *testing.T) {
	vals := Range(-30, 60, 1)
	require.Len(t, vals, 91)
	for i := 1; i < len(vals); i++ {
		assert.InDelta(t, 1.0, vals[i]-vals[i-1], 1e-9)
	}
}

// Range applies no epsilon correction, so stop is excluded whenever the span
// does not divide exactly by step.
func TestRangeStopExcludedWithoutExactDivision(t *testing.T) {
	vals := Range(0, 1, 0.3)
	require.Len(t, vals, 4)
	assert.InDelta(t, 0.9, vals[3], 1e-9)
	assert.Less(t, vals[3], 1.0)
}

func TestRangeRejectsNonPositiveStep(t *testing.T) {
	assert.Nil(t, Range(0, 10, 0))
	assert.Nil(t, Range(0, 10, -1))
}
