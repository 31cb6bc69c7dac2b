package goes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testField() *Field {
	return &Field{
		Width:  3,
		Height: 2,
		Data:   []float64{233.15, 273.15, math.NaN(), 293.15, 253.15, math.NaN()},
		Units:  "K",
	}
}

func TestFieldStats(t *testing.T) {
	f := testField()
	for _, threads := range []int{1, 2, 8} {
		min, max, fill := f.Stats(threads)
		assert.InDelta(t, 233.15, min, 1e-9, "threads=%d", threads)
		assert.InDelta(t, 293.15, max, 1e-9, "threads=%d", threads)
		assert.Equal(t, 2, fill, "threads=%d", threads)
	}
}

func TestFieldToCelsius(t *testing.T) {
	f := testField()
	f.ToCelsius()
	assert.InDelta(t, -40.0, f.Data[0], 1e-9)
	assert.InDelta(t, 0.0, f.Data[1], 1e-9)
	assert.True(t, math.IsNaN(f.Data[2]))
	assert.Equal(t, "°C", f.Units)
}

func TestFieldFree(t *testing.T) {
	f := testField()
	f.Free()
	require.Nil(t, f.Data)

	var nilField *Field
	assert.NotPanics(t, func() { nilField.Free() })
}
