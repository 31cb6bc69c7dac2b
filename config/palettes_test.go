package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luismi/goes_visualization/pkg/palette"
)

func TestBandPaletteKnownBands(t *testing.T) {
	tests := []struct {
		band      int
		wantVmin  float64
		wantVmax  float64
		wantSegs  int
		wantTicks int
	}{
		// 1/0.1 is exactly 10 in doubles, so the band 2 ticks reach 1.0
		// and its bounds run over 101 points ending at 1.0.
		{band: 2, wantVmin: 0, wantVmax: 1.0, wantSegs: 1, wantTicks: 11},
		{band: 8, wantVmin: -90, wantVmax: 0, wantSegs: 5, wantTicks: 8},
		{band: 13, wantVmin: -90, wantVmax: 60, wantSegs: 2, wantTicks: 11},
	}

	for _, tt := range tests {
		segs, extend, ticks := BandPalette(tt.band, 0, 0)
		require.Len(t, segs, tt.wantSegs, "band %d", tt.band)
		assert.Equal(t, palette.ExtendBoth, extend, "band %d", tt.band)
		assert.Len(t, ticks, tt.wantTicks, "band %d", tt.band)

		pal, err := palette.Build(segs, extend)
		require.NoError(t, err, "band %d", tt.band)
		assert.Equal(t, 0, pal.Dropped, "band %d", tt.band)
		assert.InDelta(t, tt.wantVmin, pal.Bounds[0], 1e-9, "band %d", tt.band)
		assert.InDelta(t, tt.wantVmax, pal.Bounds[len(pal.Bounds)-1], 1e-9, "band %d", tt.band)
	}
}

func TestBandPaletteWaterVaporCold(t *testing.T) {
	segs, extend, _ := BandPalette(8, 0, 0)
	pal, err := palette.Build(segs, extend)
	require.NoError(t, err)

	// Coldest tops are black, warm dry air ends black again.
	cold := pal.Colormap.At(0)
	assert.InDelta(t, 0, cold.R+cold.G+cold.B, 1e-9)
	warm := pal.Colormap.At(1)
	assert.InDelta(t, 0, warm.R+warm.G+warm.B, 1e-9)
}

func TestBandPaletteFallbackAutoscales(t *testing.T) {
	segs, extend, ticks := BandPalette(7, 210.5, 310.5)
	require.Len(t, segs, 1)
	assert.Nil(t, ticks)

	pal, err := palette.Build(segs, extend)
	require.NoError(t, err)
	assert.InDelta(t, 210.5, pal.Bounds[0], 1e-9)
	// 20 equal steps across the field range.
	assert.Len(t, pal.Bounds, 21)
}

func TestBandPaletteFallbackDegenerateRange(t *testing.T) {
	segs, extend, _ := BandPalette(7, 250, 250)
	pal, err := palette.Build(segs, extend)
	require.NoError(t, err)
	assert.Equal(t, []float64{250}, pal.Bounds)
}

func TestIsBrightnessTemperature(t *testing.T) {
	assert.False(t, IsBrightnessTemperature(2))
	assert.True(t, IsBrightnessTemperature(8))
	assert.True(t, IsBrightnessTemperature(13))
	assert.False(t, IsBrightnessTemperature(7))
}

func TestDomainFor(t *testing.T) {
	d := DomainFor("Chile Central")
	assert.Equal(t, -75.0, d.LonMin)

	// Unknown regions fall back to the continental view.
	assert.Equal(t, DomainFor(DefaultRegion), DomainFor("atlantis"))
}
