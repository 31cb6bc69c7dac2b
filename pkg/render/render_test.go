package render

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luismi/goes_visualization/pkg/goes"
	"github.com/luismi/goes_visualization/pkg/palette"
)

func blackToWhite(t *testing.T) *palette.Palette {
	t.Helper()
	pal, err := palette.Build([]palette.Segment{
		{Spec: palette.Names("black", "white"), Values: palette.Range(0, 10, 5)},
	}, palette.ExtendNeither)
	require.NoError(t, err)
	return pal
}

func TestRenderBinsPixels(t *testing.T) {
	pal := blackToWhite(t)
	field := &goes.Field{
		Width:  2,
		Height: 2,
		Data:   []float64{-5, 2, 7, 99},
	}

	rm, img := Render(field, pal, 2)
	require.NotNil(t, img)
	assert.Equal(t, int64(16), rm.ImageSize)

	// Two bins: below 5 → colormap position 0 (black), 5 and up → 1 (white).
	black := img.RGBAAt(0, 0)
	assert.EqualValues(t, 0, black.R)
	assert.EqualValues(t, 255, black.A)

	low := img.RGBAAt(1, 0)
	assert.EqualValues(t, 0, low.R)

	high := img.RGBAAt(0, 1)
	assert.EqualValues(t, 255, high.R)

	clipped := img.RGBAAt(1, 1)
	assert.EqualValues(t, 255, clipped.R)
}

func TestRenderFillPixelsTransparent(t *testing.T) {
	pal := blackToWhite(t)
	field := &goes.Field{
		Width:  2,
		Height: 1,
		Data:   []float64{math.NaN(), 0},
	}

	_, img := Render(field, pal, 1)
	fill := img.RGBAAt(0, 0)
	assert.EqualValues(t, 0, fill.A)

	valid := img.RGBAAt(1, 0)
	assert.EqualValues(t, 255, valid.A)
}

func TestColorbarSweepsDomain(t *testing.T) {
	pal := blackToWhite(t)
	img := Colorbar(pal, 100, 8, nil)

	left := img.RGBAAt(0, 0)
	right := img.RGBAAt(99, 0)
	assert.EqualValues(t, 0, left.R)
	assert.EqualValues(t, 255, right.R)

	mid := img.RGBAAt(50, 0)
	assert.Greater(t, mid.R, left.R)
	assert.Less(t, mid.R, right.R)
}

func TestColorbarTicks(t *testing.T) {
	pal := blackToWhite(t)
	img := Colorbar(pal, 101, 8, []float64{5})

	// The tick for value 5 lands mid-bar, drawn in the bottom quarter.
	notch := img.RGBAAt(50, 7)
	assert.EqualValues(t, 32, notch.R)
	assert.EqualValues(t, 32, notch.G)

	top := img.RGBAAt(50, 0)
	assert.NotEqual(t, notch, top)
}

func TestWritePNG(t *testing.T) {
	pal := blackToWhite(t)
	img := Colorbar(pal, 10, 4, nil)

	path := filepath.Join(t.TempDir(), "nested", "out.png")
	elapsed, err := WritePNG(img, path)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, time.Duration(0))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}
