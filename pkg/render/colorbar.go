package render

import (
	"image"

	"github.com/luismi/goes_visualization/pkg/palette"
)

// Tick mark geometry for colorbar strips.
const (
	tickColorValue = 32 // dark gray notches read on most palettes
	tickFraction   = 4  // notch height is bar height / tickFraction
)

// Colorbar renders a horizontal strip sweeping the colormap domain from left
// to right. If ticks is non-empty, a notch is drawn at each tick value,
// placed linearly between the palette's first and last boundary.
func Colorbar(pal *palette.Palette, width, height int, ticks []float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	pix := img.Pix

	for x := 0; x < width; x++ {
		t := 0.0
		if width > 1 {
			t = float64(x) / float64(width-1)
		}
		rgba := pal.Colormap.At(t).NRGBA()
		for y := 0; y < height; y++ {
			idx := (y*width + x) * 4
			pix[idx] = rgba.R
			pix[idx+1] = rgba.G
			pix[idx+2] = rgba.B
			pix[idx+3] = rgba.A
		}
	}

	if len(ticks) == 0 || len(pal.Bounds) == 0 {
		return img
	}
	vmin := pal.Bounds[0]
	vmax := pal.Bounds[len(pal.Bounds)-1]
	span := vmax - vmin
	if span <= 0 {
		return img
	}
	notch := height / tickFraction
	for _, tick := range ticks {
		if tick < vmin || tick > vmax {
			continue
		}
		x := int(float64(width-1) * (tick - vmin) / span)
		for y := height - notch; y < height; y++ {
			idx := (y*width + x) * 4
			pix[idx] = tickColorValue
			pix[idx+1] = tickColorValue
			pix[idx+2] = tickColorValue
			pix[idx+3] = 255
		}
	}
	return img
}
