package palette

import (
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is an RGBA color with float64 components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB builds an opaque color from components in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA builds a color from components in [0, 1].
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex parses a "#rrggbb" hex string.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// Named looks up an SVG 1.1 color name such as "maroon" or "lawngreen".
func Named(name string) (Color, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, &UnknownColorError{Name: name}
	}
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}, nil
}

// Parse accepts a color name or a "#rrggbb" hex string.
func Parse(s string) (Color, error) {
	if strings.HasPrefix(s, "#") {
		return Hex(s)
	}
	return Named(s)
}

// MustParse is Parse for static palette tables; it panics on bad input.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Lerp returns the linear RGBA interpolation between c and o at t in [0, 1].
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: c.R + t*(o.R-c.R),
		G: c.G + t*(o.G-c.G),
		B: c.B + t*(o.B-c.B),
		A: c.A + t*(o.A-c.A),
	}
}

// Clamp bounds every component into [0, 1].
func (c Color) Clamp() Color {
	return Color{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
		A: clamp01(c.A),
	}
}

// NRGBA converts to 8-bit non-premultiplied RGBA for raster output.
func (c Color) NRGBA() color.NRGBA {
	cc := c.Clamp()
	return color.NRGBA{
		R: uint8(math.Round(cc.R * 255)),
		G: uint8(math.Round(cc.G * 255)),
		B: uint8(math.Round(cc.B * 255)),
		A: uint8(math.Round(cc.A * 255)),
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
