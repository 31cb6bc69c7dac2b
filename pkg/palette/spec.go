package palette

import "math"

// ColorSpec describes how a segment produces its colors: either a discrete
// color list or a continuous color function. Both resolve to a fixed-size
// color slice, so the compositor never needs to inspect the variant.
type ColorSpec interface {
	resolve(n int) []Color
}

// ColorList is an ordered list of discrete colors. A single color repeats
// across the whole segment; two or more colors are linearly interpolated in
// RGBA space to span it.
type ColorList []Color

// List builds a ColorList.
func List(colors ...Color) ColorList {
	return ColorList(colors)
}

// Names builds a ColorList from color names or hex strings. It panics on an
// unknown name, which is only acceptable for static palette tables.
func Names(names ...string) ColorList {
	colors := make([]Color, len(names))
	for i, name := range names {
		colors[i] = MustParse(name)
	}
	return ColorList(colors)
}

func (l ColorList) resolve(n int) []Color {
	cols := make([]Color, n)
	if len(l) == 1 {
		for i := range cols {
			cols[i] = l[0]
		}
		return cols
	}
	for i := range cols {
		t := float64(i) / math.Max(float64(n-1), 1)
		pos := t * float64(len(l)-1)
		i0 := int(math.Floor(pos))
		i1 := int(math.Ceil(pos))
		if i1 > len(l)-1 {
			i1 = len(l) - 1
		}
		cols[i] = l[i0].Lerp(l[i1], pos-float64(i0))
	}
	return cols
}

// ColorFunc is a continuous color ramp queryable at any position in [0, 1].
type ColorFunc func(t float64) Color

func (f ColorFunc) resolve(n int) []Color {
	cols := make([]Color, n)
	for i := range cols {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		cols[i] = f(t)
	}
	return cols
}

// Ramp returns a ColorFunc sweeping linearly through the given colors.
func Ramp(colors ...Color) ColorFunc {
	l := ColorList(colors)
	return func(t float64) Color {
		if len(l) == 0 {
			return Color{}
		}
		if len(l) == 1 {
			return l[0]
		}
		pos := clamp01(t) * float64(len(l)-1)
		i0 := int(math.Floor(pos))
		i1 := int(math.Ceil(pos))
		if i1 > len(l)-1 {
			i1 = len(l) - 1
		}
		return l[i0].Lerp(l[i1], pos-float64(i0))
	}
}

// Reversed returns the ramp mirrored around t = 0.5.
func (f ColorFunc) Reversed() ColorFunc {
	return func(t float64) Color {
		return f(1 - t)
	}
}
