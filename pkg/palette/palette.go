// Package palette builds piecewise colormaps for scientific visualization.
// Callers describe a palette as ordered segments, each pairing a color
// specification with the raw values it covers; Build stitches the segments
// into one continuous colormap over [0, 1] together with a boundary
// normalizer over the raw values.
package palette

import (
	"sort"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "palette")

// Segment pairs a color specification with the raw values it covers.
// Stretch carries caller-side stretching hints for forward compatibility;
// Build ignores it.
type Segment struct {
	Spec    ColorSpec
	Values  []float64
	Stretch []float64
}

func (s Segment) valid() bool {
	if s.Spec == nil || len(s.Values) == 0 {
		return false
	}
	if l, ok := s.Spec.(ColorList); ok && len(l) == 0 {
		return false
	}
	return true
}

// Palette is the composited result: a continuous colormap, default tick
// values, a discrete boundary normalizer and the raw sorted unique bounds.
type Palette struct {
	Colormap *Colormap
	Ticks    []float64
	Norm     *BoundaryNorm
	Bounds   []float64
	// Dropped counts segments discarded as malformed.
	Dropped int
}

// Build composites the segments into a single palette. Malformed segments
// (missing spec or values) are dropped with a logged diagnostic; if nothing
// survives, Build returns an EmptyPaletteError. Segments need not be sorted
// by value, the accumulated stops are sorted globally.
func Build(segments []Segment, extend Extend) (*Palette, error) {
	type valueColor struct {
		val float64
		col Color
	}
	var acc []valueColor
	dropped := 0
	for i, seg := range segments {
		if !seg.valid() {
			dropped++
			log.WithField("segment", i).Warn("Dropping malformed palette segment")
			continue
		}
		cols := seg.Spec.resolve(len(seg.Values))
		for j, v := range seg.Values {
			acc = append(acc, valueColor{val: v, col: cols[j]})
		}
	}
	if len(acc) == 0 {
		return nil, &EmptyPaletteError{Segments: len(segments)}
	}

	sort.SliceStable(acc, func(a, b int) bool { return acc[a].val < acc[b].val })

	vmin := acc[0].val
	vmax := acc[len(acc)-1].val
	denom := vmax - vmin
	if denom <= 0 {
		// Single-value palettes stay usable instead of dividing by zero.
		denom = 1.0
	}

	stops := make([]Stop, len(acc))
	for i, vc := range acc {
		stops[i] = Stop{Pos: clamp01((vc.val - vmin) / denom), Color: vc.col}
	}
	// Pin the ends so the colormap always spans the full domain, whatever
	// floating-point noise the normalization left behind.
	stops[0].Pos = 0.0
	stops[len(stops)-1].Pos = 1.0

	bounds := make([]float64, 0, len(acc))
	for i, vc := range acc {
		if i == 0 || vc.val != acc[i-1].val {
			bounds = append(bounds, vc.val)
		}
	}
	ticks := append([]float64(nil), bounds...)

	return &Palette{
		Colormap: NewColormap(stops),
		Ticks:    ticks,
		Norm:     NewBoundaryNorm(bounds, extend),
		Bounds:   bounds,
		Dropped:  dropped,
	}, nil
}
