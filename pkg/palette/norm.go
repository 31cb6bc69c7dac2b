package palette

import (
	"fmt"
	"sort"
)

// Extend selects how values outside the boundary range are binned: clipped
// into the edge bins, or sent to dedicated under/over bins.
type Extend int

const (
	ExtendNeither Extend = iota
	ExtendBoth
	ExtendMin
	ExtendMax
)

// ParseExtend maps the strings "neither", "both", "min" and "max".
func ParseExtend(s string) (Extend, error) {
	switch s {
	case "neither":
		return ExtendNeither, nil
	case "both":
		return ExtendBoth, nil
	case "min":
		return ExtendMin, nil
	case "max":
		return ExtendMax, nil
	}
	return ExtendNeither, fmt.Errorf("palette: invalid extend mode %q", s)
}

func (e Extend) String() string {
	switch e {
	case ExtendBoth:
		return "both"
	case ExtendMin:
		return "min"
	case ExtendMax:
		return "max"
	}
	return "neither"
}

func (e Extend) extendsMin() bool {
	return e == ExtendBoth || e == ExtendMin
}

func (e Extend) extendsMax() bool {
	return e == ExtendBoth || e == ExtendMax
}

// BoundaryNorm maps raw values to discrete bin indices using sorted unique
// boundary values as bin edges. N boundaries form N-1 interior bins, plus an
// under and/or over bin depending on the extend mode.
type BoundaryNorm struct {
	bounds []float64
	extend Extend
}

// NewBoundaryNorm builds a normalizer over bounds, which must be sorted
// ascending and free of duplicates.
func NewBoundaryNorm(bounds []float64, extend Extend) *BoundaryNorm {
	return &BoundaryNorm{bounds: bounds, extend: extend}
}

// Bounds returns the bin edges.
func (n *BoundaryNorm) Bounds() []float64 {
	return n.bounds
}

// Extend returns the out-of-range policy.
func (n *BoundaryNorm) Extend() Extend {
	return n.extend
}

func (n *BoundaryNorm) interior() int {
	bins := len(n.bounds) - 1
	if bins < 1 {
		bins = 1
	}
	return bins
}

// NumBins returns the total bin count including any under/over bins.
func (n *BoundaryNorm) NumBins() int {
	bins := n.interior()
	if n.extend.extendsMin() {
		bins++
	}
	if n.extend.extendsMax() {
		bins++
	}
	return bins
}

// Index returns the bin index for v, in [0, NumBins()). Without extension,
// out-of-range values are clipped into the first or last interior bin.
func (n *BoundaryNorm) Index(v float64) int {
	offset := 0
	if n.extend.extendsMin() {
		offset = 1
	}
	last := len(n.bounds) - 1
	interior := n.interior()

	if v < n.bounds[0] {
		if n.extend.extendsMin() {
			return 0
		}
		return offset
	}
	if v > n.bounds[last] {
		if n.extend.extendsMax() {
			return offset + interior
		}
		return offset + interior - 1
	}
	i := sort.Search(len(n.bounds), func(j int) bool { return n.bounds[j] > v }) - 1
	if i > interior-1 {
		i = interior - 1
	}
	return offset + i
}

// Position maps v to the equally spaced location of its bin in the colormap
// domain [0, 1].
func (n *BoundaryNorm) Position(v float64) float64 {
	bins := n.NumBins()
	if bins <= 1 {
		return 0
	}
	return float64(n.Index(v)) / float64(bins-1)
}
