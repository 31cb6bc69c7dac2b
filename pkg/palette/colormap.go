package palette

import "sort"

// Stop is a color control point at a normalized position in [0, 1].
type Stop struct {
	Pos   float64
	Color Color
}

// Colormap is a continuous color mapping over [0, 1] built from ordered
// stops. Between two stops the color is linearly interpolated in RGBA space.
type Colormap struct {
	stops []Stop
}

// NewColormap builds a colormap from stops already sorted by position.
func NewColormap(stops []Stop) *Colormap {
	return &Colormap{stops: stops}
}

// Stops returns the control points.
func (m *Colormap) Stops() []Stop {
	return m.stops
}

// At returns the color at position t, clamped to the colormap domain.
func (m *Colormap) At(t float64) Color {
	stops := m.stops
	if len(stops) == 0 {
		return Color{}
	}
	if t <= stops[0].Pos {
		return stops[0].Color
	}
	if t >= stops[len(stops)-1].Pos {
		return stops[len(stops)-1].Color
	}
	// Largest stop with Pos <= t; the next stop is strictly above t.
	i := sort.Search(len(stops), func(j int) bool { return stops[j].Pos > t }) - 1
	s0, s1 := stops[i], stops[i+1]
	span := s1.Pos - s0.Pos
	if span <= 0 {
		return s1.Color
	}
	return s0.Color.Lerp(s1.Color, (t-s0.Pos)/span)
}
