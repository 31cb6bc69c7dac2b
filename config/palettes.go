package config

import (
	"github.com/luismi/goes_visualization/pkg/palette"
)

// Greys sweeps white to dark like the classic reflectance ramp; GreysR is
// its mirror.
var (
	Greys  = palette.Ramp(palette.RGB(1, 1, 1), palette.RGB(0, 0, 0))
	GreysR = Greys.Reversed()
)

// IsBrightnessTemperature reports whether a band's CMI field is a
// brightness temperature in Kelvin, plotted here in °C.
func IsBrightnessTemperature(band int) bool {
	return band == 8 || band == 13
}

// BandPalette returns the palette segments, extend mode and colorbar tick
// values for an ABI band. vmin/vmax are only used by the autoscaled
// fallback for bands without a dedicated table.
func BandPalette(band int, vmin, vmax float64) ([]palette.Segment, palette.Extend, []float64) {
	switch band {
	case 2:
		// Visible 0.64 µm reflectance in grayscale.
		return []palette.Segment{
			{Spec: GreysR, Values: palette.Range(0.0, 1.0, 0.01)},
		}, palette.ExtendBoth, palette.Range(0.0, 1.0, 0.1)

	case 8:
		// Water vapor 6.2 µm, brightness temperature in °C.
		return []palette.Segment{
			{
				Spec: palette.List(
					palette.MustParse("black"),
					palette.RGB(174.0/255, 46.0/255, 172.0/255),
					palette.RGB(239.0/255, 139.0/255, 238.0/255),
				),
				Values: palette.Range(-90.0, -75.0, 0.5),
			},
			{
				Spec:   palette.Names("darkgreen", "lawngreen"),
				Values: palette.Range(-75.0, -60.0, 0.5),
			},
			{
				Spec:   palette.Names("darkblue", "white"),
				Values: palette.Range(-60.0, -45.0, 0.5),
			},
			{
				Spec:   Greys,
				Values: palette.Range(-45.0, -25.0, 0.5),
			},
			{
				Spec: palette.List(
					palette.RGB(65.0/255, 36.0/255, 25.0/255),
					palette.MustParse("orange"),
					palette.MustParse("red"),
					palette.MustParse("darkred"),
					palette.RGB(63.0/255, 0, 0),
					palette.MustParse("black"),
				),
				Values: palette.Range(-25.0, 0.0, 0.5),
			},
		}, palette.ExtendBoth, palette.Range(-90.0, 15.0, 15)

	case 13:
		// Clean IR window 10.3 µm, brightness temperature in °C.
		return []palette.Segment{
			{
				Spec: palette.List(
					palette.MustParse("maroon"),
					palette.MustParse("red"),
					palette.MustParse("darkorange"),
					palette.MustParse("#ffff00"),
					palette.MustParse("forestgreen"),
					palette.MustParse("cyan"),
					palette.MustParse("royalblue"),
					palette.RGB(148.0/255, 0, 211.0/255),
				),
				Values: palette.Range(-90.0, -30.0, 1.0),
			},
			{
				Spec:    Greys,
				Values:  palette.Range(-30.0, 60.0, 1.0),
				Stretch: palette.Range(-90.0, 60.0, 1.0),
			},
		}, palette.ExtendBoth, palette.Range(-90.0, 60.0, 15)
	}

	// Fallback for other bands: autoscaled grays over the field range.
	values := palette.Range(vmin, vmax, (vmax-vmin)/20)
	if len(values) == 0 {
		values = []float64{vmin}
	}
	return []palette.Segment{
		{Spec: Greys, Values: values},
	}, palette.ExtendBoth, nil
}
