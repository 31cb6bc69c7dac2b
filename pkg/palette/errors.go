package palette

import "fmt"

// EmptyPaletteError is returned by Build when no segment survives filtering,
// so no value range can be computed.
type EmptyPaletteError struct {
	Segments int
}

func (e *EmptyPaletteError) Error() string {
	return fmt.Sprintf("palette: no usable segments out of %d supplied", e.Segments)
}

// UnknownColorError is returned when a color name is not in the SVG 1.1 table.
type UnknownColorError struct {
	Name string
}

func (e *UnknownColorError) Error() string {
	return fmt.Sprintf("palette: unknown color name %q", e.Name)
}
