package palette

import "math"

// Range returns evenly spaced values from start up to stop (inclusive) with
// the given step. The number of points is floor((stop-start)/step)+1, so stop
// itself only appears when (stop-start) divides exactly by step; no epsilon
// correction is applied. Range(0, 1, 0.3) yields 4 points ending at 0.9.
// Step must be positive; Range returns nil otherwise.
func Range(start, stop, step float64) []float64 {
	if step <= 0 {
		return nil
	}
	n := int(math.Floor((stop-start)/step)) + 1
	if n < 1 {
		return nil
	}
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = start + step*float64(i)
	}
	return vals
}
