package goes

import (
	"math"
	"sync"

	"github.com/luismi/goes_visualization/pkg/metrics"
)

// Field represents one decoded ABI L2 field (CMI) and its scene metadata
type Field struct {
	Width, Height int
	Data          []float64 // Row-major; fill pixels are NaN

	Platform     string  // e.g. "G19"
	TimeCoverage string  // Scan start, e.g. "2025-12-01T00:00:20.8Z"
	BandID       int     // ABI band number
	WavelengthUm float64 // Central wavelength in µm
	LongName     string
	Units        string

	Metrics metrics.ReadMetrics
}

// Reader is the interface for GOES field readers
type Reader interface {
	// Read decodes a NetCDF file and returns the field data and metrics
	Read(filePath string, threads int) (*Field, error)
}

// Stats computes the minimum, maximum and fill-pixel count of the field in
// parallel. Fill pixels (NaN) are excluded from the range.
func (f *Field) Stats(numThreads int) (vmin, vmax float64, fill int) {
	pixelCount := len(f.Data)
	if numThreads < 1 {
		numThreads = 1
	}

	numWorkers := numThreads
	chunkSize := (pixelCount + numWorkers - 1) / numWorkers
	minVals := make([]float64, numWorkers)
	maxVals := make([]float64, numWorkers)
	fillCounts := make([]int, numWorkers)

	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for w := 0; w < numWorkers; w++ {
		start := w * chunkSize
		end := min(start+chunkSize, pixelCount)

		go func(worker, start, end int) {
			defer wg.Done()
			localMin := math.MaxFloat64
			localMax := -math.MaxFloat64
			localFill := 0

			for i := start; i < end; i++ {
				v := f.Data[i]
				if math.IsNaN(v) {
					localFill++
					continue
				}
				if v < localMin {
					localMin = v
				}
				if v > localMax {
					localMax = v
				}
			}

			minVals[worker] = localMin
			maxVals[worker] = localMax
			fillCounts[worker] = localFill
		}(w, start, end)
	}

	wg.Wait()

	vmin = math.MaxFloat64
	vmax = -math.MaxFloat64
	for i := 0; i < numWorkers; i++ {
		if minVals[i] < vmin {
			vmin = minVals[i]
		}
		if maxVals[i] > vmax {
			vmax = maxVals[i]
		}
		fill += fillCounts[i]
	}
	return vmin, vmax, fill
}

// ToCelsius converts a brightness-temperature field from Kelvin in place.
func (f *Field) ToCelsius() {
	for i := range f.Data {
		f.Data[i] -= 273.15
	}
	f.Units = "°C"
}

// Free releases memory used by the field
func (f *Field) Free() {
	if f == nil {
		return
	}
	// Setting to nil is enough for Go's garbage collector
	f.Data = nil
}
