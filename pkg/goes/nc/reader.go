// Package nc implements goes.Reader on top of libnetcdf.
package nc

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/luismi/goes_visualization/internal/cgo/netcdf"
	"github.com/luismi/goes_visualization/pkg/goes"
	"github.com/luismi/goes_visualization/pkg/metrics"
)

// Reader implements goes.Reader for NetCDF CMIP files
type Reader struct {
	// VarName is the field variable to decode; "CMI" when empty.
	VarName string
}

// NewReader creates a new NetCDF field reader
func NewReader() *Reader {
	return &Reader{}
}

// Read implements the goes.Reader interface. Packed int16 fields are
// unpacked with scale_factor/add_offset across worker chunks; fill values
// become NaN.
func (r *Reader) Read(filePath string, threads int) (*goes.Field, error) {
	startTotal := time.Now()

	// Measure file opening time
	startFile := time.Now()
	f, err := netcdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("could not open file %s: %w", filePath, err)
	}
	defer func() { _ = f.Close() }()
	fileTime := time.Since(startFile)

	// Measure decoding time
	startDecode := time.Now()

	varName := r.VarName
	if varName == "" {
		varName = "CMI"
	}
	v, err := f.Var(varName)
	if err != nil {
		return nil, err
	}
	dims, err := v.Dims()
	if err != nil {
		return nil, err
	}
	if len(dims) != 2 {
		return nil, &DimensionError{Var: varName, Dims: dims}
	}
	height, width := dims[0], dims[1]
	pixelCount := width * height

	vtype, err := v.Type()
	if err != nil {
		return nil, err
	}

	data := make([]float64, pixelCount)
	switch vtype {
	case netcdf.TypeShort:
		raw := make([]int16, pixelCount)
		if err := v.ReadShorts(raw); err != nil {
			return nil, err
		}
		scale, err := v.AttrFloat("scale_factor")
		if err != nil {
			scale = 1
		}
		offset, err := v.AttrFloat("add_offset")
		if err != nil {
			offset = 0
		}
		fill, fillErr := v.AttrShort("_FillValue")
		unpackShorts(data, raw, scale, offset, fill, fillErr == nil, threads)

	case netcdf.TypeFloat:
		raw := make([]float32, pixelCount)
		if err := v.ReadFloats(raw); err != nil {
			return nil, err
		}
		fill, fillErr := v.AttrFloat("_FillValue")
		unpackFloats(data, raw, fill, fillErr == nil, threads)

	default:
		return nil, &UnsupportedTypeError{Var: varName, Type: int(vtype)}
	}

	field := &goes.Field{
		Width:  width,
		Height: height,
		Data:   data,
	}

	// Scene metadata; all of it is optional.
	field.Platform, _ = f.AttrText("platform_ID")
	field.TimeCoverage, _ = f.AttrText("time_coverage_start")
	field.LongName, _ = v.AttrText("long_name")
	field.Units, _ = v.AttrText("units")
	if bv, err := f.Var("band_id"); err == nil {
		buf := make([]int16, 1)
		if err := bv.ReadShorts(buf); err == nil {
			field.BandID = int(buf[0])
		}
	}
	if wv, err := f.Var("band_wavelength"); err == nil {
		buf := make([]float64, 1)
		if err := wv.ReadDoubles(buf); err == nil {
			field.WavelengthUm = buf[0]
		}
	}

	field.Metrics = metrics.ReadMetrics{
		FileTime:   fileTime,
		DecodeTime: time.Since(startDecode),
		TotalTime:  time.Since(startTotal),
	}
	return field, nil
}

func unpackShorts(dst []float64, raw []int16, scale, offset float64, fill int16, hasFill bool, threads int) {
	forEachChunk(len(dst), threads, func(start, end int) {
		for i := start; i < end; i++ {
			if hasFill && raw[i] == fill {
				dst[i] = math.NaN()
				continue
			}
			dst[i] = float64(raw[i])*scale + offset
		}
	})
}

func unpackFloats(dst []float64, raw []float32, fill float64, hasFill bool, threads int) {
	forEachChunk(len(dst), threads, func(start, end int) {
		for i := start; i < end; i++ {
			v := float64(raw[i])
			if hasFill && v == fill {
				dst[i] = math.NaN()
				continue
			}
			dst[i] = v
		}
	})
}

// forEachChunk splits [0, n) across worker goroutines
func forEachChunk(n, threads int, fn func(start, end int)) {
	if threads < 1 {
		threads = 1
	}
	chunkSize := (n + threads - 1) / threads

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}

// DimensionError is returned when the field variable is not a 2D grid
type DimensionError struct {
	Var  string
	Dims []int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("variable %s is not a 2D grid (dims %v)", e.Var, e.Dims)
}

// UnsupportedTypeError is returned for field variables that are neither
// packed shorts nor floats
type UnsupportedTypeError struct {
	Var  string
	Type int
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("variable %s has unsupported NetCDF type %d", e.Var, e.Type)
}
