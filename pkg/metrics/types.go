package metrics

import "time"

// Metrics contains all the metrics for one GOES plot pipeline run
type Metrics struct {
	Band       int
	Region     string
	NumThreads int

	TotalTime    time.Duration
	DownloadTime time.Duration
	ReadingTime  time.Duration
	FileTime     time.Duration // NetCDF open
	DecodeTime   time.Duration // variable read + unpack
	PaletteTime  time.Duration
	RenderTime   time.Duration
	SaveTime     time.Duration

	Pixels     int
	FillPixels int
	ImageSize  int64
	FieldMin   float64
	FieldMax   float64

	BoundaryCount   int
	DroppedSegments int
}

// ReadMetrics contains metrics associated with reading a NetCDF field
type ReadMetrics struct {
	FileTime   time.Duration
	DecodeTime time.Duration
	TotalTime  time.Duration
}

// RenderMetrics contains metrics for rasterization
type RenderMetrics struct {
	ImageSize int64
}
