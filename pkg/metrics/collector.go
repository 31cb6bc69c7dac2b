package metrics

import (
	"time"
)

// Collector handles collecting and managing metrics for one pipeline run
type Collector struct {
	metrics *Metrics
}

// NewCollector creates a new metrics collector
func NewCollector(band, numThreads int, region string) *Collector {
	return &Collector{
		metrics: &Metrics{
			Band:       band,
			Region:     region,
			NumThreads: numThreads,
		},
	}
}

// StartTiming starts measuring total time
func (c *Collector) StartTiming() time.Time {
	return time.Now()
}

// StopTiming stops measuring total time
func (c *Collector) StopTiming(start time.Time) {
	c.metrics.TotalTime = time.Since(start)
}

// SetDownloadTime sets the time spent fetching files from S3
func (c *Collector) SetDownloadTime(d time.Duration) {
	c.metrics.DownloadTime = d
}

// SetReadMetrics sets metrics related to reading the NetCDF field
func (c *Collector) SetReadMetrics(rm *ReadMetrics) {
	c.metrics.FileTime = rm.FileTime
	c.metrics.DecodeTime = rm.DecodeTime
	c.metrics.ReadingTime = rm.TotalTime
}

// SetFieldStats sets the value range and coverage of the decoded field
func (c *Collector) SetFieldStats(min, max float64, fillPixels, pixels int) {
	c.metrics.FieldMin = min
	c.metrics.FieldMax = max
	c.metrics.FillPixels = fillPixels
	c.metrics.Pixels = pixels
}

// SetPaletteMetrics sets metrics related to palette construction
func (c *Collector) SetPaletteMetrics(d time.Duration, boundaryCount, dropped int) {
	c.metrics.PaletteTime = d
	c.metrics.BoundaryCount = boundaryCount
	c.metrics.DroppedSegments = dropped
}

// SetRenderMetrics sets metrics related to rasterization
func (c *Collector) SetRenderMetrics(rm *RenderMetrics, d time.Duration) {
	c.metrics.RenderTime = d
	c.metrics.ImageSize = rm.ImageSize
}

// SetSaveTime sets the time spent encoding and saving the image
func (c *Collector) SetSaveTime(d time.Duration) {
	c.metrics.SaveTime = d
}

// GetMetrics returns the collected metrics
func (c *Collector) GetMetrics() *Metrics {
	return c.metrics
}
