package metrics

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// PrintMetricsTable prints a table with performance metrics
func PrintMetricsTable(runs []*Metrics) {
	// Bottleneck Analysis
	fmt.Println("┌ Bottleneck Analysis ┬──────────────────┬──────────────────┬──────────────────┬──────────────────┬──────────────────┬──────────────────┐")
	fmt.Printf("│ %-4s │ %-16s │ %-16s │ %-16s │ %-16s │ %-16s │ %-16s │\n",
		"Band",
		"Download",
		"Read",
		"Palette",
		"Render",
		"Saving",
		"Total")
	fmt.Println("├──────┼─────────┬────────┼─────────┬────────┼─────────┬────────┼─────────┬────────┼─────────┬────────┼─────────┬────────┤")

	for _, m := range runs {
		dlMag, dlUnit := getMagnitudeAndUnit(m.DownloadTime)
		readMag, readUnit := getMagnitudeAndUnit(m.ReadingTime)
		palMag, palUnit := getMagnitudeAndUnit(m.PaletteTime)
		renderMag, renderUnit := getMagnitudeAndUnit(m.RenderTime)
		saveMag, saveUnit := getMagnitudeAndUnit(m.SaveTime)
		totalMag, totalUnit := getMagnitudeAndUnit(m.TotalTime)

		porcDL := float64(m.DownloadTime) / float64(m.TotalTime) * 100
		porcRead := float64(m.ReadingTime) / float64(m.TotalTime) * 100
		porcPal := float64(m.PaletteTime) / float64(m.TotalTime) * 100
		porcRender := float64(m.RenderTime) / float64(m.TotalTime) * 100
		porcSave := float64(m.SaveTime) / float64(m.TotalTime) * 100

		fmt.Printf("│ C%02d  │ %s%-2s │ %s%% │ %s%-2s │ %s%% │ %s%-2s │ %s%% │ %s%-2s │ %s%% │ %s%-2s │ %s%% │ %s%-2s │ %s%% │\n",
			m.Band,
			formatNumber(dlMag, 5), dlUnit, formatNumber(porcDL, 5),
			formatNumber(readMag, 5), readUnit, formatNumber(porcRead, 5),
			formatNumber(palMag, 5), palUnit, formatNumber(porcPal, 5),
			formatNumber(renderMag, 5), renderUnit, formatNumber(porcRender, 5),
			formatNumber(saveMag, 5), saveUnit, formatNumber(porcSave, 5),
			formatNumber(totalMag, 5), totalUnit, "100.0") // Total is always 100%
	}
	fmt.Println("└──────┴─────────┴────────┴─────────┴────────┴─────────┴────────┴─────────┴────────┴─────────┴────────┴─────────┴────────┘")
	fmt.Println()

	// Field Summary table
	fmt.Println("┌ Field Summary ──────┬──────────────────┬───────────┬───────────┬──────────┬──────────┬──────────┐")
	fmt.Printf("│ %-4s │ %-10s │ %-16s │ %-9s │ %-9s │ %-8s │ %-8s │\n",
		"Band",
		"Threads",
		"Fill Region",
		"Min",
		"Max",
		"Bounds",
		"Img Size")
	fmt.Println("├──────┼────────────┼─────────┬────────┼───────────┼───────────┼──────────┼──────────┤")

	for _, m := range runs {
		porcFill := 0.0
		if m.Pixels > 0 {
			porcFill = float64(m.FillPixels) / float64(m.Pixels) * 100
		}
		fillMP := float64(m.FillPixels) / 1000000
		sizeMB := float64(m.ImageSize) / (1024 * 1024)

		fmt.Printf("│ C%02d  │ %-10d │ %s%-2s │ %s%% │ %s    │ %s    │ %-8d │ %s MB │\n",
			m.Band,
			m.NumThreads,
			formatNumber(fillMP, 5), "MP", formatNumber(porcFill, 5),
			formatNumber(m.FieldMin, 5),
			formatNumber(m.FieldMax, 5),
			m.BoundaryCount,
			formatNumber(sizeMB, 5),
		)
	}
	fmt.Println("└──────┴────────────┴─────────┴────────┴───────────┴───────────┴──────────┴──────────┘")
}

// getMagnitudeAndUnit returns the appropriate magnitude and unit for a duration
func getMagnitudeAndUnit(d time.Duration) (float64, string) {
	if d < time.Microsecond {
		return float64(d.Nanoseconds()), "ns"
	} else if d < time.Millisecond {
		return float64(d.Nanoseconds()) / 1000, "µs"
	} else if d < time.Second {
		return float64(d.Nanoseconds()) / 1000000, "ms"
	} else {
		return d.Seconds(), "s"
	}
}

// formatNumber formats a number to display in the metrics table
func formatNumber(num float64, desiredLength int) string {
	integerPart := int(math.Floor(math.Abs(num)))
	integerLength := len(strconv.Itoa(integerPart))

	precision := 0
	if integerLength < desiredLength {
		precision = desiredLength - integerLength
		if precision > 0 {
			precision--
		}
	}

	if precision > 0 {
		return fmt.Sprintf("%.*f", precision, num)
	} else {
		return fmt.Sprintf("%d", integerPart)
	}
}

// AggregateMetrics adds values from two metrics structures
// Used to accumulate metrics in multiple runs
func AggregateMetrics(accumulated, next *Metrics) {
	accumulated.TotalTime += next.TotalTime
	accumulated.DownloadTime += next.DownloadTime
	accumulated.ReadingTime += next.ReadingTime
	accumulated.FileTime += next.FileTime
	accumulated.DecodeTime += next.DecodeTime
	accumulated.PaletteTime += next.PaletteTime
	accumulated.RenderTime += next.RenderTime
	accumulated.SaveTime += next.SaveTime
	accumulated.FillPixels += next.FillPixels
	accumulated.FieldMin = math.Min(accumulated.FieldMin, next.FieldMin)
	accumulated.FieldMax = math.Max(accumulated.FieldMax, next.FieldMax)
}

// AverageMetrics calculates the average of accumulated metrics
func AverageMetrics(accumulated *Metrics, numRuns int) *Metrics {
	result := *accumulated // Copy all values

	// Divide times by number of runs
	result.TotalTime /= time.Duration(numRuns)
	result.DownloadTime /= time.Duration(numRuns)
	result.ReadingTime /= time.Duration(numRuns)
	result.FileTime /= time.Duration(numRuns)
	result.DecodeTime /= time.Duration(numRuns)
	result.PaletteTime /= time.Duration(numRuns)
	result.RenderTime /= time.Duration(numRuns)
	result.SaveTime /= time.Duration(numRuns)

	result.FillPixels /= numRuns

	// Min/Max and other static values remain the same

	return &result
}

// CopyMetrics creates a copy of the metrics
func CopyMetrics(m *Metrics) *Metrics {
	clone := *m // Copy all fields
	return &clone
}

// InitializeAccumulatedMetrics creates an initial structure for accumulating
// metrics; the first run's values seed the min/max.
func InitializeAccumulatedMetrics(original *Metrics) *Metrics {
	return CopyMetrics(original)
}
