package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/luismi/goes_visualization/config"
	"github.com/luismi/goes_visualization/pkg/goes/nc"
	"github.com/luismi/goes_visualization/pkg/metrics"
	"github.com/luismi/goes_visualization/pkg/palette"
	"github.com/luismi/goes_visualization/pkg/render"
	"github.com/luismi/goes_visualization/pkg/s3"
	"github.com/luismi/goes_visualization/pkg/utils"
)

var log = logrus.StandardLogger()

var (
	// Command-line flags
	bands      = flag.String("bands", "13", "Comma-separated list of ABI bands to plot (e.g. 2,8,13)")
	year       = flag.Int("year", 0, "Year (UTC)")
	dayOfYear  = flag.Int("doy", 0, "Day of year (1-366)")
	hour       = flag.Int("hour", 0, "Hour UTC (0-23)")
	region     = flag.String("region", config.DefaultRegion, "Region name used in the output file name")
	outDir     = flag.String("out", "", "Output directory (defaults to the data directory)")
	threads    = flag.Int("threads", runtime.NumCPU(), "Worker threads for decoding and rendering")
	ncFile     = flag.String("nc", "", "Plot a local NetCDF file instead of downloading")
	withGLM    = flag.Bool("glm", false, "Also download the matching GLM lightning file")
	iterations = flag.Int("iter", 1, "Number of iterations to run (for profiling)")
	jsonLogs   = flag.Bool("json-logs", false, "Emit structured JSON logs")
)

func parseBands(bandsFlag string) []int {
	var bandList []int
	for _, b := range strings.Split(bandsFlag, ",") {
		band, err := strconv.Atoi(strings.TrimSpace(b))
		if err != nil {
			fmt.Printf("Invalid band: %s\n", b)
			os.Exit(1)
		}
		bandList = append(bandList, band)
	}
	return bandList
}

func main() {
	// Environment defaults come from .env when present.
	if err := godotenv.Load(); err == nil {
		log.Debug("Loaded environment from .env")
	}

	flag.Parse()

	if *jsonLogs {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}

	bandList := parseBands(*bands)

	// Validate required parameters
	if *ncFile == "" && (*year == 0 || *dayOfYear == 0) {
		fmt.Println("Error: -year and -doy must be specified (or use -nc with a local file)")
		flag.Usage()
		os.Exit(1)
	}
	if *dayOfYear < 0 || *dayOfYear > 366 || *hour < 0 || *hour > 23 {
		fmt.Println("Error: -doy must be 1-366 and -hour 0-23")
		flag.Usage()
		os.Exit(1)
	}
	if _, ok := config.Domains[*region]; !ok {
		fmt.Printf("Error: unknown region %q. Available regions:\n", *region)
		for name := range config.Domains {
			fmt.Printf("  %s\n", name)
		}
		os.Exit(1)
	}

	dataDir := os.Getenv("GOES_DATA_DIR")
	if dataDir == "" {
		dataDir = "data/GOES19"
	}
	out := *outDir
	if out == "" {
		out = dataDir
	}
	bucket := os.Getenv("GOES_BUCKET")

	domain := config.DomainFor(*region)
	log.WithFields(logrus.Fields{
		"region": *region,
		"lon":    fmt.Sprintf("[%.1f, %.1f]", domain.LonMin, domain.LonMax),
		"lat":    fmt.Sprintf("[%.1f, %.1f]", domain.LatMin, domain.LatMax),
	}).Info("Plot domain selected")

	// Collect metrics for all runs
	var allMetrics []*metrics.Metrics
	for _, band := range bandList {
		log.WithField("band", band).Info("Processing band")
		allMetrics = append(allMetrics, runPlot(band, bucket, dataDir, out))
	}

	if len(allMetrics) > 0 {
		fmt.Println("\n=== Pipeline Results ===")
		metrics.PrintMetricsTable(allMetrics)
	}
}

// runPlot runs the full pipeline for one band: fetch, decode, palette,
// render, save.
func runPlot(band int, bucket, dataDir, out string) *metrics.Metrics {
	var accumulated *metrics.Metrics

	for i := 0; i < *iterations; i++ {
		collector := metrics.NewCollector(band, *threads, *region)
		startTime := collector.StartTiming()

		// Fetch the scene unless a local file was given
		path := *ncFile
		if path == "" {
			client := s3.NewClient(bucket)
			startDownload := time.Now()

			key, err := client.FindABI(*year, *dayOfYear, *hour, band)
			if err != nil {
				log.WithError(err).Fatal("No imagery found for the requested scene")
			}
			path, err = client.Download(key, dataDir)
			if err != nil {
				log.WithError(err).Fatal("Error downloading imagery")
			}

			if *withGLM {
				// Lightning data is optional; a miss only logs a warning.
				if glmKey, err := client.FindGLM(*year, *dayOfYear, *hour); err != nil {
					log.WithError(err).Warn("No GLM lightning data for the requested hour")
				} else if _, err := client.Download(glmKey, filepath.Join(dataDir, "GLM")); err != nil {
					log.WithError(err).Warn("Error downloading GLM lightning data")
				}
			}
			collector.SetDownloadTime(time.Since(startDownload))
		}

		// Decode the field
		reader := nc.NewReader()
		field, err := reader.Read(path, *threads)
		if err != nil {
			log.WithError(err).Fatal("Error reading NetCDF field")
		}
		collector.SetReadMetrics(&field.Metrics)
		log.WithFields(logrus.Fields{
			"platform": field.Platform,
			"band":     field.BandID,
			"scan":     field.TimeCoverage,
			"size":     fmt.Sprintf("%dx%d", field.Width, field.Height),
		}).Info("Decoded field")

		if config.IsBrightnessTemperature(band) {
			field.ToCelsius()
		}
		min, max, fill := field.Stats(*threads)
		collector.SetFieldStats(min, max, fill, len(field.Data))

		// Build the band palette
		startPalette := time.Now()
		segments, extend, cbticks := config.BandPalette(band, min, max)
		pal, err := palette.Build(segments, extend)
		if err != nil {
			log.WithError(err).Fatal("Error building palette")
		}
		collector.SetPaletteMetrics(time.Since(startPalette), len(pal.Bounds), pal.Dropped)
		if cbticks == nil {
			cbticks = pal.Ticks
		}

		// Rasterize
		startRender := time.Now()
		renderMetrics, img := render.Render(field, pal, *threads)
		collector.SetRenderMetrics(renderMetrics, time.Since(startRender))

		outBase := strings.TrimSuffix(filepath.Base(path), ".nc")
		outBase += "_" + strings.ReplaceAll(*region, " ", "_")
		field.Free()
		utils.FreeMemory()
		if log.IsLevelEnabled(logrus.DebugLevel) {
			utils.LogMemoryUsage()
		}

		// Save the image and its colorbar
		outPath := filepath.Join(out, outBase+".png")
		saveTime, err := render.WritePNG(img, outPath)
		if err != nil {
			log.WithError(err).Fatal("Error saving image")
		}
		cbTime, err := render.WritePNG(render.Colorbar(pal, 800, 40, cbticks), filepath.Join(out, outBase+"_colorbar.png"))
		if err != nil {
			log.WithError(err).Fatal("Error saving colorbar")
		}
		collector.SetSaveTime(saveTime + cbTime)
		log.WithField("path", outPath).Info("Saved plot")

		collector.StopTiming(startTime)

		iterationMetrics := collector.GetMetrics()
		if i == 0 {
			accumulated = metrics.InitializeAccumulatedMetrics(iterationMetrics)
		} else {
			metrics.AggregateMetrics(accumulated, iterationMetrics)
		}
	}

	return metrics.AverageMetrics(accumulated, *iterations)
}
