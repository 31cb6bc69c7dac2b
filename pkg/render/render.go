package render

import (
	"image"
	"math"
	"sync"

	"github.com/luismi/goes_visualization/pkg/goes"
	"github.com/luismi/goes_visualization/pkg/metrics"
	"github.com/luismi/goes_visualization/pkg/palette"
)

// Render converts a field to a color image by pushing every pixel through the
// palette's boundary normalizer and colormap. Fill pixels come out fully
// transparent.
func Render(field *goes.Field, pal *palette.Palette, numThreads int) (*metrics.RenderMetrics, *image.RGBA) {
	renderMetrics := &metrics.RenderMetrics{}

	width, height := field.Width, field.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	pix := img.Pix

	pixelCount := width * height
	if numThreads < 1 {
		numThreads = 1
	}

	// Process color in parallel
	numWorkers := numThreads
	chunkSize := (pixelCount + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for w := 0; w < numWorkers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > pixelCount {
			end = pixelCount
		}

		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				idx := i * 4
				v := field.Data[i]
				if math.IsNaN(v) {
					pix[idx] = 0
					pix[idx+1] = 0
					pix[idx+2] = 0
					pix[idx+3] = 0
					continue
				}
				rgba := pal.Colormap.At(pal.Norm.Position(v)).NRGBA()
				pix[idx] = rgba.R
				pix[idx+1] = rgba.G
				pix[idx+2] = rgba.B
				pix[idx+3] = rgba.A
			}
		}(start, end)
	}

	wg.Wait()

	// Image size in bytes (4 bytes per pixel RGBA)
	renderMetrics.ImageSize = int64(width * height * 4)

	return renderMetrics, img
}
