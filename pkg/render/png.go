package render

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// WritePNG encodes img and writes it to path, creating parent directories as
// needed. It returns the time taken to encode and save the image.
func WritePNG(img image.Image, path string) (time.Duration, error) {
	start := time.Now()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, err
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, err
	}

	return time.Since(start), nil
}
