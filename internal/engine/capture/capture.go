// Package capture writes rendered frames to PNG files.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Writer names and writes PNG frames under one directory.
type Writer struct {
	outputDir string
	prefix    string
}

// New creates a frame writer. An empty outputDir writes to the working directory.
func New(outputDir, prefix string) *Writer {
	if prefix == "" {
		prefix = "frame"
	}
	return &Writer{
		outputDir: outputDir,
		prefix:    prefix,
	}
}

// FramePath returns the file name used for frame index.
func (w *Writer) FramePath(index int) string {
	return w.path(fmt.Sprintf("%s_%04d.png", w.prefix, index))
}

// SnapshotPath returns a timestamped file name for a one-off capture.
func (w *Writer) SnapshotPath(t time.Time) string {
	return w.path(fmt.Sprintf("%s_%s.png", w.prefix, t.Format("2006-01-02_15-04-05")))
}

func (w *Writer) path(name string) string {
	if w.outputDir == "" {
		return name
	}
	return filepath.Join(w.outputDir, name)
}

// WriteFrame writes img as numbered frame index and returns its path.
func (w *Writer) WriteFrame(img image.Image, index int) (string, error) {
	path := w.FramePath(index)
	return path, w.write(path, img)
}

// WriteSnapshot writes img under a timestamped name and returns its path.
func (w *Writer) WriteSnapshot(img image.Image) (string, error) {
	path := w.SnapshotPath(time.Now())
	return path, w.write(path, img)
}

func (w *Writer) write(path string, img image.Image) error {
	if w.outputDir != "" {
		if err := os.MkdirAll(w.outputDir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

// FromBottomUp converts tightly packed RGBA rows read back from the GPU
// (origin bottom-left) into an image with origin top-left.
func FromBottomUp(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}
	return img, nil
}
