//go:build !tinygo

// Package snapshot saves the framebuffer as a PNG whenever the dial changes
// lifecycle state.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"glassdial/hal"
	"glassdial/shatter"

	"github.com/google/uuid"
)

// Writer names files <run-id>-<frame>-<state>.png inside one directory.
type Writer struct {
	dir   string
	runID string
	img   *image.RGBA
	count int
}

func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		return nil, errors.New("snapshot: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return &Writer{dir: dir, runID: uuid.New().String()}, nil
}

func (w *Writer) RunID() string { return w.runID }
func (w *Writer) Count() int    { return w.count }

// Name returns the file name used for t.
func (w *Writer) Name(t shatter.Transition) string {
	return fmt.Sprintf("%s-%06d-%s.png", w.runID, t.Frame, t.To)
}

// Write encodes fb for transition t and returns the file path.
func (w *Writer) Write(t shatter.Transition, fb hal.Framebuffer) (string, error) {
	if fb == nil {
		return "", errors.New("snapshot: no framebuffer")
	}
	w.img = hal.Snapshot(fb, w.img)

	path := filepath.Join(w.dir, w.Name(t))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, w.img); err != nil {
		f.Close()
		return "", fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	w.count++
	return path, nil
}

// Hook adapts w to the app's transition callback, logging failures.
func (w *Writer) Hook(log hal.Logger) func(shatter.Transition, hal.Framebuffer) {
	return func(t shatter.Transition, fb hal.Framebuffer) {
		path, err := w.Write(t, fb)
		if log == nil {
			return
		}
		if err != nil {
			log.WriteLineString(err.Error())
			return
		}
		log.WriteLineString("snapshot: " + path)
	}
}
