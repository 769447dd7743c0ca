//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TermConfig controls the terminal preview runner.
type TermConfig struct {
	Hz int
}

// RunTerminal previews the framebuffer in a terminal using half-block cells.
// Left/right arrows (or h/l) turn the encoder; q, Esc or Ctrl-C quits.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TermConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 50
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid terminal hz: %d", cfg.Hz)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init: %w", err)
	}
	defer screen.Fini()

	enc := &CountingEncoder{}
	logs := &lastLine{}
	h := newHostHAL(logs, enc, false)
	step := newApp(h)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go pollTermKeys(screen, enc, cancel)

	t := time.NewTicker(d)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			drawTerm(screen, h.fb, logs.String())
		}
	}
}

func pollTermKeys(screen tcell.Screen, enc *CountingEncoder, quit func()) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				quit()
				return
			case tcell.KeyLeft, tcell.KeyDown:
				enc.Add(-1)
			case tcell.KeyRight, tcell.KeyUp:
				enc.Add(1)
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q':
					quit()
					return
				case 'h':
					enc.Add(-1)
				case 'l':
					enc.Add(1)
				}
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// drawTerm downsamples fb so it fits the terminal, two pixel rows per cell.
func drawTerm(screen tcell.Screen, fb *MemoryFramebuffer, status string) {
	cols, rows := screen.Size()
	rows-- // status line
	if cols <= 0 || rows <= 0 {
		return
	}

	w, h := fb.Width(), fb.Height()
	scale := (w + cols - 1) / cols
	if s := (h + rows*2 - 1) / (rows * 2); s > scale {
		scale = s
	}
	if scale < 1 {
		scale = 1
	}

	screen.Clear()
	for cy := 0; cy*2*scale < h && cy < rows; cy++ {
		for cx := 0; cx*scale < w && cx < cols; cx++ {
			x := cx * scale
			tr, tg, tb := fb.PixelRGB(x, cy*2*scale)
			br, bg, bb := fb.PixelRGB(x, (cy*2+1)*scale)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(tr), int32(tg), int32(tb))).
				Background(tcell.NewRGBColor(int32(br), int32(bg), int32(bb)))
			screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
	for i, r := range []rune(status) {
		if i >= cols {
			break
		}
		screen.SetContent(i, rows, r, nil, tcell.StyleDefault)
	}
	screen.Show()
}

// lastLine keeps the most recent log line for the status row.
type lastLine struct {
	mu   sync.Mutex
	line []byte
}

func (l *lastLine) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	trimmed := bytes.TrimRight(p, "\r\n")
	if len(trimmed) > 0 {
		l.line = append(l.line[:0], trimmed...)
	}
	return len(p), nil
}

func (l *lastLine) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return string(l.line)
}
