//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Steps fed per key repeat and per wheel notch.
const (
	keyStep   = 1
	wheelStep = 3
)

// hostEncoder maps the mouse wheel and arrow keys onto encoder detents.
type hostEncoder struct {
	CountingEncoder
}

func newHostEncoder() *hostEncoder {
	return &hostEncoder{}
}

// poll samples ebiten input for this tick. It reports true when the user asked to quit.
func (e *hostEncoder) poll() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return true
	}

	_, wy := ebiten.Wheel()
	switch {
	case wy > 0:
		e.Add(wheelStep)
	case wy < 0:
		e.Add(-wheelStep)
	}

	for _, k := range []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyArrowUp} {
		if repeating(k) {
			e.Add(keyStep)
		}
	}
	for _, k := range []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowDown} {
		if repeating(k) {
			e.Add(-keyStep)
		}
	}
	return false
}

// repeating reports a press on the first tick and then every few ticks while held.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	if d == 1 {
		return true
	}
	return d > 15 && d%3 == 0
}
