//go:build !tinygo && cgo

package hal

import (
	"errors"
	"image"
	"os"

	"glassdial/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that displays the framebuffer and feeds
// the mouse wheel and arrow keys into the encoder. It blocks until the window
// closes.
func RunWindow(newApp func(HAL) func() error, hz int) error {
	if hz <= 0 {
		hz = 50
	}
	enc := newHostEncoder()
	h := newHostHAL(os.Stdout, enc, false)
	step := newApp(h)

	g := &hostGame{h: h, enc: enc, step: step}
	ebiten.SetWindowTitle("glassdial (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.Width()*2, h.fb.Height()*2)
	ebiten.SetTPS(hz)
	err := ebiten.RunGame(g)
	if errors.Is(err, errWindowClosed) {
		return nil
	}
	return err
}

var errWindowClosed = errors.New("window closed")

type hostGame struct {
	h     *hostHAL
	enc   *hostEncoder
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	if g.enc.poll() {
		return errWindowClosed
	}
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	g.img = Snapshot(fb, g.img)
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(fb.Width(), fb.Height())
	}
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.Width(), g.h.fb.Height()
}
