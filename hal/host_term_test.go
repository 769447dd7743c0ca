//go:build !tinygo

package hal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLastLineKeepsMostRecent(t *testing.T) {
	var l lastLine
	l.Write([]byte("first\n"))
	l.Write([]byte("second"))
	l.Write([]byte("\n"))
	if got := l.String(); got != "second" {
		t.Fatalf("String() = %q, want %q", got, "second")
	}
}

func TestDrawTermStatusAndPixels(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(24, 13)

	fb := NewMemoryFramebuffer(24, 24)
	fb.ClearRGB(0xFF, 0xFF, 0xFF)
	drawTerm(screen, fb, "REST")

	mainc, _, _, _ := screen.GetContent(0, 0)
	if mainc != '▀' {
		t.Fatalf("cell(0,0) = %q, want half block", mainc)
	}
	for i, want := range "REST" {
		got, _, _, _ := screen.GetContent(i, 12)
		if got != want {
			t.Fatalf("status[%d] = %q, want %q", i, got, want)
		}
	}
}
