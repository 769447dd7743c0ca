//go:build tinygo && m5dial

package hal

import (
	"machine"

	"tinygo.org/x/drivers/encoders"
)

type m5DialHAL struct {
	logger *serialLogger
	fb     Framebuffer
	enc    Encoder
	clk    *tinyGoClock
	audio  Audio
}

// New returns an M5Dial (ESP32-S3, GC9A01 round LCD) HAL implementation.
//
// Logging goes to the USB serial console.
func New() HAL {
	logger := &serialLogger{out: machine.Serial}

	var fb Framebuffer
	if disp, err := newM5DialDisplay(); err == nil {
		fb = disp
	} else {
		logger.WriteLineString("hal: display: " + err.Error())
		fb = newM5DialDisplayStub()
	}

	var buzzer Buzzer
	if bz, err := newPWMBuzzer(machine.GPIO3); err == nil {
		buzzer = bz
	} else {
		logger.WriteLineString("hal: buzzer: " + err.Error())
	}

	return &m5DialHAL{
		logger: logger,
		fb:     fb,
		enc:    newQuadratureEncoder(machine.GPIO40, machine.GPIO41),
		clk:    newTinyGoClock(),
		audio:  tinyGoAudio{buzzer: buzzer},
	}
}

func (h *m5DialHAL) Logger() Logger   { return h.logger }
func (h *m5DialHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *m5DialHAL) Input() Input     { return tinyGoInput{enc: h.enc} }
func (h *m5DialHAL) Audio() Audio     { return h.audio }
func (h *m5DialHAL) Clock() Clock     { return h.clk }

// quadratureEncoder reads the dial ring. The driver keeps an absolute
// position updated from pin interrupts; CountingEncoder turns it into deltas.
type quadratureEncoder struct {
	dev *encoders.QuadratureDevice
	cnt CountingEncoder
}

func newQuadratureEncoder(a, b machine.Pin) *quadratureEncoder {
	dev := encoders.NewQuadratureViaInterrupt(a, b)
	dev.Configure(encoders.QuadratureConfig{Precision: 4})
	return &quadratureEncoder{dev: dev}
}

func (e *quadratureEncoder) PollDelta() int {
	e.cnt.Set(e.dev.Position())
	return e.cnt.PollDelta()
}
