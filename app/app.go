package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"glassdial/gfx"
	"glassdial/hal"
	"glassdial/internal/buildinfo"
	"glassdial/shatter"
	"glassdial/tone"
)

type Config struct {
	Scene     shatter.Config
	FrameRate int
	Volume    float64

	// OnTransition runs after the frame that caused t has been rendered, so
	// fb already shows the new state.
	OnTransition func(t shatter.Transition, fb hal.Framebuffer)
}

func DefaultConfig() Config {
	return Config{
		Scene:     shatter.DefaultConfig(),
		FrameRate: 50,
		Volume:    0.5,
	}
}

// Dial wires a scene to a HAL: encoder in, framebuffer and tones out.
type Dial struct {
	cfg    Config
	log    hal.Logger
	clock  hal.Clock
	enc    hal.Encoder
	canvas *gfx.Canvas
	scene  *shatter.Scene
	tones  *tone.Dispatcher
	stats  *FrameStats

	pending []shatter.Transition
	halted  error
	stop    context.CancelFunc
	done    chan struct{}
}

// NewDial builds a dial and starts its tone worker, which lives until ctx is
// done or Close is called.
func NewDial(ctx context.Context, h hal.HAL, cfg Config) (*Dial, error) {
	if h == nil {
		return nil, errors.New("app: nil hal")
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = 50
	}

	d := &Dial{
		cfg:   cfg,
		log:   h.Logger(),
		clock: h.Clock(),
		stats: NewFrameStats(time.Second / time.Duration(cfg.FrameRate)),
	}
	if d.clock == nil {
		return nil, errors.New("app: hal has no clock")
	}
	if disp := h.Display(); disp != nil {
		if fb := disp.Framebuffer(); fb != nil {
			d.canvas = gfx.NewCanvas(fb)
		}
	}
	if in := h.Input(); in != nil {
		d.enc = in.Encoder()
	}

	d.tones = tone.NewDispatcher(h.Audio(), d.log, cfg.Volume)

	scene, err := shatter.NewScene(cfg.Scene,
		shatter.WithToneSink(d.tones),
		shatter.WithTransitionHook(func(t shatter.Transition) { d.pending = append(d.pending, t) }),
	)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	d.scene = scene

	ctx, cancel := context.WithCancel(ctx)
	d.stop = cancel
	d.done = make(chan struct{})
	go func() {
		defer close(d.done)
		if err := d.tones.Run(ctx); err != nil {
			d.logf("tone: %v", err)
		}
	}()

	d.logf("glassdial %s (commit %s, built %s)", buildinfo.Short(), buildinfo.Commit, buildinfo.Date)
	d.logf("dial: %dx%d @ %d fps, seed %#x", cfg.Scene.Width, cfg.Scene.Height, cfg.FrameRate, cfg.Scene.Seed)
	return d, nil
}

func (d *Dial) Scene() *shatter.Scene   { return d.scene }
func (d *Dial) Stats() *FrameStats      { return d.stats }
func (d *Dial) Tones() *tone.Dispatcher { return d.tones }

// Close silences any playing cue and waits for the tone worker to exit.
func (d *Dial) Close() {
	if d.stop == nil {
		return
	}
	d.tones.Silence()
	d.stop()
	<-d.done
}

// Step runs one frame: poll, simulate, draw, present. A panic inside the
// frame is logged, drawn on the panic screen, and every later Step returns
// the same error.
func (d *Dial) Step() (err error) {
	if d.halted != nil {
		return d.halted
	}
	defer func() {
		if r := recover(); r != nil {
			d.halted = fmt.Errorf("app: frame %d panicked: %v", d.scene.FrameCount(), r)
			d.panicScreen(r)
			err = d.halted
		}
	}()

	start := time.Now()
	now := d.clock.Now()

	delta := 0
	if d.enc != nil {
		delta = d.enc.PollDelta()
	}
	d.scene.Frame(now, delta)

	if d.canvas != nil {
		d.scene.Render(d.canvas)
		if err := d.canvas.Present(); err != nil && !errors.Is(err, hal.ErrNotImplemented) {
			return fmt.Errorf("app: present: %w", err)
		}
	}

	for _, t := range d.pending {
		d.logf("shatter: %v -> %v level=%.2f frame=%d", t.From, t.To, t.Level, t.Frame)
		if d.cfg.OnTransition != nil {
			var fb hal.Framebuffer
			if d.canvas != nil {
				fb = d.canvas.Framebuffer()
			}
			d.cfg.OnTransition(t, fb)
		}
	}
	d.pending = d.pending[:0]

	if d.stats.Observe(time.Since(start), now) {
		d.logf("frame: %d over budget (%v > %v, %d overruns)", d.scene.FrameCount(), d.stats.Last(), d.stats.Budget(), d.stats.Overruns())
	}
	return nil
}

func (d *Dial) logf(format string, args ...any) {
	if d.log == nil {
		return
	}
	d.log.WriteLineString(fmt.Sprintf(format, args...))
}

// New builds a dial and returns its per-frame step, for the host runners.
// The dial's tone worker stops when ctx is done.
func New(ctx context.Context, h hal.HAL, cfg Config) func() error {
	d, err := NewDial(ctx, h, cfg)
	if err != nil {
		logError(h, err)
		return func() error { return err }
	}
	return d.Step
}

// Run paces frames at the configured rate and never returns (TinyGo entrypoint).
func Run(h hal.HAL, cfg Config) {
	d, err := NewDial(context.Background(), h, cfg)
	if err != nil {
		logError(h, err)
		select {}
	}
	bootScreen(d.canvas, "glassdial "+buildinfo.Short())

	budget := d.stats.Budget()
	next := d.clock.Now()
	for {
		if err := d.Step(); err != nil {
			d.logf("%v", err)
			select {}
		}
		next += budget
		if wait := next - d.clock.Now(); wait > 0 {
			time.Sleep(wait)
		} else if wait < -budget {
			// Fell more than a frame behind; don't try to catch up.
			next = d.clock.Now()
		}
	}
}

func logError(h hal.HAL, err error) {
	if h == nil {
		return
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString(err.Error())
	}
}
