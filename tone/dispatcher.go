package tone

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"glassdial/hal"
	"glassdial/kernel"
)

// Dispatcher implements the scene's tone sink. Play posts into a mailbox and
// returns at once; Run drains it on its own goroutine. A request that finds
// the mailbox full is dropped.
type Dispatcher struct {
	mb      kernel.Mailbox
	synth   *Synth
	buzzer  hal.Buzzer
	log     hal.Logger
	dropped atomic.Uint32
	played  atomic.Uint32
}

// NewDispatcher picks the buzzer when the platform has one, otherwise a synth
// on PWM audio. With neither, requests are accepted and discarded.
func NewDispatcher(a hal.Audio, log hal.Logger, gain float64) *Dispatcher {
	d := &Dispatcher{log: log}
	if a == nil {
		return d
	}
	if bz := a.Buzzer(); bz != nil {
		d.buzzer = bz
	} else if pwm := a.PWM(); pwm != nil {
		d.synth = NewSynth(pwm, DefaultSampleRate, gain)
	}
	return d
}

// Enabled reports whether the dispatcher has an output.
func (d *Dispatcher) Enabled() bool { return d.buzzer != nil || d.synth != nil }

func (d *Dispatcher) Play(freqHz, durationMs int) {
	if !d.Enabled() {
		return
	}
	if !d.mb.TrySend(kernel.NewMessage(kernel.EPFrame, kernel.EPTone, kernel.MsgTone, encodeTone(freqHz, durationMs))) {
		d.dropped.Add(1)
	}
}

// Silence cuts off whatever is playing.
func (d *Dispatcher) Silence() {
	if !d.Enabled() {
		return
	}
	if !d.mb.TrySend(kernel.NewMessage(kernel.EPFrame, kernel.EPTone, kernel.MsgSilence, nil)) {
		d.dropped.Add(1)
	}
}

func (d *Dispatcher) Dropped() uint32 { return d.dropped.Load() }
func (d *Dispatcher) Played() uint32  { return d.played.Load() }

// Run plays queued cues until ctx is done. Requests still queued at that
// point are discarded, except Silence, which is honoured.
func (d *Dispatcher) Run(ctx context.Context) error {
	if !d.Enabled() {
		<-ctx.Done()
		return nil
	}
	if d.synth != nil {
		if err := d.synth.Start(); err != nil {
			return err
		}
		defer d.synth.Stop()
	}
	if d.buzzer != nil {
		defer d.buzzer.Stop()
	}

	for {
		if ctx.Err() != nil {
			d.drain()
			return nil
		}
		msg, err := d.mb.Recv(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				d.drain()
				return nil
			}
			return err
		}
		if err := d.handle(msg); err != nil && d.log != nil {
			d.log.WriteLineString("tone: " + err.Error())
		}
	}
}

func (d *Dispatcher) drain() {
	for {
		msg, ok := d.mb.TryRecv()
		if !ok {
			return
		}
		if msg.Kind == kernel.MsgSilence {
			_ = d.handle(msg)
		}
	}
}

func (d *Dispatcher) handle(msg kernel.Message) error {
	switch msg.Kind {
	case kernel.MsgSilence:
		if d.buzzer != nil {
			d.buzzer.Stop()
		}
		if d.synth != nil {
			d.synth.out.Flush()
		}
		return nil
	case kernel.MsgTone:
		freq, dur, err := decodeTone(msg.Payload())
		if err != nil {
			return err
		}
		d.played.Add(1)
		if d.buzzer != nil {
			d.buzzer.Tone(uint32(freq), time.Duration(dur)*time.Millisecond)
			return nil
		}
		// A newer request in the mailbox cuts this one off.
		return d.synth.Play(freq, dur, func() bool { return d.mb.Len() > 0 })
	default:
		return fmt.Errorf("unexpected message kind %d from %v", msg.Kind, msg.From)
	}
}

func encodeTone(freqHz, durationMs int) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint32(b[0:4], uint32(freqHz))
	binary.LittleEndian.PutUint32(b[4:8], uint32(durationMs))
	return b[:]
}

func decodeTone(p []byte) (freqHz, durationMs int, err error) {
	if len(p) != 8 {
		return 0, 0, fmt.Errorf("bad tone payload length %d", len(p))
	}
	return int(binary.LittleEndian.Uint32(p[0:4])), int(binary.LittleEndian.Uint32(p[4:8])), nil
}
