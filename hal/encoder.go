package hal

import "sync"

// CountingEncoder turns a cumulative position into per-poll deltas. Backends
// feed it with Add (relative steps) or Set (absolute counter reads).
type CountingEncoder struct {
	mu   sync.Mutex
	pos  int
	last int
}

func (e *CountingEncoder) Add(steps int) {
	e.mu.Lock()
	e.pos += steps
	e.mu.Unlock()
}

func (e *CountingEncoder) Set(pos int) {
	e.mu.Lock()
	e.pos = pos
	e.mu.Unlock()
}

func (e *CountingEncoder) Position() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pos
}

func (e *CountingEncoder) PollDelta() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	d := e.pos - e.last
	e.last = e.pos
	return d
}

// ScriptedEncoder replays a fixed rotation pattern: Spin steps per poll for
// the first Frames polls, then nothing. Headless runs use it to walk the dial
// through its states without hardware.
type ScriptedEncoder struct {
	Spin   int
	Frames uint64

	polls uint64
}

func (e *ScriptedEncoder) PollDelta() int {
	e.polls++
	if e.polls > e.Frames {
		return 0
	}
	return e.Spin
}

type nullEncoder struct{}

func (nullEncoder) PollDelta() int { return 0 }
