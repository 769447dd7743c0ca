package shatter

import "time"

// ToneSink plays short cues. Play must not block the frame.
type ToneSink interface {
	Play(freqHz, durationMs int)
}

// Transition describes one lifecycle change.
type Transition struct {
	From  State
	To    State
	Level float64
	At    time.Duration
	Frame uint64
}

// Scene is the whole simulation: model, state machine, crack and particle
// fields and the idle controller. Frame is its only mutator.
type Scene struct {
	cfg Config

	model     *Model
	cracks    *CrackField
	particles *ParticleField
	idle      *IdleController
	glints    []Point

	center Point
	r      *rng

	tone         ToneSink
	onTransition func(Transition)

	frame    uint64
	now      time.Duration
	nextGrow time.Duration
}

// Option customises a Scene.
type Option func(*Scene)

// WithToneSink routes transition cues to sink.
func WithToneSink(sink ToneSink) Option {
	return func(s *Scene) { s.tone = sink }
}

// WithTransitionHook calls fn after every lifecycle change.
func WithTransitionHook(fn func(Transition)) Option {
	return func(s *Scene) { s.onTransition = fn }
}

func NewScene(cfg Config, opts ...Option) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := newRNG(cfg.Seed)
	center := Point{X: float64(cfg.Width) / 2, Y: float64(cfg.Height) / 2}
	s := &Scene{
		cfg:       cfg,
		model:     NewModel(cfg.KInc, cfg.KRec),
		cracks:    newCrackField(cfg, r),
		particles: newParticleField(cfg, center, r),
		idle:      NewIdleController(cfg.IdleThreshold),
		glints:    glintField(cfg, center),
		center:    center,
		r:         r,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Scene) Config() Config            { return s.cfg }
func (s *Scene) Level() float64            { return s.model.Level() }
func (s *Scene) State() State              { return s.model.State() }
func (s *Scene) Cracks() *CrackField       { return s.cracks }
func (s *Scene) Particles() *ParticleField { return s.particles }
func (s *Scene) Center() Point             { return s.center }
func (s *Scene) FrameCount() uint64        { return s.frame }
func (s *Scene) Idle() time.Duration       { return s.idle.Idle(s.now) }

// Frame advances the simulation by one frame. delta is the raw encoder change
// since the previous frame and now is the monotonic time since boot.
//
// Stages run in a fixed order: input, model, state machine, idle controller,
// cracks, particles. Later stages read what earlier ones wrote.
func (s *Scene) Frame(now time.Duration, delta int) {
	s.frame++
	if now > s.now {
		s.now = now
	}

	if delta != 0 {
		s.idle.Touch(s.now)
	}
	if s.model.State().Recovering() {
		s.model.TickRecovery()
	} else {
		s.model.ApplyInputDelta(delta)
	}

	s.evaluate()

	if s.idle.ShouldForce(s.model.State(), s.now) {
		s.transition(StateRebuilding)
	}

	if s.model.State() == StateCracking && s.now >= s.nextGrow {
		s.cracks.GrowExisting()
		s.nextGrow += s.cfg.GrowInterval
		if s.nextGrow <= s.now {
			s.nextGrow = s.now + s.cfg.GrowInterval
		}
	}

	s.particles.Tick()
}

func (s *Scene) evaluate() {
	level := s.model.Level()
	switch cur := s.model.State(); cur {
	case StateRebuilding:
		if level <= rebuildExitLevel {
			s.transition(StateRecovering)
		}
	case StateRecovering:
		if level <= recoverExitLevel {
			s.transition(StateRest)
		}
	default:
		if next := Candidate(level); next != cur {
			s.transition(next)
		}
	}
}

func (s *Scene) transition(to State) {
	from := s.model.State()
	if from == to {
		return
	}
	s.model.setState(to)

	switch {
	case from == StateRest && to == StateCracking:
		s.cracks.Seed(s.center, s.r.angle(), 0)
		s.nextGrow = s.now + s.cfg.GrowInterval
	case from == StateCracking && to == StateShattering:
		s.particles.SpawnBatch(s.cfg.ParticleBatch, s.cfg.ParticleOrigin)
	case from == StateRecovering && to == StateRest:
		s.cracks.Clear()
		s.particles.Clear()
	}

	if t, ok := toneFor(to); ok && s.tone != nil {
		s.tone.Play(t.FreqHz, t.DurationMs)
	}
	if s.onTransition != nil {
		s.onTransition(Transition{
			From:  from,
			To:    to,
			Level: s.model.Level(),
			At:    s.now,
			Frame: s.frame,
		})
	}
}
