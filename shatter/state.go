package shatter

// State is the lifecycle state of the glass.
type State uint8

const (
	StateRest State = iota
	StateCracking
	StateShattering
	StateSilent
	StateRebuilding
	StateRecovering
)

// Level thresholds for the level-driven states. A level equal to a bound
// belongs to the higher state.
const (
	crackingLevel   = 0.15
	shatteringLevel = 0.65
	silentLevel     = 0.85

	// rebuildExitLevel and recoverExitLevel are inclusive upper bounds.
	rebuildExitLevel = 0.5
	recoverExitLevel = 0.0
)

func (s State) String() string {
	switch s {
	case StateRest:
		return "REST"
	case StateCracking:
		return "CRACKING"
	case StateShattering:
		return "SHATTERING"
	case StateSilent:
		return "SILENT"
	case StateRebuilding:
		return "REBUILDING"
	case StateRecovering:
		return "RECOVERING"
	default:
		return "UNKNOWN"
	}
}

// Recovering reports whether s is one of the two idle-driven recovery states.
func (s State) Recovering() bool {
	return s == StateRebuilding || s == StateRecovering
}

// Idleable reports whether an idle episode in s forces recovery.
func (s State) Idleable() bool {
	return s == StateCracking || s == StateShattering || s == StateSilent
}

// Candidate maps a destruction level to the level-driven state it selects.
func Candidate(level float64) State {
	switch {
	case level >= silentLevel:
		return StateSilent
	case level >= shatteringLevel:
		return StateShattering
	case level >= crackingLevel:
		return StateCracking
	default:
		return StateRest
	}
}

// Tone is a single audible cue.
type Tone struct {
	FreqHz     int
	DurationMs int
}

// toneFor returns the cue played on entry to s. REST is silent.
func toneFor(s State) (Tone, bool) {
	switch s {
	case StateCracking:
		return Tone{FreqHz: 1200, DurationMs: 40}, true
	case StateShattering:
		return Tone{FreqHz: 400, DurationMs: 150}, true
	case StateSilent:
		return Tone{FreqHz: 180, DurationMs: 300}, true
	case StateRebuilding:
		return Tone{FreqHz: 660, DurationMs: 90}, true
	case StateRecovering:
		return Tone{FreqHz: 880, DurationMs: 60}, true
	default:
		return Tone{}, false
	}
}

// ToneCues returns the entry cue of every state that has one.
func ToneCues() map[State]Tone {
	cues := make(map[State]Tone, 5)
	for s := StateRest; s <= StateRecovering; s++ {
		if t, ok := toneFor(s); ok {
			cues[s] = t
		}
	}
	return cues
}
