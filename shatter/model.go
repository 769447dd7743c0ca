package shatter

import "math"

// levelGrid is the resolution destruction levels are kept on. Deltas that sum
// to a threshold on paper land exactly on it in the model.
const levelGrid = 1e6

// Model holds the destruction level and the lifecycle state it drives.
type Model struct {
	level float64
	state State

	kInc float64
	kRec float64
}

func NewModel(kInc, kRec float64) *Model {
	return &Model{kInc: sanitizeRate(kInc), kRec: sanitizeRate(kRec)}
}

func (m *Model) Level() float64 { return m.level }
func (m *Model) State() State   { return m.state }

// ApplyInputDelta raises the level by |magnitude|*K_INC. Ignored while a
// recovery state is active.
func (m *Model) ApplyInputDelta(magnitude int) {
	if m.state.Recovering() || magnitude == 0 {
		return
	}
	m.level = clampLevel(m.level + math.Abs(float64(magnitude))*m.kInc)
}

// TickRecovery drains the level by K_REC. Only recovery states drain.
func (m *Model) TickRecovery() {
	if !m.state.Recovering() {
		return
	}
	m.level = clampLevel(m.level - m.kRec)
}

func (m *Model) setState(s State) { m.state = s }

func clampLevel(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	v = math.Round(v*levelGrid) / levelGrid
	if v <= 0 {
		return 0
	}
	return v
}

func sanitizeRate(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
