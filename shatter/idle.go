package shatter

import "time"

// IdleController forces recovery after an idle episode. It fires at most once
// per episode; the next input re-arms it.
type IdleController struct {
	threshold time.Duration
	lastInput time.Duration
	fired     bool
}

func NewIdleController(threshold time.Duration) *IdleController {
	return &IdleController{threshold: threshold}
}

// Touch records input at now and ends the current idle episode.
func (c *IdleController) Touch(now time.Duration) {
	c.lastInput = now
	c.fired = false
}

// Idle returns how long it has been since the last input.
func (c *IdleController) Idle(now time.Duration) time.Duration {
	if now < c.lastInput {
		return 0
	}
	return now - c.lastInput
}

// ShouldForce reports whether state s must be forced into REBUILDING at now.
// A true result disarms the controller until the next Touch.
func (c *IdleController) ShouldForce(s State, now time.Duration) bool {
	if c.fired || !s.Idleable() {
		return false
	}
	if c.Idle(now) <= c.threshold {
		return false
	}
	c.fired = true
	return true
}
