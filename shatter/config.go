package shatter

import (
	"errors"
	"fmt"
	"time"
)

// Config carries every tunable of a scene.
type Config struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Seed   uint32 `mapstructure:"seed"`

	KInc float64 `mapstructure:"k_inc"`
	KRec float64 `mapstructure:"k_rec"`

	IdleThreshold time.Duration `mapstructure:"idle_threshold"`
	GrowInterval  time.Duration `mapstructure:"grow_interval"`

	CrackCapacity     int     `mapstructure:"crack_capacity"`
	MaxGeneration     int     `mapstructure:"max_generation"`
	CrackBaseLength   float64 `mapstructure:"crack_base_length"`
	BranchProbability float64 `mapstructure:"branch_probability"`

	ParticleCapacity    int     `mapstructure:"particle_capacity"`
	ParticleBatch       int     `mapstructure:"particle_batch"`
	ParticleOrigin      float64 `mapstructure:"particle_origin_radius"`
	ParticleSpeedMin    float64 `mapstructure:"particle_speed_min"`
	ParticleSpeedMax    float64 `mapstructure:"particle_speed_max"`
	Gravity             float64 `mapstructure:"gravity"`
	Damping             float64 `mapstructure:"damping"`
	OpacityDecay        float64 `mapstructure:"opacity_decay"`
	VisibilityThreshold float64 `mapstructure:"visibility_threshold"`

	DiscRadius int `mapstructure:"disc_radius"`
	Glints     int `mapstructure:"glints"`
}

// DefaultConfig returns the tuning used on the 240x240 dial.
func DefaultConfig() Config {
	return Config{
		Width:  240,
		Height: 240,
		Seed:   0x5EED1E55,

		KInc: 0.01,
		KRec: 0.005,

		IdleThreshold: 10 * time.Second,
		GrowInterval:  500 * time.Millisecond,

		CrackCapacity:     80,
		MaxGeneration:     3,
		CrackBaseLength:   60,
		BranchProbability: 0.5,

		ParticleCapacity:    150,
		ParticleBatch:       50,
		ParticleOrigin:      20,
		ParticleSpeedMin:    1.0,
		ParticleSpeedMax:    4.0,
		Gravity:             0.15,
		Damping:             0.98,
		OpacityDecay:        0.95,
		VisibilityThreshold: 0.05,

		DiscRadius: 120,
		Glints:     48,
	}
}

// Validate rejects configurations that would break the scene's invariants.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("shatter: invalid surface %dx%d", c.Width, c.Height)
	}
	if c.KInc < 0 || c.KRec <= 0 {
		return errors.New("shatter: k_inc must be >= 0 and k_rec > 0")
	}
	if c.CrackCapacity <= 0 || c.ParticleCapacity <= 0 {
		return errors.New("shatter: capacities must be positive")
	}
	if c.MaxGeneration < 0 {
		return fmt.Errorf("shatter: max_generation %d < 0", c.MaxGeneration)
	}
	if c.BranchProbability < 0 || c.BranchProbability > 1 {
		return fmt.Errorf("shatter: branch_probability %v out of [0,1]", c.BranchProbability)
	}
	if c.Damping <= 0 || c.Damping >= 1 || c.OpacityDecay <= 0 || c.OpacityDecay >= 1 {
		return errors.New("shatter: damping and opacity_decay must be in (0,1)")
	}
	if c.ParticleSpeedMax < c.ParticleSpeedMin {
		return errors.New("shatter: particle_speed_max < particle_speed_min")
	}
	if c.GrowInterval <= 0 {
		return errors.New("shatter: grow_interval must be positive")
	}
	return nil
}
