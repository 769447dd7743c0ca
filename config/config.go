//go:build !tinygo

// Package config loads host-side settings from an optional file and
// GLASSDIAL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"glassdial/shatter"

	"github.com/spf13/viper"
)

const EnvPrefix = "GLASSDIAL"

// Config is the full host configuration.
type Config struct {
	FrameRate   int     `mapstructure:"frame_rate"`
	Volume      float64 `mapstructure:"volume"`
	SnapshotDir string  `mapstructure:"snapshot_dir"`

	Scene shatter.Config `mapstructure:"scene"`
}

func Default() Config {
	return Config{
		FrameRate: 50,
		Volume:    0.5,
		Scene:     shatter.DefaultConfig(),
	}
}

// Load reads path (YAML, TOML or JSON by extension; empty means defaults
// only) and applies environment overrides such as GLASSDIAL_SCENE_K_INC.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.FrameRate <= 0 || c.FrameRate > 1000 {
		return fmt.Errorf("config: frame_rate %d out of range", c.FrameRate)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return errors.New("config: volume must be in [0,1]")
	}
	return c.Scene.Validate()
}

// setDefaults registers every key so AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("frame_rate", d.FrameRate)
	v.SetDefault("volume", d.Volume)
	v.SetDefault("snapshot_dir", d.SnapshotDir)

	s := d.Scene
	for k, val := range map[string]any{
		"width":                  s.Width,
		"height":                 s.Height,
		"seed":                   s.Seed,
		"k_inc":                  s.KInc,
		"k_rec":                  s.KRec,
		"idle_threshold":         s.IdleThreshold,
		"grow_interval":          s.GrowInterval,
		"crack_capacity":         s.CrackCapacity,
		"max_generation":         s.MaxGeneration,
		"crack_base_length":      s.CrackBaseLength,
		"branch_probability":     s.BranchProbability,
		"particle_capacity":      s.ParticleCapacity,
		"particle_batch":         s.ParticleBatch,
		"particle_origin_radius": s.ParticleOrigin,
		"particle_speed_min":     s.ParticleSpeedMin,
		"particle_speed_max":     s.ParticleSpeedMax,
		"gravity":                s.Gravity,
		"damping":                s.Damping,
		"opacity_decay":          s.OpacityDecay,
		"visibility_threshold":   s.VisibilityThreshold,
		"disc_radius":            s.DiscRadius,
		"glints":                 s.Glints,
	} {
		v.SetDefault("scene."+k, val)
	}
}
