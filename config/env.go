package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides are the runtime settings an operator can change without a
// rebuild. Unset variables keep the compiled-in defaults.
type EnvOverrides struct {
	TPS       int           `env:"ARENA_TPS"`
	Seed      uint64        `env:"ARENA_SEED"`
	WaveDelay time.Duration `env:"ARENA_WAVE_DELAY"`
	Headless  bool          `env:"ARENA_HEADLESS"`
	Ticks     int           `env:"ARENA_TICKS"`
	MapPath   string        `env:"ARENA_MAP"`
	ItemsFile string        `env:"ARENA_ITEMS_FILE"`
}

// ParseEnv parses environment variables into the target struct.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ApplyEnv reads EnvOverrides and writes them into the config globals.
func ApplyEnv() (EnvOverrides, error) {
	o := EnvOverrides{
		TPS:       Sim.TPS,
		Seed:      Sim.Seed,
		WaveDelay: Waves.Delay,
		Headless:  Viewer.Headless,
		Ticks:     Viewer.Ticks,
		MapPath:   Sim.MapPath,
	}
	if err := ParseEnv(&o); err != nil {
		return o, err
	}
	if o.TPS <= 0 {
		return o, fmt.Errorf("ARENA_TPS must be positive, got %d", o.TPS)
	}
	if o.WaveDelay < 0 {
		return o, fmt.Errorf("ARENA_WAVE_DELAY must not be negative, got %s", o.WaveDelay)
	}

	SetTPS(o.TPS)
	Sim.Seed = o.Seed
	Sim.MapPath = o.MapPath
	Waves.Delay = o.WaveDelay
	Viewer.Headless = o.Headless
	Viewer.Ticks = o.Ticks
	return o, nil
}
