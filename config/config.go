package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the runtime configuration. Environment variables seed it and
// command-line flags override them.
type Config struct {
	Level        string `env:"BALLOON_LEVEL"         envDefault:"tutorial"`
	Debug        bool   `env:"BALLOON_DEBUG"`
	AllAbilities bool   `env:"BALLOON_ALL_ABILITIES"`
	Watch        bool   `env:"BALLOON_WATCH"`
	TPS          int    `env:"BALLOON_TPS"           envDefault:"60"`
	BaseMonitor  bool
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}

// Load parses the environment, then args.
func Load(name string, args []string) (Config, error) {
	cfg, err := ParseEnv()
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.Level, "level", cfg.Level, "level name in levels/ (basename, .json optional)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logs and zone overlays")
	fs.BoolVar(&cfg.AllAbilities, "ab", cfg.AllAbilities, "start with all abilities unlocked")
	fs.BoolVar(&cfg.Watch, "watch", cfg.Watch, "reload prefab tuning when files in prefabs/ change")
	fs.IntVar(&cfg.TPS, "tps", cfg.TPS, "simulation ticks per second")
	fs.BoolVar(&cfg.BaseMonitor, "m", cfg.BaseMonitor, "use base monitor instead of primary (for multi-monitor setups)")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: parse flags: %w", err)
	}

	if cfg.TPS <= 0 {
		return Config{}, fmt.Errorf("config: tps must be positive, got %d", cfg.TPS)
	}
	return cfg, nil
}

// Step is the simulated seconds per tick.
func (c Config) Step() float64 {
	if c.TPS <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(c.TPS)
}
