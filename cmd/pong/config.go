package main

import (
	"flag"

	"github.com/plus3/pong/internal/config"
	"github.com/plus3/pong/pong"
)

// Config holds the windowed game configuration.
type Config struct {
	TPS   int     `env:"PONG_TPS"   envDefault:"60"`
	Scale float64 `env:"PONG_SCALE" envDefault:"6"`
	Debug bool    `env:"PONG_DEBUG"`

	Match pong.Config
}

// ParseConfig loads env defaults and applies flag overrides from args.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.IntVar(&cfg.TPS, "tps", cfg.TPS, "Simulation ticks per second")
	fs.Float64Var(&cfg.Scale, "scale", cfg.Scale, "Screen pixels per world unit")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Show the Dear ImGui debug overlay")
	cfg.Match.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
