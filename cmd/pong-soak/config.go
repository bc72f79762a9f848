package main

import (
	"flag"
	"time"

	"github.com/plus3/pong/internal/config"
	"github.com/plus3/pong/pong"
)

// Config holds the soak run configuration.
type Config struct {
	Duration       time.Duration `env:"PONG_SOAK_DURATION"  envDefault:"10s"`
	Sessions       int           `env:"PONG_SOAK_SESSIONS"  envDefault:"8"`
	TPS            int           `env:"PONG_SOAK_TPS"       envDefault:"60"`
	Seed           uint64        `env:"PONG_SOAK_SEED"      envDefault:"1"`
	Verbose        bool          `env:"PONG_SOAK_VERBOSE"`
	GCPauseMetrics bool          `env:"PONG_SOAK_GC_PAUSE_METRICS"`

	Match pong.Config
}

// ParseConfig loads env defaults and applies flag overrides from args.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.DurationVar(&cfg.Duration, "duration", cfg.Duration, "The total duration the soak should run for.")
	fs.IntVar(&cfg.Sessions, "sessions", cfg.Sessions, "Number of sessions to run concurrently.")
	fs.IntVar(&cfg.TPS, "tps", cfg.TPS, "Simulated frames per second; sets the fixed frame delta.")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for the random paddle input.")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Log every scored point.")
	fs.BoolVar(&cfg.GCPauseMetrics, "gc-pause-metrics", cfg.GCPauseMetrics, "Enable detailed GC pause metrics in the report.")
	cfg.Match.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
