package main

import (
	"context"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/pong/ecs"
	"github.com/plus3/pong/pong"
	"golang.org/x/sync/errgroup"
)

// SessionResult is what one soak session reports back.
type SessionResult struct {
	ID         uuid.UUID
	Frames     int64
	Score      pong.Scoreboard
	Goals      int
	UpdateTime Stats
	Storage    *ecs.StorageStats
	Systems    []ecs.SystemStats
}

// Run runs cfg.Sessions sessions concurrently until cfg.Duration has elapsed or ctx is done.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.Match.Validate(); err != nil {
		return nil, err
	}

	report := &Report{
		Duration:       cfg.Duration,
		Sessions:       cfg.Sessions,
		TPS:            cfg.TPS,
		Seed:           cfg.Seed,
		GCPauseMetrics: cfg.GCPauseMetrics,
	}

	out := io.Discard
	if cfg.Verbose {
		out = os.Stderr
	}
	logger := log.New(out, "[pong-soak] ", log.LstdFlags)

	// sessions share one read-only registry
	registry := ecs.NewComponentRegistry()
	pong.RegisterComponents(registry)

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	startTime := time.Now()
	for i := range cfg.Sessions {
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(cfg.Seed, uint64(i)))
			result, err := runSession(ctx, cfg, registry, logger, rng)
			if err != nil {
				return err
			}
			mu.Lock()
			report.Results = append(report.Results, result)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)

	slices.SortFunc(report.Results, func(a, b SessionResult) int {
		return b.Goals - a.Goals
	})
	report.Finalize()
	return report, nil
}

func runSession(ctx context.Context, cfg Config, registry *ecs.ComponentRegistry, logger *log.Logger, rng *rand.Rand) (SessionResult, error) {
	var goals int
	session, err := pong.NewSession(cfg.Match,
		pong.WithRegistry(registry),
		pong.WithLogger(logger),
		pong.WithInput(newRandomWalk(rng)),
		pong.WithScoreListener(func(pong.ScoreEvent) { goals++ }),
	)
	if err != nil {
		return SessionResult{}, err
	}

	dt := 1 / float64(max(cfg.TPS, 1))
	result := SessionResult{ID: session.ID}

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			session.StepContext(ctx, dt)
			result.UpdateTime.Samples = append(result.UpdateTime.Samples, time.Since(updateStart))
			result.Frames++
		}
	}

	result.UpdateTime.Finalize()
	result.Score = session.Score()
	result.Goals = goals
	result.Storage = session.Storage().CollectStats()
	result.Systems = session.Scheduler().GetStats().Systems
	return result, nil
}
