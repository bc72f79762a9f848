package main

import (
	"context"
	"errors"
	"flag"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/pong/pong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Setenv("PONG_SOAK_SESSIONS", "3")
	t.Setenv("PONG_ARENA_WIDTH", "120")

	fs := flag.NewFlagSet("pong-soak", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-duration=250ms", "-ball-radius=3"})
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Duration)
	assert.Equal(t, 3, cfg.Sessions)
	assert.Equal(t, 60, cfg.TPS)
	assert.Equal(t, 120.0, cfg.Match.ArenaWidth)
	assert.Equal(t, 3.0, cfg.Match.BallRadius)
}

func TestRandomWalkBounded(t *testing.T) {
	walk := newRandomWalk(rand.New(rand.NewPCG(1, 2)))
	for range 10000 {
		for _, axis := range pong.Axes {
			if v, ok := walk.Axis(axis); ok {
				assert.GreaterOrEqual(t, v, -1.0)
				assert.LessOrEqual(t, v, 1.0)
			}
		}
	}
}

func TestRun(t *testing.T) {
	cfg := Config{
		Duration: 50 * time.Millisecond,
		Sessions: 3,
		TPS:      60,
		Seed:     42,
		Match:    pong.DefaultConfig(),
	}

	report, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	require.Len(t, report.Results, 3)
	seen := make(map[string]bool)
	for _, result := range report.Results {
		assert.Positive(t, result.Frames)
		assert.Equal(t, result.Score.Left+result.Score.Right, result.Goals)
		assert.Equal(t, 4, result.Storage.TotalEntityCount)
		seen[result.ID.String()] = true
	}
	assert.Len(t, seen, 3)
	assert.Len(t, report.Systems, 5)
}

func TestRunInvalidMatch(t *testing.T) {
	cfg := Config{Duration: time.Millisecond, Sessions: 1, Match: pong.DefaultConfig()}
	cfg.Match.PaddleHeight = 0

	_, err := Run(context.Background(), cfg)
	assert.True(t, errors.Is(err, pong.ErrInvalidConfig))
}
