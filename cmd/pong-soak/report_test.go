package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/pong/ecs"
	"github.com/plus3/pong/pong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	id := uuid.MustParse("6f1c1a52-2f4e-4c1e-9a49-2d6a3f0a9b10")
	report := &Report{
		Duration: time.Second,
		Sessions: 2,
		TPS:      60,
		Seed:     7,
		Results: []SessionResult{
			{
				ID:         id,
				Frames:     10,
				Goals:      3,
				Score:      pong.Scoreboard{Left: 1, Right: 2},
				UpdateTime: Stats{Samples: []time.Duration{time.Microsecond, 3 * time.Microsecond}},
				Storage:    &ecs.StorageStats{TotalEntityCount: 4},
				Systems: []ecs.SystemStats{
					{Name: "BallMoveSystem", ExecutionCount: 10, TotalDuration: 10 * time.Microsecond, MaxDuration: 2 * time.Microsecond},
				},
			},
			{
				ID:      uuid.New(),
				Frames:  5,
				Goals:   1,
				Systems: []ecs.SystemStats{{Name: "BallMoveSystem", ExecutionCount: 5, TotalDuration: 20 * time.Microsecond}},
			},
		},
	}
	report.Finalize()

	assert.Equal(t, int64(15), report.TotalFrames)
	assert.Equal(t, 4, report.TotalGoals)
	require.Len(t, report.Systems, 1)
	assert.Equal(t, int64(15), report.Systems[0].ExecutionCount)
	assert.Equal(t, 2*time.Microsecond, report.Systems[0].AvgDuration)
	assert.Equal(t, 2*time.Microsecond, report.Systems[0].MaxDuration)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Pong Soak Report")
	assert.Contains(t, out, "- **Sessions:** 2")
	assert.Contains(t, out, "- **Total Goals:** 4")
	assert.Contains(t, out, "| BallMoveSystem | 15 | 2µs | 2µs |")
	assert.Contains(t, out, "| "+id.String()+" | 10 | 1-2 | 4 | 2µs |")
	assert.NotContains(t, out, "GC Pause")
}
