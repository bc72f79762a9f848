package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Sessions int
	TPS      int
	Seed     uint64

	// Results
	Results        []SessionResult
	TotalFrames    int64
	TotalGoals     int
	TotalTime      time.Duration
	UpdateTime     Stats
	Systems        []SystemSummary
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// SystemSummary aggregates one system's stats over every session.
type SystemSummary struct {
	Name           string
	ExecutionCount int64
	AvgDuration    time.Duration
	MaxDuration    time.Duration
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Finalize computes the totals across every session result.
func (r *Report) Finalize() {
	r.TotalFrames = 0
	r.TotalGoals = 0
	r.UpdateTime = Stats{}
	r.Systems = r.Systems[:0]

	index := make(map[string]int)
	var totals []time.Duration
	for n := range r.Results {
		r.Results[n].UpdateTime.Finalize()
		result := r.Results[n]
		r.TotalFrames += result.Frames
		r.TotalGoals += result.Goals
		r.UpdateTime.Samples = append(r.UpdateTime.Samples, result.UpdateTime.Samples...)

		for _, sys := range result.Systems {
			i, ok := index[sys.Name]
			if !ok {
				i = len(r.Systems)
				index[sys.Name] = i
				r.Systems = append(r.Systems, SystemSummary{Name: sys.Name})
				totals = append(totals, 0)
			}
			r.Systems[i].ExecutionCount += sys.ExecutionCount
			r.Systems[i].MaxDuration = max(r.Systems[i].MaxDuration, sys.MaxDuration)
			totals[i] += sys.TotalDuration
		}
	}
	for i := range r.Systems {
		if r.Systems[i].ExecutionCount > 0 {
			r.Systems[i].AvgDuration = totals[i] / time.Duration(r.Systems[i].ExecutionCount)
		}
	}
	r.UpdateTime.Finalize()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Pong Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Sessions:** {{.Sessions}}
- **Ticks Per Second:** {{.TPS}}
- **Seed:** {{.Seed}}

## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Goals:** {{.TotalGoals}}
- **Total Run Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Systems
| System | Executions | Avg | Max |
|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}
## Sessions
| Session | Frames | Score | Entities | Avg Frame |
|---|---|---|---|---|
{{range .Results}}| {{.ID}} | {{.Frames}} | {{.Score.Left}}-{{.Score.Right}} | {{if .Storage}}{{.Storage.TotalEntityCount}}{{else}}-{{end}} | {{.UpdateTime.Avg}} |
{{end}}
## Memory Usage (MiB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc)}}
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{bsub .MemStatsEnd.PauseTotalNs .MemStatsStart.PauseTotalNs | ns}}
- **Num GC Cycles:** {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{end}}`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns int64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
