package debugui

import "github.com/plus3/pong/ecs"

// Target is the simulation the debug windows inspect.
type Target struct {
	Storage   *ecs.Storage
	Scheduler *ecs.Scheduler
}

// SpawnDebugUI adds the stats and entity inspector windows for target to ui.
// ui is the overlay's own storage, separate from the inspected one.
func SpawnDebugUI(ui *ecs.Storage, target Target) {
	stats := NewPerformanceStats(120)
	inspector := NewEntityInspector()

	ui.Spawn(ImguiItem{Render: func() { stats.Render(target) }})
	ui.Spawn(ImguiItem{Render: func() { inspector.Render(target.Storage) }})
	ecs.NewSingleton[ImguiInputState](ui)
}
