package pong_test

import (
	"testing"

	"github.com/plus3/pong/ecs"
	"github.com/plus3/pong/pong"
)

// newStorage returns a storage with the pong singletons for cfg but no entities.
func newStorage(t *testing.T, cfg pong.Config) *ecs.Storage {
	t.Helper()
	registry := ecs.NewComponentRegistry()
	pong.RegisterComponents(registry)

	storage := ecs.NewStorage(registry)
	storage.AddSingleton(cfg.Arena())
	storage.AddSingleton(cfg.Rules())
	storage.AddSingleton(pong.InputAxes{})
	storage.AddSingleton(pong.Scoreboard{})
	return storage
}

func spawnBall(storage *ecs.Storage, x, y, vx, vy, radius float64) *pong.BallView {
	id := storage.Spawn(
		pong.Transform{X: x, Y: y},
		pong.Ball{Velocity: pong.Vec2{X: vx, Y: vy}, Radius: radius},
	)
	return ecs.NewView[pong.BallView](storage).Get(id)
}

func spawnPaddle(storage *ecs.Storage, side pong.Side, x, y float64) *pong.PaddleView {
	id := storage.Spawn(
		pong.Transform{X: x, Y: y},
		pong.Paddle{Side: side, Width: pong.DefaultPaddleWidth, Height: pong.DefaultPaddleHeight},
	)
	return ecs.NewView[pong.PaddleView](storage).Get(id)
}

// runFrame drives the given systems through a single scheduler frame.
func runFrame(storage *ecs.Storage, dt float64, systems ...ecs.System) {
	scheduler := ecs.NewScheduler(storage)
	for _, system := range systems {
		scheduler.Register(system)
	}
	scheduler.Once(dt)
}
