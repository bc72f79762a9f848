package pong

import (
	"github.com/plus3/pong/ecs"
)

// BallMoveSystem integrates ball positions from their velocity.
// Positions are never clamped; bouncing only changes velocity.
type BallMoveSystem struct {
	Balls ecs.Query[struct {
		*Transform
		*Ball
	}]
}

func (s *BallMoveSystem) Execute(frame *ecs.UpdateFrame) {
	dt := frame.DeltaTime
	for b := range s.Balls.Values() {
		b.Transform.X += b.Ball.Velocity.X * dt
		b.Transform.Y += b.Ball.Velocity.Y * dt
	}
}
