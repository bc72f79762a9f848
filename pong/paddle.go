package pong

import (
	"github.com/plus3/pong/ecs"
)

// PaddleSystem moves each paddle along its side's input axis, keeping it inside the arena.
type PaddleSystem struct {
	Paddles ecs.Query[struct {
		*Transform
		*Paddle
	}]
	Input ecs.Singleton[InputAxes]
	Arena ecs.Singleton[Arena]
	Rules ecs.Singleton[Rules]
}

func (s *PaddleSystem) Execute(frame *ecs.UpdateFrame) {
	input := s.Input.Get()
	arena := s.Arena.Get()
	rules := s.Rules.Get()

	for p := range s.Paddles.Values() {
		amount, ok := input.AxisValue(p.Paddle.Side.Axis())
		if !ok {
			continue
		}

		half := p.Paddle.Height * 0.5
		y := p.Transform.Y + rules.MovementScale*amount
		p.Transform.Y = clampPaddle(y, half, arena.Height-half)
	}
}

// clampPaddle limits y to [lo, hi]. NaN lands on hi.
func clampPaddle(y, lo, hi float64) float64 {
	if !(y <= hi) {
		return hi
	}
	return max(y, lo)
}
