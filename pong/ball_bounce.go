package pong

import (
	"github.com/plus3/pong/ecs"
)

// BallBounceSystem reflects balls off the arena walls and the paddles.
//
// Top and bottom walls are elastic. Side walls flip the horizontal direction and
// scale both velocity components by Rules.WallFriction. A paddle only reflects a
// ball that is moving towards it, so a ball still overlapping a paddle on the
// next frame is not bounced back again.
type BallBounceSystem struct {
	Balls ecs.Query[struct {
		*Transform
		*Ball
	}]
	Paddles ecs.Query[struct {
		*Transform
		*Paddle
	}]
	Arena ecs.Singleton[Arena]
	Rules ecs.Singleton[Rules]
}

func (s *BallBounceSystem) Execute(frame *ecs.UpdateFrame) {
	arena := s.Arena.Get()
	rules := s.Rules.Get()

	for b := range s.Balls.Values() {
		ball := b.Ball
		x, y := b.Transform.X, b.Transform.Y

		if y >= arena.Height-ball.Radius && ball.Velocity.Y > 0 {
			ball.Velocity.Y = -ball.Velocity.Y
		} else if y <= ball.Radius && ball.Velocity.Y < 0 {
			ball.Velocity.Y = -ball.Velocity.Y
		}

		if x >= arena.Width-ball.Radius && ball.Velocity.X > 0 {
			ball.Velocity.X = -ball.Velocity.X * rules.WallFriction
			ball.Velocity.Y = ball.Velocity.Y * rules.WallFriction
		} else if x <= ball.Radius && ball.Velocity.X < 0 {
			ball.Velocity.X = -ball.Velocity.X * rules.WallFriction
			ball.Velocity.Y = ball.Velocity.Y * rules.WallFriction
		}

		for p := range s.Paddles.Values() {
			if !paddleCollision(x, y, ball.Radius, p.Paddle, p.Transform) {
				continue
			}
			switch {
			case p.Paddle.Side == Left && ball.Velocity.X < 0:
				ball.Velocity.X = -ball.Velocity.X
			case p.Paddle.Side == Right && ball.Velocity.X > 0:
				ball.Velocity.X = -ball.Velocity.X
			}
		}
	}
}

// paddleCollision reports whether the ball centre lies inside the paddle's
// bounding box grown by the ball radius on every side.
func paddleCollision(ballX, ballY, radius float64, paddle *Paddle, at *Transform) bool {
	// bottom-left corner
	paddleX := at.X - paddle.Width*0.5
	paddleY := at.Y - paddle.Height*0.5

	left := paddleX - radius
	right := paddleX + paddle.Width + radius
	bottom := paddleY - radius
	top := paddleY + paddle.Height + radius

	return ballX >= left && ballX <= right && ballY >= bottom && ballY <= top
}
