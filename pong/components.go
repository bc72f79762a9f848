package pong

import (
	"github.com/plus3/pong/ecs"
)

// Side identifies a paddle, the player controlling it, and that player's half of the arena.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Player returns the 1-based player number: 1 for Left, 2 for Right.
func (s Side) Player() int {
	return int(s) + 1
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	return 1 - s
}

// Axis returns the name of the input axis that drives this side's paddle.
func (s Side) Axis() string {
	if s == Left {
		return AxisLeftPaddle
	}
	return AxisRightPaddle
}

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// Transform is an entity's position in world units. For paddles and the ball it is the centre.
type Transform struct {
	X, Y float64
}

// Paddle is a player controlled paddle.
type Paddle struct {
	Side   Side
	Width  float64
	Height float64
}

// Ball is the pong ball. Velocity is in world units per second.
type Ball struct {
	Velocity Vec2
	Radius   float64
}

// Camera is the orthographic region the renderer shows.
type Camera struct {
	Left, Right float64
	Bottom, Top float64
}

// Arena is the play field. It never changes after bootstrap.
type Arena struct {
	Width  float64
	Height float64
}

// Center returns the middle of the arena.
func (a Arena) Center() Vec2 {
	return Vec2{X: a.Width * 0.5, Y: a.Height * 0.5}
}

// Rules holds the tunable constants the systems read every frame.
type Rules struct {
	// MovementScale converts an axis value into a per-frame paddle displacement.
	MovementScale float64
	// WallFriction scales both velocity components when the ball hits a side wall.
	WallFriction float64
	// RecenterY also moves the ball to the vertical centre when a point is scored.
	RecenterY bool
}

// BallView joins the ball's components.
type BallView struct {
	ecs.EntityId
	*Transform
	*Ball
}

// PaddleView joins a paddle's components.
type PaddleView struct {
	ecs.EntityId
	*Transform
	*Paddle
}

// RegisterComponents registers every entity component used by a Session.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Paddle](registry)
	ecs.RegisterComponent[Ball](registry)
	ecs.RegisterComponent[Camera](registry)
}
