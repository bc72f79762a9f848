package pong

import (
	"errors"
	"flag"
	"fmt"
)

// Default match settings.
const (
	DefaultArenaWidth    = 100.0
	DefaultArenaHeight   = 100.0
	DefaultPaddleWidth   = 4.0
	DefaultPaddleHeight  = 16.0
	DefaultBallRadius    = 2.0
	DefaultBallVelocityX = 50.0
	DefaultBallVelocityY = 30.0
	DefaultMovementScale = 1.5
	DefaultWallFriction  = 0.5
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid pong config")

// Config describes the arena and the initial state of a session.
// Environment variables provide defaults; flags registered with RegisterFlags override them.
type Config struct {
	ArenaWidth    float64 `env:"PONG_ARENA_WIDTH" envDefault:"100"`
	ArenaHeight   float64 `env:"PONG_ARENA_HEIGHT" envDefault:"100"`
	PaddleWidth   float64 `env:"PONG_PADDLE_WIDTH" envDefault:"4"`
	PaddleHeight  float64 `env:"PONG_PADDLE_HEIGHT" envDefault:"16"`
	BallRadius    float64 `env:"PONG_BALL_RADIUS" envDefault:"2"`
	BallVelocityX float64 `env:"PONG_BALL_VELOCITY_X" envDefault:"50"`
	BallVelocityY float64 `env:"PONG_BALL_VELOCITY_Y" envDefault:"30"`
	MovementScale float64 `env:"PONG_MOVEMENT_SCALE" envDefault:"1.5"`
	WallFriction  float64 `env:"PONG_WALL_FRICTION" envDefault:"0.5"`
	RecenterY     bool    `env:"PONG_RECENTER_Y" envDefault:"false"`
}

// DefaultConfig returns the classic 100x100 arena.
func DefaultConfig() Config {
	return Config{
		ArenaWidth:    DefaultArenaWidth,
		ArenaHeight:   DefaultArenaHeight,
		PaddleWidth:   DefaultPaddleWidth,
		PaddleHeight:  DefaultPaddleHeight,
		BallRadius:    DefaultBallRadius,
		BallVelocityX: DefaultBallVelocityX,
		BallVelocityY: DefaultBallVelocityY,
		MovementScale: DefaultMovementScale,
		WallFriction:  DefaultWallFriction,
	}
}

// RegisterFlags binds the config fields to fs, using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.ArenaWidth, "arena-width", c.ArenaWidth, "Arena width in world units")
	fs.Float64Var(&c.ArenaHeight, "arena-height", c.ArenaHeight, "Arena height in world units")
	fs.Float64Var(&c.PaddleWidth, "paddle-width", c.PaddleWidth, "Paddle width")
	fs.Float64Var(&c.PaddleHeight, "paddle-height", c.PaddleHeight, "Paddle height")
	fs.Float64Var(&c.BallRadius, "ball-radius", c.BallRadius, "Ball radius")
	fs.Float64Var(&c.BallVelocityX, "ball-vx", c.BallVelocityX, "Initial horizontal ball velocity (units/s)")
	fs.Float64Var(&c.BallVelocityY, "ball-vy", c.BallVelocityY, "Initial vertical ball velocity (units/s)")
	fs.Float64Var(&c.MovementScale, "movement-scale", c.MovementScale, "Paddle displacement per frame at full axis deflection")
	fs.Float64Var(&c.WallFriction, "wall-friction", c.WallFriction, "Velocity factor applied on side wall hits")
	fs.BoolVar(&c.RecenterY, "recenter-y", c.RecenterY, "Also reset the ball's y position after a point")
}

// Validate reports every constraint the config violates.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, name, v))
		}
	}

	positive("arena width", c.ArenaWidth)
	positive("arena height", c.ArenaHeight)
	positive("paddle width", c.PaddleWidth)
	positive("paddle height", c.PaddleHeight)
	positive("ball radius", c.BallRadius)
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if c.PaddleHeight > c.ArenaHeight {
		errs = append(errs, fmt.Errorf("%w: paddle height %v exceeds arena height %v", ErrInvalidConfig, c.PaddleHeight, c.ArenaHeight))
	}
	if 2*c.PaddleWidth > c.ArenaWidth {
		errs = append(errs, fmt.Errorf("%w: paddles %v wide do not fit an arena %v wide", ErrInvalidConfig, c.PaddleWidth, c.ArenaWidth))
	}
	if 2*c.BallRadius >= c.ArenaWidth || 2*c.BallRadius >= c.ArenaHeight {
		errs = append(errs, fmt.Errorf("%w: ball radius %v does not fit a %vx%v arena", ErrInvalidConfig, c.BallRadius, c.ArenaWidth, c.ArenaHeight))
	}
	if c.WallFriction < 0 || c.WallFriction > 1 {
		errs = append(errs, fmt.Errorf("%w: wall friction must be within [0, 1], got %v", ErrInvalidConfig, c.WallFriction))
	}
	return errors.Join(errs...)
}

// Arena returns the arena described by the config.
func (c Config) Arena() Arena {
	return Arena{Width: c.ArenaWidth, Height: c.ArenaHeight}
}

// Rules returns the per-frame rules described by the config.
func (c Config) Rules() Rules {
	return Rules{
		MovementScale: c.MovementScale,
		WallFriction:  c.WallFriction,
		RecenterY:     c.RecenterY,
	}
}
