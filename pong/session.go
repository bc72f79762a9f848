package pong

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/pong/ecs"
	"go.opentelemetry.io/otel/trace"
)

// Session is one play session: a populated storage and the scheduler that
// advances it one frame at a time. It is not safe for concurrent use.
type Session struct {
	ID uuid.UUID

	config    Config
	storage   *ecs.Storage
	scheduler *ecs.Scheduler

	ball    ecs.EntityId
	paddles [2]ecs.EntityId
	camera  ecs.EntityId

	balls   *ecs.View[BallView]
	paddleV *ecs.View[PaddleView]
	board   *ecs.Singleton[Scoreboard]
}

type sessionOptions struct {
	logger    *log.Logger
	input     InputSource
	listeners []func(ScoreEvent)
	tracer    trace.TracerProvider
	registry  *ecs.ComponentRegistry
	id        uuid.UUID
}

// Option configures a Session.
type Option func(*sessionOptions)

// WithLogger sets the logger used for score messages. Defaults to log.Default().
func WithLogger(logger *log.Logger) Option {
	return func(o *sessionOptions) { o.logger = logger }
}

// WithInput sets the source sampled at the start of every frame. Defaults to NoInput.
func WithInput(input InputSource) Option {
	return func(o *sessionOptions) { o.input = input }
}

// WithScoreListener registers fn to be called at the end of every frame in which a point was scored.
func WithScoreListener(fn func(ScoreEvent)) Option {
	return func(o *sessionOptions) { o.listeners = append(o.listeners, fn) }
}

// WithTracerProvider sets the provider for frame spans instead of the global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *sessionOptions) { o.tracer = tp }
}

// WithRegistry shares a component registry between sessions.
// The registry must already hold the pong components, see RegisterComponents.
func WithRegistry(registry *ecs.ComponentRegistry) Option {
	return func(o *sessionOptions) { o.registry = registry }
}

// WithID overrides the random session id.
func WithID(id uuid.UUID) Option {
	return func(o *sessionOptions) { o.id = id }
}

// NewSession validates cfg and spawns the ball, both paddles and the camera.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := sessionOptions{input: NoInput}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == uuid.Nil {
		id, err := uuid.NewRandom()
		if err != nil {
			return nil, fmt.Errorf("session id: %w", err)
		}
		o.id = id
	}
	if o.registry == nil {
		o.registry = ecs.NewComponentRegistry()
		RegisterComponents(o.registry)
	}

	storage := ecs.NewStorage(o.registry)
	arena := cfg.Arena()
	center := arena.Center()

	s := &Session{
		ID:      o.id,
		config:  cfg,
		storage: storage,
	}

	s.ball = storage.Spawn(
		Transform{X: center.X, Y: center.Y},
		Ball{Velocity: Vec2{X: cfg.BallVelocityX, Y: cfg.BallVelocityY}, Radius: cfg.BallRadius},
	)
	s.paddles[Left] = storage.Spawn(
		Transform{X: cfg.PaddleWidth * 0.5, Y: center.Y},
		Paddle{Side: Left, Width: cfg.PaddleWidth, Height: cfg.PaddleHeight},
	)
	s.paddles[Right] = storage.Spawn(
		Transform{X: arena.Width - cfg.PaddleWidth*0.5, Y: center.Y},
		Paddle{Side: Right, Width: cfg.PaddleWidth, Height: cfg.PaddleHeight},
	)
	s.camera = storage.Spawn(Camera{Left: 0, Right: arena.Width, Bottom: 0, Top: arena.Height})

	storage.AddSingleton(arena)
	storage.AddSingleton(cfg.Rules())
	storage.AddSingleton(InputAxes{})
	s.board = ecs.NewSingleton[Scoreboard](storage)

	s.scheduler = ecs.NewScheduler(storage)
	if o.tracer != nil {
		s.scheduler.SetTracerProvider(o.tracer)
	}
	logger := o.logger
	if logger == nil {
		logger = log.Default()
	}

	s.scheduler.Register(&InputSystem{Source: o.input})
	s.scheduler.Register(&PaddleSystem{})
	s.scheduler.Register(&BallMoveSystem{})
	s.scheduler.Register(&BallBounceSystem{})
	s.scheduler.Register(&ScoreSystem{Logger: logger, Session: s.ID, Listeners: o.listeners})

	s.balls = ecs.NewView[BallView](storage)
	s.paddleV = ecs.NewView[PaddleView](storage)
	return s, nil
}

// Step advances the session by one frame of dt seconds. Negative dt is treated as zero.
func (s *Session) Step(dt float64) {
	s.StepContext(context.Background(), dt)
}

// StepContext is Step with a parent context for the frame span.
func (s *Session) StepContext(ctx context.Context, dt float64) {
	s.scheduler.OnceContext(ctx, max(dt, 0))
}

// Run steps the session every interval until ctx is cancelled.
func (s *Session) Run(ctx context.Context, interval time.Duration) {
	s.scheduler.Run(ctx, interval)
}

// Ball returns the ball's components. The pointers stay valid for the life of the session.
func (s *Session) Ball() *BallView {
	return s.balls.Get(s.ball)
}

// Paddle returns the components of the paddle on side.
func (s *Session) Paddle(side Side) *PaddleView {
	return s.paddleV.Get(s.paddles[side])
}

// Camera returns the camera entity's projection.
func (s *Session) Camera() *Camera {
	return ecs.ReadComponent[Camera](s.storage, s.camera)
}

// Score returns a copy of the scoreboard.
func (s *Session) Score() Scoreboard {
	return *s.board.Get()
}

// Config returns the config the session was created with.
func (s *Session) Config() Config {
	return s.config
}

// Storage exposes the session's entity store.
func (s *Session) Storage() *ecs.Storage {
	return s.storage
}

// Scheduler exposes the session's frame driver.
func (s *Session) Scheduler() *ecs.Scheduler {
	return s.scheduler
}
