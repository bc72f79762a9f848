package pong

import (
	"log"

	"github.com/google/uuid"
	"github.com/plus3/pong/ecs"
)

// Scoreboard counts goals per side.
type Scoreboard struct {
	Left  int
	Right int
}

// Add records a goal for side.
func (s *Scoreboard) Add(side Side) {
	if side == Left {
		s.Left++
	} else {
		s.Right++
	}
}

// Get returns the goals scored by side.
func (s Scoreboard) Get(side Side) int {
	if side == Left {
		return s.Left
	}
	return s.Right
}

// ScoreEvent is published after a frame in which a point was scored.
type ScoreEvent struct {
	Session uuid.UUID
	Scorer  Side
	Left    int
	Right   int
}

// ScoreSystem awards a point when the ball reaches a side boundary and puts the
// ball back on the centre line heading towards the player who scored.
//
// Only x is recentred unless Rules.RecenterY is set; the vertical velocity is kept.
type ScoreSystem struct {
	Balls ecs.Query[struct {
		*Transform
		*Ball
	}]
	Arena ecs.Singleton[Arena]
	Rules ecs.Singleton[Rules]
	Board ecs.Singleton[Scoreboard]

	Logger    *log.Logger
	Session   uuid.UUID
	Listeners []func(ScoreEvent)
}

func (s *ScoreSystem) Execute(frame *ecs.UpdateFrame) {
	arena := s.Arena.Get()
	rules := s.Rules.Get()
	board := s.Board.Get()

	for b := range s.Balls.Values() {
		var scorer Side
		switch {
		case b.Transform.X <= b.Ball.Radius:
			scorer = Right
		case b.Transform.X >= arena.Width-b.Ball.Radius:
			scorer = Left
		default:
			continue
		}

		board.Add(scorer)
		s.logger().Printf("Player %d has scored (%d-%d)", scorer.Player(), board.Left, board.Right)

		b.Ball.Velocity.X = -b.Ball.Velocity.X
		b.Transform.X = arena.Width * 0.5
		if rules.RecenterY {
			b.Transform.Y = arena.Height * 0.5
		}

		if len(s.Listeners) > 0 {
			event := ScoreEvent{Session: s.Session, Scorer: scorer, Left: board.Left, Right: board.Right}
			frame.Commands.Defer(func() {
				for _, listener := range s.Listeners {
					listener(event)
				}
			})
		}
	}
}

func (s *ScoreSystem) logger() *log.Logger {
	if s.Logger == nil {
		return log.Default()
	}
	return s.Logger
}
