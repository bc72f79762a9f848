package pong_test

import (
	"math"
	"testing"

	"github.com/plus3/pong/pong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaddleSystem(t *testing.T) {
	cfg := pong.DefaultConfig()
	half := cfg.PaddleHeight / 2

	t.Run("moves by movement scale", func(t *testing.T) {
		storage := newStorage(t, cfg)
		left := spawnPaddle(storage, pong.Left, 2, 50)
		right := spawnPaddle(storage, pong.Right, 98, 50)

		input := pong.StaticInput{pong.AxisLeftPaddle: 1, pong.AxisRightPaddle: -0.5}
		runFrame(storage, 0, &pong.InputSystem{Source: input}, &pong.PaddleSystem{})

		assert.InDelta(t, 51.5, left.Transform.Y, 1e-9)
		assert.InDelta(t, 49.25, right.Transform.Y, 1e-9)
		assert.Equal(t, 2.0, left.Transform.X, "paddles only move vertically")
	})

	t.Run("missing axis leaves paddle in place", func(t *testing.T) {
		storage := newStorage(t, cfg)
		left := spawnPaddle(storage, pong.Left, 2, 30)
		right := spawnPaddle(storage, pong.Right, 98, 70)

		input := pong.StaticInput{pong.AxisRightPaddle: 1}
		runFrame(storage, 1, &pong.InputSystem{Source: input}, &pong.PaddleSystem{})

		assert.Equal(t, 30.0, left.Transform.Y)
		assert.InDelta(t, 71.5, right.Transform.Y, 1e-9)
	})

	t.Run("clamped to arena for any input", func(t *testing.T) {
		for _, value := range []float64{-1000, -1, -0.3, 0, 0.3, 1, 1000, math.Inf(1), math.Inf(-1), math.NaN()} {
			storage := newStorage(t, cfg)
			left := spawnPaddle(storage, pong.Left, 2, 50)
			right := spawnPaddle(storage, pong.Right, 98, 50)

			input := pong.StaticInput{pong.AxisLeftPaddle: value, pong.AxisRightPaddle: -value}
			for range 100 {
				runFrame(storage, 1.0/60, &pong.InputSystem{Source: input}, &pong.PaddleSystem{})

				for _, p := range []*pong.PaddleView{left, right} {
					assert.GreaterOrEqual(t, p.Transform.Y, half, "input %v", value)
					assert.LessOrEqual(t, p.Transform.Y, cfg.ArenaHeight-half, "input %v", value)
				}
			}
		}
	})

	t.Run("stops exactly at the edge", func(t *testing.T) {
		storage := newStorage(t, cfg)
		left := spawnPaddle(storage, pong.Left, 2, 91)

		runFrame(storage, 0, &pong.InputSystem{Source: pong.StaticInput{pong.AxisLeftPaddle: 1}}, &pong.PaddleSystem{})
		assert.Equal(t, cfg.ArenaHeight-half, left.Transform.Y)

		runFrame(storage, 0, &pong.InputSystem{Source: pong.StaticInput{pong.AxisLeftPaddle: -100}}, &pong.PaddleSystem{})
		assert.Equal(t, half, left.Transform.Y)
	})

	t.Run("NaN axis pins to the top edge", func(t *testing.T) {
		storage := newStorage(t, cfg)
		left := spawnPaddle(storage, pong.Left, 2, 50)

		runFrame(storage, 0, &pong.InputSystem{Source: pong.StaticInput{pong.AxisLeftPaddle: math.NaN()}}, &pong.PaddleSystem{})
		assert.Equal(t, cfg.ArenaHeight-half, left.Transform.Y)
	})
}

func TestInputSystem(t *testing.T) {
	storage := newStorage(t, pong.DefaultConfig())
	var values *pong.InputAxes
	source := pong.StaticInput{pong.AxisLeftPaddle: 0.25}
	runFrame(storage, 0, &pong.InputSystem{Source: source})

	require.True(t, storage.ReadSingleton(&values))
	v, ok := values.AxisValue(pong.AxisLeftPaddle)
	assert.True(t, ok)
	assert.Equal(t, 0.25, v)
	_, ok = values.AxisValue(pong.AxisRightPaddle)
	assert.False(t, ok)

	// an axis released since the previous frame is cleared from the snapshot
	runFrame(storage, 0, &pong.InputSystem{Source: pong.InputFunc(func(string) (float64, bool) { return 0, false })})
	_, ok = values.AxisValue(pong.AxisLeftPaddle)
	assert.False(t, ok)

	runFrame(storage, 0, &pong.InputSystem{})
	_, ok = values.AxisValue(pong.AxisLeftPaddle)
	assert.False(t, ok, "nil source reports nothing")
}
