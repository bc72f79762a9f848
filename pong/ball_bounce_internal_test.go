package pong

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaddleCollision(t *testing.T) {
	paddle := &Paddle{Side: Left, Width: 4, Height: 16}
	at := &Transform{X: 10, Y: 50}
	const r = 2.0

	// paddle spans x [8, 12] and y [42, 58]; the box grows by r on every side
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 50, true},
		{6, 50, true},
		{14, 50, true},
		{10, 40, true},
		{10, 60, true},
		{6, 40, true},
		{14, 60, true},
		{5.99, 50, false},
		{14.01, 50, false},
		{10, 39.99, false},
		{10, 60.01, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, paddleCollision(tt.x, tt.y, r, paddle, at), "ball at (%v, %v)", tt.x, tt.y)
	}
}
