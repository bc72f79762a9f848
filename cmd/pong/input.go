package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pong/pong"
)

type axisKeys struct {
	up, down ebiten.Key
}

var keyBindings = map[string]axisKeys{
	pong.AxisLeftPaddle:  {up: ebiten.KeyW, down: ebiten.KeyS},
	pong.AxisRightPaddle: {up: ebiten.KeyArrowUp, down: ebiten.KeyArrowDown},
}

// keyboardInput maps key pairs to paddle axes. An axis is inactive while
// neither of its keys is held, or while the debug overlay owns the keyboard.
type keyboardInput struct {
	pressed  func(ebiten.Key) bool
	captured func() bool
}

func newKeyboardInput() *keyboardInput {
	return &keyboardInput{pressed: ebiten.IsKeyPressed}
}

func (k *keyboardInput) Axis(name string) (float64, bool) {
	if k.captured != nil && k.captured() {
		return 0, false
	}
	keys, ok := keyBindings[name]
	if !ok {
		return 0, false
	}

	up, down := k.pressed(keys.up), k.pressed(keys.down)
	switch {
	case up && down:
		return 0, true
	case up:
		return 1, true
	case down:
		return -1, true
	}
	return 0, false
}
