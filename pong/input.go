package pong

import (
	"github.com/plus3/pong/ecs"
)

// Logical input axes, one per paddle.
const (
	AxisLeftPaddle  = "left_paddle"
	AxisRightPaddle = "right_paddle"
)

// Axes lists every axis the simulation reads.
var Axes = []string{AxisLeftPaddle, AxisRightPaddle}

// InputSource yields the current value of a named axis, usually within [-1, 1].
// ok is false when the axis is unbound or inactive.
type InputSource interface {
	Axis(name string) (value float64, ok bool)
}

// InputFunc adapts a function to InputSource.
type InputFunc func(name string) (float64, bool)

func (f InputFunc) Axis(name string) (float64, bool) {
	return f(name)
}

// StaticInput is an InputSource backed by a fixed map. Missing axes are inactive.
type StaticInput map[string]float64

func (s StaticInput) Axis(name string) (float64, bool) {
	v, ok := s[name]
	return v, ok
}

// NoInput never reports an active axis.
var NoInput InputSource = StaticInput(nil)

// InputAxes is the input snapshot for the current frame.
type InputAxes struct {
	values map[string]float64
}

// AxisValue returns the snapshot value of an axis, or false if it was inactive.
func (a *InputAxes) AxisValue(name string) (float64, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Set records an active axis value.
func (a *InputAxes) Set(name string, value float64) {
	if a.values == nil {
		a.values = make(map[string]float64, len(Axes))
	}
	a.values[name] = value
}

// Unset marks an axis inactive.
func (a *InputAxes) Unset(name string) {
	delete(a.values, name)
}

// InputSystem samples Source once per frame into the InputAxes singleton, so
// that every later stage of the frame sees the same values.
type InputSystem struct {
	Source InputSource
	Axes   ecs.Singleton[InputAxes]
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	axes := s.Axes.Get()
	for _, name := range Axes {
		if s.Source == nil {
			axes.Unset(name)
			continue
		}
		if v, ok := s.Source.Axis(name); ok {
			axes.Set(name, v)
		} else {
			axes.Unset(name)
		}
	}
}
