package main

import (
	"math/rand/v2"

	"github.com/plus3/pong/pong"
)

// randomWalk drives both paddles with a bounded random walk per axis, which
// keeps them moving in long sweeps rather than jittering in place.
type randomWalk struct {
	rng    *rand.Rand
	values map[string]float64
	step   float64
}

func newRandomWalk(rng *rand.Rand) *randomWalk {
	return &randomWalk{
		rng:    rng,
		values: make(map[string]float64, len(pong.Axes)),
		step:   0.2,
	}
}

func (w *randomWalk) Axis(name string) (float64, bool) {
	// roughly one frame in ten the player lets go of the controls
	if w.rng.IntN(10) == 0 {
		return 0, false
	}
	v := w.values[name] + (w.rng.Float64()*2-1)*w.step
	v = max(min(v, 1), -1)
	w.values[name] = v
	return v, true
}
