package ecs_test

import (
	"testing"

	"github.com/plus3/pong/ecs"
	"github.com/stretchr/testify/assert"
)

func TestQuery(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	query := ecs.NewQuery[struct {
		*Position
		*Velocity
	}](storage)

	assert.Panics(t, func() { query.Iter() }, "Iter before Execute")
	assert.Panics(t, func() { query.Values() }, "Values before Execute")

	storage.Spawn(Position{X: 1}, Velocity{DX: 1})
	query.Execute()
	assert.Equal(t, 1, query.Len())

	// rows are a snapshot until the next Execute
	storage.Spawn(Position{X: 2}, Velocity{DX: 2})
	assert.Equal(t, 1, query.Len())

	// a new matching archetype is picked up too
	storage.Spawn(Position{X: 3}, Velocity{DX: 3}, Health{})
	storage.Spawn(Position{X: 4})
	query.Execute()
	assert.Equal(t, 3, query.Len())

	var sum float64
	for _, item := range query.Iter() {
		sum += item.Position.X
	}
	assert.Equal(t, 6.0, sum)

	sum = 0
	for item := range query.Values() {
		item.Position.X *= 2
		sum += item.Velocity.DX
	}
	assert.Equal(t, 6.0, sum)

	query.Execute()
	sum = 0
	for item := range query.Values() {
		sum += item.Position.X
	}
	assert.Equal(t, 12.0, sum)
}
