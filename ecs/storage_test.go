package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/pong/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageSpawn(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	t.Run("components are copied in", func(t *testing.T) {
		pos := Position{X: 1, Y: 2}
		id := storage.Spawn(pos, &Velocity{DX: 3, DY: 4})
		pos.X = 100

		got := ecs.ReadComponent[Position](storage, id)
		require.NotNil(t, got)
		assert.Equal(t, Position{X: 1, Y: 2}, *got)
		assert.Equal(t, Velocity{DX: 3, DY: 4}, *ecs.ReadComponent[Velocity](storage, id))
		assert.Nil(t, ecs.ReadComponent[Health](storage, id))
	})

	t.Run("same component set shares an archetype regardless of order", func(t *testing.T) {
		a := storage.Spawn(Name{Value: "a"}, Health{Current: 1})
		b := storage.Spawn(Health{Current: 2}, Name{Value: "b"})

		assert.Equal(t, a.ArchetypeId(), b.ArchetypeId())
		assert.Equal(t, a.Index()+1, b.Index())

		archetype := storage.GetArchetype(Health{}, Name{})
		require.NotNil(t, archetype)
		assert.Equal(t, a.ArchetypeId(), archetype.ID())
		assert.Equal(t, 2, archetype.Len())
		assert.Equal(t, "{ecs_test.Health, ecs_test.Name}", archetype.String())
	})

	t.Run("primitive components", func(t *testing.T) {
		id := storage.Spawn(Score(10), "tag")
		assert.Equal(t, Score(10), *ecs.ReadComponent[Score](storage, id))
		assert.Equal(t, "tag", *ecs.ReadComponent[string](storage, id))
	})

	t.Run("has component", func(t *testing.T) {
		id := storage.Spawn(Position{})
		assert.True(t, storage.HasComponent(id, reflect.TypeFor[Position]()))
		assert.False(t, storage.HasComponent(id, reflect.TypeFor[Velocity]()))
		assert.False(t, storage.HasComponent(ecs.NewEntityId(0xdead, 0), reflect.TypeFor[Position]()))
		assert.Nil(t, storage.GetComponent(ecs.NewEntityId(0xdead, 0), reflect.TypeFor[Position]()))
	})
}

func TestStorageSpawnPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() }, "no components")
	assert.Panics(t, func() { storage.Spawn(Position{}, Position{}) }, "duplicate type")
	assert.Panics(t, func() { storage.Spawn(Gravity{}) }, "unregistered type")
	assert.Panics(t, func() { storage.Spawn(map[string]int{}) }, "map component")
}

func TestStoragePointerStability(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	first := storage.Spawn(Position{X: 1})
	ptr := ecs.ReadComponent[Position](storage, first)

	// grow well past one block
	for i := range 1000 {
		storage.Spawn(Position{X: float64(i)})
	}

	ptr.Y = 42
	assert.Equal(t, 42.0, ecs.ReadComponent[Position](storage, first).Y)
	assert.Same(t, ptr, ecs.ReadComponent[Position](storage, first))
	assert.Equal(t, 1001, storage.GetArchetype(Position{}).Len())
}

func TestEntityId(t *testing.T) {
	id := ecs.NewEntityId(0xabcdef01, 7)
	assert.Equal(t, uint32(0xabcdef01), id.ArchetypeId())
	assert.Equal(t, uint32(7), id.Index())
	assert.Equal(t, "abcdef01:7", id.String())
}

func TestStorageSingletons(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var gravity *Gravity
	assert.False(t, storage.ReadSingleton(&gravity))
	assert.Nil(t, gravity)

	storage.AddSingleton(Gravity{G: 9.8})
	require.True(t, storage.ReadSingleton(&gravity))
	assert.Equal(t, 9.8, gravity.G)

	// replacing keeps the same allocation
	storage.AddSingleton(Gravity{G: 1.6})
	assert.Equal(t, 1.6, gravity.G)

	assert.Panics(t, func() { storage.ReadSingleton(gravity) })
	assert.Panics(t, func() { storage.AddSingleton(nil) })
}

func TestStorageCollectStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	stats := storage.CollectStats()
	assert.Zero(t, stats.ArchetypeCount)
	assert.Zero(t, stats.TotalEntityCount)
	assert.Zero(t, stats.SingletonCount)

	storage.Spawn(42, "hello")
	storage.Spawn(100, "world")
	storage.Spawn(Position{})
	storage.AddSingleton(Gravity{})
	storage.AddSingleton(3.14)

	stats = storage.CollectStats()
	assert.Equal(t, 2, stats.ArchetypeCount)
	assert.Equal(t, 3, stats.TotalEntityCount)
	assert.Equal(t, 2, stats.SingletonCount)
	assert.Equal(t, []string{"ecs_test.Gravity", "float64"}, stats.SingletonTypes)

	require.Len(t, stats.ArchetypeBreakdown, 2)
	assert.Equal(t, 2, stats.ArchetypeBreakdown[0].EntityCount, "largest archetype first")
	assert.Equal(t, []string{"int", "string"}, stats.ArchetypeBreakdown[0].ComponentTypes)
	assert.Equal(t, []string{"ecs_test.Position"}, stats.ArchetypeBreakdown[1].ComponentTypes)
}
