package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// ComponentRegistry maps component types to storage factories.
// A registry is read-only once registration is done and may be shared by several
// Storage instances, e.g. one per concurrently running session.
type ComponentRegistry struct {
	factories map[reflect.Type]func() componentColumn
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() componentColumn),
	}
}

// RegisterComponent registers T as a component type.
// Every type passed to Storage.Spawn must be registered first.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.factories[reflect.TypeFor[T]()] = func() componentColumn {
		return &blockColumn[T]{}
	}
}

// Registered reports whether t has been registered.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) column(t reflect.Type) componentColumn {
	factory, ok := r.factories[t]
	if !ok {
		panic("ecs: component type " + t.String() + " not registered")
	}
	return factory()
}

// componentColumn is the type-erased storage for one component type inside an archetype.
type componentColumn interface {
	Append(item any) int
	Get(index int) any
	Len() int
	Iter() iter.Seq[int]
}

const blockSize = 64

// blockColumn stores components of type T in fixed-size blocks so that
// pointers handed out by Get stay valid while the column grows.
type blockColumn[T any] struct {
	blocks []*[blockSize]T
	count  int
}

// Append copies item (a T or *T) into the column and returns its slot index.
func (c *blockColumn[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case T:
		value = v
	case *T:
		value = *v
	default:
		panic("ecs: cannot store " + reflect.TypeOf(item).String() + " as " + reflect.TypeFor[T]().String())
	}

	index := c.count
	if index/blockSize >= len(c.blocks) {
		c.blocks = append(c.blocks, new([blockSize]T))
	}
	c.blocks[index/blockSize][index%blockSize] = value
	c.count++
	return index
}

// Get returns a *T for the slot, or nil when the slot is out of range.
func (c *blockColumn[T]) Get(index int) any {
	if index < 0 || index >= c.count {
		return nil
	}
	return &c.blocks[index/blockSize][index%blockSize]
}

func (c *blockColumn[T]) Len() int {
	return c.count
}

func (c *blockColumn[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < c.count; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// iface mirrors the runtime layout of an interface value.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// dataPointer returns the pointer stored in an interface holding a pointer type.
func dataPointer(v any) unsafe.Pointer {
	return (*iface)(unsafe.Pointer(&v)).data
}
