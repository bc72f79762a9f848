package ecs

import (
	"iter"
	"reflect"
	"slices"
	"strings"
)

// Archetype stores every entity that has exactly the same set of component types.
// Each component type gets one column; an entity occupies the same slot in all columns.
type Archetype struct {
	id      uint32
	types   []reflect.Type
	columns []componentColumn
}

func newArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]componentColumn, len(types)),
	}
	for i, typ := range types {
		a.columns[i] = registry.column(typ)
	}
	return a
}

// spawn appends one entity. components must hold exactly one value per archetype type.
func (a *Archetype) spawn(components []any) uint32 {
	slot := -1
	for _, comp := range components {
		col := a.columnIndex(componentType(comp))
		if col == -1 {
			panic("ecs: component " + reflect.TypeOf(comp).String() + " does not belong to archetype")
		}
		slot = a.columns[col].Append(comp)
	}
	return uint32(slot)
}

func (a *Archetype) columnIndex(t reflect.Type) int {
	return slices.Index(a.types, t)
}

// GetComponent returns a pointer to the component of type compType in slot index, or nil.
func (a *Archetype) GetComponent(index uint32, compType reflect.Type) any {
	col := a.columnIndex(compType)
	if col == -1 {
		return nil
	}
	return a.columns[col].Get(int(index))
}

// HasComponent checks if this archetype has the given component type
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return a.columnIndex(compType) != -1
}

// ID returns the archetype's unique identifier
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types for this archetype
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of entities in the archetype.
func (a *Archetype) Len() int {
	if len(a.columns) == 0 {
		return 0
	}
	return a.columns[0].Len()
}

// Iter returns an iterator over all entity ids in this archetype
func (a *Archetype) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		if len(a.columns) == 0 {
			return
		}
		for index := range a.columns[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}

func (a *Archetype) String() string {
	names := make([]string, len(a.types))
	for i, t := range a.types {
		names[i] = t.String()
	}
	return "{" + strings.Join(names, ", ") + "}"
}
