package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

// View joins entities against a struct shape T. Every field of T is either a
// pointer to a component type or an EntityId, which receives the entity's id:
//
//	ecs.View[struct {
//		ecs.EntityId
//		*Transform
//		*Paddle
//		Ball *Ball `ecs:"optional"`
//	}]
//
// Embedded pointer fields are always required. Named fields may be tagged
// `ecs:"optional"` and are set to nil when the entity lacks the component.
type View[T any] struct {
	storage *Storage
	fields  []viewField
}

type viewField struct {
	offset   uintptr
	typ      reflect.Type // component type; entityIdType for id fields
	optional bool
	isId     bool
}

// NewView creates a view over storage for the struct shape T.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("ecs: View type parameter must be a struct")
	}

	fields := make([]viewField, 0, structType.NumField())
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			fields = append(fields, viewField{offset: field.Offset, typ: entityIdType, isId: true})
			continue
		}
		if field.Type.Kind() != reflect.Ptr {
			panic("ecs: View struct fields must be component pointers or EntityId, got " + field.Type.String())
		}

		optional := false
		if tag := field.Tag.Get("ecs"); tag != "" && !field.Anonymous {
			if tag != "optional" {
				panic("ecs: invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
			optional = true
		}

		fields = append(fields, viewField{
			offset:   field.Offset,
			typ:      field.Type.Elem(),
			optional: optional,
		})
	}

	return &View[T]{storage: storage, fields: fields}
}

// Fill populates *ptr for the given entity.
// Returns false if the entity is missing any required component.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	archetype := v.storage.GetArchetypeById(id.ArchetypeId())
	if archetype == nil || int(id.Index()) >= archetype.Len() {
		return false
	}
	return v.populate(unsafe.Pointer(ptr), archetype, v.columnsFor(archetype), int(id.Index()))
}

// Get returns a populated view struct for the given entity, or nil if the entity
// doesn't have all the required components
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// matches reports whether archetype holds every required component of the view.
func (v *View[T]) matches(archetype *Archetype) bool {
	for _, f := range v.fields {
		if f.isId || f.optional {
			continue
		}
		if !archetype.HasComponent(f.typ) {
			return false
		}
	}
	return true
}

// columnsFor maps each view field to its column in archetype (-1 when absent or an id field).
func (v *View[T]) columnsFor(archetype *Archetype) []int {
	columns := make([]int, len(v.fields))
	for i, f := range v.fields {
		columns[i] = -1
		if !f.isId {
			columns[i] = archetype.columnIndex(f.typ)
		}
	}
	return columns
}

func (v *View[T]) populate(dst unsafe.Pointer, archetype *Archetype, columns []int, index int) bool {
	for i, f := range v.fields {
		fieldPtr := unsafe.Add(dst, f.offset)

		if f.isId {
			*(*EntityId)(fieldPtr) = NewEntityId(archetype.id, uint32(index))
			continue
		}

		var component any
		if columns[i] != -1 {
			component = archetype.columns[columns[i]].Get(index)
		}
		if component == nil {
			if !f.optional {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}
		*(*unsafe.Pointer)(fieldPtr) = dataPointer(component)
	}
	return true
}

func (v *View[T]) iterArchetype(archetype *Archetype) iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		columns := v.columnsFor(archetype)

		var result T
		for id := range archetype.Iter() {
			if !v.populate(unsafe.Pointer(&result), archetype, columns, int(id.Index())) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Iter returns an iterator over all entities that have all the required components.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for archetype := range v.storage.archetypes.Values() {
			if !v.matches(archetype) {
				continue
			}
			for id, item := range v.iterArchetype(archetype) {
				if !yield(id, item) {
					return
				}
			}
		}
	}
}

// Values returns an iterator over just the view structs.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.Iter() {
			if !yield(item) {
				return
			}
		}
	}
}
