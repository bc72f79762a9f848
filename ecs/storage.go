package ecs

import (
	"reflect"
	"slices"
	"sort"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// Storage owns all entity and singleton data of one simulation.
type Storage struct {
	archetypes *intmap.Map[uint32, *Archetype]
	registry   *ComponentRegistry
	singletons map[reflect.Type]*singletonEntry
	// registration order, for stable stats output
	singletonTypes []reflect.Type
}

type singletonEntry struct {
	dataPtr unsafe.Pointer
	value   any
}

// NewStorage creates an empty storage backed by the given registry.
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		archetypes: intmap.New[uint32, *Archetype](16),
		registry:   registry,
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// Spawn creates a new entity with the provided components and returns its id.
// Components may be passed by value or by pointer; they are always copied.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("ecs: cannot spawn entity without components")
	}

	types := componentTypes(components)
	archetypeId, archetype := s.findArchetype(types)
	if archetype == nil {
		archetype = newArchetype(archetypeId, types, s.registry)
		s.archetypes.Put(archetypeId, archetype)
	}

	return NewEntityId(archetypeId, archetype.spawn(components))
}

// findArchetype returns the archetype holding exactly types, or nil together with
// the free id it should be created under. Ids colliding on hashTypes are probed linearly.
func (s *Storage) findArchetype(types []reflect.Type) (uint32, *Archetype) {
	id := hashTypes(types)
	for {
		archetype, ok := s.archetypes.Get(id)
		if !ok {
			return id, nil
		}
		if slices.Equal(archetype.types, types) {
			return id, archetype
		}
		id++
	}
}

// GetArchetype returns the archetype holding exactly the given component types, if any.
func (s *Storage) GetArchetype(components ...any) *Archetype {
	_, archetype := s.findArchetype(componentTypes(components))
	return archetype
}

// GetArchetypeById returns the archetype with the given id, or nil.
func (s *Storage) GetArchetypeById(id uint32) *Archetype {
	archetype, _ := s.archetypes.Get(id)
	return archetype
}

// GetComponent returns a pointer to the entity's component of type compType, or nil.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok {
		return nil
	}
	return archetype.GetComponent(id.Index(), compType)
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok {
		return false
	}
	return archetype.HasComponent(compType)
}

// AddSingleton stores value as the single instance of its type, replacing any previous one.
// Singletons live outside the archetype tables and need no registration.
func (s *Storage) AddSingleton(value any) {
	t := reflect.TypeOf(value)
	if t == nil {
		panic("ecs: nil singleton")
	}
	ptr := reflect.New(t)
	ptr.Elem().Set(reflect.ValueOf(value))

	if entry, ok := s.singletons[t]; ok {
		// keep the original allocation so cached Singleton pointers stay valid
		reflect.NewAt(t, entry.dataPtr).Elem().Set(ptr.Elem())
		return
	}

	ptrValue := ptr.Interface()
	s.singletons[t] = &singletonEntry{
		dataPtr: dataPointer(ptrValue),
		value:   ptrValue,
	}
	s.singletonTypes = append(s.singletonTypes, t)
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

// ReadSingleton points *target at the stored singleton of type T.
// It returns false and leaves target untouched when no such singleton exists.
func (s *Storage) ReadSingleton(target any) bool {
	ptrPtr := reflect.ValueOf(target)
	if ptrPtr.Kind() != reflect.Ptr || ptrPtr.Elem().Kind() != reflect.Ptr {
		panic("ecs: ReadSingleton target must be a **T")
	}
	entry := s.singletons[ptrPtr.Elem().Type().Elem()]
	if entry == nil {
		return false
	}
	ptrPtr.Elem().Set(reflect.ValueOf(entry.value))
	return true
}

// StorageStats summarises the contents of a Storage.
type StorageStats struct {
	ArchetypeCount     int
	TotalEntityCount   int
	SingletonCount     int
	ArchetypeBreakdown []ArchetypeStats
	SingletonTypes     []string
}

// ArchetypeStats describes one archetype.
type ArchetypeStats struct {
	ID             uint32
	ComponentTypes []string
	EntityCount    int
}

// CollectStats walks the storage and returns counts per archetype and singleton.
func (s *Storage) CollectStats() *StorageStats {
	stats := &StorageStats{
		ArchetypeCount: s.archetypes.Len(),
		SingletonCount: len(s.singletons),
	}

	for archetype := range s.archetypes.Values() {
		names := make([]string, len(archetype.types))
		for i, t := range archetype.types {
			names[i] = t.String()
		}
		count := archetype.Len()
		stats.TotalEntityCount += count
		stats.ArchetypeBreakdown = append(stats.ArchetypeBreakdown, ArchetypeStats{
			ID:             archetype.id,
			ComponentTypes: names,
			EntityCount:    count,
		})
	}
	slices.SortFunc(stats.ArchetypeBreakdown, func(a, b ArchetypeStats) int {
		return b.EntityCount - a.EntityCount
	})

	for _, t := range s.singletonTypes {
		stats.SingletonTypes = append(stats.SingletonTypes, t.String())
	}
	return stats
}

// ComponentReader is anything that can look up a component by entity and type.
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's T component, or nil if it has none.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

func componentType(comp any) reflect.Type {
	t := reflect.TypeOf(comp)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// componentTypes extracts and sorts component types from a slice of components
func componentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		t := componentType(comp)
		switch t.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
			panic("ecs: components cannot be pointers, maps, channels, or functions")
		}
		if slices.Contains(types, t) {
			panic("ecs: duplicate component type " + t.String())
		}
		types = append(types, t)
	}
	sort.Sort(byTypeName(types))
	return types
}

// hashTypes generates an FNV-1a hash over the runtime type pointers of a sorted type list
func hashTypes(types []reflect.Type) uint32 {
	var h uint32 = 2166136261
	const prime uint32 = 16777619

	for _, t := range types {
		ptr := uintptr((*iface)(unsafe.Pointer(&t)).data)
		val := uint32(ptr)
		if unsafe.Sizeof(ptr) == 8 {
			val ^= uint32(uint64(ptr) >> 32)
		}
		h ^= val
		h *= prime
	}
	return h
}
