package debugui

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/ecs"
)

// EntityInfo is one row of the entity table.
type EntityInfo struct {
	ID             ecs.EntityId
	ArchetypeID    uint32
	ComponentTypes []string
}

// CollectEntities lists every entity in storage ordered by id.
func CollectEntities(storage *ecs.Storage) []EntityInfo {
	var entities []EntityInfo
	for _, arch := range storage.CollectStats().ArchetypeBreakdown {
		archetype := storage.GetArchetypeById(arch.ID)
		if archetype == nil {
			continue
		}
		for entityId := range archetype.Iter() {
			entities = append(entities, EntityInfo{
				ID:             entityId,
				ArchetypeID:    arch.ID,
				ComponentTypes: arch.ComponentTypes,
			})
		}
	}
	slices.SortFunc(entities, func(a, b EntityInfo) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return entities
}

// EntityInspector is the "Entities" window: an entity table and an editor for
// the numeric and boolean fields of the selected entity's components.
type EntityInspector struct {
	selected    ecs.EntityId
	hasSelected bool
}

func NewEntityInspector() *EntityInspector {
	return &EntityInspector{}
}

func (ei *EntityInspector) Render(storage *ecs.Storage) {
	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	entities := CollectEntities(storage)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Archetype ID")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		for _, entity := range entities {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := ei.hasSelected && ei.selected == entity.ID
			if imgui.SelectableBoolV(entity.ID.String(), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				ei.selected = entity.ID
				ei.hasSelected = true
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%X", entity.ArchetypeID))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentTypes, ", "))
		}

		imgui.EndTable()
	}

	imgui.Separator()
	if ei.hasSelected {
		ei.renderEntity(storage, ei.selected)
	} else {
		imgui.Text("No entity selected")
	}

	imgui.End()
}

func (ei *EntityInspector) renderEntity(storage *ecs.Storage, id ecs.EntityId) {
	archetype := storage.GetArchetypeById(id.ArchetypeId())
	if archetype == nil {
		imgui.Text(fmt.Sprintf("Entity %s not found", id))
		return
	}

	imgui.Text(fmt.Sprintf("Entity ID: %s", id))
	for _, compType := range archetype.Types() {
		component := storage.GetComponent(id, compType)
		if component == nil {
			continue
		}
		if imgui.TreeNodeStr(compType.String()) {
			renderValue(compType.Name(), reflect.ValueOf(component).Elem())
			imgui.TreePop()
		}
	}
}

// renderValue draws an editor for v. v must be addressable for edits to stick.
func renderValue(name string, v reflect.Value) {
	switch v.Kind() {
	case reflect.Struct:
		for _, field := range editableFields(v.Type()) {
			renderValue(field.Name, v.FieldByIndex(field.Index))
		}

	case reflect.Float32, reflect.Float64:
		f := float32(v.Float())
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat("##"+name, &f) && v.CanSet() {
			v.SetFloat(float64(f))
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := int32(v.Int())
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt("##"+name, &i) && v.CanSet() {
			v.SetInt(int64(i))
		}

	case reflect.Bool:
		b := v.Bool()
		if imgui.Checkbox(name, &b) && v.CanSet() {
			v.SetBool(b)
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, v.Interface()))
	}
}

var fieldCache sync.Map // reflect.Type -> []reflect.StructField

// editableFields returns the exported fields of struct type t.
func editableFields(t reflect.Type) []reflect.StructField {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]reflect.StructField)
	}

	var fields []reflect.StructField
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			if f := t.Field(i); f.IsExported() {
				fields = append(fields, f)
			}
		}
	}
	cached, _ := fieldCache.LoadOrStore(t, fields)
	return cached.([]reflect.StructField)
}
