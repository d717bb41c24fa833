package engine

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"mapeditor/internal/host"
	"mapeditor/internal/world"
)

// ErrCreationFailed is returned when the host refuses to create an entity.
var ErrCreationFailed = errors.New("entity creation failed")

// Registry holds placed objects in insertion order plus the current selection.
// The selection index, when set, is always within range.
type Registry struct {
	host     host.EntityHost
	objects  []*MapObject
	selected int // -1 = none

	// Changed fires after every spawn, removal, move and rotation.
	Changed Event[Change]
}

func NewRegistry(h host.EntityHost) *Registry {
	return &Registry{
		host:     h,
		objects:  make([]*MapObject, 0),
		selected: -1,
	}
}

func (r *Registry) Len() int { return len(r.objects) }

// Objects returns the placed objects in insertion order. The slice must not
// be modified.
func (r *Registry) Objects() []*MapObject { return r.objects }

// Selected returns the selected object, or nil.
func (r *Registry) Selected() *MapObject {
	if r.selected < 0 {
		return nil
	}
	return r.objects[r.selected]
}

// SelectedIndex returns the selection index and whether there is one.
func (r *Registry) SelectedIndex() (int, bool) {
	return r.selected, r.selected >= 0
}

func (r *Registry) findByID(id uuid.UUID) *MapObject {
	for _, o := range r.objects {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// Spawn asks the host for a new entity and records it as the selection.
// On failure nothing changes.
func (r *Registry) Spawn(model string, position, rotation rl.Vector3) (*MapObject, error) {
	id, err := host.ParseModelID(model)
	if err != nil {
		return nil, fmt.Errorf("spawn %q: %w: %w", model, ErrCreationFailed, err)
	}
	entity, ok := r.host.CreateEntity(id, position)
	if !ok || !entity.Valid() {
		return nil, fmt.Errorf("spawn %q: %w", model, ErrCreationFailed)
	}
	r.host.SetEntityRotation(entity, rotation)

	obj := newMapObject(model, position, rotation, entity)
	r.objects = append(r.objects, obj)
	r.selected = len(r.objects) - 1
	r.Changed.Invoke(Change{Kind: ObjectSpawned, Object: obj})
	return obj, nil
}

// DeleteSelected destroys the selected object and selects its previous
// neighbour. It returns the removed record, or nil when nothing is selected.
func (r *Registry) DeleteSelected() *MapObject {
	if r.selected < 0 {
		return nil
	}
	i := r.selected
	obj := r.objects[i]
	r.host.DeleteEntity(obj.Entity)
	obj.Entity = 0

	r.objects = append(r.objects[:i], r.objects[i+1:]...)
	if len(r.objects) == 0 {
		r.selected = -1
	} else {
		r.selected = clampIndex(i-1, len(r.objects))
	}
	r.Changed.Invoke(Change{Kind: ObjectRemoved, Object: obj})
	return obj
}

// CycleSelection moves the selection by delta, saturating at both ends.
func (r *Registry) CycleSelection(delta int) *MapObject {
	if len(r.objects) == 0 {
		r.selected = -1
		return nil
	}
	r.selected = clampIndex(r.selected+delta, len(r.objects))
	return r.objects[r.selected]
}

// Translate moves the selected object by delta and mirrors it to the host.
func (r *Registry) Translate(delta rl.Vector3) bool {
	obj := r.Selected()
	if obj == nil {
		return false
	}
	obj.Position = rl.Vector3Add(obj.Position, delta)
	r.host.SetEntityPosition(obj.Entity, obj.Position)
	r.Changed.Invoke(Change{Kind: ObjectMoved, Object: obj})
	return true
}

// Rotate turns the selected object by delta degrees and mirrors it to the host.
func (r *Registry) Rotate(delta rl.Vector3) bool {
	obj := r.Selected()
	if obj == nil {
		return false
	}
	obj.Rotation = rl.Vector3Add(obj.Rotation, delta)
	r.host.SetEntityRotation(obj.Entity, obj.Rotation)
	r.Changed.Invoke(Change{Kind: ObjectRotated, Object: obj})
	return true
}

// Clear destroys every entity and empties the registry. Each object is
// reported as removed.
func (r *Registry) Clear() {
	objects := r.objects
	r.objects = make([]*MapObject, 0)
	r.selected = -1
	for _, o := range objects {
		r.host.DeleteEntity(o.Entity)
		o.Entity = 0
		r.Changed.Invoke(Change{Kind: ObjectRemoved, Object: o})
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// Snapshot converts the placed objects into a serializable map.
func (r *Registry) Snapshot(name, author, description string) *world.SerializableMap {
	m := &world.SerializableMap{
		MapName:     name,
		AuthorName:  author,
		Description: description,
		Objects:     make([]world.SerializableMapObject, 0, len(r.objects)),
	}
	for _, o := range r.objects {
		m.Objects = append(m.Objects, world.NewSerializableMapObject(o.Model, o.Position, o.Rotation))
	}
	return m
}
