package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"mapeditor/internal/host"
)

// MapObject is a placed prop: the logical record of a model and its world
// pose, bound to the host entity that renders it. The registry owns the
// record and is the only thing that deletes Entity.
type MapObject struct {
	ID       uuid.UUID
	Model    string
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Entity   host.EntityHandle
}

func newMapObject(model string, position, rotation rl.Vector3, entity host.EntityHandle) *MapObject {
	return &MapObject{
		ID:       uuid.New(),
		Model:    model,
		Position: position,
		Rotation: rotation,
		Entity:   entity,
	}
}
