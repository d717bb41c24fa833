// Package host declares the services the editor consumes from the simulation
// it is embedded in. Implementations live in memhost (in-memory) and rlhost
// (raylib window).
package host

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// EntityHandle references a simulated entity owned by the host.
// The zero value never refers to a live entity.
type EntityHandle uint64

// Valid reports whether h can refer to a live entity.
func (h EntityHandle) Valid() bool { return h != 0 }

// CameraHandle references a scripted camera owned by the host.
type CameraHandle uint64

func (h CameraHandle) Valid() bool { return h != 0 }

// IntersectMask filters what a ray is tested against.
type IntersectMask uint32

const (
	IntersectNone    IntersectMask = 0
	IntersectWorld   IntersectMask = 1
	IntersectObjects IntersectMask = 16
	IntersectWater   IntersectMask = 32

	IntersectEverything IntersectMask = 0xFFFFFFFF
)

// RayHit is the result of a host shape test.
type RayHit struct {
	DidHit        bool
	HitPosition   rl.Vector3
	SurfaceNormal rl.Vector3
	Entity        EntityHandle
}

type EntityHost interface {
	// CreateEntity returns false when the model is unknown or the host is
	// out of resources. It never returns a placeholder handle.
	CreateEntity(model ModelID, position rl.Vector3) (EntityHandle, bool)
	SetEntityPosition(h EntityHandle, position rl.Vector3)
	SetEntityRotation(h EntityHandle, rotation rl.Vector3)
	EntityPosition(h EntityHandle) rl.Vector3
	EntityRotation(h EntityHandle) rl.Vector3
	DeleteEntity(h EntityHandle)
}

type RayHost interface {
	CastRay(start, end rl.Vector3, mask IntersectMask, ignore EntityHandle) RayHit
}

type CameraHost interface {
	EnterScriptedCamera()
	ExitScriptedCamera()
	CreateCamera(position, rotation rl.Vector3, fov float32) CameraHandle
	SetCameraPose(cam CameraHandle, position, rotation rl.Vector3)
	DestroyCamera(cam CameraHandle)
}

// PlayerHost exposes the controlled character.
type PlayerHost interface {
	PlayerPose() (position, rotation rl.Vector3)
	PlayerName() string
	SetPlayerControl(enabled bool)
}

// ClipboardSource reads text from the platform clipboard. It may block.
type ClipboardSource interface {
	ReadClipboardText() (string, error)
}

// Notifier shows a short message to the operator.
type Notifier interface {
	Notify(message string)
}

// Host is everything the editor session needs.
type Host interface {
	EntityHost
	RayHost
	CameraHost
	PlayerHost
	ClipboardSource
	Notifier
}
