// Package memhost is an in-memory simulation host. It keeps entities, the
// scripted camera and the player in plain maps and fields so editor logic
// can run headless.
package memhost

import (
	"sync"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"mapeditor/internal/host"
	"mapeditor/internal/physics"
)

var _ host.Host = (*Host)(nil)

// Model is a catalogue entry. Size is the prop's bounding box, resting on its
// position.
type Model struct {
	Name string
	Size rl.Vector3
}

var defaultSize = rl.Vector3{X: 1, Y: 1, Z: 1}

type Entity struct {
	Handle   host.EntityHandle
	Model    host.ModelID
	Size     rl.Vector3
	Position rl.Vector3
	Rotation rl.Vector3
}

type Camera struct {
	Handle   host.CameraHandle
	Position rl.Vector3
	Rotation rl.Vector3
	FOV      float32
}

type Host struct {
	// Models restricts what CreateEntity accepts. Empty accepts every model.
	Models map[uint32]Model
	// MaxEntities caps live entities. Zero means unlimited.
	MaxEntities int
	// GroundHeight is the z of the world ground plane.
	GroundHeight float32

	Entities map[host.EntityHandle]*Entity
	Deleted  []host.EntityHandle

	Cameras        map[host.CameraHandle]*Camera
	ScriptedCamera bool
	// RefuseCameras makes CreateCamera fail.
	RefuseCameras bool

	Name          string
	PlayerPos     rl.Vector3
	PlayerRot     rl.Vector3
	PlayerControl bool

	Notifications []string

	mu             sync.Mutex
	clipboard      string
	clipboardDelay time.Duration
	clipboardErr   error

	nextEntity host.EntityHandle
	nextCamera host.CameraHandle
}

func New(models ...Model) *Host {
	h := &Host{
		Models:        make(map[uint32]Model),
		Entities:      make(map[host.EntityHandle]*Entity),
		Cameras:       make(map[host.CameraHandle]*Camera),
		Name:          "Player",
		PlayerControl: true,
	}
	for _, m := range models {
		h.Models[host.HashModel(m.Name)] = m
	}
	return h
}

func (h *Host) CreateEntity(model host.ModelID, position rl.Vector3) (host.EntityHandle, bool) {
	size := defaultSize
	if len(h.Models) > 0 {
		m, ok := h.Models[model.Hash]
		if !ok {
			return 0, false
		}
		if m.Size != (rl.Vector3{}) {
			size = m.Size
		}
	}
	if h.MaxEntities > 0 && len(h.Entities) >= h.MaxEntities {
		return 0, false
	}
	h.nextEntity++
	e := &Entity{Handle: h.nextEntity, Model: model, Size: size, Position: position}
	h.Entities[e.Handle] = e
	return e.Handle, true
}

func (h *Host) SetEntityPosition(handle host.EntityHandle, position rl.Vector3) {
	if e, ok := h.Entities[handle]; ok {
		e.Position = position
	}
}

func (h *Host) SetEntityRotation(handle host.EntityHandle, rotation rl.Vector3) {
	if e, ok := h.Entities[handle]; ok {
		e.Rotation = rotation
	}
}

func (h *Host) EntityPosition(handle host.EntityHandle) rl.Vector3 {
	if e, ok := h.Entities[handle]; ok {
		return e.Position
	}
	return rl.Vector3{}
}

func (h *Host) EntityRotation(handle host.EntityHandle) rl.Vector3 {
	if e, ok := h.Entities[handle]; ok {
		return e.Rotation
	}
	return rl.Vector3{}
}

// DeleteEntity records every call, including ones for unknown handles, so
// tests can detect double frees.
func (h *Host) DeleteEntity(handle host.EntityHandle) {
	h.Deleted = append(h.Deleted, handle)
	delete(h.Entities, handle)
}

// CastRay tests the ground plane and every entity's oriented box and reports the
// closest hit along the segment.
func (h *Host) CastRay(start, end rl.Vector3, mask host.IntersectMask, ignore host.EntityHandle) host.RayHit {
	origin, dir, length, ok := physics.Segment(start, end)
	if !ok {
		return host.RayHit{}
	}

	var best host.RayHit
	bestDist := length
	if mask&host.IntersectWorld != 0 {
		if hit, ok := physics.RaycastGround(origin, dir, h.GroundHeight, length); ok {
			best = host.RayHit{DidHit: true, HitPosition: hit.Point, SurfaceNormal: hit.Normal}
			bestDist = hit.Distance
		}
	}
	if mask&host.IntersectObjects != 0 {
		for handle, e := range h.Entities {
			if handle == ignore {
				continue
			}
			box := physics.NewOBBFromBase(e.Position, e.Size, e.Rotation)
			if hit, ok := physics.RaycastOBB(origin, dir, box, length); ok && hit.Distance < bestDist {
				best = host.RayHit{DidHit: true, HitPosition: hit.Point, SurfaceNormal: hit.Normal, Entity: handle}
				bestDist = hit.Distance
			}
		}
	}
	return best
}

func (h *Host) EnterScriptedCamera() { h.ScriptedCamera = true }
func (h *Host) ExitScriptedCamera()  { h.ScriptedCamera = false }

func (h *Host) CreateCamera(position, rotation rl.Vector3, fov float32) host.CameraHandle {
	if h.RefuseCameras {
		return 0
	}
	h.nextCamera++
	h.Cameras[h.nextCamera] = &Camera{Handle: h.nextCamera, Position: position, Rotation: rotation, FOV: fov}
	return h.nextCamera
}

func (h *Host) SetCameraPose(cam host.CameraHandle, position, rotation rl.Vector3) {
	if c, ok := h.Cameras[cam]; ok {
		c.Position = position
		c.Rotation = rotation
	}
}

func (h *Host) DestroyCamera(cam host.CameraHandle) {
	delete(h.Cameras, cam)
}

func (h *Host) PlayerPose() (rl.Vector3, rl.Vector3) { return h.PlayerPos, h.PlayerRot }
func (h *Host) PlayerName() string                   { return h.Name }
func (h *Host) SetPlayerControl(enabled bool)        { h.PlayerControl = enabled }

// SetClipboard sets the text ReadClipboardText returns after delay and
// clears any failure set by FailClipboard.
func (h *Host) SetClipboard(text string, delay time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clipboard = text
	h.clipboardDelay = delay
	h.clipboardErr = nil
}

// FailClipboard makes ReadClipboardText return err.
func (h *Host) FailClipboard(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clipboardErr = err
}

func (h *Host) ReadClipboardText() (string, error) {
	h.mu.Lock()
	text, delay, err := h.clipboard, h.clipboardDelay, h.clipboardErr
	h.mu.Unlock()
	if delay > 0 {
		time.Sleep(delay)
	}
	if err != nil {
		return "", err
	}
	return text, nil
}

func (h *Host) Notify(message string) {
	h.Notifications = append(h.Notifications, message)
}

// LastNotification returns the most recent message, or "" if none.
func (h *Host) LastNotification() string {
	if len(h.Notifications) == 0 {
		return ""
	}
	return h.Notifications[len(h.Notifications)-1]
}
