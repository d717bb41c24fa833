package rlhost

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"mapeditor/internal/camera"
)

// The editor works in a Z-up world; raylib renders Y-up. A world point
// (x, y, z) is drawn at (x, z, -y).

func toRender(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: v.X, Y: v.Z, Z: -v.Y}
}

func fromRender(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: v.X, Y: -v.Z, Z: v.Y}
}

// sizeToRender swaps box extents without negating them.
func sizeToRender(s rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: s.X, Y: s.Z, Z: s.Y}
}

// viewCamera builds a render camera at a world pose.
func viewCamera(position, rotation rl.Vector3, fov float32) rl.Camera3D {
	eye := toRender(position)
	forward := toRender(camera.ViewDirection(rotation))
	return rl.Camera3D{
		Position:   eye,
		Target:     rl.Vector3Add(eye, forward),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       fov,
		Projection: rl.CameraPerspective,
	}
}

// inFront reports whether a render-space point lies ahead of the camera.
func inFront(cam rl.Camera3D, p rl.Vector3) bool {
	forward := rl.Vector3Subtract(cam.Target, cam.Position)
	return rl.Vector3DotProduct(rl.Vector3Subtract(p, cam.Position), forward) > 0
}
