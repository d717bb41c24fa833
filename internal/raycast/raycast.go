// Package raycast finds where the editor camera is looking.
package raycast

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"mapeditor/internal/host"
)

// MaxDistance is how far the placement ray reaches, in world units.
const MaxDistance float32 = 100

// Viewpoint is the part of the free camera a placement ray needs.
type Viewpoint interface {
	Position() rl.Vector3
	ViewDirection() rl.Vector3
}

// Cast traces from start along dir for distance units.
func Cast(h host.RayHost, start, dir rl.Vector3, distance float32, mask host.IntersectMask, ignore host.EntityHandle) host.RayHit {
	end := rl.Vector3Add(start, rl.Vector3Scale(rl.Vector3Normalize(dir), distance))
	return h.CastRay(start, end, mask, ignore)
}

// Placement returns the point the camera is looking at, or the camera
// position when the view ray hits nothing within MaxDistance.
func Placement(cam Viewpoint, h host.RayHost, ignore host.EntityHandle) (rl.Vector3, host.RayHit) {
	origin := cam.Position()
	hit := Cast(h, origin, cam.ViewDirection(), MaxDistance, host.IntersectEverything, ignore)
	if !hit.DidHit {
		return origin, hit
	}
	return hit.HitPosition, hit
}
