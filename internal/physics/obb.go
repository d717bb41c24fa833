package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB is an oriented box. Axes are the box's local X, Y and Z in world space.
type OBB struct {
	Center   rl.Vector3
	HalfSize rl.Vector3
	Axes     [3]rl.Vector3
}

// NewOBB builds a box from its center, full size and an euler rotation in
// degrees (X pitch, Y roll, Z yaw). Roll is applied first, then pitch, then
// yaw, matching how props are drawn.
func NewOBB(center, size, rotation rl.Vector3) OBB {
	q := rl.QuaternionMultiply(
		rl.QuaternionFromAxisAngle(rl.Vector3{Z: 1}, rotation.Z*rl.Deg2rad),
		rl.QuaternionMultiply(
			rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, rotation.X*rl.Deg2rad),
			rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, rotation.Y*rl.Deg2rad),
		),
	)
	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: math32.Abs(size.X) / 2, Y: math32.Abs(size.Y) / 2, Z: math32.Abs(size.Z) / 2},
		Axes: [3]rl.Vector3{
			rl.Vector3Normalize(rl.Vector3RotateByQuaternion(rl.Vector3{X: 1}, q)),
			rl.Vector3Normalize(rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, q)),
			rl.Vector3Normalize(rl.Vector3RotateByQuaternion(rl.Vector3{Z: 1}, q)),
		},
	}
}

// NewOBBFromBase builds a box standing on base: the center sits size.Z/2
// above it and the box is rotated about that center.
func NewOBBFromBase(base, size, rotation rl.Vector3) OBB {
	center := base
	center.Z += math32.Abs(size.Z) / 2
	return NewOBB(center, size, rotation)
}

func (o OBB) toLocal(p rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: rl.Vector3DotProduct(p, o.Axes[0]),
		Y: rl.Vector3DotProduct(p, o.Axes[1]),
		Z: rl.Vector3DotProduct(p, o.Axes[2]),
	}
}

func (o OBB) toWorld(v rl.Vector3) rl.Vector3 {
	w := rl.Vector3Scale(o.Axes[0], v.X)
	w = rl.Vector3Add(w, rl.Vector3Scale(o.Axes[1], v.Y))
	return rl.Vector3Add(w, rl.Vector3Scale(o.Axes[2], v.Z))
}

// contains reports whether p lies inside the box.
func (o OBB) contains(p rl.Vector3) bool {
	l := o.toLocal(rl.Vector3Subtract(p, o.Center))
	return math32.Abs(l.X) <= o.HalfSize.X &&
		math32.Abs(l.Y) <= o.HalfSize.Y &&
		math32.Abs(l.Z) <= o.HalfSize.Z
}

// RaycastOBB intersects a ray with the box by moving the ray into the box's
// frame and running the slab test there. Distances are preserved since the
// axes are orthonormal.
func RaycastOBB(origin, direction rl.Vector3, box OBB, maxDistance float32) (RaycastHit, bool) {
	localOrigin := box.toLocal(rl.Vector3Subtract(origin, box.Center))
	localDir := box.toLocal(direction)
	local := AABB{Min: rl.Vector3Negate(box.HalfSize), Max: box.HalfSize}

	hit, ok := RaycastAABB(localOrigin, localDir, local, maxDistance)
	if !ok {
		return RaycastHit{}, false
	}
	return RaycastHit{
		Point:    rl.Vector3Add(origin, rl.Vector3Scale(direction, hit.Distance)),
		Normal:   box.toWorld(hit.Normal),
		Distance: hit.Distance,
	}, true
}
