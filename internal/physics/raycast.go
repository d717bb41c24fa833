package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Segment converts a start/end pair into an origin, unit direction and length.
// ok is false for a degenerate segment.
func Segment(start, end rl.Vector3) (origin, direction rl.Vector3, length float32, ok bool) {
	d := rl.Vector3Subtract(end, start)
	length = rl.Vector3Length(d)
	if length == 0 {
		return start, rl.Vector3{}, 0, false
	}
	return start, rl.Vector3Scale(d, 1/length), length, true
}

// RaycastAABB intersects a ray with a box using the slab method.
func RaycastAABB(origin, direction rl.Vector3, box AABB, maxDistance float32) (RaycastHit, bool) {
	min, max := box.Min, box.Max

	var tmin, tmax float32

	// X slab
	if direction.X != 0 {
		t1 := (min.X - origin.X) / direction.X
		t2 := (max.X - origin.X) / direction.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = t1
		tmax = t2
	} else if origin.X < min.X || origin.X > max.X {
		return RaycastHit{}, false
	} else {
		tmin = -1e30
		tmax = 1e30
	}

	// Y slab
	if direction.Y != 0 {
		t1 := (min.Y - origin.Y) / direction.Y
		t2 := (max.Y - origin.Y) / direction.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Y < min.Y || origin.Y > max.Y {
		return RaycastHit{}, false
	}

	if tmin > tmax {
		return RaycastHit{}, false
	}

	// Z slab
	if direction.Z != 0 {
		t1 := (min.Z - origin.Z) / direction.Z
		t2 := (max.Z - origin.Z) / direction.Z
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Z < min.Z || origin.Z > max.Z {
		return RaycastHit{}, false
	}

	if tmin > tmax || tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Normal of the face that was hit
	var normal rl.Vector3
	epsilon := float32(0.001)
	if math32.Abs(point.X-min.X) < epsilon {
		normal = rl.Vector3{X: -1}
	} else if math32.Abs(point.X-max.X) < epsilon {
		normal = rl.Vector3{X: 1}
	} else if math32.Abs(point.Y-min.Y) < epsilon {
		normal = rl.Vector3{Y: -1}
	} else if math32.Abs(point.Y-max.Y) < epsilon {
		normal = rl.Vector3{Y: 1}
	} else if math32.Abs(point.Z-min.Z) < epsilon {
		normal = rl.Vector3{Z: -1}
	} else {
		normal = rl.Vector3{Z: 1}
	}

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

// RaycastGround intersects a ray with the horizontal plane z = height.
// Only hits from above count; the ground has no underside.
func RaycastGround(origin, direction rl.Vector3, height, maxDistance float32) (RaycastHit, bool) {
	if direction.Z >= 0 || origin.Z < height {
		return RaycastHit{}, false
	}
	t := (height - origin.Z) / direction.Z
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}
	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	point.Z = height
	return RaycastHit{Point: point, Normal: rl.Vector3{Z: 1}, Distance: t}, true
}
