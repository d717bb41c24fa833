package raycast

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapeditor/internal/camera"
	"mapeditor/internal/host"
	"mapeditor/internal/memhost"
)

type fixedView struct {
	pos, dir rl.Vector3
}

func (v fixedView) Position() rl.Vector3      { return v.pos }
func (v fixedView) ViewDirection() rl.Vector3 { return v.dir }

func TestPlacementHitsGround(t *testing.T) {
	h := memhost.New()
	h.PlayerPos = rl.Vector3{Z: 10}
	h.PlayerRot = rl.Vector3{X: -45}
	cam := camera.New(h, h, camera.DefaultSettings())
	require.NoError(t, cam.Enter())

	pos, hit := Placement(cam, h, 0)
	require.True(t, hit.DidHit)
	assert.InDelta(t, 0, pos.X, 1e-3)
	assert.InDelta(t, 10, pos.Y, 1e-3)
	assert.InDelta(t, 0, pos.Z, 1e-3)
	assert.Equal(t, rl.Vector3{Z: 1}, hit.SurfaceNormal)
}

func TestPlacementFallsBackToCamera(t *testing.T) {
	h := memhost.New()
	view := fixedView{pos: rl.Vector3{X: 3, Y: 4, Z: 5}, dir: rl.Vector3{Z: 1}}

	pos, hit := Placement(view, h, 0)
	assert.False(t, hit.DidHit)
	assert.Equal(t, view.pos, pos)
}

func TestPlacementOutOfRange(t *testing.T) {
	h := memhost.New()
	view := fixedView{pos: rl.Vector3{Z: MaxDistance + 1}, dir: rl.Vector3{Z: -1}}

	pos, hit := Placement(view, h, 0)
	assert.False(t, hit.DidHit)
	assert.Equal(t, view.pos, pos)
}

func TestPlacementHitsObjectsAndIgnores(t *testing.T) {
	h := memhost.New()
	id, err := host.ParseModelID("p_crate")
	require.NoError(t, err)
	crate, ok := h.CreateEntity(id, rl.Vector3{Y: 5})
	require.True(t, ok)

	view := fixedView{pos: rl.Vector3{Z: 0.5}, dir: rl.Vector3{Y: 1}}
	pos, hit := Placement(view, h, 0)
	require.True(t, hit.DidHit)
	assert.Equal(t, crate, hit.Entity)
	assert.InDelta(t, 4.5, pos.Y, 1e-4)

	_, hit = Placement(view, h, crate)
	assert.False(t, hit.DidHit, "the ignored entity is transparent and the ground is parallel")
}

func TestCastMaskExcludesWorld(t *testing.T) {
	h := memhost.New()
	hit := Cast(h, rl.Vector3{Z: 10}, rl.Vector3{Z: -1}, 50, host.IntersectObjects, 0)
	assert.False(t, hit.DidHit)

	hit = Cast(h, rl.Vector3{Z: 10}, rl.Vector3{Z: -1}, 50, host.IntersectWorld, 0)
	assert.True(t, hit.DidHit)
}
