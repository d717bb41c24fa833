package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapeditor/internal/memhost"
)

func newActiveCamera(t *testing.T, yaw float32) (*FreeCamera, *memhost.Host) {
	t.Helper()
	h := memhost.New()
	h.PlayerRot = rl.Vector3{Z: yaw}
	c := New(h, h, DefaultSettings())
	require.NoError(t, c.Enter())
	require.True(t, c.Active())
	return c, h
}

func TestEnterFailsWithoutHostCamera(t *testing.T) {
	h := memhost.New()
	h.RefuseCameras = true
	c := New(h, h, DefaultSettings())

	assert.ErrorIs(t, c.Enter(), ErrCameraUnavailable)
	assert.False(t, c.Active())
	assert.False(t, h.ScriptedCamera)
}

func TestInactiveCameraReportsZero(t *testing.T) {
	h := memhost.New()
	h.PlayerPos = rl.Vector3{X: 1, Y: 2, Z: 3}
	c := New(h, h, DefaultSettings())

	assert.Equal(t, rl.Vector3{}, c.Position())
	assert.Equal(t, rl.Vector3{}, c.Rotation())

	c.Translate(Forward)
	c.OnTick()
	assert.Equal(t, rl.Vector3{}, c.Position())
}

func TestEnterSeedsFromPlayerAndIsIdempotent(t *testing.T) {
	h := memhost.New()
	h.PlayerPos = rl.Vector3{X: 1, Y: 2, Z: 3}
	h.PlayerRot = rl.Vector3{Z: 45}
	c := New(h, h, DefaultSettings())

	require.NoError(t, c.Enter())
	require.NoError(t, c.Enter())
	assert.Len(t, h.Cameras, 1)
	assert.True(t, h.ScriptedCamera)
	assert.Equal(t, h.PlayerPos, c.Position())
	assert.Equal(t, h.PlayerRot, c.Rotation())

	c.Exit()
	c.Exit()
	assert.Empty(t, h.Cameras)
	assert.False(t, h.ScriptedCamera)
	assert.False(t, c.Active())
}

func TestForwardAtYawZeroMovesAlongY(t *testing.T) {
	c, h := newActiveCamera(t, 0)

	c.Translate(Forward)
	c.OnTick()

	pos := c.Position()
	assert.InDelta(t, 0, pos.X, 1e-5)
	assert.InDelta(t, 0.1, pos.Y, 1e-5)
	assert.InDelta(t, 0, pos.Z, 1e-5)

	for _, cam := range h.Cameras {
		assert.Equal(t, pos, cam.Position, "pose is pushed to the host")
	}
}

func TestForwardAtYaw90MovesAlongNegativeX(t *testing.T) {
	c, _ := newActiveCamera(t, 90)

	c.Translate(Forward)
	c.OnTick()

	pos := c.Position()
	assert.InDelta(t, -0.1, pos.X, 1e-5)
	assert.InDelta(t, 0, pos.Y, 1e-5)
}

func TestTranslationIgnoresPitch(t *testing.T) {
	c, _ := newActiveCamera(t, 0)
	c.Rotate(rl.Vector3{X: 60.0 / 360})
	c.OnTick()
	require.InDelta(t, 60, c.Rotation().X, 1e-4)

	c.Translate(Forward)
	c.OnTick()
	assert.InDelta(t, 0.1, c.Position().Y, 1e-5)
	assert.InDelta(t, 0, c.Position().Z, 1e-5)
}

func TestIntentsAccumulateAndSpeedModifierResets(t *testing.T) {
	c, _ := newActiveCamera(t, 0)

	c.Translate(Forward)
	c.Translate(Forward)
	c.Translate(Up)
	c.SetSpeedModifier(0.1)
	c.SetSpeedModifier(10)
	c.OnTick()

	pos := c.Position()
	assert.InDelta(t, 2.0, pos.Y, 1e-4)
	assert.InDelta(t, 1.0, pos.Z, 1e-4)

	c.Translate(Right)
	c.OnTick()
	assert.InDelta(t, 0.1, c.Position().X, 1e-5, "modifier does not leak into the next tick")

	c.OnTick()
	assert.InDelta(t, 0.1, c.Position().X, 1e-5, "accumulators are cleared after a tick")
}

func TestPitchIsClamped(t *testing.T) {
	c, _ := newActiveCamera(t, 0)

	for i := 0; i < 50; i++ {
		c.Rotate(rl.Vector3{X: 0.1})
		c.OnTick()
		assert.LessOrEqual(t, c.Rotation().X, float32(85))
	}
	assert.Equal(t, float32(85), c.Rotation().X)

	for i := 0; i < 50; i++ {
		c.Rotate(rl.Vector3{X: -0.1})
		c.OnTick()
		assert.GreaterOrEqual(t, c.Rotation().X, float32(-85))
	}
	assert.Equal(t, float32(-85), c.Rotation().X)
}

func TestYawIsUnclampedAndRollUntouched(t *testing.T) {
	c, _ := newActiveCamera(t, 0)

	c.Rotate(rl.Vector3{Y: 1, Z: 1.5})
	c.OnTick()

	assert.InDelta(t, 540, c.Rotation().Z, 1e-3)
	assert.Equal(t, float32(0), c.Rotation().Y)
}

func TestViewDirection(t *testing.T) {
	d := ViewDirection(rl.Vector3{})
	assert.InDelta(t, 0, d.X, 1e-5)
	assert.InDelta(t, 1, d.Y, 1e-5)

	d = ViewDirection(rl.Vector3{Z: 90})
	assert.InDelta(t, -1, d.X, 1e-5)

	d = ViewDirection(rl.Vector3{X: -90})
	assert.InDelta(t, -1, d.Z, 1e-5)
}
