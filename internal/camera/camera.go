package camera

import (
	"errors"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"mapeditor/internal/host"
)

// ErrCameraUnavailable is returned by Enter when the host refuses to create a
// camera.
var ErrCameraUnavailable = errors.New("host camera unavailable")

// Settings tunes the free camera. Rotation input is a fraction of the screen
// per tick and is scaled by RotationSpeed into degrees.
type Settings struct {
	MovementSpeed float32
	RotationSpeed float32
	MinPitch      float32
	MaxPitch      float32
	FOV           float32
}

func DefaultSettings() Settings {
	return Settings{
		MovementSpeed: 0.1,
		RotationSpeed: 360,
		MinPitch:      -85,
		MaxPitch:      85,
		FOV:           75,
	}
}

// Relative movement directions. X is right, Y is forward and Z is up in
// camera space; OnTick rotates them into world space by the camera yaw.
var (
	Forward  = rl.Vector3{Y: 1}
	Backward = rl.Vector3{Y: -1}
	Left     = rl.Vector3{X: -1}
	Right    = rl.Vector3{X: 1}
	Up       = rl.Vector3{Z: 1}
	Down     = rl.Vector3{Z: -1}
)

// FreeCamera is a fly camera decoupled from input: Translate, Rotate and
// SetSpeedModifier only record intent, OnTick integrates it once per frame.
//
// Rotation is stored as Euler degrees with X = pitch, Y = roll, Z = yaw in a
// Z-up world.
type FreeCamera struct {
	host     host.CameraHost
	player   host.PlayerHost
	settings Settings

	handle   host.CameraHandle
	position rl.Vector3
	rotation rl.Vector3

	pendingTranslation rl.Vector3
	pendingRotation    rl.Vector3
	speedModifier      float32
}

func New(h host.CameraHost, player host.PlayerHost, settings Settings) *FreeCamera {
	return &FreeCamera{
		host:          h,
		player:        player,
		settings:      settings,
		speedModifier: 1,
	}
}

// Active reports whether a host camera currently exists.
func (c *FreeCamera) Active() bool {
	return c.handle.Valid()
}

// Enter creates the host camera at the player's pose. Calling it again while
// active does nothing.
func (c *FreeCamera) Enter() error {
	if c.Active() {
		return nil
	}
	pos, rot := c.player.PlayerPose()
	rot.X = rl.Clamp(rot.X, c.settings.MinPitch, c.settings.MaxPitch)
	c.handle = c.host.CreateCamera(pos, rot, c.settings.FOV)
	if !c.handle.Valid() {
		c.handle = 0
		return ErrCameraUnavailable
	}
	c.position = pos
	c.rotation = rot
	c.host.EnterScriptedCamera()
	c.resetInputs()
	return nil
}

// Exit tears the host camera down. Calling it while inactive does nothing.
func (c *FreeCamera) Exit() {
	if !c.Active() {
		return
	}
	c.host.DestroyCamera(c.handle)
	c.host.ExitScriptedCamera()
	c.handle = 0
	c.position = rl.Vector3{}
	c.rotation = rl.Vector3{}
	c.resetInputs()
}

// Position is the camera position, or the zero vector when inactive.
func (c *FreeCamera) Position() rl.Vector3 {
	if !c.Active() {
		return rl.Vector3{}
	}
	return c.position
}

// Rotation is the camera rotation, or the zero vector when inactive.
func (c *FreeCamera) Rotation() rl.Vector3 {
	if !c.Active() {
		return rl.Vector3{}
	}
	return c.rotation
}

func (c *FreeCamera) Translate(amount rl.Vector3) {
	c.pendingTranslation = rl.Vector3Add(c.pendingTranslation, amount)
}

func (c *FreeCamera) Rotate(amount rl.Vector3) {
	c.pendingRotation = rl.Vector3Add(c.pendingRotation, amount)
}

// SetSpeedModifier scales movement for the current tick only.
func (c *FreeCamera) SetSpeedModifier(modifier float32) {
	c.speedModifier = modifier
}

// OnTick integrates this tick's translation and rotation and pushes the
// resulting pose to the host.
func (c *FreeCamera) OnTick() {
	if c.Active() {
		c.applyTranslation()
		c.applyRotation()
		c.host.SetCameraPose(c.handle, c.position, c.rotation)
	}
	c.resetInputs()
}

func (c *FreeCamera) applyTranslation() {
	yaw := c.rotation.Z * rl.Deg2rad
	sin, cos := math32.Sincos(yaw)
	t := c.pendingTranslation

	world := rl.Vector3{
		X: t.X*cos - t.Y*sin,
		Y: t.X*sin + t.Y*cos,
		Z: t.Z,
	}
	c.position = rl.Vector3Add(c.position, rl.Vector3Scale(world, c.settings.MovementSpeed*c.speedModifier))
}

func (c *FreeCamera) applyRotation() {
	r := c.pendingRotation
	c.rotation.X = rl.Clamp(c.rotation.X+r.X*c.settings.RotationSpeed, c.settings.MinPitch, c.settings.MaxPitch)
	c.rotation.Z += r.Z * c.settings.RotationSpeed
}

func (c *FreeCamera) resetInputs() {
	c.pendingTranslation = rl.Vector3{}
	c.pendingRotation = rl.Vector3{}
	c.speedModifier = 1
}

// ViewDirection is the unit vector the camera looks along.
func (c *FreeCamera) ViewDirection() rl.Vector3 {
	return ViewDirection(c.Rotation())
}

// ViewDirection converts a pitch/yaw rotation into a unit look vector. Yaw 0
// looks down +Y and positive yaw turns counter-clockwise towards -X.
func ViewDirection(rotation rl.Vector3) rl.Vector3 {
	pitch := rotation.X * rl.Deg2rad
	yaw := rotation.Z * rl.Deg2rad
	flat := math32.Abs(math32.Cos(pitch))
	return rl.Vector3Normalize(rl.Vector3{
		X: -math32.Sin(yaw) * flat,
		Y: math32.Cos(yaw) * flat,
		Z: math32.Sin(pitch),
	})
}
