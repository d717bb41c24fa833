// Package rlhost runs the editor in a raylib window. Entity, camera and
// player bookkeeping is the in-memory host's; this package adds the window,
// input polling, drawing and the desktop clipboard.
package rlhost

import (
	"os/user"

	"github.com/cespare/xxhash/v2"
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"mapeditor/internal/clipboard"
	"mapeditor/internal/config"
	"mapeditor/internal/host"
	"mapeditor/internal/memhost"
)

var _ host.Host = (*Host)(nil)

const (
	eyeHeight float32 = 1.7
	walkSpeed float32 = 4   // units per second
	turnSpeed float32 = 180 // degrees per screen width
)

type Host struct {
	*memhost.Host

	cfg       *config.Config
	log       *zap.Logger
	clip      clipboard.System
	prefsPath string

	view    rl.Camera3D
	looking bool
}

// New creates a host whose catalogue is cfg.Models.
func New(cfg *config.Config, log *zap.Logger) *Host {
	models := make([]memhost.Model, 0, len(cfg.Models))
	for _, m := range cfg.Models {
		models = append(models, memhost.Model{
			Name: m.Name,
			Size: rl.Vector3{X: m.Size[0], Y: m.Size[1], Z: m.Size[2]},
		})
	}
	mem := memhost.New(models...)
	mem.Name = playerName()

	return &Host{
		Host:      mem,
		cfg:       cfg,
		log:       log,
		prefsPath: defaultPrefsPath,
	}
}

// ReadClipboardText reads the desktop clipboard. It may be called from a
// worker goroutine.
func (h *Host) ReadClipboardText() (string, error) {
	return h.clip.ReadClipboardText()
}

// Notify records and logs message. The session draws it in its overlay, so
// the window does not show it a second time.
func (h *Host) Notify(message string) {
	h.Host.Notify(message)
	h.log.Info(message)
}

// modelColor gives every model a stable colour derived from its hash.
func modelColor(id host.ModelID) rl.Color {
	var buf [4]byte
	buf[0], buf[1], buf[2], buf[3] = byte(id.Hash), byte(id.Hash>>8), byte(id.Hash>>16), byte(id.Hash>>24)
	hue := float32(xxhash.Sum64(buf[:]) % 360) // spread nearby hashes
	return rl.ColorFromHSV(hue, 0.55, 0.85)
}

// updateView points the render camera at the scripted camera if one is
// active, else at the player's eyes.
func (h *Host) updateView() {
	if h.ScriptedCamera {
		for _, c := range h.Cameras {
			h.view = viewCamera(c.Position, c.Rotation, c.FOV)
			return
		}
	}
	eye := h.PlayerPos
	eye.Z += eyeHeight
	h.view = viewCamera(eye, h.PlayerRot, h.cfg.Camera.FOV)
}

// movePlayer walks the player while it has control. forward and right are
// -1, 0 or 1; turn is a fraction of the screen width.
func (h *Host) movePlayer(forward, right, turn, dt float32) {
	if !h.PlayerControl {
		return
	}
	h.PlayerRot.Z += -turn * turnSpeed
	if forward == 0 && right == 0 {
		return
	}
	dir := rl.Vector3Normalize(rl.Vector3{X: right, Y: forward})
	yaw := h.PlayerRot.Z * rl.Deg2rad
	sin, cos := math32.Sincos(yaw)
	step := walkSpeed * dt
	h.PlayerPos.X += (dir.X*cos - dir.Y*sin) * step
	h.PlayerPos.Y += (dir.X*sin + dir.Y*cos) * step
}

func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "Player"
}
