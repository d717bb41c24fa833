package rlhost

import (
	"encoding/json"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const defaultPrefsPath = ".editor_prefs.json"

// Prefs is window and player state kept between runs.
type Prefs struct {
	WindowWidth    int        `json:"windowWidth"`
	WindowHeight   int        `json:"windowHeight"`
	WindowX        int        `json:"windowX"`
	WindowY        int        `json:"windowY"`
	PlayerPosition rl.Vector3 `json:"playerPosition"`
	PlayerYaw      float32    `json:"playerYaw"`
}

// LoadPrefs returns nil when there is no usable prefs file.
func LoadPrefs(path string) *Prefs {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return nil
	}
	return &p
}

func (p *Prefs) Save(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// applyPrefs restores the player pose. Window geometry is applied by Run
// once the window exists.
func (h *Host) applyPrefs(p *Prefs) {
	if p == nil {
		return
	}
	h.PlayerPos = p.PlayerPosition
	h.PlayerRot = rl.Vector3{Z: p.PlayerYaw}
}

func (h *Host) capturePrefs() *Prefs {
	pos := rl.GetWindowPosition()
	return &Prefs{
		WindowWidth:    rl.GetScreenWidth(),
		WindowHeight:   rl.GetScreenHeight(),
		WindowX:        int(pos.X),
		WindowY:        int(pos.Y),
		PlayerPosition: h.PlayerPos,
		PlayerYaw:      h.PlayerRot.Z,
	}
}

func (h *Host) savePrefs() {
	if err := h.capturePrefs().Save(h.prefsPath); err != nil {
		h.log.Warn("save editor prefs", zap.Error(err))
	}
}
