package rlhost

import (
	"context"
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"mapeditor/internal/game"
	"mapeditor/internal/host"
	"mapeditor/internal/input"
	"mapeditor/internal/ui"
)

var _ game.Screen = (*Host)(nil)
var _ ui.Renderer = (*Host)(nil)

const statusBarHeight = 24

// Run opens the window and drives s until the window closes or ctx ends.
// It must be called from the main goroutine.
func (h *Host) Run(ctx context.Context, s *game.Session) error {
	w := h.cfg.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(w.TargetFPS)
	rl.SetExitKey(rl.KeyNull)
	initRayguiStyle()

	if p := LoadPrefs(h.prefsPath); p != nil {
		h.applyPrefs(p)
		if p.WindowWidth > 0 && p.WindowHeight > 0 {
			rl.SetWindowSize(p.WindowWidth, p.WindowHeight)
			rl.SetWindowPosition(p.WindowX, p.WindowY)
		}
	}
	defer h.savePrefs()

	keys := input.Keys()
	h.log.Info("window open", zap.Int32("width", w.Width), zap.Int32("height", w.Height))

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			break
		}
		h.pollKeys(s, keys)
		h.pollMouse(s)
		s.Tick(ctx)
		h.updateView()
		h.draw(s)
	}
	return ctx.Err()
}

// pollKeys turns raylib key edges into session key events.
func (h *Host) pollKeys(s *game.Session, keys []input.Key) {
	if !rl.IsWindowFocused() {
		s.ReleaseKeys()
		return
	}
	for _, k := range keys {
		if rl.IsKeyPressed(int32(k)) {
			s.KeyDown(k)
		}
		if rl.IsKeyReleased(int32(k)) {
			s.KeyUp(k)
		}
	}
}

// pollMouse handles right-drag look. The cursor is captured while the
// button is held and the first frame's delta is dropped.
func (h *Host) pollMouse(s *game.Session) {
	width, height := h.ScreenSize()
	var dx, dy float32
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		if !h.looking {
			rl.DisableCursor()
			h.looking = true
		} else {
			d := rl.GetMouseDelta()
			dx, dy = d.X/float32(width), d.Y/float32(height)
		}
	} else if h.looking {
		rl.EnableCursor()
		h.looking = false
	}

	if s.Active() {
		s.Look(dx, dy)
		return
	}
	var forward, right float32
	if rl.IsKeyDown(rl.KeyW) {
		forward++
	}
	if rl.IsKeyDown(rl.KeyS) {
		forward--
	}
	if rl.IsKeyDown(rl.KeyD) {
		right++
	}
	if rl.IsKeyDown(rl.KeyA) {
		right--
	}
	h.movePlayer(forward, right, dx, rl.GetFrameTime())
}

func (h *Host) draw(s *game.Session) {
	rl.BeginDrawing()
	rl.ClearBackground(colorSky)

	rl.BeginMode3D(h.view)
	rl.DrawPlane(rl.Vector3{}, rl.Vector2{X: 400, Y: 400}, colorGround)
	rl.DrawGrid(200, 1)
	h.drawEntities(s)
	if !s.Active() {
		h.drawPlayerMarker()
	}
	rl.EndMode3D()

	ui.Render(h, s.Overlay(h))
	h.drawStatusBar(s)
	width, _ := h.ScreenSize()
	rl.DrawFPS(width-90, 40)

	rl.EndDrawing()
}

func (h *Host) drawEntities(s *game.Session) {
	var selected host.EntityHandle
	if obj := s.Registry().Selected(); obj != nil {
		selected = obj.Entity
	}
	for _, e := range h.Entities {
		size := sizeToRender(e.Size)
		center := toRender(e.Position)
		center.Y += size.Y / 2

		rl.PushMatrix()
		rl.Translatef(center.X, center.Y, center.Z)
		rl.Rotatef(e.Rotation.Z, 0, 1, 0)
		rl.Rotatef(e.Rotation.X, 1, 0, 0)
		rl.Rotatef(e.Rotation.Y, 0, 0, -1)
		rl.DrawCubeV(rl.Vector3{}, size, modelColor(e.Model))
		rl.DrawCubeWiresV(rl.Vector3{}, size, colorGrid)
		if e.Handle == selected {
			rl.DrawCubeWiresV(rl.Vector3{}, rl.Vector3Scale(size, 1.05), colorSelected)
		}
		rl.PopMatrix()
	}
}

func (h *Host) drawPlayerMarker() {
	foot := toRender(h.PlayerPos)
	foot.Y += eyeHeight / 2
	rl.DrawCubeWiresV(foot, rl.Vector3{X: 0.5, Y: eyeHeight, Z: 0.5}, colorBorder)
}

func (h *Host) drawStatusBar(s *game.Session) {
	width, height := h.ScreenSize()
	gui.StatusBar(rl.Rectangle{
		X:      0,
		Y:      float32(height - statusBarHeight),
		Width:  float32(width),
		Height: statusBarHeight,
	}, statusBarText(s))
}

// statusBarText summarises the session state. Status messages are left to
// the session overlay.
func statusBarText(s *game.Session) string {
	mode := "Play"
	if s.Active() {
		mode = "Edit | " + s.Gizmo().Describe()
	}
	path := s.MapPath()
	if s.Modified() {
		path += "*"
	}
	return fmt.Sprintf("%s | %d objects | %s", mode, s.Registry().Len(), path)
}

// ui.Renderer and game.Screen

func (h *Host) DrawRectangle(x, y, width, height int32, c rl.Color) {
	rl.DrawRectangle(x, y, width, height, c)
}

func (h *Host) DrawText(text string, x, y, fontSize int32, c rl.Color) {
	rl.DrawText(text, x, y, fontSize, c)
}

func (h *Host) MeasureText(text string, fontSize int32) int32 {
	return rl.MeasureText(text, fontSize)
}

func (h *Host) ScreenSize() (int32, int32) {
	return int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
}

func (h *Host) WorldToScreen(p rl.Vector3) (rl.Vector2, bool) {
	rp := toRender(p)
	if !inFront(h.view, rp) {
		return rl.Vector2{}, false
	}
	return rl.GetWorldToScreen(rp, h.view), true
}
