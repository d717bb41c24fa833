package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"mapeditor/internal/ui"
)

const (
	indicatorFontSize int32 = 16
	statusFontSize    int32 = 18
	gizmoFontSize     int32 = 16
)

// Screen is what the overlay needs from a host display.
type Screen interface {
	ui.TextMeasurer
	ScreenSize() (width, height int32)
	// WorldToScreen projects a world point to pixels. ok is false when the
	// point is behind the camera.
	WorldToScreen(p rl.Vector3) (pos rl.Vector2, ok bool)
}

// Overlay lays out this frame's UI: the menu, the selected object's label
// and the latest status message. Outside the editor only a fresh status is
// shown.
func (s *Session) Overlay(sc Screen) []ui.Element {
	var out []ui.Element
	if s.active {
		out = append(out, s.menu.Layout(sc)...)
		out = append(out, s.indicator(sc)...)
		out = append(out, s.gizmoLabel(sc)...)
	}
	out = append(out, s.statusLine(sc)...)
	return out
}

func (s *Session) indicator(sc Screen) []ui.Element {
	obj := s.registry.Selected()
	if obj == nil {
		return nil
	}
	pos, ok := sc.WorldToScreen(obj.Position)
	if !ok {
		return nil
	}
	w := sc.MeasureText(obj.Model, indicatorFontSize)
	return []ui.Element{
		ui.NewText(obj.Model, int32(pos.X)-w/2, int32(pos.Y)-indicatorFontSize/2, indicatorFontSize, ui.ColorIndicator),
	}
}

func (s *Session) gizmoLabel(sc Screen) []ui.Element {
	text := s.gizmo.Describe()
	width, _ := sc.ScreenSize()
	w := sc.MeasureText(text, gizmoFontSize)
	return []ui.Element{
		ui.NewText(text, width-w-15, 15, gizmoFontSize, ui.ColorTextPrimary),
	}
}

func (s *Session) statusLine(sc Screen) []ui.Element {
	if s.status == "" || s.tick-s.statusTick >= statusTicks {
		return nil
	}
	_, height := sc.ScreenSize()
	const pad int32 = 6
	w := sc.MeasureText(s.status, statusFontSize) + 2*pad
	y := height - statusFontSize - 2*pad - 40
	return []ui.Element{
		ui.NewRectangle(10, y, w, statusFontSize+2*pad, ui.ColorBgPanel),
		ui.NewText(s.status, 10+pad, y+pad, statusFontSize, ui.ColorTextPrimary),
	}
}
