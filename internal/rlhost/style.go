package rlhost

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"mapeditor/internal/ui"
)

var (
	colorSky      = rl.NewColor(135, 170, 205, 255)
	colorGround   = rl.NewColor(92, 110, 80, 255)
	colorGrid     = rl.NewColor(60, 72, 52, 255)
	colorSelected = rl.NewColor(255, 203, 0, 255)
	colorBgDark   = rl.NewColor(10, 10, 15, 255)
	colorBorder   = rl.NewColor(50, 50, 65, 255)
)

// initRayguiStyle applies the dark theme to the status bar.
func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(ui.ColorBgPanel))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(ui.ColorTextMuted))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(colorBorder))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}
