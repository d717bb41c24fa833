// Package ui holds the editor overlay: a focusable action menu and the flat
// list of rectangles and text a host draws each frame.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Kind int

const (
	Rectangle Kind = iota
	Text
)

func (k Kind) String() string {
	switch k {
	case Rectangle:
		return "Rectangle"
	case Text:
		return "Text"
	}
	return "Unknown"
}

// Element is one overlay primitive in screen pixels. Text elements use Text
// and FontSize; rectangles use Width and Height.
type Element struct {
	Kind     Kind
	X, Y     int32
	Width    int32
	Height   int32
	Text     string
	FontSize int32
	Color    rl.Color
}

func NewRectangle(x, y, w, h int32, c rl.Color) Element {
	return Element{Kind: Rectangle, X: x, Y: y, Width: w, Height: h, Color: c}
}

func NewText(text string, x, y, size int32, c rl.Color) Element {
	return Element{Kind: Text, X: x, Y: y, Text: text, FontSize: size, Color: c}
}

// TextMeasurer reports the pixel width of text at a font size.
type TextMeasurer interface {
	MeasureText(text string, fontSize int32) int32
}

// Renderer is the drawing surface of a host.
type Renderer interface {
	TextMeasurer
	DrawRectangle(x, y, width, height int32, c rl.Color)
	DrawText(text string, x, y, fontSize int32, c rl.Color)
}

// Render draws elems in order.
func Render(r Renderer, elems []Element) {
	for _, e := range elems {
		switch e.Kind {
		case Rectangle:
			r.DrawRectangle(e.X, e.Y, e.Width, e.Height, e.Color)
		case Text:
			r.DrawText(e.Text, e.X, e.Y, e.FontSize, e.Color)
		}
	}
}

// Theme colours, dark with an indigo accent.
var (
	ColorBgPanel     = rl.NewColor(18, 18, 24, 220)
	ColorAccent      = rl.NewColor(108, 99, 255, 255)
	ColorTextPrimary = rl.NewColor(255, 255, 255, 255)
	ColorTextMuted   = rl.NewColor(200, 200, 208, 255)
	ColorIndicator   = rl.NewColor(255, 203, 0, 255)
)
