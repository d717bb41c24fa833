package ui

import (
	"fmt"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedWidth measures every glyph as half the font size.
type fixedWidth struct{}

func (fixedWidth) MeasureText(text string, size int32) int32 {
	return int32(len(text)) * size / 2
}

type recorder struct {
	fixedWidth
	calls []string
}

func (r *recorder) DrawRectangle(x, y, w, h int32, c rl.Color) {
	r.calls = append(r.calls, fmt.Sprintf("rect %d,%d %dx%d", x, y, w, h))
}

func (r *recorder) DrawText(text string, x, y, size int32, c rl.Color) {
	r.calls = append(r.calls, fmt.Sprintf("text %q %d,%d", text, x, y))
}

func newTestMenu() *Menu[string] {
	return NewMenu("",
		MenuItem[string]{Label: "Spawn Object", Command: "spawn"},
		MenuItem[string]{Label: "Delete Object", Command: "delete"},
	)
}

func TestNavigateSaturates(t *testing.T) {
	m := newTestMenu()
	assert.Equal(t, 0, m.Focused())

	m.Navigate(Up)
	assert.Equal(t, 0, m.Focused())

	m.Navigate(Down)
	m.Navigate(Down)
	m.Navigate(Down)
	assert.Equal(t, 1, m.Focused())

	cmd, ok := m.Select()
	require.True(t, ok)
	assert.Equal(t, "delete", cmd)
}

func TestEmptyMenu(t *testing.T) {
	m := NewMenu[string]("")
	m.Navigate(Down)
	assert.Equal(t, -1, m.Focused())
	_, ok := m.Select()
	assert.False(t, ok)
}

func TestHiddenMenuHasNoLayout(t *testing.T) {
	m := newTestMenu()
	assert.Empty(t, m.Layout(fixedWidth{}))
}

func TestLayoutHighlightsFocusedItem(t *testing.T) {
	m := newTestMenu()
	m.Visible = true
	m.Navigate(Down)

	elems := m.Layout(fixedWidth{})
	require.Len(t, elems, 4)

	assert.Equal(t, Rectangle, elems[0].Kind)
	assert.Equal(t, m.Style.Background, elems[0].Color)
	assert.Equal(t, Text, elems[1].Kind)
	assert.Equal(t, "Spawn Object", elems[1].Text)

	assert.Equal(t, m.Style.Focused, elems[2].Color)
	assert.Equal(t, "Delete Object", elems[3].Text)
	assert.Equal(t, m.Style.FocusText, elems[3].Color)

	rowHeight := m.Style.FontSize + 2*m.Style.Padding
	assert.Equal(t, m.Style.Y+rowHeight, elems[2].Y)
	assert.Equal(t, int32(len("Delete Object"))*10+8, elems[2].Width)
}

func TestLayoutWithTitle(t *testing.T) {
	m := newTestMenu()
	m.Title = "Map Editor"
	m.Visible = true
	elems := m.Layout(fixedWidth{})
	require.Len(t, elems, 6)
	assert.Equal(t, "Map Editor", elems[1].Text)
}

func TestRenderDispatchesByKind(t *testing.T) {
	r := &recorder{}
	Render(r, []Element{
		NewRectangle(1, 2, 3, 4, rl.Black),
		NewText("hi", 5, 6, 10, rl.White),
	})
	assert.Equal(t, []string{"rect 1,2 3x4", `text "hi" 5,6`}, r.calls)
	assert.Equal(t, "Rectangle", Rectangle.String())
	assert.Equal(t, "Text", Text.String())
}
