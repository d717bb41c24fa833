package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

type MenuItem[C any] struct {
	Label   string
	Command C
}

// Style controls menu layout and colours.
type Style struct {
	X, Y       int32
	FontSize   int32
	Padding    int32
	Background rl.Color
	Focused    rl.Color
	Text       rl.Color
	FocusText  rl.Color
}

func DefaultStyle() Style {
	return Style{
		X:          15,
		Y:          15,
		FontSize:   20,
		Padding:    4,
		Background: ColorBgPanel,
		Focused:    ColorAccent,
		Text:       ColorTextMuted,
		FocusText:  ColorTextPrimary,
	}
}

// Menu is a vertical list of actions with one focused item.
type Menu[C any] struct {
	Title   string
	Items   []MenuItem[C]
	Style   Style
	Visible bool

	focused int
}

func NewMenu[C any](title string, items ...MenuItem[C]) *Menu[C] {
	return &Menu[C]{Title: title, Items: items, Style: DefaultStyle()}
}

// Navigate moves the focus by one item, stopping at either end.
func (m *Menu[C]) Navigate(dir Direction) {
	if len(m.Items) == 0 {
		return
	}
	i := m.focused + int(dir)
	if i < 0 {
		i = 0
	}
	if i > len(m.Items)-1 {
		i = len(m.Items) - 1
	}
	m.focused = i
}

// Focused returns the index of the focused item, or -1 for an empty menu.
func (m *Menu[C]) Focused() int {
	if len(m.Items) == 0 {
		return -1
	}
	return m.focused
}

// Select returns the focused item's command.
func (m *Menu[C]) Select() (C, bool) {
	if len(m.Items) == 0 {
		var zero C
		return zero, false
	}
	return m.Items[m.focused].Command, true
}

// Layout stacks the title and items from the menu origin. Each row is as
// wide as its text plus padding. A hidden menu has no elements.
func (m *Menu[C]) Layout(tm TextMeasurer) []Element {
	if !m.Visible {
		return nil
	}
	s := m.Style
	rowHeight := s.FontSize + 2*s.Padding
	out := make([]Element, 0, 2*(len(m.Items)+1))
	y := s.Y

	if m.Title != "" {
		w := tm.MeasureText(m.Title, s.FontSize) + 2*s.Padding
		out = append(out,
			NewRectangle(s.X, y, w, rowHeight, s.Focused),
			NewText(m.Title, s.X+s.Padding, y+s.Padding, s.FontSize, s.FocusText),
		)
		y += rowHeight
	}

	for i, item := range m.Items {
		bg, fg := s.Background, s.Text
		if i == m.focused {
			bg, fg = s.Focused, s.FocusText
		}
		w := tm.MeasureText(item.Label, s.FontSize) + 2*s.Padding
		out = append(out,
			NewRectangle(s.X, y, w, rowHeight, bg),
			NewText(item.Label, s.X+s.Padding, y+s.Padding, s.FontSize, fg),
		)
		y += rowHeight
	}
	return out
}
