// Package input turns held keys into commands once per tick, applying
// repeat, cooldown and edit-mode gating.
package input

import (
	"fmt"
)

// Binding ties a key to a command.
type Binding[C any] struct {
	Name    string
	Key     Key
	Command C
	// Repeatable bindings fire every tick while held. Others fire once per press.
	Repeatable bool
	// Cooldown is the number of ticks that must pass after a firing before
	// the binding can fire again.
	Cooldown int64
	// OutsideEditMode allows the binding while the editor is inactive.
	OutsideEditMode bool
}

type bindingState[C any] struct {
	Binding[C]
	lastUsed int64
	used     bool
}

// Dispatcher tracks held keys and fires bindings on Dispatch.
type Dispatcher[C any] struct {
	bindings []*bindingState[C]
	byKey    map[Key]*bindingState[C]
	held     map[Key]struct{}
	handled  map[Key]struct{}
	tick     int64
}

// NewDispatcher builds a dispatcher over a fixed binding table. Each key may
// be bound once.
func NewDispatcher[C any](bindings []Binding[C]) (*Dispatcher[C], error) {
	d := &Dispatcher[C]{
		bindings: make([]*bindingState[C], 0, len(bindings)),
		byKey:    make(map[Key]*bindingState[C], len(bindings)),
		held:     make(map[Key]struct{}),
		handled:  make(map[Key]struct{}),
	}
	for _, b := range bindings {
		if prev, ok := d.byKey[b.Key]; ok {
			return nil, fmt.Errorf("key %s bound to both %q and %q", KeyName(b.Key), prev.Name, b.Name)
		}
		s := &bindingState[C]{Binding: b}
		d.bindings = append(d.bindings, s)
		d.byKey[b.Key] = s
	}
	return d, nil
}

func (d *Dispatcher[C]) KeyDown(k Key) {
	d.held[k] = struct{}{}
}

// KeyUp releases k, which re-arms a non-repeatable binding for the next press.
func (d *Dispatcher[C]) KeyUp(k Key) {
	delete(d.held, k)
	delete(d.handled, k)
}

func (d *Dispatcher[C]) IsHeld(k Key) bool {
	_, ok := d.held[k]
	return ok
}

// ReleaseAll forgets every held key, e.g. when the window loses focus.
func (d *Dispatcher[C]) ReleaseAll() {
	clear(d.held)
	clear(d.handled)
}

// Tick is the number of Dispatch calls so far.
func (d *Dispatcher[C]) Tick() int64 { return d.tick }

// Dispatch calls fire for every binding whose key is held and whose gates
// pass, in binding table order. Each binding fires at most once per call.
// editMode is asked again for every binding, so a binding that toggles the
// mode affects the bindings after it in the same call.
func (d *Dispatcher[C]) Dispatch(editMode func() bool, fire func(C)) {
	now := d.tick
	d.tick++

	for _, b := range d.bindings {
		if _, ok := d.held[b.Key]; !ok {
			continue
		}
		if !b.OutsideEditMode && !editMode() {
			continue
		}
		if b.used && now-b.lastUsed <= b.Cooldown {
			continue
		}
		if !b.Repeatable {
			if _, done := d.handled[b.Key]; done {
				continue
			}
			d.handled[b.Key] = struct{}{}
		}
		b.lastUsed = now
		b.used = true
		fire(b.Command)
	}
}
