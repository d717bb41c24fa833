package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cmd int

const (
	cmdToggle cmd = iota
	cmdSpawn
	cmdMove
	cmdSlow
)

func newTestDispatcher(t *testing.T) *Dispatcher[cmd] {
	t.Helper()
	d, err := NewDispatcher([]Binding[cmd]{
		{Name: "Toggle", Key: mustKey(t, "F1"), Command: cmdToggle, OutsideEditMode: true},
		{Name: "Spawn", Key: mustKey(t, "F2"), Command: cmdSpawn},
		{Name: "Move", Key: mustKey(t, "W"), Command: cmdMove, Repeatable: true},
		{Name: "Slow", Key: mustKey(t, "Q"), Command: cmdSlow, Repeatable: true, Cooldown: 2},
	})
	require.NoError(t, err)
	return d
}

func mustKey(t *testing.T, name string) Key {
	t.Helper()
	k, err := ParseKey(name)
	require.NoError(t, err)
	return k
}

func collect(d *Dispatcher[cmd], editMode bool) []cmd {
	var out []cmd
	d.Dispatch(func() bool { return editMode }, func(c cmd) { out = append(out, c) })
	return out
}

func TestDuplicateKeyRejected(t *testing.T) {
	_, err := NewDispatcher([]Binding[cmd]{
		{Name: "a", Key: mustKey(t, "F1")},
		{Name: "b", Key: mustKey(t, "F1")},
	})
	assert.Error(t, err)
}

func TestUnboundAndReleasedKeysDoNothing(t *testing.T) {
	d := newTestDispatcher(t)
	d.KeyDown(mustKey(t, "Z"))
	assert.Empty(t, collect(d, true))

	d.KeyDown(mustKey(t, "W"))
	d.KeyUp(mustKey(t, "W"))
	assert.Empty(t, collect(d, true))
}

func TestEditModeGate(t *testing.T) {
	d := newTestDispatcher(t)
	d.KeyDown(mustKey(t, "F2"))
	d.KeyDown(mustKey(t, "F1"))

	assert.Equal(t, []cmd{cmdToggle}, collect(d, false), "only bindings usable outside edit mode fire")
}

func TestEditModeReadPerBinding(t *testing.T) {
	d := newTestDispatcher(t)
	d.KeyDown(mustKey(t, "F1"))
	d.KeyDown(mustKey(t, "F2"))

	editing := true
	var out []cmd
	d.Dispatch(func() bool { return editing }, func(c cmd) {
		out = append(out, c)
		if c == cmdToggle {
			editing = !editing
		}
	})
	assert.Equal(t, []cmd{cmdToggle}, out, "spawn sees the mode the toggle left behind")

	d.ReleaseAll()
	d.KeyDown(mustKey(t, "F1"))
	d.KeyDown(mustKey(t, "F2"))
	out = nil
	d.Dispatch(func() bool { return editing }, func(c cmd) {
		out = append(out, c)
		if c == cmdToggle {
			editing = !editing
		}
	})
	assert.Equal(t, []cmd{cmdToggle, cmdSpawn}, out, "entering lets later bindings fire")
}

func TestNonRepeatableFiresOncePerPress(t *testing.T) {
	d := newTestDispatcher(t)
	f2 := mustKey(t, "F2")

	d.KeyDown(f2)
	assert.Equal(t, []cmd{cmdSpawn}, collect(d, true))
	assert.Empty(t, collect(d, true))
	assert.Empty(t, collect(d, true))

	d.KeyUp(f2)
	d.KeyDown(f2)
	assert.Equal(t, []cmd{cmdSpawn}, collect(d, true), "a fresh press re-arms the binding")
}

func TestRepeatableFiresEveryTick(t *testing.T) {
	d := newTestDispatcher(t)
	d.KeyDown(mustKey(t, "W"))
	for i := 0; i < 4; i++ {
		assert.Equal(t, []cmd{cmdMove}, collect(d, true))
	}
}

func TestCooldown(t *testing.T) {
	d := newTestDispatcher(t)
	d.KeyDown(mustKey(t, "Q"))

	var fired []bool
	for i := 0; i < 7; i++ {
		fired = append(fired, len(collect(d, true)) == 1)
	}
	assert.Equal(t, []bool{true, false, false, true, false, false, true}, fired)
}

func TestBindingOrderAndOncePerTick(t *testing.T) {
	d := newTestDispatcher(t)
	d.KeyDown(mustKey(t, "W"))
	d.KeyDown(mustKey(t, "F2"))
	d.KeyDown(mustKey(t, "W"))

	assert.Equal(t, []cmd{cmdSpawn, cmdMove}, collect(d, true))
	assert.Equal(t, int64(1), d.Tick())
}

func TestReleaseAll(t *testing.T) {
	d := newTestDispatcher(t)
	d.KeyDown(mustKey(t, "W"))
	d.ReleaseAll()
	assert.False(t, d.IsHeld(mustKey(t, "W")))
	assert.Empty(t, collect(d, true))
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("leftshift")
	require.NoError(t, err)
	assert.Equal(t, "LeftShift", KeyName(k))
	assert.Equal(t, "LeftShift", k.String())

	_, err = ParseKey("Hyper")
	assert.Error(t, err)
	assert.Equal(t, "Key(-5)", KeyName(Key(-5)))
	assert.NotEmpty(t, Keys())
}
