package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapeditor/internal/host"
	"mapeditor/internal/memhost"
)

func spawnN(t *testing.T, r *Registry, n int) []*MapObject {
	t.Helper()
	out := make([]*MapObject, 0, n)
	for i := 0; i < n; i++ {
		obj, err := r.Spawn("p_crate", rl.Vector3{X: float32(i)}, rl.Vector3{})
		require.NoError(t, err)
		out = append(out, obj)
	}
	return out
}

func TestSpawnSelectsNewObject(t *testing.T) {
	h := memhost.New()
	r := NewRegistry(h)

	obj, err := r.Spawn("p_crate", rl.Vector3{X: 1}, rl.Vector3{Z: 90})
	require.NoError(t, err)

	assert.Equal(t, 1, r.Len())
	assert.Same(t, obj, r.Selected())
	assert.True(t, obj.Entity.Valid())
	assert.NotEqual(t, obj.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, rl.Vector3{Z: 90}, h.EntityRotation(obj.Entity), "rotation is applied to the entity")
	assert.Same(t, obj, r.findByID(obj.ID))
}

func TestSpawnFailureLeavesRegistryUntouched(t *testing.T) {
	h := memhost.New(memhost.Model{Name: "p_crate"})
	r := NewRegistry(h)
	first := spawnN(t, r, 1)[0]

	_, err := r.Spawn("p_missing", rl.Vector3{}, rl.Vector3{})
	assert.ErrorIs(t, err, ErrCreationFailed)
	assert.Equal(t, 1, r.Len())
	assert.Same(t, first, r.Selected())

	_, err = r.Spawn("0xnothex", rl.Vector3{}, rl.Vector3{})
	assert.ErrorIs(t, err, ErrCreationFailed)
	assert.ErrorIs(t, err, host.ErrInvalidModel)
	assert.Equal(t, 1, r.Len())
}

func TestDeleteSelectedOnEmptyIsNoop(t *testing.T) {
	h := memhost.New()
	r := NewRegistry(h)

	assert.Nil(t, r.DeleteSelected())
	assert.Empty(t, h.Deleted)
	_, ok := r.SelectedIndex()
	assert.False(t, ok)
}

func TestDeleteLastObjectClearsSelection(t *testing.T) {
	h := memhost.New()
	r := NewRegistry(h)
	obj := spawnN(t, r, 1)[0]
	entity := obj.Entity

	removed := r.DeleteSelected()
	assert.Same(t, obj, removed)
	assert.Equal(t, 0, r.Len())
	assert.Nil(t, r.Selected())
	assert.Equal(t, []host.EntityHandle{entity}, h.Deleted)
	assert.False(t, removed.Entity.Valid())
}

func TestDeleteSelectsPreviousNeighbour(t *testing.T) {
	cases := []struct {
		name      string
		selectIdx int
		expected  int
	}{
		{"middle", 2, 1},
		{"first", 0, 0},
		{"last", 3, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := memhost.New()
			r := NewRegistry(h)
			objs := spawnN(t, r, 4)
			r.CycleSelection(tc.selectIdx - 3)
			idx, _ := r.SelectedIndex()
			require.Equal(t, tc.selectIdx, idx)

			r.DeleteSelected()

			idx, ok := r.SelectedIndex()
			require.True(t, ok)
			assert.Equal(t, tc.expected, idx)
			assert.Equal(t, 3, r.Len())
			assert.NotContains(t, r.Objects(), objs[tc.selectIdx])
		})
	}
}

func TestCycleSelectionSaturates(t *testing.T) {
	r := NewRegistry(memhost.New())
	assert.Nil(t, r.CycleSelection(1), "empty registry has nothing to select")

	objs := spawnN(t, r, 3)
	for i := 0; i < 5; i++ {
		r.CycleSelection(1)
	}
	assert.Same(t, objs[2], r.Selected())

	for i := 0; i < 5; i++ {
		r.CycleSelection(-1)
	}
	assert.Same(t, objs[0], r.Selected())

	r.CycleSelection(100)
	idx, _ := r.SelectedIndex()
	assert.Equal(t, 2, idx)
}

func TestTranslateAndRotateSelected(t *testing.T) {
	h := memhost.New()
	r := NewRegistry(h)

	assert.False(t, r.Translate(rl.Vector3{X: 1}), "no selection")
	assert.False(t, r.Rotate(rl.Vector3{X: 1}), "no selection")

	obj := spawnN(t, r, 1)[0]
	require.True(t, r.Translate(rl.Vector3{X: -0.1}))
	require.True(t, r.Rotate(rl.Vector3{Z: 15}))

	assert.Equal(t, rl.Vector3{X: -0.1}, obj.Position)
	assert.Equal(t, obj.Position, h.EntityPosition(obj.Entity))
	assert.Equal(t, rl.Vector3{Z: 15}, obj.Rotation)
	assert.Equal(t, obj.Rotation, h.EntityRotation(obj.Entity))
}

func TestClearDeletesEachEntityOnce(t *testing.T) {
	h := memhost.New()
	r := NewRegistry(h)
	spawnN(t, r, 3)

	r.Clear()
	r.Clear()

	assert.Equal(t, 0, r.Len())
	assert.Nil(t, r.Selected())
	assert.Len(t, h.Deleted, 3)
	assert.Empty(t, h.Entities)
}

func TestSnapshot(t *testing.T) {
	r := NewRegistry(memhost.New())
	_, err := r.Spawn("p_crate", rl.Vector3{X: 1, Y: 2, Z: 3}, rl.Vector3{Z: 45})
	require.NoError(t, err)
	_, err = r.Spawn("0x0000BEEF", rl.Vector3{X: -1}, rl.Vector3{X: 10})
	require.NoError(t, err)

	m := r.Snapshot("Player's Map", "Player", "")
	assert.Equal(t, "Player's Map", m.MapName)
	assert.Equal(t, "Player", m.AuthorName)
	require.Len(t, m.Objects, 2)
	assert.Equal(t, "p_crate", m.Objects[0].ModelName)
	assert.Equal(t, rl.Vector3{X: 1, Y: 2, Z: 3}, m.Objects[0].Position())
	assert.Equal(t, rl.Vector3{Z: 45}, m.Objects[0].Rotation())
	assert.Equal(t, "0x0000BEEF", m.Objects[1].ModelName)

	assert.Empty(t, NewRegistry(memhost.New()).Snapshot("", "", "").Objects)
}

func TestChangedEvents(t *testing.T) {
	r := NewRegistry(memhost.New())
	var kinds []ChangeKind
	r.Changed.AddListener(func(c Change) {
		require.NotNil(t, c.Object)
		kinds = append(kinds, c.Kind)
	})
	r.Changed.AddListener(nil)
	assert.Equal(t, 1, r.Changed.listenerCount())

	spawnN(t, r, 2)
	r.Translate(rl.Vector3{X: 1})
	r.Rotate(rl.Vector3{Z: 1})
	r.CycleSelection(-1)
	r.DeleteSelected()
	r.Clear()

	assert.Equal(t, []ChangeKind{
		ObjectSpawned, ObjectSpawned, ObjectMoved, ObjectRotated, ObjectRemoved, ObjectRemoved,
	}, kinds, "selection changes are not reported")

	_, err := r.Spawn("", rl.Vector3{}, rl.Vector3{})
	require.Error(t, err)
	assert.Len(t, kinds, 6, "failed spawns are not reported")

	r.Changed.removeAllListeners()
	assert.Equal(t, 0, r.Changed.listenerCount())
}

func TestChangeKindString(t *testing.T) {
	assert.Equal(t, "rotated", ObjectRotated.String())
	assert.Equal(t, "unknown", ChangeKind(42).String())
}
