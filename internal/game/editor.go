// Package game wires the map editor together: it owns the free camera, the
// object registry and the transform state, and turns key bindings into
// editor commands once per tick.
package game

import (
	"context"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"mapeditor/internal/camera"
	"mapeditor/internal/clipboard"
	"mapeditor/internal/config"
	"mapeditor/internal/engine"
	"mapeditor/internal/gizmo"
	"mapeditor/internal/host"
	"mapeditor/internal/input"
	"mapeditor/internal/raycast"
	"mapeditor/internal/ui"
	"mapeditor/internal/world"
)

// statusTicks is how long a status message stays in the overlay.
const statusTicks = 180

// Session is one editor instance bound to a host.
type Session struct {
	host host.Host
	log  *zap.Logger
	cfg  *config.Config

	camera     *camera.FreeCamera
	registry   *engine.Registry
	gizmo      *gizmo.State
	dispatcher *input.Dispatcher[Command]
	menu       *ui.Menu[Command]
	clipboard  *clipboard.Reader

	active   bool
	tick     int64
	modified bool

	status     string
	statusTick int64
}

// NewSession builds a session from cfg. cfg is copied; later changes to it
// do not affect the session.
func NewSession(h host.Host, cfg *config.Config, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cfg = cfg.Clone()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	bindings, err := Bindings(cfg.Bindings)
	if err != nil {
		return nil, err
	}
	dispatcher, err := input.NewDispatcher(bindings)
	if err != nil {
		return nil, err
	}

	cs := camera.Settings{
		MovementSpeed: cfg.Camera.MovementSpeed,
		RotationSpeed: cfg.Camera.RotationSpeed,
		MinPitch:      cfg.Camera.MinPitch,
		MaxPitch:      cfg.Camera.MaxPitch,
		FOV:           cfg.Camera.FOV,
	}

	s := &Session{
		host:       h,
		log:        log,
		cfg:        cfg,
		camera:     camera.New(h, h, cs),
		registry:   engine.NewRegistry(h),
		gizmo:      gizmo.New(gizmo.Speeds{Translation: cfg.Gizmo.TranslationSpeed, Rotation: cfg.Gizmo.RotationSpeed}),
		dispatcher: dispatcher,
		menu: ui.NewMenu("Map Editor",
			ui.MenuItem[Command]{Label: "Spawn Object", Command: CmdSpawn},
			ui.MenuItem[Command]{Label: "Delete Object", Command: CmdDelete},
		),
		clipboard:  clipboard.NewReader(h, cfg.ClipboardTimeout),
		statusTick: -statusTicks,
	}
	s.registry.Changed.AddListener(s.onRegistryChange)
	return s, nil
}

func (s *Session) onRegistryChange(c engine.Change) {
	s.modified = true
	s.log.Debug("registry changed", zap.Stringer("kind", c.Kind), zap.Stringer("id", c.Object.ID))
}

func (s *Session) Active() bool               { return s.active }
func (s *Session) Camera() *camera.FreeCamera { return s.camera }
func (s *Session) Registry() *engine.Registry { return s.registry }
func (s *Session) Gizmo() *gizmo.State        { return s.gizmo }
func (s *Session) Menu() *ui.Menu[Command]    { return s.menu }
func (s *Session) Config() *config.Config     { return s.cfg }
func (s *Session) Ticks() int64               { return s.tick }
func (s *Session) Status() string             { return s.status }
func (s *Session) Modified() bool             { return s.modified }
func (s *Session) KeyDown(k input.Key)        { s.dispatcher.KeyDown(k) }
func (s *Session) KeyUp(k input.Key)          { s.dispatcher.KeyUp(k) }
func (s *Session) ReleaseKeys()               { s.dispatcher.ReleaseAll() }

// Look turns the camera by a cursor delta given as a fraction of the screen
// size. Hosts call it while the look button is held.
func (s *Session) Look(dx, dy float32) {
	if !s.active {
		return
	}
	s.camera.Rotate(rl.Vector3{X: -dy, Z: -dx})
}

// Tick runs one editor frame: bound commands fire, then the camera
// integrates the movement they requested.
func (s *Session) Tick(ctx context.Context) {
	s.dispatcher.Dispatch(s.Active, func(cmd Command) {
		s.Execute(ctx, cmd)
	})
	s.camera.OnTick()
	s.tick++
}

// Execute runs a single command immediately.
func (s *Session) Execute(ctx context.Context, cmd Command) {
	switch cmd {
	case CmdToggleEditor:
		s.toggle()
	case CmdSpawn:
		s.spawnFromClipboard(ctx)
	case CmdDelete:
		s.deleteSelected()
	case CmdLoad:
		s.loadMap()
	case CmdSave:
		s.saveMap()
	case CmdSelectPrevious:
		s.registry.CycleSelection(-1)
	case CmdSelectNext:
		s.registry.CycleSelection(1)
	case CmdCycleMode:
		s.notify(s.gizmo.CycleMode())
	case CmdCycleAxis:
		s.notify(s.gizmo.CycleAxis())
	case CmdMenuUp:
		s.menu.Navigate(ui.Up)
	case CmdMenuDown:
		s.menu.Navigate(ui.Down)
	case CmdMenuSelect:
		if item, ok := s.menu.Select(); ok && item != CmdMenuSelect {
			s.Execute(ctx, item)
		}
	case CmdTransformNegative:
		s.applyTransform(-1)
	case CmdTransformPositive:
		s.applyTransform(1)
	case CmdMoveForward:
		s.camera.Translate(camera.Forward)
	case CmdMoveBackward:
		s.camera.Translate(camera.Backward)
	case CmdMoveLeft:
		s.camera.Translate(camera.Left)
	case CmdMoveRight:
		s.camera.Translate(camera.Right)
	case CmdMoveUp:
		s.camera.Translate(camera.Up)
	case CmdMoveDown:
		s.camera.Translate(camera.Down)
	case CmdSpeedFast:
		s.camera.SetSpeedModifier(s.cfg.Camera.FastModifier)
	case CmdSpeedSlow:
		s.camera.SetSpeedModifier(s.cfg.Camera.SlowModifier)
	default:
		s.log.Warn("unhandled command", zap.Stringer("command", cmd))
	}
}

func (s *Session) toggle() {
	if s.active {
		s.exit()
	} else {
		s.enter()
	}
}

func (s *Session) enter() {
	if err := s.camera.Enter(); err != nil {
		s.log.Error("enter editor", zap.Error(err))
		s.notify("Failed to enter Map Editor")
		return
	}
	s.active = true
	s.menu.Visible = true
	s.host.SetPlayerControl(false)
	s.notify("Entered Map Editor")
}

func (s *Session) exit() {
	s.active = false
	s.camera.Exit()
	s.menu.Visible = false
	s.host.SetPlayerControl(true)
	s.notify("Exited Map Editor")
}

// Close leaves the editor and destroys every placed entity.
func (s *Session) Close() {
	if s.active {
		s.exit()
	}
	n := s.registry.Len()
	s.registry.Clear()
	s.log.Info("session closed", zap.Int("objects_removed", n))
}

func (s *Session) notify(msg string) {
	s.status = msg
	s.statusTick = s.tick
	s.host.Notify(msg)
	s.log.Debug("status", zap.String("message", msg))
}

// Spawning

func (s *Session) spawnFromClipboard(ctx context.Context) {
	model, err := s.clipboard.Read(ctx)
	if err != nil {
		s.log.Warn("clipboard read failed", zap.Error(err))
		s.notify("Failed to read clipboard")
		return
	}

	pos, hit := raycast.Placement(s.camera, s.host, 0)
	rot := rl.Vector3{Z: s.camera.Rotation().Z}
	obj := s.spawn(model, pos, rot)
	if obj != nil {
		s.log.Debug("placement", zap.Bool("hit", hit.DidHit), zap.Uint64("hit_entity", uint64(hit.Entity)))
	}
}

func (s *Session) spawn(model string, pos, rot rl.Vector3) *engine.MapObject {
	obj, err := s.registry.Spawn(model, pos, rot)
	if err != nil {
		s.log.Warn("spawn failed", zap.String("model", model), zap.Error(err))
		s.notify(fmt.Sprintf("Failed to spawn \"%s\"", model))
		return nil
	}
	s.log.Info("object created",
		zap.Stringer("id", obj.ID),
		zap.String("model", model),
		zap.Uint64("entity", uint64(obj.Entity)),
	)
	s.notify(fmt.Sprintf("Created \"%s\"", model))
	return obj
}

func (s *Session) deleteSelected() {
	obj := s.registry.DeleteSelected()
	if obj == nil {
		return
	}
	s.log.Info("object removed", zap.Stringer("id", obj.ID), zap.String("model", obj.Model))
	s.notify(fmt.Sprintf("Removed \"%s\"", obj.Model))
}

// Persistence

// MapPath is where load and save read and write the map.
func (s *Session) MapPath() string { return s.cfg.MapPath }

func (s *Session) loadMap() {
	path := s.cfg.MapPath
	m, err := world.Load(path)
	if err != nil {
		s.log.Error("load map", zap.String("path", path), zap.Error(err))
		s.notify(fmt.Sprintf("Failed to load map: %v", err))
		return
	}
	s.LoadObjects(m)
	s.log.Info("map loaded", zap.String("path", path), zap.String("name", m.MapName), zap.Int("objects", len(m.Objects)))
	s.notify(fmt.Sprintf("Map loaded: \"%s\"", path))
}

// LoadObjects spawns every object of m, appending to the registry. Objects
// the host refuses are reported and skipped.
func (s *Session) LoadObjects(m *world.SerializableMap) int {
	spawned := 0
	for _, o := range m.Objects {
		if s.spawn(o.ModelName, o.Position(), o.Rotation()) != nil {
			spawned++
		}
	}
	return spawned
}

// Snapshot is the current map as it would be saved.
func (s *Session) Snapshot() *world.SerializableMap {
	player := s.host.PlayerName()
	return s.registry.Snapshot(player+"'s Map", player, s.cfg.MapDescription)
}

func (s *Session) saveMap() {
	path := s.cfg.MapPath
	m := s.Snapshot()
	if err := world.Save(path, m); err != nil {
		s.log.Error("save map", zap.String("path", path), zap.Error(err))
		s.notify(fmt.Sprintf("Failed to save map: %v", err))
		return
	}
	s.modified = false
	s.log.Info("map saved", zap.String("path", path), zap.Int("objects", len(m.Objects)))
	s.notify(fmt.Sprintf("Map saved to %s", path))
}
