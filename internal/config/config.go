// Package config loads the editor's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"mapeditor/internal/input"
)

const DefaultPath = "config/editor.yaml"

type Config struct {
	Camera           CameraConfig    `yaml:"camera"`
	Gizmo            GizmoConfig     `yaml:"gizmo"`
	MapPath          string          `yaml:"map_path"`
	MapDescription   string          `yaml:"map_description"`
	ClipboardTimeout time.Duration   `yaml:"clipboard_timeout"`
	LogLevel         string          `yaml:"log_level"`
	Window           WindowConfig    `yaml:"window"`
	Bindings         []BindingConfig `yaml:"bindings"`
	Models           []ModelConfig   `yaml:"models"`
}

type CameraConfig struct {
	MovementSpeed float32 `yaml:"movement_speed"`
	RotationSpeed float32 `yaml:"rotation_speed"`
	MinPitch      float32 `yaml:"min_pitch"`
	MaxPitch      float32 `yaml:"max_pitch"`
	FOV           float32 `yaml:"fov"`
	FastModifier  float32 `yaml:"fast_modifier"`
	SlowModifier  float32 `yaml:"slow_modifier"`
}

type GizmoConfig struct {
	TranslationSpeed float32 `yaml:"translation_speed"`
	RotationSpeed    float32 `yaml:"rotation_speed"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

// BindingConfig maps a key name to a command name. Command names are
// resolved by the editor session.
type BindingConfig struct {
	Command         string `yaml:"command"`
	Key             string `yaml:"key"`
	Repeatable      bool   `yaml:"repeatable,omitempty"`
	Cooldown        int64  `yaml:"cooldown,omitempty"`
	OutsideEditMode bool   `yaml:"outside_edit_mode,omitempty"`
}

// ModelConfig is a prop the window host can spawn.
type ModelConfig struct {
	Name string     `yaml:"name"`
	Size [3]float32 `yaml:"size"`
}

func Default() *Config {
	return &Config{
		Camera: CameraConfig{
			MovementSpeed: 0.1,
			RotationSpeed: 360,
			MinPitch:      -85,
			MaxPitch:      85,
			FOV:           75,
			FastModifier:  10,
			SlowModifier:  0.1,
		},
		Gizmo: GizmoConfig{
			TranslationSpeed: 0.025,
			RotationSpeed:    1,
		},
		MapPath:          "maps/map.json",
		ClipboardTimeout: 250 * time.Millisecond,
		LogLevel:         "info",
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Map Editor",
			TargetFPS: 60,
		},
		Bindings: DefaultBindings(),
		Models: []ModelConfig{
			{Name: "p_crate", Size: [3]float32{1, 1, 1}},
			{Name: "p_barrel", Size: [3]float32{0.6, 0.6, 1}},
			{Name: "p_chair01x", Size: [3]float32{0.5, 0.5, 1}},
			{Name: "p_table", Size: [3]float32{2, 1, 0.8}},
			{Name: "p_fence", Size: [3]float32{3, 0.2, 1.2}},
		},
	}
}

// DefaultBindings is the stock key table.
func DefaultBindings() []BindingConfig {
	return []BindingConfig{
		{Command: "toggle_editor", Key: "F1", OutsideEditMode: true},
		{Command: "spawn", Key: "F2"},
		{Command: "delete", Key: "Delete"},
		{Command: "load", Key: "F3"},
		{Command: "save", Key: "F4"},
		{Command: "select_previous", Key: "LeftBracket"},
		{Command: "select_next", Key: "RightBracket"},
		{Command: "cycle_mode", Key: "Comma"},
		{Command: "cycle_axis", Key: "Period"},
		{Command: "menu_up", Key: "Up"},
		{Command: "menu_down", Key: "Down"},
		{Command: "menu_select", Key: "Enter"},
		{Command: "transform_negative", Key: "Left", Repeatable: true},
		{Command: "transform_positive", Key: "Right", Repeatable: true},
		{Command: "move_forward", Key: "W", Repeatable: true},
		{Command: "move_backward", Key: "S", Repeatable: true},
		{Command: "move_left", Key: "A", Repeatable: true},
		{Command: "move_right", Key: "D", Repeatable: true},
		{Command: "move_up", Key: "E", Repeatable: true},
		{Command: "move_down", Key: "Q", Repeatable: true},
		{Command: "speed_fast", Key: "LeftShift", Repeatable: true},
		{Command: "speed_slow", Key: "LeftControl", Repeatable: true},
	}
}

// Load reads path over the defaults. A missing file yields Default().
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Decode parses YAML over the defaults and validates the result. A bindings
// or models list in the document replaces the default one.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Camera.MovementSpeed <= 0 || c.Camera.RotationSpeed <= 0 {
		errs = append(errs, errors.New("camera speeds must be positive"))
	}
	if c.Camera.MinPitch >= c.Camera.MaxPitch {
		errs = append(errs, fmt.Errorf("camera min_pitch %v must be below max_pitch %v", c.Camera.MinPitch, c.Camera.MaxPitch))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %v out of range", c.Camera.FOV))
	}
	if c.Gizmo.TranslationSpeed <= 0 || c.Gizmo.RotationSpeed <= 0 {
		errs = append(errs, errors.New("gizmo speeds must be positive"))
	}
	if c.ClipboardTimeout < 0 {
		errs = append(errs, errors.New("clipboard_timeout must not be negative"))
	}
	if c.MapPath == "" {
		errs = append(errs, errors.New("map_path is empty"))
	}

	seen := make(map[input.Key]string, len(c.Bindings))
	for i, b := range c.Bindings {
		k, err := input.ParseKey(b.Key)
		if err != nil {
			errs = append(errs, fmt.Errorf("binding %d (%s): %w", i, b.Command, err))
			continue
		}
		if prev, ok := seen[k]; ok {
			errs = append(errs, fmt.Errorf("binding %d: key %s bound to both %s and %s", i, input.KeyName(k), prev, b.Command))
			continue
		}
		seen[k] = b.Command
		if b.Cooldown < 0 {
			errs = append(errs, fmt.Errorf("binding %d (%s): negative cooldown", i, b.Command))
		}
	}
	for i, m := range c.Models {
		if m.Name == "" {
			errs = append(errs, fmt.Errorf("model %d has no name", i))
		}
	}
	return errors.Join(errs...)
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := &Config{}
	if err := copier.CopyWithOption(out, c, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Sprintf("config: clone: %v", err))
	}
	return out
}

// Save writes c as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
