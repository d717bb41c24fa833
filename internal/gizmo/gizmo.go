// Package gizmo holds the transform mode and axis selection that turns a
// signed input amount into a translation or rotation delta.
package gizmo

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Mode int

const (
	Translation Mode = iota
	Rotation

	modeCount = 2
)

func (m Mode) String() string {
	switch m {
	case Translation:
		return "Translation"
	case Rotation:
		return "Rotation"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ

	axisCount = 3
)

var axisNames = [axisCount]string{"X", "Y", "Z"}

var axes = [axisCount]rl.Vector3{
	{X: 1},
	{Y: 1},
	{Z: 1},
}

func (a Axis) String() string {
	if a < 0 || a >= axisCount {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisNames[a]
}

// Unit returns the world basis vector for the axis.
func (a Axis) Unit() rl.Vector3 {
	return axes[a]
}

// Speeds scale one unit of input. Translation is in world units, rotation in
// degrees.
type Speeds struct {
	Translation float32
	Rotation    float32
}

func DefaultSpeeds() Speeds {
	return Speeds{Translation: 0.025, Rotation: 1}
}

// State is the current transform mode and the axis chosen for each mode.
// The two axes are independent and survive mode switches.
type State struct {
	speeds          Speeds
	mode            Mode
	translationAxis Axis
	rotationAxis    Axis
}

func New(speeds Speeds) *State {
	return &State{speeds: speeds}
}

func (s *State) Mode() Mode            { return s.mode }
func (s *State) TranslationAxis() Axis { return s.translationAxis }
func (s *State) RotationAxis() Axis    { return s.rotationAxis }

// Axis returns the axis of the current mode.
func (s *State) Axis() Axis {
	if s.mode == Rotation {
		return s.rotationAxis
	}
	return s.translationAxis
}

// CycleMode advances to the next mode and returns a status line for the
// operator.
func (s *State) CycleMode() string {
	s.mode = (s.mode + 1) % modeCount
	return fmt.Sprintf("Transformation Mode: %s", s.mode)
}

// CycleAxis advances the axis of the current mode only and returns a status
// line for the operator.
func (s *State) CycleAxis() string {
	switch s.mode {
	case Rotation:
		s.rotationAxis = (s.rotationAxis + 1) % axisCount
		return fmt.Sprintf("Rotation Axis: %s", s.rotationAxis)
	default:
		s.translationAxis = (s.translationAxis + 1) % axisCount
		return fmt.Sprintf("Translation Axis: %s", s.translationAxis)
	}
}

// Delta converts a signed amount into a world-space delta for the active
// mode and axis.
func (s *State) Delta(amount float32) (rl.Vector3, Mode) {
	speed := s.speeds.Translation
	if s.mode == Rotation {
		speed = s.speeds.Rotation
	}
	return rl.Vector3Scale(s.Axis().Unit(), amount*speed), s.mode
}

// Describe summarises the state, e.g. "Translation X".
func (s *State) Describe() string {
	return fmt.Sprintf("%s %s", s.mode, s.Axis())
}
