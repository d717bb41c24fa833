package game

import (
	"fmt"

	"mapeditor/internal/config"
	"mapeditor/internal/input"
)

// Command is an editor action a key binding or menu item can trigger.
type Command int

const (
	CmdToggleEditor Command = iota
	CmdSpawn
	CmdDelete
	CmdLoad
	CmdSave
	CmdSelectPrevious
	CmdSelectNext
	CmdCycleMode
	CmdCycleAxis
	CmdMenuUp
	CmdMenuDown
	CmdMenuSelect
	CmdTransformNegative
	CmdTransformPositive
	CmdMoveForward
	CmdMoveBackward
	CmdMoveLeft
	CmdMoveRight
	CmdMoveUp
	CmdMoveDown
	CmdSpeedFast
	CmdSpeedSlow

	commandCount
)

var commandNames = [commandCount]string{
	CmdToggleEditor:      "toggle_editor",
	CmdSpawn:             "spawn",
	CmdDelete:            "delete",
	CmdLoad:              "load",
	CmdSave:              "save",
	CmdSelectPrevious:    "select_previous",
	CmdSelectNext:        "select_next",
	CmdCycleMode:         "cycle_mode",
	CmdCycleAxis:         "cycle_axis",
	CmdMenuUp:            "menu_up",
	CmdMenuDown:          "menu_down",
	CmdMenuSelect:        "menu_select",
	CmdTransformNegative: "transform_negative",
	CmdTransformPositive: "transform_positive",
	CmdMoveForward:       "move_forward",
	CmdMoveBackward:      "move_backward",
	CmdMoveLeft:          "move_left",
	CmdMoveRight:         "move_right",
	CmdMoveUp:            "move_up",
	CmdMoveDown:          "move_down",
	CmdSpeedFast:         "speed_fast",
	CmdSpeedSlow:         "speed_slow",
}

var commandsByName map[string]Command

func init() {
	commandsByName = make(map[string]Command, commandCount)
	for c, name := range commandNames {
		commandsByName[name] = Command(c)
	}
}

func (c Command) String() string {
	if c < 0 || c >= commandCount {
		return fmt.Sprintf("Command(%d)", int(c))
	}
	return commandNames[c]
}

func ParseCommand(name string) (Command, error) {
	if c, ok := commandsByName[name]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown command %q", name)
}

// Bindings resolves configured key bindings into dispatcher bindings.
func Bindings(cfg []config.BindingConfig) ([]input.Binding[Command], error) {
	out := make([]input.Binding[Command], 0, len(cfg))
	for i, b := range cfg {
		cmd, err := ParseCommand(b.Command)
		if err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}
		key, err := input.ParseKey(b.Key)
		if err != nil {
			return nil, fmt.Errorf("binding %d (%s): %w", i, b.Command, err)
		}
		out = append(out, input.Binding[Command]{
			Name:            b.Command,
			Key:             key,
			Command:         cmd,
			Repeatable:      b.Repeatable,
			Cooldown:        b.Cooldown,
			OutsideEditMode: b.OutsideEditMode,
		})
	}
	return out, nil
}
