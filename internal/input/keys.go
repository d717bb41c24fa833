package input

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Key is a raylib keyboard key code.
type Key int32

var keyNames = map[string]Key{
	"A": rl.KeyA, "B": rl.KeyB, "C": rl.KeyC, "D": rl.KeyD, "E": rl.KeyE,
	"F": rl.KeyF, "G": rl.KeyG, "H": rl.KeyH, "I": rl.KeyI, "J": rl.KeyJ,
	"K": rl.KeyK, "L": rl.KeyL, "M": rl.KeyM, "N": rl.KeyN, "O": rl.KeyO,
	"P": rl.KeyP, "Q": rl.KeyQ, "R": rl.KeyR, "S": rl.KeyS, "T": rl.KeyT,
	"U": rl.KeyU, "V": rl.KeyV, "W": rl.KeyW, "X": rl.KeyX, "Y": rl.KeyY,
	"Z": rl.KeyZ,

	"0": rl.KeyZero, "1": rl.KeyOne, "2": rl.KeyTwo, "3": rl.KeyThree, "4": rl.KeyFour,
	"5": rl.KeyFive, "6": rl.KeySix, "7": rl.KeySeven, "8": rl.KeyEight, "9": rl.KeyNine,

	"F1": rl.KeyF1, "F2": rl.KeyF2, "F3": rl.KeyF3, "F4": rl.KeyF4,
	"F5": rl.KeyF5, "F6": rl.KeyF6, "F7": rl.KeyF7, "F8": rl.KeyF8,
	"F9": rl.KeyF9, "F10": rl.KeyF10, "F11": rl.KeyF11, "F12": rl.KeyF12,

	"Up": rl.KeyUp, "Down": rl.KeyDown, "Left": rl.KeyLeft, "Right": rl.KeyRight,

	"Enter":     rl.KeyEnter,
	"Escape":    rl.KeyEscape,
	"Space":     rl.KeySpace,
	"Tab":       rl.KeyTab,
	"Backspace": rl.KeyBackspace,
	"Delete":    rl.KeyDelete,
	"Insert":    rl.KeyInsert,
	"Home":      rl.KeyHome,
	"End":       rl.KeyEnd,
	"PageUp":    rl.KeyPageUp,
	"PageDown":  rl.KeyPageDown,

	"LeftShift":    rl.KeyLeftShift,
	"RightShift":   rl.KeyRightShift,
	"LeftControl":  rl.KeyLeftControl,
	"RightControl": rl.KeyRightControl,
	"LeftAlt":      rl.KeyLeftAlt,
	"RightAlt":     rl.KeyRightAlt,

	"LeftBracket":  rl.KeyLeftBracket,
	"RightBracket": rl.KeyRightBracket,
	"Comma":        rl.KeyComma,
	"Period":       rl.KeyPeriod,
	"Minus":        rl.KeyMinus,
	"Equal":        rl.KeyEqual,
	"Slash":        rl.KeySlash,
	"Semicolon":    rl.KeySemicolon,
	"Apostrophe":   rl.KeyApostrophe,
}

var namesByKey map[Key]string

// lowered lets config files spell key names in any case.
var lowered map[string]Key

func init() {
	namesByKey = make(map[Key]string, len(keyNames))
	lowered = make(map[string]Key, len(keyNames))
	for name, k := range keyNames {
		namesByKey[k] = name
		lowered[strings.ToLower(name)] = k
	}
}

// ParseKey resolves a key name such as "F1", "LeftShift" or "comma".
func ParseKey(name string) (Key, error) {
	if k, ok := lowered[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// KeyName returns the canonical name of k.
func KeyName(k Key) string {
	if name, ok := namesByKey[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int32(k))
}

// Keys returns every nameable key, for hosts that poll key state.
func Keys() []Key {
	out := make([]Key, 0, len(namesByKey))
	for k := range namesByKey {
		out = append(out, k)
	}
	return out
}

func (k Key) String() string { return KeyName(k) }
