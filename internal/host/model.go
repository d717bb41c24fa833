package host

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

var ErrInvalidModel = errors.New("invalid model identifier")

// ModelID names a spawnable model either by name or by its numeric hash.
type ModelID struct {
	Name string
	Hash uint32
}

// ParseModelID accepts a plain model name or a 0x-prefixed hexadecimal hash.
func ParseModelID(s string) (ModelID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ModelID{}, fmt.Errorf("%w: empty", ErrInvalidModel)
	}
	if hex, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return ModelID{}, fmt.Errorf("%w: %q", ErrInvalidModel, s)
		}
		return ModelID{Hash: uint32(v)}, nil
	}
	return ModelID{Name: s, Hash: HashModel(s)}, nil
}

// HashModel maps a model name to the 32-bit key hosts index models by.
// Names are case-insensitive.
func HashModel(name string) uint32 {
	return uint32(xxhash.Sum64String(strings.ToLower(name)))
}

func (m ModelID) String() string {
	if m.Name != "" {
		return m.Name
	}
	return fmt.Sprintf("0x%08X", m.Hash)
}
