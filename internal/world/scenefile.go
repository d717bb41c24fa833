package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	// ErrIO marks failures reading or writing a map file.
	ErrIO = errors.New("map file i/o")
	// ErrMalformedRecord marks a map document or object record that does not
	// decode.
	ErrMalformedRecord = errors.New("malformed map record")
)

// DocumentRecord is the LoadError.Record value for errors that are not tied
// to a single object record.
const DocumentRecord = -1

// LoadError reports a failed load. Record is the object index for JSON maps,
// the 1-based line number for legacy maps, or DocumentRecord.
type LoadError struct {
	Path   string
	Record int
	Err    error
}

func (e *LoadError) Error() string {
	if e.Record == DocumentRecord {
		return fmt.Sprintf("load map %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("load map %s: record %d: %v", e.Path, e.Record, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save map %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// --- JSON types ---

type SerializableMap struct {
	MapName     string                  `json:"map_name"`
	AuthorName  string                  `json:"author_name"`
	Description string                  `json:"map_description"`
	Objects     []SerializableMapObject `json:"map_objects"`
}

type SerializableMapObject struct {
	ModelName string  `json:"model_name"`
	PositionX float32 `json:"position_x"`
	PositionY float32 `json:"position_y"`
	PositionZ float32 `json:"position_z"`
	RotationX float32 `json:"rotation_x"`
	RotationY float32 `json:"rotation_y"`
	RotationZ float32 `json:"rotation_z"`
}

func NewSerializableMapObject(model string, position, rotation rl.Vector3) SerializableMapObject {
	return SerializableMapObject{
		ModelName: model,
		PositionX: position.X,
		PositionY: position.Y,
		PositionZ: position.Z,
		RotationX: rotation.X,
		RotationY: rotation.Y,
		RotationZ: rotation.Z,
	}
}

func (o SerializableMapObject) Position() rl.Vector3 {
	return rl.Vector3{X: o.PositionX, Y: o.PositionY, Z: o.PositionZ}
}

func (o SerializableMapObject) Rotation() rl.Vector3 {
	return rl.Vector3{X: o.RotationX, Y: o.RotationY, Z: o.RotationZ}
}

// document mirrors SerializableMap but keeps the object records raw so each
// one can be decoded and reported on its own.
type document struct {
	MapName     string            `json:"map_name"`
	AuthorName  string            `json:"author_name"`
	Description string            `json:"map_description"`
	Objects     []json.RawMessage `json:"map_objects"`
}

// objectRecord uses pointers so a missing field is distinguishable from zero.
type objectRecord struct {
	ModelName *string  `json:"model_name"`
	PositionX *float32 `json:"position_x"`
	PositionY *float32 `json:"position_y"`
	PositionZ *float32 `json:"position_z"`
	RotationX *float32 `json:"rotation_x"`
	RotationY *float32 `json:"rotation_y"`
	RotationZ *float32 `json:"rotation_z"`
}

func (r *objectRecord) resolve() (SerializableMapObject, error) {
	if r.ModelName == nil || *r.ModelName == "" {
		return SerializableMapObject{}, errors.New("missing model_name")
	}
	fields := []struct {
		name string
		v    *float32
	}{
		{"position_x", r.PositionX},
		{"position_y", r.PositionY},
		{"position_z", r.PositionZ},
		{"rotation_x", r.RotationX},
		{"rotation_y", r.RotationY},
		{"rotation_z", r.RotationZ},
	}
	for _, f := range fields {
		if f.v == nil {
			return SerializableMapObject{}, fmt.Errorf("missing %s", f.name)
		}
	}
	return SerializableMapObject{
		ModelName: *r.ModelName,
		PositionX: *r.PositionX,
		PositionY: *r.PositionY,
		PositionZ: *r.PositionZ,
		RotationX: *r.RotationX,
		RotationY: *r.RotationY,
		RotationZ: *r.RotationZ,
	}, nil
}

// --- Loading ---

// Load reads a JSON map. The whole document is validated before it is
// returned, so callers never see a partially decoded map.
func Load(path string) (*SerializableMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Record: DocumentRecord, Err: fmt.Errorf("%w: %w", ErrIO, err)}
	}
	m, record, err := Decode(data)
	if err != nil {
		return nil, &LoadError{Path: path, Record: record, Err: err}
	}
	return m, nil
}

// Decode parses a JSON map document. On failure it returns the index of the
// offending object record, or DocumentRecord. Objects is never nil in the
// result; a map without objects has an empty slice, as Registry.Snapshot
// produces.
func Decode(data []byte) (*SerializableMap, int, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, DocumentRecord, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	m := &SerializableMap{
		MapName:     doc.MapName,
		AuthorName:  doc.AuthorName,
		Description: doc.Description,
		Objects:     make([]SerializableMapObject, 0, len(doc.Objects)),
	}
	for i, raw := range doc.Objects {
		var rec objectRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, i, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
		obj, err := rec.resolve()
		if err != nil {
			return nil, i, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
		m.Objects = append(m.Objects, obj)
	}
	return m, nil
}

// --- Saving ---

// Save writes m as indented JSON, creating parent directories as needed.
func Save(path string, m *SerializableMap) error {
	data, err := Encode(m)
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &SaveError{Path: path, Err: fmt.Errorf("%w: %w", ErrIO, err)}
		}
	}
	if err := writeFileAtomic(path, data); err != nil {
		return &SaveError{Path: path, Err: fmt.Errorf("%w: %w", ErrIO, err)}
	}
	return nil
}

// writeFileAtomic writes data to a temporary file next to path and renames it
// into place, so a failed write leaves the previous file untouched.
func writeFileAtomic(path string, data []byte) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err = f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Encode renders m as indented JSON. A nil Objects slice is written as [].
func Encode(m *SerializableMap) ([]byte, error) {
	out := *m
	if out.Objects == nil {
		out.Objects = []SerializableMapObject{}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal map: %w", err)
	}
	return data, nil
}
