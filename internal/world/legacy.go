package world

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Legacy maps are plain text, one object per line:
//
//	model|posX|posY|posZ|rotX|rotY|rotZ
const legacyFields = 7

// ImportLegacy reads a legacy line-format map. It is never used by Load; a
// legacy file must be converted explicitly.
func ImportLegacy(path string) (*SerializableMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Record: DocumentRecord, Err: fmt.Errorf("%w: %w", ErrIO, err)}
	}
	defer f.Close()

	m, line, err := DecodeLegacy(f)
	if err != nil {
		return nil, &LoadError{Path: path, Record: line, Err: err}
	}
	return m, nil
}

// DecodeLegacy parses legacy lines. Blank lines are skipped. On failure it
// returns the 1-based line number of the bad record.
func DecodeLegacy(r io.Reader) (*SerializableMap, int, error) {
	m := &SerializableMap{Objects: make([]SerializableMapObject, 0)}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		obj, err := parseLegacyLine(text)
		if err != nil {
			return nil, line, err
		}
		m.Objects = append(m.Objects, obj)
	}
	if err := sc.Err(); err != nil {
		return nil, line, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return m, 0, nil
}

func parseLegacyLine(text string) (SerializableMapObject, error) {
	parts := strings.Split(text, "|")
	if len(parts) != legacyFields {
		return SerializableMapObject{}, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedRecord, legacyFields, len(parts))
	}
	if parts[0] == "" {
		return SerializableMapObject{}, fmt.Errorf("%w: empty model", ErrMalformedRecord)
	}

	var v [legacyFields - 1]float32
	for i := range v {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[i+1]), 32)
		if err != nil {
			return SerializableMapObject{}, fmt.Errorf("%w: field %d: %w", ErrMalformedRecord, i+2, err)
		}
		v[i] = float32(f)
	}
	return SerializableMapObject{
		ModelName: parts[0],
		PositionX: v[0],
		PositionY: v[1],
		PositionZ: v[2],
		RotationX: v[3],
		RotationY: v[4],
		RotationZ: v[5],
	}, nil
}

// EncodeLegacy writes the objects of m in the legacy line format. Map-level
// metadata has no place in that format and is dropped. Model names that the
// format cannot carry unchanged are rejected with the object index.
func EncodeLegacy(m *SerializableMap) ([]byte, error) {
	var buf bytes.Buffer
	for i, o := range m.Objects {
		if err := checkLegacyModel(o.ModelName); err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		buf.WriteString(o.ModelName)
		for _, f := range [...]float32{o.PositionX, o.PositionY, o.PositionZ, o.RotationX, o.RotationY, o.RotationZ} {
			buf.WriteByte('|')
			buf.WriteString(strconv.FormatFloat(float64(f), 'g', -1, 32))
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func checkLegacyModel(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty model", ErrMalformedRecord)
	case strings.ContainsAny(name, "|\r\n"):
		return fmt.Errorf("%w: model %q contains a separator", ErrMalformedRecord, name)
	case strings.TrimSpace(name) != name:
		return fmt.Errorf("%w: model %q has surrounding whitespace", ErrMalformedRecord, name)
	}
	return nil
}

// ExportLegacy writes m to path in the legacy line format.
func ExportLegacy(path string, m *SerializableMap) error {
	data, err := EncodeLegacy(m)
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}
	if err := writeFileAtomic(path, data); err != nil {
		return &SaveError{Path: path, Err: fmt.Errorf("%w: %w", ErrIO, err)}
	}
	return nil
}
