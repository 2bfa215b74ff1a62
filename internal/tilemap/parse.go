package tilemap

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/waterways/internal/track"
)

// Row glyphs accepted by FromRows and map files.
const (
	GlyphLand   = '.'
	GlyphWater  = '~'
	GlyphCanalX = '-'
	GlyphCanalY = '|'
)

// File is the YAML layout of a map file.
//
//	log_x: 5
//	log_y: 5
//	rows:
//	  - "~~~~...."
//	aqueducts:
//	  - {from: [2, 0], to: [2, 7]}
//
// Rows are indexed by Y, characters by X. Missing rows and columns are land.
type File struct {
	LogX      uint           `yaml:"log_x"`
	LogY      uint           `yaml:"log_y"`
	Rows      []string       `yaml:"rows"`
	Aqueducts []AqueductSpec `yaml:"aqueducts"`
}

// AqueductSpec names the two heads of an aqueduct as [x, y] pairs.
type AqueductSpec struct {
	From [2]uint32 `yaml:"from"`
	To   [2]uint32 `yaml:"to"`
}

// FromRows builds a map from ASCII rows.
func FromRows(logX, logY uint, rows ...string) (*Map, error) {
	m, err := New(logX, logY)
	if err != nil {
		return nil, err
	}
	if len(rows) > int(m.dims.SizeY()) {
		return nil, fmt.Errorf("%d rows for a map %d tiles high: %w", len(rows), m.dims.SizeY(), ErrOutOfBounds)
	}
	for y, row := range rows {
		if len(row) > int(m.dims.SizeX()) {
			return nil, fmt.Errorf("row %d has %d tiles, map is %d wide: %w", y, len(row), m.dims.SizeX(), ErrOutOfBounds)
		}
		for x := range len(row) {
			tracks, err := glyphTracks(row[x])
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", y, x, err)
			}
			if err := m.SetTracks(uint32(x), uint32(y), tracks); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func glyphTracks(c byte) (track.Bits, error) {
	switch c {
	case GlyphLand, ' ':
		return track.BitsNone, nil
	case GlyphWater:
		return track.BitsAll, nil
	case GlyphCanalX:
		return track.BitX, nil
	case GlyphCanalY:
		return track.BitY, nil
	default:
		return track.BitsNone, fmt.Errorf("unknown tile glyph %q", c)
	}
}

// Parse decodes a YAML map file.
func Parse(data []byte) (*Map, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding map: %w", err)
	}
	m, err := FromRows(f.LogX, f.LogY, f.Rows...)
	if err != nil {
		return nil, err
	}
	for i, a := range f.Aqueducts {
		if err := m.BuildAqueduct(a.From[0], a.From[1], a.To[0], a.To[1]); err != nil {
			return nil, fmt.Errorf("aqueduct %d: %w", i, err)
		}
	}
	return m, nil
}

// LoadFile reads and parses a YAML map file.
func LoadFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing map %s: %w", path, err)
	}
	return m, nil
}
