package tilemap

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/udisondev/waterways/internal/track"
)

var (
	ErrBadDims     = errors.New("invalid map dimensions")
	ErrOutOfBounds = errors.New("tile out of bounds")
	ErrOccupied    = errors.New("tile is occupied by an aqueduct")
	ErrBadAqueduct = errors.New("invalid aqueduct")
)

// Kind is what occupies a tile as far as ships are concerned.
type Kind uint8

const (
	KindLand Kind = iota
	KindWater
	KindAqueduct
)

func (k Kind) String() string {
	switch k {
	case KindLand:
		return "land"
	case KindWater:
		return "water"
	case KindAqueduct:
		return "aqueduct"
	default:
		return "unknown"
	}
}

type tile struct {
	kind   Kind
	tracks track.Bits

	// Aqueduct heads only.
	bridgeDir track.DiagDir // towards the other head
	other     TileIndex
}

// Map is a rectangular tile map with water tracks and aqueducts.
// It answers the ship-movement questions of the water region engine.
// Not safe for concurrent use.
type Map struct {
	dims  Dims
	tiles []tile
}

// New creates an all-land map of 2^logX x 2^logY tiles.
func New(logX, logY uint) (*Map, error) {
	dims, err := NewDims(logX, logY)
	if err != nil {
		return nil, err
	}
	return &Map{
		dims:  dims,
		tiles: make([]tile, dims.NumTiles()),
	}, nil
}

// Dims returns the map dimensions.
func (m *Map) Dims() Dims {
	return m.dims
}

// TileXY packs coordinates using the map dimensions.
func (m *Map) TileXY(x, y uint32) TileIndex {
	return m.dims.TileXY(x, y)
}

func (m *Map) index(x, y uint32) (TileIndex, error) {
	if !m.dims.InBounds(int(x), int(y)) {
		return 0, fmt.Errorf("tile (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	return m.dims.TileXY(x, y), nil
}

func (m *Map) editable(x, y uint32) (TileIndex, error) {
	t, err := m.index(x, y)
	if err != nil {
		return 0, err
	}
	if m.tiles[t].kind == KindAqueduct {
		return 0, fmt.Errorf("tile (%d,%d): %w", x, y, ErrOccupied)
	}
	return t, nil
}

// SetWater turns (x, y) into open water navigable in every direction.
func (m *Map) SetWater(x, y uint32) error {
	return m.SetTracks(x, y, track.BitsAll)
}

// SetTracks sets the water tracks of (x, y). An empty set makes it land.
// Canals and coasts carry a subset of the tracks.
func (m *Map) SetTracks(x, y uint32, tracks track.Bits) error {
	t, err := m.editable(x, y)
	if err != nil {
		return err
	}
	if tracks&track.BitsAll == track.BitsNone {
		m.tiles[t] = tile{}
		return nil
	}
	m.tiles[t] = tile{kind: KindWater, tracks: tracks & track.BitsAll}
	return nil
}

// SetLand removes any water from (x, y).
func (m *Map) SetLand(x, y uint32) error {
	return m.SetTracks(x, y, track.BitsNone)
}

// BuildAqueduct builds an aqueduct between two land tiles on the same row or column.
// Tiles between the heads are left untouched.
func (m *Map) BuildAqueduct(x0, y0, x1, y1 uint32) error {
	a, err := m.editable(x0, y0)
	if err != nil {
		return err
	}
	b, err := m.editable(x1, y1)
	if err != nil {
		return err
	}
	var dir track.DiagDir
	switch {
	case y0 == y1 && x1 > x0:
		dir = track.DiagDirSW
	case y0 == y1 && x1 < x0:
		dir = track.DiagDirNE
	case x0 == x1 && y1 > y0:
		dir = track.DiagDirSE
	case x0 == x1 && y1 < y0:
		dir = track.DiagDirNW
	default:
		return fmt.Errorf("aqueduct (%d,%d)-(%d,%d) is not straight: %w", x0, y0, x1, y1, ErrBadAqueduct)
	}
	if m.tiles[a].kind != KindLand || m.tiles[b].kind != KindLand {
		return fmt.Errorf("aqueduct (%d,%d)-(%d,%d) heads must be on land: %w", x0, y0, x1, y1, ErrBadAqueduct)
	}

	axis := track.AxisBits(dir.Axis())
	m.tiles[a] = tile{kind: KindAqueduct, tracks: axis, bridgeDir: dir, other: b}
	m.tiles[b] = tile{kind: KindAqueduct, tracks: axis, bridgeDir: dir.Reverse(), other: a}
	return nil
}

// RemoveAqueduct demolishes the aqueduct with a head at (x, y). Both heads become land.
func (m *Map) RemoveAqueduct(x, y uint32) error {
	t, err := m.index(x, y)
	if err != nil {
		return err
	}
	if m.tiles[t].kind != KindAqueduct {
		return fmt.Errorf("tile (%d,%d) has no aqueduct: %w", x, y, ErrBadAqueduct)
	}
	other := m.tiles[t].other
	m.tiles[t] = tile{}
	m.tiles[other] = tile{}
	return nil
}

// Kind returns what occupies t.
func (m *Map) Kind(t TileIndex) Kind {
	return m.tiles[t].kind
}

// WaterTracks returns the tracks a ship may use on t.
func (m *Map) WaterTracks(t TileIndex) track.Bits {
	return m.tiles[t].tracks
}

// IsAqueduct reports whether t is an aqueduct head.
func (m *Map) IsAqueduct(t TileIndex) bool {
	return m.tiles[t].kind == KindAqueduct
}

// OtherBridgeEnd returns the far head of the aqueduct at t.
// Panics if t is not an aqueduct head.
func (m *Map) OtherBridgeEnd(t TileIndex) TileIndex {
	if m.tiles[t].kind != KindAqueduct {
		panic(fmt.Sprintf("tilemap: tile %d is not an aqueduct head", t))
	}
	return m.tiles[t].other
}

// Fingerprint hashes the dimensions and every tile. Two maps with the same
// fingerprint give identical water connectivity.
func (m *Map) Fingerprint() [32]byte {
	buf := make([]byte, 0, 2+len(m.tiles)*7)
	buf = append(buf, byte(m.dims.LogX), byte(m.dims.LogY))
	for _, t := range m.tiles {
		buf = append(buf, byte(t.kind), byte(t.tracks), byte(t.bridgeDir))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(t.other))
	}
	return blake2b.Sum256(buf)
}
