package tilemap

import (
	"fmt"

	"github.com/udisondev/waterways/internal/track"
)

// Map size limits, as log2 of the edge length in tiles.
const (
	MinMapLog = 4  // 16 tiles
	MaxMapLog = 12 // 4096 tiles
)

// TileIndex is a tile's position packed as y<<LogX | x.
type TileIndex uint32

// Dims holds the power-of-two dimensions of a map.
type Dims struct {
	LogX uint
	LogY uint
}

// NewDims validates the map size exponents.
func NewDims(logX, logY uint) (Dims, error) {
	if logX < MinMapLog || logX > MaxMapLog || logY < MinMapLog || logY > MaxMapLog {
		return Dims{}, fmt.Errorf("map size 2^%d x 2^%d outside [2^%d, 2^%d]: %w",
			logX, logY, MinMapLog, MaxMapLog, ErrBadDims)
	}
	return Dims{LogX: logX, LogY: logY}, nil
}

// SizeX returns the map width in tiles.
func (d Dims) SizeX() uint32 {
	return 1 << d.LogX
}

// SizeY returns the map height in tiles.
func (d Dims) SizeY() uint32 {
	return 1 << d.LogY
}

// NumTiles returns the total number of tiles.
func (d Dims) NumTiles() int {
	return 1 << (d.LogX + d.LogY)
}

// TileXY packs tile coordinates. Coordinates must be in bounds.
func (d Dims) TileXY(x, y uint32) TileIndex {
	return TileIndex(y<<d.LogX | x)
}

// TileX returns the X coordinate of t.
func (d Dims) TileX(t TileIndex) uint32 {
	return uint32(t) & (d.SizeX() - 1)
}

// TileY returns the Y coordinate of t.
func (d Dims) TileY(t TileIndex) uint32 {
	return uint32(t) >> d.LogX
}

// InBounds reports whether (x, y) lies on the map.
func (d Dims) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < int(d.SizeX()) && y < int(d.SizeY())
}

// Step returns the neighbor of t in direction dir, false at the map border.
func (d Dims) Step(t TileIndex, dir track.DiagDir) (TileIndex, bool) {
	dx, dy := dir.Offset()
	x := int(d.TileX(t)) + dx
	y := int(d.TileY(t)) + dy
	if !d.InBounds(x, y) {
		return t, false
	}
	return d.TileXY(uint32(x), uint32(y)), true
}

// DistanceManhattan returns |dx| + |dy| between two tiles.
func (d Dims) DistanceManhattan(a, b TileIndex) uint32 {
	return absDiff(d.TileX(a), d.TileX(b)) + absDiff(d.TileY(a), d.TileY(b))
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
