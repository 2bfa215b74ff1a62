package waterregion

import (
	"fmt"
	"iter"

	"github.com/udisondev/waterways/internal/tilemap"
	"github.com/udisondev/waterways/internal/track"
)

// Coord is a region position in the region grid.
type Coord struct {
	X, Y uint32
}

// Index is the row-major position of a region in the store.
type Index uint32

// Grid maps tiles to regions for fixed map dimensions.
// It has no mutable state and is cheap to copy.
type Grid struct {
	dims  tilemap.Dims
	shift uint // log2(regions per row)
}

// NewGrid returns the region grid for a map. Map edges must be at least EdgeLength tiles.
func NewGrid(dims tilemap.Dims) Grid {
	if dims.LogX < EdgeLengthLog || dims.LogY < EdgeLengthLog {
		panic(fmt.Sprintf("waterregion: map 2^%d x 2^%d smaller than one region", dims.LogX, dims.LogY))
	}
	return Grid{dims: dims, shift: dims.LogX - EdgeLengthLog}
}

// Dims returns the map dimensions the grid was built for.
func (g Grid) Dims() tilemap.Dims {
	return g.dims
}

// RegionsX returns the number of regions per row.
func (g Grid) RegionsX() uint32 {
	return g.dims.SizeX() >> EdgeLengthLog
}

// RegionsY returns the number of region rows.
func (g Grid) RegionsY() uint32 {
	return g.dims.SizeY() >> EdgeLengthLog
}

// NumRegions returns the total number of regions.
func (g Grid) NumRegions() int {
	return int(g.RegionsX()) * int(g.RegionsY())
}

// RegionOf returns the region containing t.
func (g Grid) RegionOf(t tilemap.TileIndex) Coord {
	return Coord{
		X: g.dims.TileX(t) >> EdgeLengthLog,
		Y: g.dims.TileY(t) >> EdgeLengthLog,
	}
}

// IndexOf returns the flat index of c.
func (g Grid) IndexOf(c Coord) Index {
	return Index(c.Y<<g.shift + c.X)
}

// CoordOf is the inverse of IndexOf.
func (g Grid) CoordOf(i Index) Coord {
	return Coord{
		X: uint32(i) & (g.RegionsX() - 1),
		Y: uint32(i) >> g.shift,
	}
}

// RegionIndexOf returns the flat index of the region containing t.
func (g Grid) RegionIndexOf(t tilemap.TileIndex) Index {
	return g.IndexOf(g.RegionOf(t))
}

// InGrid reports whether c is a valid region coordinate.
func (g Grid) InGrid(c Coord) bool {
	return c.X < g.RegionsX() && c.Y < g.RegionsY()
}

// Origin returns the north corner tile of c.
func (g Grid) Origin(c Coord) tilemap.TileIndex {
	return g.dims.TileXY(c.X<<EdgeLengthLog, c.Y<<EdgeLengthLog)
}

// Contains reports whether t lies inside region c.
func (g Grid) Contains(c Coord, t tilemap.TileIndex) bool {
	return g.dims.TileX(t)>>EdgeLengthLog == c.X && g.dims.TileY(t)>>EdgeLengthLog == c.Y
}

// LocalIndex returns the row-major offset of t inside c.
// Panics when t is outside c.
func (g Grid) LocalIndex(c Coord, t tilemap.TileIndex) int {
	if !g.Contains(c, t) {
		panic(fmt.Sprintf("waterregion: tile (%d,%d) outside region (%d,%d)",
			g.dims.TileX(t), g.dims.TileY(t), c.X, c.Y))
	}
	lx := g.dims.TileX(t) - c.X<<EdgeLengthLog
	ly := g.dims.TileY(t) - c.Y<<EdgeLengthLog
	return int(lx + ly*EdgeLength)
}

// EdgeTile returns the tile at offset i along side of region c.
// NE and SW edges run along Y, NW and SE edges along X.
func (g Grid) EdgeTile(c Coord, side track.DiagDir, i int) tilemap.TileIndex {
	if i < 0 || i >= EdgeLength {
		panic(fmt.Sprintf("waterregion: edge offset %d out of range", i))
	}
	x := c.X << EdgeLengthLog
	y := c.Y << EdgeLengthLog
	switch side {
	case track.DiagDirNE:
		return g.dims.TileXY(x, y+uint32(i))
	case track.DiagDirSW:
		return g.dims.TileXY(x+EdgeLength-1, y+uint32(i))
	case track.DiagDirNW:
		return g.dims.TileXY(x+uint32(i), y)
	case track.DiagDirSE:
		return g.dims.TileXY(x+uint32(i), y+EdgeLength-1)
	default:
		panic(fmt.Sprintf("waterregion: invalid side %d", side))
	}
}

// CenterTile returns the tile in the middle of c.
func (g Grid) CenterTile(c Coord) tilemap.TileIndex {
	return g.dims.TileXY(c.X<<EdgeLengthLog+EdgeLength/2, c.Y<<EdgeLengthLog+EdgeLength/2)
}

// Neighbor returns the region adjacent to c across side, false at the grid border.
func (g Grid) Neighbor(c Coord, side track.DiagDir) (Coord, bool) {
	dx, dy := side.Offset()
	x := int64(c.X) + int64(dx)
	y := int64(c.Y) + int64(dy)
	if x < 0 || y < 0 || x >= int64(g.RegionsX()) || y >= int64(g.RegionsY()) {
		return Coord{}, false
	}
	return Coord{X: uint32(x), Y: uint32(y)}, true
}

// Tiles yields every tile of c, Y outer and X inner.
func (g Grid) Tiles(c Coord) iter.Seq[tilemap.TileIndex] {
	return func(yield func(tilemap.TileIndex) bool) {
		x0 := c.X << EdgeLengthLog
		y0 := c.Y << EdgeLengthLog
		for ly := range uint32(EdgeLength) {
			for lx := range uint32(EdgeLength) {
				if !yield(g.dims.TileXY(x0+lx, y0+ly)) {
					return
				}
			}
		}
	}
}

// PatchHash packs a patch into a key unique across the whole map.
func (g Grid) PatchHash(p PatchDesc) uint32 {
	return uint32(p.Label) | uint32(g.IndexOf(p.Coord()))<<8
}
