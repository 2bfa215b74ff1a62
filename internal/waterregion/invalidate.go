package waterregion

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/udisondev/waterways/internal/tilemap"
)

// InvalidateTile marks the region containing t stale. Call it after any edit
// to t that can change water connectivity.
func (s *Store) InvalidateTile(t tilemap.TileIndex) {
	s.RegionAt(t).Invalidate()
}

// InvalidateTiles marks every region touched by tiles stale, once per region.
// It returns the number of distinct regions invalidated.
func (s *Store) InvalidateTiles(tiles []tilemap.TileIndex) int {
	dirty := mapset.New[Index]()
	for _, t := range tiles {
		dirty.Put(s.grid.RegionIndexOf(t))
	}
	dirty.Each(func(i Index) {
		s.regions[i].initialized = false
	})
	return dirty.Size()
}

// InvalidateArea marks stale every region overlapping the w x h tile
// rectangle at (x, y), clipped to the map. It returns the number of regions hit.
func (s *Store) InvalidateArea(x, y, w, h uint32) int {
	dims := s.grid.Dims()
	if w == 0 || h == 0 || x >= dims.SizeX() || y >= dims.SizeY() {
		return 0
	}
	x1 := uint32(min(uint64(x)+uint64(w), uint64(dims.SizeX())) - 1)
	y1 := uint32(min(uint64(y)+uint64(h), uint64(dims.SizeY())) - 1)

	n := 0
	for ry := y >> EdgeLengthLog; ry <= y1>>EdgeLengthLog; ry++ {
		for rx := x >> EdgeLengthLog; rx <= x1>>EdgeLengthLog; rx++ {
			s.regions[s.grid.IndexOf(Coord{X: rx, Y: ry})].initialized = false
			n++
		}
	}
	return n
}
