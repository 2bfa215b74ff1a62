package waterregion

import (
	"log/slog"

	"github.com/udisondev/waterways/internal/track"
)

// forceUpdate recomputes every cached field of r from tile data.
//
// Patches are found by flood fill from each tile in row-major order, so the
// same map always yields the same label numbers. The fill follows ships'
// movement rules through the oracle and never leaves the region.
func (s *Store) forceUpdate(c Coord, r *WaterRegion) {
	slog.Debug("updating water region", "x", c.X, "y", c.Y)

	r.crossRegionAqueducts = false

	labels := r.labels
	if labels == nil {
		labels = s.acquireLabels()
	}
	clear(labels[:])

	current := int(FirstLabel)
	highest := 0
	overflow := false

	for start := range s.grid.Tiles(c) {
		if !r.crossRegionAqueducts && s.oracle.IsAqueduct(start) {
			r.crossRegionAqueducts = !s.grid.Contains(c, s.oracle.OtherBridgeEnd(start))
		}

		label := Label(min(current, int(MaxLabel)))
		labeled := false

		s.stack = append(s.stack[:0], start)
		for len(s.stack) > 0 {
			tile := s.stack[len(s.stack)-1]
			s.stack = s.stack[:len(s.stack)-1]

			tracks := s.oracle.WaterTracks(tile)
			if tracks == track.BitsNone {
				continue
			}
			slot := &labels[s.grid.LocalIndex(c, tile)]
			if *slot != InvalidLabel {
				continue
			}

			*slot = label
			highest = int(label)
			labeled = true

			for td := range tracks.Trackdirs().All() {
				if next, ok := s.oracle.Follow(tile, td); ok && s.grid.Contains(c, next) {
					s.stack = append(s.stack, next)
				}
			}
		}

		if labeled {
			if current > int(MaxLabel) {
				overflow = true
			}
			current++
		}
	}

	if overflow {
		slog.Warn("water region has more patches than labels, excess patches merged",
			"x", c.X, "y", c.Y, "patches", current-1, "max", MaxLabel)
	}

	r.patches = highest
	r.initialized = true
	s.updateEdgeBits(c, r)

	switch {
	case highest == 0:
		r.storage = storageNoWater
	case highest == int(FirstLabel) && allFirst(labels):
		r.storage = storageSinglePatch
	default:
		r.storage = storageMultiPatch
		r.labels = labels
		return
	}
	r.labels = nil
	s.releaseLabels(labels)
}

// updateEdgeBits marks edge tiles that carry a track touching their edge.
// Offsets always run along increasing X or Y so facing edges line up.
func (s *Store) updateEdgeBits(c Coord, r *WaterRegion) {
	for side := range track.AllDiagDirs() {
		outward := track.ThreeWay(side)
		var bits EdgeBits
		for i := range EdgeLength {
			if s.oracle.WaterTracks(s.grid.EdgeTile(c, side, i))&outward != track.BitsNone {
				bits |= 1 << i
			}
		}
		r.edgeBits[side] = bits
	}
}

func allFirst(labels *labelArray) bool {
	for _, l := range labels {
		if l != FirstLabel {
			return false
		}
	}
	return true
}
