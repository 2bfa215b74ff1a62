package waterregion

import (
	"slices"

	"github.com/udisondev/waterways/internal/track"
)

// VisitNeighborsOnSide calls fn for every patch of the region across side
// that patch p connects to, at most once per patch, in edge offset order.
func (s *Store) VisitNeighborsOnSide(p PatchDesc, side track.DiagDir, fn func(PatchDesc)) {
	if !p.IsValid() {
		return
	}

	current := s.Region(p.Coord())
	current.UpdateIfNotInitialized()

	nc, ok := s.grid.Neighbor(p.Coord(), side)
	if !ok {
		return
	}
	neighbor := s.Region(nc)
	neighbor.UpdateIfNotInitialized()

	opposite := side.Reverse()
	crossing := current.EdgeTraversabilityBits(side) & neighbor.EdgeTraversabilityBits(opposite)
	if crossing == 0 {
		return
	}

	// Any crossing joins the only patch on each side.
	if current.NumberOfPatches() == 1 && neighbor.NumberOfPatches() == 1 {
		fn(PatchDesc{X: nc.X, Y: nc.Y, Label: FirstLabel})
		return
	}

	var seen [EdgeLength]Label
	n := 0
	for i := range EdgeLength {
		if crossing&(1<<i) == 0 {
			continue
		}
		if current.Label(s.grid.EdgeTile(p.Coord(), side, i)) != p.Label {
			continue
		}
		label := neighbor.Label(s.grid.EdgeTile(nc, opposite, i))
		if !slices.Contains(seen[:n], label) {
			seen[n] = label
			n++
		}
	}

	for _, label := range seen[:n] {
		fn(PatchDesc{X: nc.X, Y: nc.Y, Label: label})
	}
}

// VisitPatchNeighbors calls fn for every patch reachable from p by crossing
// one region edge (sides NE, SE, SW, NW in turn) or one aqueduct leaving
// p's region. A patch reached through several aqueducts is reported once per
// aqueduct.
func (s *Store) VisitPatchNeighbors(p PatchDesc, fn func(PatchDesc)) {
	if !p.IsValid() {
		return
	}
	for side := range track.AllDiagDirs() {
		s.VisitNeighborsOnSide(p, side, fn)
	}

	current := s.Region(p.Coord())
	current.UpdateIfNotInitialized()
	if !current.HasCrossRegionAqueducts() {
		return
	}

	// Aqueducts can land in any region, not just adjacent ones.
	index := current.Index()
	for t := range s.grid.Tiles(p.Coord()) {
		if !s.oracle.IsAqueduct(t) || s.PatchInfo(t) != p {
			continue
		}
		far := s.oracle.OtherBridgeEnd(t)
		if s.grid.RegionIndexOf(far) != index {
			fn(s.PatchInfo(far))
		}
	}
}
