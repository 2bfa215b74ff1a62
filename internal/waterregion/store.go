package waterregion

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/waterways/internal/tilemap"
	"github.com/udisondev/waterways/internal/track"
)

// TrackOracle is the tile layer as seen by the region engine.
// Follow must be the same step function the ship pathfinder uses,
// otherwise cached connectivity drifts from real reachability.
type TrackOracle interface {
	Dims() tilemap.Dims
	WaterTracks(t tilemap.TileIndex) track.Bits
	IsAqueduct(t tilemap.TileIndex) bool
	OtherBridgeEnd(t tilemap.TileIndex) tilemap.TileIndex
	Follow(t tilemap.TileIndex, td track.Trackdir) (tilemap.TileIndex, bool)
}

// Store owns the cached state of every region of one map.
//
// Not safe for concurrent use: the engine runs on the simulation loop.
type Store struct {
	oracle  TrackOracle
	grid    Grid
	regions []WaterRegion

	spare *labelArray         // single-slot pool of label arrays
	stack []tilemap.TileIndex // flood-fill scratch
}

// NewStore creates a store sized to the oracle's map. No region is computed yet.
func NewStore(oracle TrackOracle) *Store {
	s := &Store{oracle: oracle}
	s.Initialize()
	return s
}

// Initialize (re)allocates all regions for the current map dimensions.
// Every region starts uninitialized. Call it again after a map resize or reload.
func (s *Store) Initialize() {
	s.grid = NewGrid(s.oracle.Dims())
	s.regions = make([]WaterRegion, s.grid.NumRegions())
	slog.Debug("water regions allocated",
		"regions_x", s.grid.RegionsX(),
		"regions_y", s.grid.RegionsY())
}

// Clear drops all regions. The store is unusable until Initialize.
func (s *Store) Clear() {
	s.regions = nil
}

// Grid returns the region grid.
func (s *Store) Grid() Grid {
	return s.grid
}

// Len returns the number of regions.
func (s *Store) Len() int {
	return len(s.regions)
}

// Region returns an accessor for region c. Panics if c is outside the grid.
func (s *Store) Region(c Coord) Ref {
	if !s.grid.InGrid(c) {
		panic(fmt.Sprintf("waterregion: region (%d,%d) outside %dx%d grid",
			c.X, c.Y, s.grid.RegionsX(), s.grid.RegionsY()))
	}
	return Ref{store: s, coord: c, region: &s.regions[s.grid.IndexOf(c)]}
}

// RegionAt returns an accessor for the region containing t.
func (s *Store) RegionAt(t tilemap.TileIndex) Ref {
	return s.Region(s.grid.RegionOf(t))
}

// RegionInfo returns the coordinate of the region containing t.
func (s *Store) RegionInfo(t tilemap.TileIndex) Coord {
	return s.grid.RegionOf(t)
}

// PatchInfo returns the water patch t belongs to, computing its region if needed.
// Land tiles get InvalidLabel.
func (s *Store) PatchInfo(t tilemap.TileIndex) PatchDesc {
	r := s.RegionAt(t)
	r.UpdateIfNotInitialized()
	return PatchDesc{X: r.coord.X, Y: r.coord.Y, Label: r.Label(t)}
}

// PatchHash packs p into a map-wide unique key.
func (s *Store) PatchHash(p PatchDesc) uint32 {
	return s.grid.PatchHash(p)
}

func (s *Store) acquireLabels() *labelArray {
	if a := s.spare; a != nil {
		s.spare = nil
		return a
	}
	return new(labelArray)
}

// releaseLabels parks a in the spare slot, or drops it if the slot is taken.
func (s *Store) releaseLabels(a *labelArray) {
	if s.spare == nil {
		s.spare = a
	}
}
