package waterregion

import (
	"fmt"

	"github.com/udisondev/waterways/internal/tilemap"
	"github.com/udisondev/waterways/internal/track"
)

// Ref is a handle to one region of a Store. Cached-field readers require
// UpdateIfNotInitialized first; with the waterregiondebug build tag a stale
// read panics, otherwise it returns whatever was cached.
type Ref struct {
	store  *Store
	coord  Coord
	region *WaterRegion
}

// Coord returns the region coordinate.
func (r Ref) Coord() Coord {
	return r.coord
}

// Index returns the flat region index.
func (r Ref) Index() Index {
	return r.store.grid.IndexOf(r.coord)
}

// Initialized reports whether the cached fields match the map.
func (r Ref) Initialized() bool {
	return r.region.initialized
}

// UpdateIfNotInitialized recomputes the region if it is stale.
func (r Ref) UpdateIfNotInitialized() {
	if !r.region.initialized {
		r.ForceUpdate()
	}
}

// ForceUpdate recomputes the region from tile data.
func (r Ref) ForceUpdate() {
	r.store.forceUpdate(r.coord, r.region)
}

// Invalidate marks the region stale. The work happens on the next read.
func (r Ref) Invalidate() {
	r.region.initialized = false
}

// Label returns the patch label of t, InvalidLabel for tiles without water.
// Panics if t is outside the region.
func (r Ref) Label(t tilemap.TileIndex) Label {
	r.mustBeInitialized()
	return r.region.label(r.store.grid.LocalIndex(r.coord, t))
}

// NumberOfPatches returns how many disjoint water patches the region has.
func (r Ref) NumberOfPatches() int {
	r.mustBeInitialized()
	return r.region.patches
}

// EdgeTraversabilityBits returns the crossable tiles along side.
func (r Ref) EdgeTraversabilityBits(side track.DiagDir) EdgeBits {
	r.mustBeInitialized()
	return r.region.edgeBits[side]
}

// HasCrossRegionAqueducts reports whether an aqueduct leaves the region.
func (r Ref) HasCrossRegionAqueducts() bool {
	r.mustBeInitialized()
	return r.region.crossRegionAqueducts
}

// HasPatchStorage reports whether labels are stored per tile.
func (r Ref) HasPatchStorage() bool {
	r.mustBeInitialized()
	return r.region.storage == storageMultiPatch
}

func (r Ref) mustBeInitialized() {
	if debugChecks && !r.region.initialized {
		panic(fmt.Sprintf("waterregion: read of uninitialized region (%d,%d)", r.coord.X, r.coord.Y))
	}
}
