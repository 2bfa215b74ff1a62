package waterregion

import "github.com/udisondev/waterways/internal/track"

// EdgeBits marks which tiles along one region edge a ship can cross.
// Bit i is edge offset i.
type EdgeBits uint16

// labelStorage says how a region answers label queries.
type labelStorage uint8

const (
	storageNoWater     labelStorage = iota // every tile is InvalidLabel
	storageSinglePatch                     // every tile is FirstLabel
	storageMultiPatch                      // per-tile lookup in labels
)

type labelArray [TilesPerRegion]Label

// WaterRegion is the cached connectivity of one region.
// Fields are only meaningful while initialized is true.
type WaterRegion struct {
	initialized          bool
	crossRegionAqueducts bool
	patches              int
	edgeBits             [track.DiagDirEnd]EdgeBits

	storage labelStorage
	labels  *labelArray // non-nil only for storageMultiPatch
}

func (r *WaterRegion) label(local int) Label {
	switch r.storage {
	case storageNoWater:
		return InvalidLabel
	case storageSinglePatch:
		return FirstLabel
	default:
		return r.labels[local]
	}
}
