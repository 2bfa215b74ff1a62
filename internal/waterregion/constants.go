package waterregion

// Region geometry. EdgeBits holds one bit per edge tile, so EdgeLength
// cannot exceed 16 without widening it.
const (
	EdgeLengthLog  = 4
	EdgeLength     = 1 << EdgeLengthLog // 16
	TilesPerRegion = EdgeLength * EdgeLength
)

// Patch labels.
const (
	InvalidLabel Label = 0
	FirstLabel   Label = 1
	MaxLabel     Label = 255
)
