package track

// DiagDir is one of the four tile edges. X grows towards SW, Y grows towards SE.
type DiagDir uint8

const (
	DiagDirNE DiagDir = iota // -X
	DiagDirSE                // +Y
	DiagDirSW                // +X
	DiagDirNW                // -Y
	DiagDirEnd
)

// Axis is the coordinate a DiagDir moves along.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Track is a single piece of track within a tile.
type Track uint8

const (
	TrackX     Track = iota // NE <-> SW
	TrackY                  // NW <-> SE
	TrackUpper              // N corner: NW <-> NE
	TrackLower              // S corner: SW <-> SE
	TrackLeft               // W corner: NW <-> SW
	TrackRight              // E corner: NE <-> SE
	TrackEnd
)

// Bits is a set of tracks on a tile.
type Bits uint8

const (
	BitX     Bits = 1 << TrackX
	BitY     Bits = 1 << TrackY
	BitUpper Bits = 1 << TrackUpper
	BitLower Bits = 1 << TrackLower
	BitLeft  Bits = 1 << TrackLeft
	BitRight Bits = 1 << TrackRight

	BitsNone Bits = 0
	BitsAll  Bits = BitX | BitY | BitUpper | BitLower | BitLeft | BitRight
)

// Tracks touching each edge of a tile. A ship can only cross edge d
// while on one of these.
const (
	Bits3WayNE = BitX | BitUpper | BitRight
	Bits3WaySE = BitY | BitLower | BitRight
	Bits3WaySW = BitX | BitLower | BitLeft
	Bits3WayNW = BitY | BitUpper | BitLeft
)

// Trackdir is a track plus a direction of travel along it.
// Values 6, 7, 14 and 15 are unused.
type Trackdir uint8

const (
	TrackdirXNE    Trackdir = 0
	TrackdirYSE    Trackdir = 1
	TrackdirUpperE Trackdir = 2
	TrackdirLowerE Trackdir = 3
	TrackdirLeftS  Trackdir = 4
	TrackdirRightS Trackdir = 5
	TrackdirXSW    Trackdir = 8
	TrackdirYNW    Trackdir = 9
	TrackdirUpperW Trackdir = 10
	TrackdirLowerW Trackdir = 11
	TrackdirLeftN  Trackdir = 12
	TrackdirRightN Trackdir = 13
	TrackdirEnd    Trackdir = 14
)

// TrackdirBits is a set of trackdirs.
type TrackdirBits uint16

const TrackdirBitsNone TrackdirBits = 0
