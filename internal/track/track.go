package track

import (
	"iter"
	"math/bits"
)

var diagDirNames = [DiagDirEnd]string{"NE", "SE", "SW", "NW"}

// String returns the compass name of the direction.
func (d DiagDir) String() string {
	if d >= DiagDirEnd {
		return "invalid"
	}
	return diagDirNames[d]
}

// Reverse returns the opposite direction.
func (d DiagDir) Reverse() DiagDir {
	return d ^ 2
}

// Axis returns the axis this direction moves along.
func (d DiagDir) Axis() Axis {
	return Axis(d & 1)
}

// Offset returns the tile delta of one step in this direction.
func (d DiagDir) Offset() (dx, dy int) {
	switch d {
	case DiagDirNE:
		return -1, 0
	case DiagDirSE:
		return 0, 1
	case DiagDirSW:
		return 1, 0
	default:
		return 0, -1
	}
}

// AllDiagDirs yields NE, SE, SW, NW in that order.
func AllDiagDirs() iter.Seq[DiagDir] {
	return func(yield func(DiagDir) bool) {
		for d := range DiagDirEnd {
			if !yield(d) {
				return
			}
		}
	}
}

var threeWay = [DiagDirEnd]Bits{Bits3WayNE, Bits3WaySE, Bits3WaySW, Bits3WayNW}

// ThreeWay returns the tracks that touch edge d of a tile.
func ThreeWay(d DiagDir) Bits {
	return threeWay[d]
}

// EnteredVia returns the tracks a ship can be on right after moving in
// direction d into a tile, i.e. the tracks touching the edge it came through.
func EnteredVia(d DiagDir) Bits {
	return threeWay[d.Reverse()]
}

// AxisBits returns the straight track along axis a.
func AxisBits(a Axis) Bits {
	if a == AxisX {
		return BitX
	}
	return BitY
}

// Has reports whether t is in the set.
func (b Bits) Has(t Track) bool {
	return b&(1<<t) != 0
}

// Trackdirs returns both travel directions of every track in the set.
func (b Bits) Trackdirs() TrackdirBits {
	return TrackdirBits(b) | TrackdirBits(b)<<8
}

// Track strips the direction.
func (td Trackdir) Track() Track {
	return Track(td & 7)
}

// IsValid reports whether td names a real trackdir.
func (td Trackdir) IsValid() bool {
	return td < TrackdirEnd && td&7 < 6
}

var exitDirs = [TrackdirEnd]DiagDir{
	TrackdirXNE:    DiagDirNE,
	TrackdirYSE:    DiagDirSE,
	TrackdirUpperE: DiagDirNE,
	TrackdirLowerE: DiagDirSE,
	TrackdirLeftS:  DiagDirSW,
	TrackdirRightS: DiagDirSE,
	TrackdirXSW:    DiagDirSW,
	TrackdirYNW:    DiagDirNW,
	TrackdirUpperW: DiagDirNW,
	TrackdirLowerW: DiagDirSW,
	TrackdirLeftN:  DiagDirNW,
	TrackdirRightN: DiagDirNE,
}

// ExitDir returns the edge a ship following td leaves the tile through.
func (td Trackdir) ExitDir() DiagDir {
	return exitDirs[td]
}

// All yields the trackdirs in the set in ascending order.
func (b TrackdirBits) All() iter.Seq[Trackdir] {
	return func(yield func(Trackdir) bool) {
		for rest := b; rest != 0; rest &= rest - 1 {
			if !yield(Trackdir(bits.TrailingZeros16(uint16(rest)))) {
				return
			}
		}
	}
}
