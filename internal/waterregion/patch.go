package waterregion

import "fmt"

// Label identifies a water patch inside one region.
type Label uint8

// PatchDesc identifies a water patch on the whole map.
type PatchDesc struct {
	X, Y  uint32
	Label Label
}

// Coord returns the region holding the patch.
func (p PatchDesc) Coord() Coord {
	return Coord{X: p.X, Y: p.Y}
}

// IsValid reports whether the patch refers to water.
func (p PatchDesc) IsValid() bool {
	return p.Label != InvalidLabel
}

func (p PatchDesc) String() string {
	return fmt.Sprintf("(%d,%d)#%d", p.X, p.Y, p.Label)
}
