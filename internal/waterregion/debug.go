package waterregion

import (
	"fmt"
	"strconv"
	"strings"
)

// DebugString renders the region's labels as EdgeLength rows of text,
// '.' for tiles without water and a base-36 digit (or '+') otherwise.
// The region is brought up to date first.
func (r Ref) DebugString() string {
	r.UpdateIfNotInitialized()

	var b strings.Builder
	fmt.Fprintf(&b, "region (%d,%d) patches=%d aqueducts=%t\n",
		r.coord.X, r.coord.Y, r.region.patches, r.region.crossRegionAqueducts)
	for ly := range EdgeLength {
		for lx := range EdgeLength {
			b.WriteByte(labelGlyph(r.region.label(lx + ly*EdgeLength)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func labelGlyph(l Label) byte {
	switch {
	case l == InvalidLabel:
		return '.'
	case l < 36:
		return strconv.FormatInt(int64(l), 36)[0]
	default:
		return '+'
	}
}
