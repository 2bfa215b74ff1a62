package waterregion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/waterways/internal/tilemap"
	"github.com/udisondev/waterways/internal/track"
)

// 64 x 32 tiles: 4 x 2 regions.
var testDims = tilemap.Dims{LogX: 6, LogY: 5}

func TestGridSize(t *testing.T) {
	g := NewGrid(testDims)
	assert.Equal(t, uint32(4), g.RegionsX())
	assert.Equal(t, uint32(2), g.RegionsY())
	assert.Equal(t, 8, g.NumRegions())
}

func TestGridRegionOf(t *testing.T) {
	g := NewGrid(testDims)

	tests := []struct {
		name      string
		x, y      uint32
		want      Coord
		wantIndex Index
	}{
		{"origin", 0, 0, Coord{0, 0}, 0},
		{"last tile of first region", 15, 15, Coord{0, 0}, 0},
		{"second column", 16, 0, Coord{1, 0}, 1},
		{"second row", 17, 20, Coord{1, 1}, 5},
		{"map corner", 63, 31, Coord{3, 1}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := testDims.TileXY(tt.x, tt.y)
			assert.Equal(t, tt.want, g.RegionOf(tile))
			assert.Equal(t, tt.wantIndex, g.RegionIndexOf(tile))
			assert.Equal(t, tt.want, g.CoordOf(tt.wantIndex))
		})
	}
}

func TestGridIndexRoundTrip(t *testing.T) {
	g := NewGrid(testDims)
	for i := range Index(g.NumRegions()) {
		assert.Equal(t, i, g.IndexOf(g.CoordOf(i)))
	}
}

func TestGridRejectsTinyMap(t *testing.T) {
	assert.Panics(t, func() { NewGrid(tilemap.Dims{LogX: 3, LogY: 5}) })
}

func TestGridLocalIndex(t *testing.T) {
	g := NewGrid(testDims)
	c := Coord{X: 2, Y: 1}

	assert.Equal(t, 0, g.LocalIndex(c, testDims.TileXY(32, 16)))
	assert.Equal(t, 5+3*EdgeLength, g.LocalIndex(c, testDims.TileXY(37, 19)))
	assert.Equal(t, TilesPerRegion-1, g.LocalIndex(c, testDims.TileXY(47, 31)))

	assert.Panics(t, func() { g.LocalIndex(c, testDims.TileXY(31, 16)) })
	assert.Panics(t, func() { g.LocalIndex(c, testDims.TileXY(32, 15)) })
}

func TestGridEdgeTile(t *testing.T) {
	g := NewGrid(testDims)
	c := Coord{X: 1, Y: 1}

	tests := []struct {
		side track.DiagDir
		x, y uint32
	}{
		{track.DiagDirNE, 16, 19},
		{track.DiagDirSW, 31, 19},
		{track.DiagDirNW, 19, 16},
		{track.DiagDirSE, 19, 31},
	}

	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			assert.Equal(t, testDims.TileXY(tt.x, tt.y), g.EdgeTile(c, tt.side, 3))
		})
	}

	assert.Panics(t, func() { g.EdgeTile(c, track.DiagDirNE, EdgeLength) })
}

func TestGridEdgeTilesFaceEachOther(t *testing.T) {
	g := NewGrid(testDims)
	c := Coord{X: 1, Y: 0}

	for side := range track.AllDiagDirs() {
		n, ok := g.Neighbor(c, side)
		if !ok {
			continue
		}
		for i := range EdgeLength {
			here := g.EdgeTile(c, side, i)
			there := g.EdgeTile(n, side.Reverse(), i)
			next, ok := testDims.Step(here, side)
			require.True(t, ok)
			assert.Equal(t, there, next, "side %s offset %d", side, i)
		}
	}
}

func TestGridCenterTile(t *testing.T) {
	g := NewGrid(testDims)
	assert.Equal(t, testDims.TileXY(8, 8), g.CenterTile(Coord{0, 0}))
	assert.Equal(t, testDims.TileXY(56, 24), g.CenterTile(Coord{3, 1}))
}

func TestGridNeighbor(t *testing.T) {
	g := NewGrid(testDims)

	_, ok := g.Neighbor(Coord{0, 0}, track.DiagDirNE)
	assert.False(t, ok)
	_, ok = g.Neighbor(Coord{0, 0}, track.DiagDirNW)
	assert.False(t, ok)
	_, ok = g.Neighbor(Coord{3, 1}, track.DiagDirSW)
	assert.False(t, ok)
	_, ok = g.Neighbor(Coord{3, 1}, track.DiagDirSE)
	assert.False(t, ok)

	n, ok := g.Neighbor(Coord{1, 0}, track.DiagDirSE)
	require.True(t, ok)
	assert.Equal(t, Coord{1, 1}, n)

	n, ok = g.Neighbor(Coord{1, 0}, track.DiagDirNE)
	require.True(t, ok)
	assert.Equal(t, Coord{0, 0}, n)
}

func TestGridTilesOrder(t *testing.T) {
	g := NewGrid(testDims)
	c := Coord{X: 1, Y: 1}

	var tiles []tilemap.TileIndex
	for tile := range g.Tiles(c) {
		tiles = append(tiles, tile)
	}

	require.Len(t, tiles, TilesPerRegion)
	assert.Equal(t, testDims.TileXY(16, 16), tiles[0])
	assert.Equal(t, testDims.TileXY(17, 16), tiles[1])
	assert.Equal(t, testDims.TileXY(16, 17), tiles[EdgeLength])
	for i, tile := range tiles {
		assert.Equal(t, i, g.LocalIndex(c, tile))
	}
}

func TestGridPatchHash(t *testing.T) {
	g := NewGrid(testDims)

	assert.Equal(t, uint32(1), g.PatchHash(PatchDesc{X: 0, Y: 0, Label: 1}))
	assert.Equal(t, uint32(5<<8|3), g.PatchHash(PatchDesc{X: 1, Y: 1, Label: 3}))
	assert.NotEqual(t,
		g.PatchHash(PatchDesc{X: 1, Y: 0, Label: 2}),
		g.PatchHash(PatchDesc{X: 0, Y: 1, Label: 2}))
}

func BenchmarkGridRegionOf(b *testing.B) {
	g := NewGrid(testDims)
	tile := testDims.TileXY(37, 19)
	for range b.N {
		g.RegionOf(tile)
	}
}
