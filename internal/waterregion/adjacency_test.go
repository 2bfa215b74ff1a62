package waterregion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/waterways/internal/testutil"
	"github.com/udisondev/waterways/internal/track"
)

func collect(visit func(func(PatchDesc))) []PatchDesc {
	var got []PatchDesc
	visit(func(p PatchDesc) { got = append(got, p) })
	return got
}

func TestVisitPatchNeighborsSinglePatchFastPath(t *testing.T) {
	m := testutil.NewMap(t, 5, 4)
	testutil.FillRect(t, m, 0, 0, 32, 16, track.BitsAll)
	s := NewStore(m)

	got := collect(func(fn func(PatchDesc)) {
		s.VisitPatchNeighbors(PatchDesc{X: 0, Y: 0, Label: 1}, fn)
	})
	assert.Equal(t, []PatchDesc{{X: 1, Y: 0, Label: 1}}, got)

	got = collect(func(fn func(PatchDesc)) {
		s.VisitPatchNeighbors(PatchDesc{X: 1, Y: 0, Label: 1}, fn)
	})
	assert.Equal(t, []PatchDesc{{X: 0, Y: 0, Label: 1}}, got)
}

func TestVisitNeighborsOnSideGeneral(t *testing.T) {
	// Region (0,0) is split by a land row at y=7; region (1,0) is one lake.
	m := testutil.NewMap(t, 5, 4)
	testutil.FillRect(t, m, 0, 0, 32, 16, track.BitsAll)
	testutil.FillRect(t, m, 0, 7, 16, 1, track.BitsNone)
	s := NewStore(m)

	north := PatchDesc{X: 0, Y: 0, Label: 1}
	south := PatchDesc{X: 0, Y: 0, Label: 2}
	east := PatchDesc{X: 1, Y: 0, Label: 1}
	require.Equal(t, north, s.PatchInfo(m.TileXY(3, 3)))
	require.Equal(t, south, s.PatchInfo(m.TileXY(3, 12)))

	got := collect(func(fn func(PatchDesc)) {
		s.VisitNeighborsOnSide(east, track.DiagDirNE, fn)
	})
	assert.Equal(t, []PatchDesc{north, south}, got)

	for _, p := range []PatchDesc{north, south} {
		got = collect(func(fn func(PatchDesc)) {
			s.VisitNeighborsOnSide(p, track.DiagDirSW, fn)
		})
		assert.Equal(t, []PatchDesc{east}, got, "from %s", p)
	}
}

func TestVisitNeighborsOnSideReportsEachPatchOnce(t *testing.T) {
	// Region (1,0) holds two lakes, each touching the shared edge on many tiles.
	m := testutil.NewMap(t, 5, 4)
	testutil.FillRect(t, m, 0, 0, 32, 16, track.BitsAll)
	testutil.FillRect(t, m, 16, 8, 16, 1, track.BitsNone)
	s := NewStore(m)

	got := collect(func(fn func(PatchDesc)) {
		s.VisitNeighborsOnSide(PatchDesc{X: 0, Y: 0, Label: 1}, track.DiagDirSW, fn)
	})
	assert.Equal(t, []PatchDesc{{X: 1, Y: 0, Label: 1}, {X: 1, Y: 0, Label: 2}}, got)
}

func TestVisitNeighborsOnSideNoCrossing(t *testing.T) {
	m := testutil.NewMap(t, 5, 4)
	testutil.FillRect(t, m, 0, 0, 32, 16, track.BitsAll)
	testutil.FillRect(t, m, 15, 0, 1, 16, track.BitsNone)
	s := NewStore(m)

	got := collect(func(fn func(PatchDesc)) {
		s.VisitPatchNeighbors(PatchDesc{X: 0, Y: 0, Label: 1}, fn)
	})
	assert.Empty(t, got)
}

func TestVisitNeighborsOnSideEdgesMustFace(t *testing.T) {
	// Water reaches the shared edge on both sides, but on different rows.
	m := testutil.NewMap(t, 5, 4)
	testutil.FillRect(t, m, 0, 0, 16, 4, track.BitsAll)
	testutil.FillRect(t, m, 16, 8, 16, 8, track.BitsAll)
	s := NewStore(m)

	west := s.Region(Coord{X: 0, Y: 0})
	west.UpdateIfNotInitialized()
	require.NotZero(t, west.EdgeTraversabilityBits(track.DiagDirSW))

	got := collect(func(fn func(PatchDesc)) {
		s.VisitNeighborsOnSide(PatchDesc{X: 0, Y: 0, Label: 1}, track.DiagDirSW, fn)
	})
	assert.Empty(t, got)
}

func TestVisitNeighborsOnSideMapBorder(t *testing.T) {
	m := testutil.NewMap(t, 4, 4)
	testutil.FillRect(t, m, 0, 0, 16, 16, track.BitsAll)
	s := NewStore(m)

	for side := range track.AllDiagDirs() {
		got := collect(func(fn func(PatchDesc)) {
			s.VisitNeighborsOnSide(PatchDesc{X: 0, Y: 0, Label: 1}, side, fn)
		})
		assert.Empty(t, got, "side %s", side)
	}
}

func TestVisitPatchNeighborsInvalidPatch(t *testing.T) {
	m := testutil.NewMap(t, 5, 4)
	testutil.FillRect(t, m, 0, 0, 32, 16, track.BitsAll)
	s := NewStore(m)

	got := collect(func(fn func(PatchDesc)) {
		s.VisitPatchNeighbors(PatchDesc{X: 0, Y: 0, Label: InvalidLabel}, fn)
	})
	assert.Empty(t, got)
	// Nothing was computed for an invalid patch.
	assert.Equal(t, []bool{false, false}, s.SaveInfo())
}

func TestVisitPatchNeighborsAqueduct(t *testing.T) {
	m := testutil.NewMap(t, 6, 4)
	testutil.BuildAqueduct(t, m, 5, 3, 40, 3)
	require.NoError(t, m.SetWater(4, 3))
	require.NoError(t, m.SetWater(41, 3))
	s := NewStore(m)

	near := s.PatchInfo(m.TileXY(4, 3))
	far := s.PatchInfo(m.TileXY(41, 3))
	require.Equal(t, PatchDesc{X: 0, Y: 0, Label: 1}, near)
	require.Equal(t, PatchDesc{X: 2, Y: 0, Label: 1}, far)
	assert.Equal(t, near, s.PatchInfo(m.TileXY(5, 3)))

	got := collect(func(fn func(PatchDesc)) { s.VisitPatchNeighbors(near, fn) })
	assert.Equal(t, []PatchDesc{far}, got)

	got = collect(func(fn func(PatchDesc)) { s.VisitPatchNeighbors(far, fn) })
	assert.Equal(t, []PatchDesc{near}, got)
}

func TestVisitPatchNeighborsAqueductOtherPatch(t *testing.T) {
	m := testutil.NewMap(t, 6, 4)
	testutil.BuildAqueduct(t, m, 5, 3, 40, 3)
	require.NoError(t, m.SetWater(4, 3))
	require.NoError(t, m.SetWater(41, 3))
	require.NoError(t, m.SetWater(10, 10))
	s := NewStore(m)

	lake := s.PatchInfo(m.TileXY(10, 10))
	require.Equal(t, Label(2), lake.Label)

	got := collect(func(fn func(PatchDesc)) { s.VisitPatchNeighbors(lake, fn) })
	assert.Empty(t, got)
}

func TestPatchHashUnique(t *testing.T) {
	m := testutil.NewMap(t, 5, 5)
	s := NewStore(m)

	seen := make(map[uint32]PatchDesc)
	for i := range s.Len() {
		c := s.Grid().CoordOf(Index(i))
		for l := FirstLabel; ; l++ {
			p := PatchDesc{X: c.X, Y: c.Y, Label: l}
			h := s.PatchHash(p)
			prev, dup := seen[h]
			require.False(t, dup, "%s and %s share hash %d", p, prev, h)
			seen[h] = p
			if l == MaxLabel {
				break
			}
		}
	}
}

func BenchmarkVisitPatchNeighbors(b *testing.B) {
	m := testutil.NewMap(b, 6, 6)
	testutil.FillRect(b, m, 0, 0, 64, 64, track.BitsAll)
	testutil.FillRect(b, m, 16, 24, 16, 1, track.BitsNone)
	s := NewStore(m)
	p := s.PatchInfo(m.TileXY(20, 20))

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		s.VisitPatchNeighbors(p, func(PatchDesc) {})
	}
}
