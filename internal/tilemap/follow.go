package tilemap

import "github.com/udisondev/waterways/internal/track"

// Follow moves a ship one tile along td from t. It returns the tile reached
// and whether the move is legal.
//
// Leaving an aqueduct head towards its far end jumps straight to the other
// head. An aqueduct head can only be entered from its ramp side.
func (m *Map) Follow(t TileIndex, td track.Trackdir) (TileIndex, bool) {
	if !td.IsValid() {
		return t, false
	}
	src := &m.tiles[t]
	if !src.tracks.Has(td.Track()) {
		return t, false
	}

	exit := td.ExitDir()
	if src.kind == KindAqueduct && exit == src.bridgeDir {
		return src.other, true
	}

	next, ok := m.dims.Step(t, exit)
	if !ok {
		return t, false
	}
	dst := &m.tiles[next]
	if dst.kind == KindAqueduct && exit != dst.bridgeDir {
		return t, false
	}
	if dst.tracks&track.EnteredVia(exit) == track.BitsNone {
		return t, false
	}
	return next, true
}
