package testutil

import (
	"testing"

	"github.com/udisondev/waterways/internal/tilemap"
	"github.com/udisondev/waterways/internal/track"
)

// NewMap builds a map from ASCII rows (see tilemap.FromRows) and fails the test on error.
func NewMap(tb testing.TB, logX, logY uint, rows ...string) *tilemap.Map {
	tb.Helper()

	m, err := tilemap.FromRows(logX, logY, rows...)
	if err != nil {
		tb.Fatalf("building map: %v", err)
	}
	return m
}

// FillRect sets the water tracks of every tile in the w x h rectangle at (x, y).
func FillRect(tb testing.TB, m *tilemap.Map, x, y, w, h uint32, tracks track.Bits) {
	tb.Helper()

	for ty := y; ty < y+h; ty++ {
		for tx := x; tx < x+w; tx++ {
			if err := m.SetTracks(tx, ty, tracks); err != nil {
				tb.Fatalf("filling (%d,%d): %v", tx, ty, err)
			}
		}
	}
}

// BuildAqueduct builds an aqueduct and fails the test on error.
func BuildAqueduct(tb testing.TB, m *tilemap.Map, x0, y0, x1, y1 uint32) {
	tb.Helper()

	if err := m.BuildAqueduct(x0, y0, x1, y1); err != nil {
		tb.Fatalf("building aqueduct (%d,%d)-(%d,%d): %v", x0, y0, x1, y1, err)
	}
}
