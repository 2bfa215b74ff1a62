// Package savegame persists the water region cache between sessions.
//
// Only one initialized bit per region is stored. On restore every region that
// was initialized is recomputed from the current map, so a save can never feed
// stale connectivity into the pathfinder. Saves made against a different map
// (other dimensions or tile contents) are refused.
package savegame

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/udisondev/waterways/internal/db"
	"github.com/udisondev/waterways/internal/tilemap"
	"github.com/udisondev/waterways/internal/waterregion"
)

var (
	ErrMapChanged = errors.New("saved water regions belong to a different map")
	ErrCorrupt    = errors.New("corrupt water region save")
)

// Repository stores save rows by slot.
type Repository interface {
	SaveWaterRegions(ctx context.Context, row db.WaterRegionSaveRow) error
	LoadWaterRegions(ctx context.Context, slot string) (*db.WaterRegionSaveRow, error)
}

// MapSource identifies the map a store was computed from.
type MapSource interface {
	Dims() tilemap.Dims
	Fingerprint() [32]byte
}

// Save writes the store's initialized flags to slot.
func Save(ctx context.Context, repo Repository, store *waterregion.Store, m MapSource, slot string) error {
	flags := store.SaveInfo()
	fp := m.Fingerprint()
	dims := m.Dims()

	row := db.WaterRegionSaveRow{
		Slot:        slot,
		MapLogX:     int16(dims.LogX),
		MapLogY:     int16(dims.LogY),
		Fingerprint: fp[:],
		RegionCount: int32(len(flags)),
		Flags:       PackFlags(flags),
		SavedAt:     time.Now().UTC(),
	}
	if err := repo.SaveWaterRegions(ctx, row); err != nil {
		return fmt.Errorf("saving slot %q: %w", slot, err)
	}
	slog.Info("water regions saved", "slot", slot, "regions", len(flags))
	return nil
}

// Restore loads slot into store. It returns false when the slot is empty,
// in which case the store is untouched.
func Restore(ctx context.Context, repo Repository, store *waterregion.Store, m MapSource, slot string) (bool, error) {
	row, err := repo.LoadWaterRegions(ctx, slot)
	if err != nil {
		return false, fmt.Errorf("restoring slot %q: %w", slot, err)
	}
	if row == nil {
		return false, nil
	}

	dims := m.Dims()
	fp := m.Fingerprint()
	if uint(row.MapLogX) != dims.LogX || uint(row.MapLogY) != dims.LogY {
		return false, fmt.Errorf("slot %q saved for a 2^%d x 2^%d map, current map is 2^%d x 2^%d: %w",
			slot, row.MapLogX, row.MapLogY, dims.LogX, dims.LogY, ErrMapChanged)
	}
	if !bytes.Equal(row.Fingerprint, fp[:]) {
		return false, fmt.Errorf("slot %q fingerprint differs: %w", slot, ErrMapChanged)
	}

	flags, err := UnpackFlags(row.Flags, int(row.RegionCount))
	if err != nil {
		return false, fmt.Errorf("restoring slot %q: %w", slot, err)
	}
	if err := store.LoadInfo(flags); err != nil {
		return false, fmt.Errorf("restoring slot %q: %w", slot, err)
	}
	return true, nil
}

// PackFlags packs flags one bit each, flag 0 in the low bit of byte 0.
func PackFlags(flags []bool) []byte {
	out := make([]byte, (len(flags)+7)/8)
	for i, f := range flags {
		if f {
			out[i/8] |= 1 << (i % 8)
		}
	}
	return out
}

// UnpackFlags is the inverse of PackFlags for n flags.
func UnpackFlags(data []byte, n int) ([]bool, error) {
	if n < 0 || len(data) != (n+7)/8 {
		return nil, fmt.Errorf("%d bytes for %d flags: %w", len(data), n, ErrCorrupt)
	}
	flags := make([]bool, n)
	for i := range flags {
		flags[i] = data[i/8]&(1<<(i%8)) != 0
	}
	return flags, nil
}
