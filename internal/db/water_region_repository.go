package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WaterRegionSaveRow represents a row from water_region_saves.
// Flags packs one initialized bit per region, region 0 in the low bit of byte 0.
type WaterRegionSaveRow struct {
	Slot        string
	MapLogX     int16
	MapLogY     int16
	Fingerprint []byte
	RegionCount int32
	Flags       []byte
	SavedAt     time.Time
}

// WaterRegionRepository persists water region save data per save slot.
type WaterRegionRepository struct {
	pool *pgxpool.Pool
}

// NewWaterRegionRepository creates a new WaterRegionRepository.
func NewWaterRegionRepository(pool *pgxpool.Pool) *WaterRegionRepository {
	return &WaterRegionRepository{pool: pool}
}

// SaveWaterRegions inserts or replaces the save data of row.Slot.
func (r *WaterRegionRepository) SaveWaterRegions(ctx context.Context, row WaterRegionSaveRow) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO water_region_saves (slot, map_log_x, map_log_y, fingerprint, region_count, flags, saved_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (slot) DO UPDATE SET
		   map_log_x    = EXCLUDED.map_log_x,
		   map_log_y    = EXCLUDED.map_log_y,
		   fingerprint  = EXCLUDED.fingerprint,
		   region_count = EXCLUDED.region_count,
		   flags        = EXCLUDED.flags,
		   saved_at     = EXCLUDED.saved_at`,
		row.Slot, row.MapLogX, row.MapLogY, row.Fingerprint, row.RegionCount, row.Flags, row.SavedAt)
	if err != nil {
		return fmt.Errorf("saving water regions for slot %q: %w", row.Slot, err)
	}
	return nil
}

// LoadWaterRegions returns the save data of slot.
// Returns nil, nil if the slot has never been saved.
func (r *WaterRegionRepository) LoadWaterRegions(ctx context.Context, slot string) (*WaterRegionSaveRow, error) {
	var row WaterRegionSaveRow
	err := r.pool.QueryRow(ctx,
		`SELECT slot, map_log_x, map_log_y, fingerprint, region_count, flags, saved_at
		 FROM water_region_saves WHERE slot = $1`, slot,
	).Scan(&row.Slot, &row.MapLogX, &row.MapLogY, &row.Fingerprint, &row.RegionCount, &row.Flags, &row.SavedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading water regions for slot %q: %w", slot, err)
	}
	return &row, nil
}

// DeleteWaterRegions removes the save data of slot.
func (r *WaterRegionRepository) DeleteWaterRegions(ctx context.Context, slot string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM water_region_saves WHERE slot = $1`, slot); err != nil {
		return fmt.Errorf("deleting water regions for slot %q: %w", slot, err)
	}
	return nil
}

// ListSlots returns every saved slot name in alphabetical order.
func (r *WaterRegionRepository) ListSlots(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT slot FROM water_region_saves ORDER BY slot`)
	if err != nil {
		return nil, fmt.Errorf("query water_region_saves: %w", err)
	}
	defer rows.Close()

	var slots []string
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("scan water_region_saves: %w", err)
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}
