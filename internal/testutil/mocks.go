package testutil

import (
	"context"
	"sync"

	"github.com/udisondev/waterways/internal/db"
)

// MemWaterRegionRepository is an in-memory stand-in for db.WaterRegionRepository.
type MemWaterRegionRepository struct {
	mu    sync.RWMutex
	saves map[string]db.WaterRegionSaveRow

	// SaveErr and LoadErr, when set, are returned by the matching call.
	SaveErr error
	LoadErr error
}

// NewMemWaterRegionRepository creates an empty repository.
func NewMemWaterRegionRepository() *MemWaterRegionRepository {
	return &MemWaterRegionRepository{
		saves: make(map[string]db.WaterRegionSaveRow),
	}
}

// SaveWaterRegions stores a copy of row.
func (m *MemWaterRegionRepository) SaveWaterRegions(_ context.Context, row db.WaterRegionSaveRow) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.saves[row.Slot] = copyRow(row)
	return nil
}

// LoadWaterRegions returns a copy of the stored row, nil if the slot is empty.
func (m *MemWaterRegionRepository) LoadWaterRegions(_ context.Context, slot string) (*db.WaterRegionSaveRow, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	row, ok := m.saves[slot]
	if !ok {
		return nil, nil
	}
	c := copyRow(row)
	return &c, nil
}

// Put stores row as is, bypassing SaveErr. Used to plant corrupt saves.
func (m *MemWaterRegionRepository) Put(row db.WaterRegionSaveRow) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves[row.Slot] = row
}

func copyRow(row db.WaterRegionSaveRow) db.WaterRegionSaveRow {
	row.Fingerprint = append([]byte(nil), row.Fingerprint...)
	row.Flags = append([]byte(nil), row.Flags...)
	return row
}
