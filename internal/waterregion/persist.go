package waterregion

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrRegionCountMismatch is returned when saved region data does not fit the map.
var ErrRegionCountMismatch = errors.New("water region count mismatch")

// SaveInfo returns the initialized flag of every region in index order.
// Nothing else is saved; everything else is recomputed on load.
func (s *Store) SaveInfo() []bool {
	info := make([]bool, len(s.regions))
	for i := range s.regions {
		info[i] = s.regions[i].initialized
	}
	return info
}

// LoadInfo resets the store and recomputes every region saved as initialized.
// On a count mismatch the store is left freshly initialized.
func (s *Store) LoadInfo(initialized []bool) error {
	s.Initialize()
	if len(initialized) != len(s.regions) {
		return fmt.Errorf("loading %d regions into a %dx%d grid: %w",
			len(initialized), s.grid.RegionsX(), s.grid.RegionsY(), ErrRegionCountMismatch)
	}

	updated := 0
	for i, ok := range initialized {
		if !ok {
			continue
		}
		s.Region(s.grid.CoordOf(Index(i))).ForceUpdate()
		updated++
	}
	slog.Info("water regions restored", "regions", len(initialized), "recomputed", updated)
	return nil
}
