// Package filter applies transient user criteria to the normalized table.
//
// Filtering is a pure projection over rows: it never creates or removes
// columns and never mutates the source slice. Re-applying the same
// criteria to its own output is a no-op.
package filter

import (
	"github.com/okian/riskboard/internal/domain/model"
)

// Apply returns the rows matching the criteria, in source order.
// A row is kept iff its race is in criteria.Races AND the age category
// matches (or the criteria allows all ages). An empty race set selects
// nothing; that is a valid empty subset, not an error.
func Apply(records []model.Record, criteria model.FilterCriteria) []model.Record {
	if len(criteria.Races) == 0 {
		return []model.Record{}
	}

	races := criteria.RaceSet()
	allAges := criteria.AllowsAllAges()

	subset := make([]model.Record, 0, len(records))
	for _, rec := range records {
		if !races[rec.Race] {
			continue
		}
		if !allAges && rec.AgeCat != criteria.AgeCategory {
			continue
		}
		subset = append(subset, rec)
	}
	return subset
}
