package summary

import (
	"github.com/okian/riskboard/internal/domain/filter"
	"github.com/okian/riskboard/internal/domain/model"
)

// Bundle carries everything the renderer needs for one criteria change:
// the three summary structures plus the criteria echoed back.
type Bundle struct {
	Criteria         model.FilterCriteria `json:"criteria"`
	SubsetRows       int                  `json:"subset_rows"`
	Trend            []TrendRow           `json:"trend"`
	Scatter          []ScatterPoint       `json:"scatter"`
	ErrorRates       []ErrorRate          `json:"error_rates"`
	ReferenceVersion string               `json:"reference_version"`
}

// Compute runs the whole pipeline once: filter, then the three summaries.
// One criteria change maps to exactly one Compute call; everything here
// is pure and synchronous.
func Compute(records []model.Record, criteria model.FilterCriteria, scatterLimit int) Bundle {
	subset := filter.Apply(records, criteria)
	return Bundle{
		Criteria:         criteria,
		SubsetRows:       len(subset),
		Trend:            Trend(subset),
		Scatter:          Scatter(subset, scatterLimit),
		ErrorRates:       ErrorRates(),
		ReferenceVersion: ReferenceVersion,
	}
}
