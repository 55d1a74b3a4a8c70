// Package summary computes the render-ready structures consumed by the
// external chart renderer: the grouped trend rows, the scatter projection,
// and the static error-rate reference table.
package summary

import (
	"github.com/okian/riskboard/internal/domain/bins"
	"github.com/okian/riskboard/internal/domain/model"
)

// Percentage scale factors for the trend metrics.
const (
	scorePctFactor = 10  // decile score 1-10 -> 10-100%
	recidPctFactor = 100 // outcome flag 0/1 -> 0-100%
)

// TrendRow is one per-bucket aggregate of the filtered subset.
type TrendRow struct {
	Bin             string  `json:"bin"`
	AvgScorePct     float64 `json:"avg_score_pct"`
	AvgRecidRatePct float64 `json:"avg_recid_rate_pct"`
	Count           int     `json:"count"`
}

// Trend groups the subset by priors bin and computes per-bin means:
// mean(decile_score)*10 and mean(two_year_recid)*100.
//
// Empty-bin policy: bins with zero matching rows are skipped, uniformly,
// so the output holds only populated bins and always follows the fixed
// bin order. Rows in the null bucket are excluded from the grouping;
// absent scores or outcomes within a populated bin are excluded from
// that metric's mean.
func Trend(subset []model.Record) []TrendRow {
	type acc struct {
		count      int
		scoreSum   int
		scoreCount int
		recidSum   int
		recidCount int
	}

	byBin := make(map[string]*acc, len(bins.Intervals))
	for _, rec := range subset {
		if rec.PriorsBin == bins.Unknown {
			continue
		}
		a := byBin[rec.PriorsBin]
		if a == nil {
			a = &acc{}
			byBin[rec.PriorsBin] = a
		}
		a.count++
		if rec.DecileScore != nil {
			a.scoreSum += *rec.DecileScore
			a.scoreCount++
		}
		if rec.TwoYearRecid != nil {
			a.recidSum += *rec.TwoYearRecid
			a.recidCount++
		}
	}

	rows := make([]TrendRow, 0, len(byBin))
	for _, label := range bins.Labels() {
		a, ok := byBin[label]
		if !ok {
			continue
		}
		row := TrendRow{Bin: label, Count: a.count}
		if a.scoreCount > 0 {
			row.AvgScorePct = float64(a.scoreSum) / float64(a.scoreCount) * scorePctFactor
		}
		if a.recidCount > 0 {
			row.AvgRecidRatePct = float64(a.recidSum) / float64(a.recidCount) * recidPctFactor
		}
		rows = append(rows, row)
	}
	return rows
}
