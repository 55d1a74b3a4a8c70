package summary

import (
	"github.com/okian/riskboard/internal/domain/model"
)

// ScatterPoint is one subject's projection for the faceted scatter plot.
type ScatterPoint struct {
	ID               string `json:"id"`
	Name             string `json:"name,omitempty"`
	Charge           string `json:"charge"`
	State            string `json:"state"`
	Age              int    `json:"age"`
	Sex              string `json:"sex"`
	Race             string `json:"race"`
	DecileScore      int    `json:"decile_score"`
	RecidivismStatus string `json:"recidivism_status"`
}

// Scatter projects the subset into scatter points, keeping only rows with
// a known age and a known decile score. Dropping incomplete rows is a
// completeness filter, not an error. A positive limit caps the output at
// the first limit rows in source order; limit <= 0 means unlimited.
func Scatter(subset []model.Record, limit int) []ScatterPoint {
	points := make([]ScatterPoint, 0, len(subset))
	for _, rec := range subset {
		if rec.Age == nil || rec.DecileScore == nil {
			continue
		}
		points = append(points, ScatterPoint{
			ID:               rec.ID,
			Name:             rec.Name,
			Charge:           rec.ChargeDesc,
			State:            rec.State,
			Age:              *rec.Age,
			Sex:              rec.Sex,
			Race:             rec.Race,
			DecileScore:      *rec.DecileScore,
			RecidivismStatus: rec.RecidivismStatus,
		})
		if limit > 0 && len(points) == limit {
			break
		}
	}
	return points
}
