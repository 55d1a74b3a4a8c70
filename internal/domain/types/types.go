// Package types contains common read shapes shared across the application.
package types

import "time"

// FilterOptions describes the widget-building data for the renderer:
// the distinct values present in the dataset plus the fixed bin order.
type FilterOptions struct {
	Races          []string  `json:"races"`
	AgeCategories  []string  `json:"age_categories"`
	AgeCategoryAll string    `json:"age_category_all"`
	PriorsBins     []string  `json:"priors_bins"`
	Rows           int       `json:"rows"`
	SkippedRows    int       `json:"skipped_rows"`
	LoadedAt       time.Time `json:"loaded_at"`
}
