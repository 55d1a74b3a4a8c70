package model

// AgeCategoryAll is the sentinel meaning no age-category restriction.
const AgeCategoryAll = "All"

// FilterCriteria is a transient user-selected subset constraint. It is
// rebuilt on every interaction and never mutates the dataset.
type FilterCriteria struct {
	// Races lists the allowed race values. An empty set selects nothing.
	Races []string `json:"races"`

	// AgeCategory restricts rows to a single age category, or
	// AgeCategoryAll for no restriction. Empty is treated as All.
	AgeCategory string `json:"age_category"`
}

// AllowsAllAges reports whether the criteria carries no age restriction.
func (c FilterCriteria) AllowsAllAges() bool {
	return c.AgeCategory == "" || c.AgeCategory == AgeCategoryAll
}

// RaceSet returns the allowed races as a membership set.
func (c FilterCriteria) RaceSet() map[string]bool {
	set := make(map[string]bool, len(c.Races))
	for _, r := range c.Races {
		set[r] = true
	}
	return set
}
