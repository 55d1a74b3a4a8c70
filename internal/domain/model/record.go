// Package model contains domain models passed between layers.
package model

// Recidivism status labels derived from the two-year outcome flag.
const (
	StatusRecidivism   = "Recidivism"
	StatusNoRecidivism = "No Recidivism"
)

// Record represents one subject's row in the risk-assessment dataset,
// plus the two fields derived at load time. Records are immutable once
// loaded; pointer fields model absent values in the source file.
type Record struct {
	ID         string // unique identifier
	Name       string
	Sex        string
	Race       string
	AgeCat     string
	ChargeDesc string
	State      string // jurisdiction

	Age          *int // subject age in years
	PriorsCount  *int // non-negative prior-conviction count
	DecileScore  *int // risk score, integer 1-10
	TwoYearRecid *int // ground-truth outcome flag, 0 or 1

	// Derived once at load; pure functions of the fields above.
	RecidivismStatus string // StatusRecidivism / StatusNoRecidivism, "" when outcome absent
	PriorsBin        string // bins label, "" when priors count is absent or out of range
}

// DeriveRecidivismStatus maps the outcome flag to its categorical label.
// A nil flag propagates as an empty status.
func DeriveRecidivismStatus(twoYearRecid *int) string {
	if twoYearRecid == nil {
		return ""
	}
	if *twoYearRecid == 1 {
		return StatusRecidivism
	}
	return StatusNoRecidivism
}
