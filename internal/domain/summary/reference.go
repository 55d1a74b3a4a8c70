package summary

// ReferenceVersion identifies the error-rate reference table revision.
// The rates are an external constant, not computed from the loaded
// dataset; the version pins them for cross-implementation comparability.
const ReferenceVersion = "propublica-2016.1"

// Error type labels for the reference table.
const (
	ErrorTypeFalsePositive = "False Positive Rate"
	ErrorTypeFalseNegative = "False Negative Rate"
)

// ErrorRate is one (race, error type) entry of the reference table.
type ErrorRate struct {
	Race      string  `json:"race"`
	ErrorType string  `json:"error_type"`
	Rate      float64 `json:"rate"`
}

// errorRateReference holds the fixed reference rows: all false-positive
// rates first, then all false-negative rates, each in race order.
var errorRateReference = []ErrorRate{
	{Race: "African-American", ErrorType: ErrorTypeFalsePositive, Rate: 7.5},
	{Race: "Asian", ErrorType: ErrorTypeFalsePositive, Rate: 4.0},
	{Race: "Caucasian", ErrorType: ErrorTypeFalsePositive, Rate: 3.9},
	{Race: "Hispanic", ErrorType: ErrorTypeFalsePositive, Rate: 4.1},
	{Race: "Native American", ErrorType: ErrorTypeFalsePositive, Rate: 4.2},
	{Race: "Other", ErrorType: ErrorTypeFalsePositive, Rate: 1.5},
	{Race: "African-American", ErrorType: ErrorTypeFalseNegative, Rate: 31.5},
	{Race: "Asian", ErrorType: ErrorTypeFalseNegative, Rate: 19.0},
	{Race: "Caucasian", ErrorType: ErrorTypeFalseNegative, Rate: 31.0},
	{Race: "Hispanic", ErrorType: ErrorTypeFalseNegative, Rate: 30.8},
	{Race: "Native American", ErrorType: ErrorTypeFalseNegative, Rate: 32.0},
	{Race: "Other", ErrorType: ErrorTypeFalseNegative, Rate: 30.5},
}

// ErrorRates returns the static error-rate reference table. It takes no
// input, ignores any filter criteria, and always returns the same rows;
// the returned slice is a copy the caller may reorder freely.
func ErrorRates() []ErrorRate {
	out := make([]ErrorRate, len(errorRateReference))
	copy(out, errorRateReference)
	return out
}
