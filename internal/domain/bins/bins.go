// Package bins derives the prior-conviction bucket from a priors count.
//
// The bucket boundaries are an explicit ordered list of half-open
// (lowerExclusive, upperInclusive] intervals. The same ordered list drives
// both bucket assignment at load time and the trend summary's output order,
// so the two can never disagree.
package bins

// Unknown is the null bucket for counts outside every interval.
const Unknown = ""

// Interval is one labeled half-open range (LowerExclusive, UpperInclusive].
type Interval struct {
	LowerExclusive int
	UpperInclusive int
	Label          string
}

// Intervals is the fixed, ordered bucket table. Tested in order on Assign.
var Intervals = []Interval{
	{-1, 0, "0"},
	{0, 2, "1-2"},
	{2, 5, "3-5"},
	{5, 10, "6-10"},
	{10, 20, "11-20"},
	{20, 100, "21+"},
}

// Assign maps a priors count to its bucket label. Counts outside (-1,100]
// map to Unknown; callers must not treat that as an error.
func Assign(priorsCount int) string {
	for _, iv := range Intervals {
		if priorsCount > iv.LowerExclusive && priorsCount <= iv.UpperInclusive {
			return iv.Label
		}
	}
	return Unknown
}

// Labels returns the bucket labels in fixed order.
func Labels() []string {
	labels := make([]string, len(Intervals))
	for i, iv := range Intervals {
		labels[i] = iv.Label
	}
	return labels
}

// Index returns the position of label in the fixed order, or -1 for
// Unknown and unrecognized labels.
func Index(label string) int {
	for i, iv := range Intervals {
		if iv.Label == label {
			return i
		}
	}
	return -1
}
