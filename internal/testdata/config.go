package testdata

import "time"

// Config holds configuration for dataset generation
type Config struct {
	NumRows       int    // Number of data rows to generate
	MalformedRows int    // Number of deliberately malformed rows to mix in
	OutputFile    string // Output file for the CSV
	Seed          string // Identifier embedded in generated names
}

// Row represents one generated dataset row. All cells are strings so that
// blanks and malformed values can be produced on purpose.
type Row struct {
	ID           string
	Name         string
	Sex          string
	Race         string
	Age          string
	AgeCat       string
	ChargeDesc   string
	PriorsCount  string
	DecileScore  string
	TwoYearRecid string
	State        string
}

// Stats holds generation statistics
type Stats struct {
	RowsGenerated  int
	RowsMalformed  int
	RowsWithBlanks int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}
