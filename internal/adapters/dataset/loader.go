// Package dataset reads the delimited risk-assessment file into an
// immutable in-memory table with the two derived fields, and caches it
// for the lifetime of the process.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/okian/riskboard/internal/domain/bins"
	"github.com/okian/riskboard/internal/domain/model"
)

// Required column keys. A header missing any of these is a schema error.
var requiredColumns = []string{
	"id",
	"sex",
	"race",
	"age",
	"age_cat",
	"priors_count",
	"decile_score",
	"two_year_recid",
}

// Optional column keys carried through when present.
var optionalColumns = []string{
	"name",
	"c_charge_desc",
	"state",
}

// Table is the normalized, read-only dataset. Row order is preserved
// from the input; Races and AgeCategories are the sorted distinct
// non-empty values, for building filter widgets.
type Table struct {
	Records       []model.Record
	Races         []string
	AgeCategories []string
	LoadedAt      time.Time
	SkippedRows   int
}

// Load reads and normalizes the dataset at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer func() { _ = f.Close() }()

	table, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Parse reads a delimited table from r and normalizes it. The header is
// matched case-insensitively with spaces and dashes folded to underscores.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", ErrLoad, err)
	}

	cols := make(map[string]int, len(headers))
	for i, h := range headers {
		cols[toSnakeCase(strings.TrimSpace(h))] = i
	}
	for _, required := range requiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", ErrSchema, required)
		}
	}

	table := &Table{LoadedAt: time.Now()}
	raceSeen := make(map[string]bool)
	ageCatSeen := make(map[string]bool)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed rows are skipped, not fatal; the count is surfaced.
			table.SkippedRows++
			continue
		}

		cell := func(key string) string {
			i, ok := cols[key]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		rec := model.Record{
			ID:         cell("id"),
			Name:       cell("name"),
			Sex:        cell("sex"),
			Race:       cell("race"),
			AgeCat:     cell("age_cat"),
			ChargeDesc: cell("c_charge_desc"),
			State:      cell("state"),

			Age:          parseIntCell(cell("age")),
			PriorsCount:  parseIntCell(cell("priors_count")),
			DecileScore:  parseIntCell(cell("decile_score")),
			TwoYearRecid: parseIntCell(cell("two_year_recid")),
		}

		rec.RecidivismStatus = model.DeriveRecidivismStatus(rec.TwoYearRecid)
		if rec.PriorsCount != nil {
			rec.PriorsBin = bins.Assign(*rec.PriorsCount)
		}

		if rec.Race != "" {
			raceSeen[rec.Race] = true
		}
		if rec.AgeCat != "" {
			ageCatSeen[rec.AgeCat] = true
		}

		table.Records = append(table.Records, rec)
	}

	table.Races = sortedKeys(raceSeen)
	table.AgeCategories = sortedKeys(ageCatSeen)
	return table, nil
}

// parseIntCell parses a cell into an optional integer. Blank and
// non-numeric cells are absent values, matching the source file's
// missing-data semantics.
func parseIntCell(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Some exports carry integer columns as floats ("3.0").
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return nil
		}
		n = int(f)
	}
	return &n
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// toSnakeCase converts "Column Name" to "column_name".
func toSnakeCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
