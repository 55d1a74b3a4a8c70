package testdata

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/okian/riskboard/pkg/logger"
)

// File permission constants.
const (
	outputFilePermission = 0600
)

// Header lists the generated CSV columns in file order. It matches the
// column set the dataset loader requires plus the optional descriptive ones.
var Header = []string{
	"id",
	"name",
	"sex",
	"race",
	"age",
	"age_cat",
	"c_charge_desc",
	"priors_count",
	"decile_score",
	"two_year_recid",
	"state",
}

// WriteCSV writes the rows to path with the standard header.
func WriteCSV(ctx context.Context, path string, rows []Row) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.ID,
			row.Name,
			row.Sex,
			row.Race,
			row.Age,
			row.AgeCat,
			row.ChargeDesc,
			row.PriorsCount,
			row.DecileScore,
			row.TwoYearRecid,
			row.State,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	logger.Get().Info(ctx, "wrote dataset file",
		logger.String("path", path),
		logger.Int("rows", len(rows)))
	return nil
}
