// Package export writes summary bundles as Excel workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/okian/riskboard/internal/domain/summary"
)

// Sheet names, one per summary structure.
const (
	sheetTrend      = "Trend"
	sheetScatter    = "Scatter"
	sheetErrorRates = "Error Rates"
)

// Workbook renders the bundle as a three-sheet workbook. The caller owns
// the returned file and must Close it.
func Workbook(bundle summary.Bundle) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), sheetTrend); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExport, err)
	}
	if err := writeTrendSheet(f, bundle.Trend); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(sheetScatter); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExport, err)
	}
	if err := writeScatterSheet(f, bundle.Scatter); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(sheetErrorRates); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExport, err)
	}
	if err := writeErrorRatesSheet(f, bundle.ErrorRates); err != nil {
		return nil, err
	}

	return f, nil
}

func writeTrendSheet(f *excelize.File, rows []summary.TrendRow) error {
	header := []interface{}{"Prior Convictions", "Average Score (%)", "Average Recidivism Rate (%)", "Rows"}
	if err := setRow(f, sheetTrend, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		cells := []interface{}{row.Bin, row.AvgScorePct, row.AvgRecidRatePct, row.Count}
		if err := setRow(f, sheetTrend, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeScatterSheet(f *excelize.File, points []summary.ScatterPoint) error {
	header := []interface{}{"ID", "Name", "Charge", "State", "Age", "Sex", "Race", "Score", "Recidivism"}
	if err := setRow(f, sheetScatter, 1, header); err != nil {
		return err
	}
	for i, p := range points {
		cells := []interface{}{p.ID, p.Name, p.Charge, p.State, p.Age, p.Sex, p.Race, p.DecileScore, p.RecidivismStatus}
		if err := setRow(f, sheetScatter, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeErrorRatesSheet(f *excelize.File, rates []summary.ErrorRate) error {
	header := []interface{}{"Race", "Error Type", "Rate (%)"}
	if err := setRow(f, sheetErrorRates, 1, header); err != nil {
		return err
	}
	for i, r := range rates {
		cells := []interface{}{r.Race, r.ErrorType, r.Rate}
		if err := setRow(f, sheetErrorRates, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	return nil
}
