// Package sheet reads raw numbers from and writes classification reports to
// .xlsx workbooks.
package sheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Cell is a non-empty value read from the input column. Row is the 1-based
// worksheet row it came from.
type Cell struct {
	Row   int
	Value string
}

// ReportRow is one classified input. SourceRow points back at the input
// worksheet row; blank input cells produce no report row.
type ReportRow struct {
	SourceRow     int
	Input         string
	Valid         bool
	Normalized    string
	Operator      string
	OperatorName  string
	International string
	Error         string
}

var reportHeader = []interface{}{
	"Source Row", "Input", "Valid", "Normalized", "Operator", "Operator Name", "International", "Error",
}

// ReadColumn returns the non-empty cells of a 1-based column together with
// their row numbers.
func ReadColumn(path, sheetName string, column int, skipHeader bool) ([]Cell, error) {
	if column < 1 {
		return nil, fmt.Errorf("column must be at least 1, got %d", column)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}

	var cells []Cell
	for i, row := range rows {
		if i == 0 && skipHeader {
			continue
		}
		if len(row) < column {
			continue
		}
		if cell := strings.TrimSpace(row[column-1]); cell != "" {
			cells = append(cells, Cell{Row: i + 1, Value: cell})
		}
	}
	return cells, nil
}

// WriteReport writes rows under a header line to a new workbook at path.
func WriteReport(path, sheetName string, rows []ReportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &reportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			r.SourceRow, r.Input, r.Valid, r.Normalized, r.Operator, r.OperatorName, r.International, r.Error,
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
