// Package classifier turns raw inputs into report rows for one country.
package classifier

import (
	"github.com/mroshb/phone_manager/internal/security"
	"github.com/mroshb/phone_manager/internal/sheet"
	"github.com/mroshb/phone_manager/pkg/logger"
	"github.com/mroshb/phone_manager/pkg/operators"
	"github.com/mroshb/phone_manager/pkg/phone"
)

type Classifier struct {
	manager   *phone.Manager
	sanitizer *security.InputSanitizer
}

func New(manager *phone.Manager, sanitizer *security.InputSanitizer) *Classifier {
	return &Classifier{
		manager:   manager,
		sanitizer: sanitizer,
	}
}

// Classify builds one row per cell. Invalid inputs are kept with the failure
// recorded in Error, and every row carries the worksheet row of its cell.
func (c *Classifier) Classify(cells []sheet.Cell) []sheet.ReportRow {
	rows := make([]sheet.ReportRow, 0, len(cells))
	invalid := 0

	for _, cell := range cells {
		row := c.classify(cell.Value)
		row.SourceRow = cell.Row
		if !row.Valid {
			invalid++
		}
		rows = append(rows, row)
	}

	logger.Info("Classified numbers", "total", len(cells), "invalid", invalid)
	return rows
}

func (c *Classifier) classify(input string) sheet.ReportRow {
	row := sheet.ReportRow{Input: input}

	cleaned, err := c.sanitizer.Clean(input)
	if err != nil {
		row.Error = err.Error()
		logger.Debug("Rejected input", "input", input, "error", err)
		return row
	}

	digits, err := c.manager.Normalize(cleaned)
	if err != nil {
		row.Error = err.Error()
		return row
	}

	international, err := c.manager.FormatInternational(digits)
	if err != nil {
		row.Error = err.Error()
		return row
	}

	row.Valid = true
	row.Normalized = digits
	row.International = international
	if op, ok := c.manager.Operator(digits); ok {
		row.Operator = string(op)
		if info, found := operators.Lookup(op); found {
			row.OperatorName = info.Name
		}
	}
	return row
}
