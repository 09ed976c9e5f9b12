// Package export writes the filtered record table as a spreadsheet.
package export

import (
	"fmt"
	"io"

	"github.com/2beens/fitstats/internal/health"

	"github.com/xuri/excelize/v2"
	"go.uber.org/multierr"
)

const (
	SheetName   = "Health"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	FileName    = "health_export.xlsx"
)

// Headers is the header row: the date followed by every numeric column.
func Headers() []string {
	headers := make([]string, 0, len(health.Columns)+1)
	headers = append(headers, "date")
	for _, c := range health.Columns {
		headers = append(headers, string(c))
	}
	return headers
}

// WriteXLSX writes records to w as a single sheet workbook. Untracked values are left empty.
func WriteXLSX(w io.Writer, records []health.HealthRecord) (err error) {
	f := excelize.NewFile()
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for col, header := range Headers() {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return fmt.Errorf("set header %s: %w", cell, err)
		}
		if err := f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("set header style: %w", err)
		}
	}
	if err := f.SetColWidth(SheetName, "A", "A", 12); err != nil {
		return fmt.Errorf("set date column width: %w", err)
	}

	for i, r := range records {
		row := i + 2
		if err := setCell(f, 1, row, r.Date); err != nil {
			return err
		}
		for j, c := range health.Columns {
			v, ok := r.Value(c)
			if !ok {
				continue
			}
			if err := setCell(f, j+2, row, v); err != nil {
				return err
			}
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(SheetName, cell, value); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	return nil
}
