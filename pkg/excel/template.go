package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// templateHeaders are the columns the bulk-import endpoint expects, in order
var templateHeaders = []string{"Employee ID", "Name", "Position"}

// WriteTemplate writes an empty employee-ID import spreadsheet with the
// expected header row and one example row.
func WriteTemplate(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for i, header := range templateHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	example := []string{"EMP001", "Jane Example", "expert"}
	for i, value := range example {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return fmt.Errorf("failed to build example cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to write example row: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}
	return nil
}

// Preview summarizes a spreadsheet before upload: how many data rows it
// holds and a sample of the first few. The upload itself never parses the
// file; preview is a separate opt-in check.
type Preview struct {
	Sheet    string
	RowCount int
	Sample   [][]string
}

const previewSampleSize = 5

// PreviewFile opens a spreadsheet locally and counts its non-empty data rows
// (the header row is excluded).
func PreviewFile(path string) (*Preview, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in excel file")
	}

	sheet := sheets[0]
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	preview := &Preview{Sheet: sheet}
	for rowIndex, row := range rows {
		// Skip the header row
		if rowIndex == 0 {
			continue
		}
		if emptyRow(row) {
			continue
		}
		preview.RowCount++
		if len(preview.Sample) < previewSampleSize {
			preview.Sample = append(preview.Sample, row)
		}
	}

	return preview, nil
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
