// Package parser extracts untyped cell grids from open workbooks.
package parser

import (
	"github.com/tmaldonado/unisheet/pkg/unisheet/models"
	"github.com/xuri/excelize/v2"
)

// ExtractSheet reads one sheet as an untyped grid. The first row is taken
// as the header row and kept raw; downstream normalization decides what
// the columns are called. Cells are read with raw values so no numeric or
// date coercion happens here, and empty cells become null. Rows shorter
// than the widest row are padded with nulls; rows wider than the header
// row extend the header set with empty names.
func ExtractSheet(f *excelize.File, sheetName string) (models.Sheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Sheet{}, err
	}

	sheet := models.Sheet{Name: sheetName}
	if len(rows) == 0 {
		return sheet, nil
	}

	width := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) > width {
			width = len(row)
		}
	}

	headers := make([]string, width)
	copy(headers, rows[0])
	sheet.Columns = headers

	for _, row := range rows[1:] {
		cells := make([]models.Cell, width)
		for i := range cells {
			if i < len(row) && row[i] != "" {
				cells[i] = models.TextCell(row[i])
			} else {
				cells[i] = models.NullCell()
			}
		}
		sheet.Rows = append(sheet.Rows, cells)
	}

	return sheet, nil
}
