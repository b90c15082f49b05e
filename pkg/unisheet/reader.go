package unisheet

import (
	"fmt"
	"os"

	"github.com/tmaldonado/unisheet/pkg/unisheet/models"
	"github.com/tmaldonado/unisheet/pkg/unisheet/parser"
	"github.com/xuri/excelize/v2"
)

// ReadAllSheets loads the selected sheets of the workbook at path as
// untyped cell grids, in selection order. The selection is validated
// before any I/O happens.
func ReadAllSheets(path string, sel SheetSelection) ([]models.Sheet, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableFile, path, err)
	}
	defer f.Close()

	names := f.GetSheetList()
	if !sel.All {
		available := make(map[string]bool, len(names))
		for _, n := range names {
			available[n] = true
		}
		for _, n := range sel.Names {
			if !available[n] {
				return nil, fmt.Errorf("sheet %q not found in %s", n, path)
			}
		}
		names = sel.Names
	}

	sheets := make([]models.Sheet, 0, len(names))
	for _, name := range names {
		sheet, err := parser.ExtractSheet(f, name)
		if err != nil {
			return nil, &SheetError{Sheet: name, Stage: "read", Err: err}
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}
