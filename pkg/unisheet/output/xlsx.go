package output

import (
	"math"
	"os"
	"path/filepath"

	"github.com/tmaldonado/unisheet/pkg/unisheet/models"
	"github.com/xuri/excelize/v2"
)

// MasterXLSXName is the filename of the optional workbook export.
const MasterXLSXName = "master.xlsx"

// WriteMasterXLSX writes the master table to <outdir>/master.xlsx on a
// single sheet named "master", using the stream writer so numeric columns
// come out as real numbers rather than text.
func WriteMasterXLSX(m *models.Master, dt *models.DTypes, outdir string) (string, error) {
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(outdir, MasterXLSXName)

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "master"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", err
	}
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return "", err
	}

	header := make([]interface{}, m.NumCols())
	for i, col := range m.Columns {
		header[i] = col
	}
	if err := sw.SetRow("A1", header); err != nil {
		return "", err
	}

	for r, row := range m.Rows {
		data := make([]interface{}, len(row))
		for i, cell := range row {
			data[i] = cellValue(cell, columnType(dt, m.Columns[i]))
		}
		ref, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return "", err
		}
		if err := sw.SetRow(ref, data); err != nil {
			return "", err
		}
	}

	if err := sw.Flush(); err != nil {
		return "", err
	}
	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}

func cellValue(c models.Cell, t models.DType) interface{} {
	switch {
	case c.IsNull():
		return nil
	case c.Kind == models.KindNumber && t == models.DTypeInt:
		if c.Num >= math.MinInt64 && c.Num < math.MaxInt64 {
			return int64(c.Num)
		}
		return c.Num
	case c.Kind == models.KindNumber:
		return c.Num
	default:
		return c.AsText()
	}
}
