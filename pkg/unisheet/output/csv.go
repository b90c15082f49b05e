// Package output writes the master table and its sidecar artifacts.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tmaldonado/unisheet/pkg/unisheet/models"
	"github.com/tmaldonado/unisheet/pkg/unisheet/names"
)

// utf8BOM makes the CSVs open correctly in spreadsheet tools.
const utf8BOM = "\xef\xbb\xbf"

// MasterCSVName is the filename of the master table export.
const MasterCSVName = "master.csv"

// ColumnsDirName is the subdirectory holding the per-column exports.
const ColumnsDirName = "columns"

// WriteMasterCSV writes the full master table to <outdir>/master.csv as
// UTF-8 with BOM, comma-delimited, with a header row and no index column.
// Values are formatted according to the applied column types.
func WriteMasterCSV(m *models.Master, dt *models.DTypes, outdir string) (string, error) {
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(outdir, MasterCSVName)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := f.WriteString(utf8BOM); err != nil {
		return "", err
	}

	w := csv.NewWriter(f)
	if err := w.Write(m.Columns); err != nil {
		return "", err
	}
	record := make([]string, m.NumCols())
	for _, row := range m.Rows {
		for i, cell := range row {
			record[i] = formatCell(cell, columnType(dt, m.Columns[i]))
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return path, f.Close()
}

// WriteColumnCSVs writes one CSV per master-table column under
// <outdir>/columns/, each holding a row_index column and the column's
// values. Filenames come from names.SafeFilename and are deduplicated
// against both names used in this run and files already present in the
// directory.
func WriteColumnCSVs(m *models.Master, dt *models.DTypes, outdir string) ([]string, error) {
	colDir := filepath.Join(outdir, ColumnsDirName)
	if err := os.MkdirAll(colDir, 0755); err != nil {
		return nil, err
	}

	used := make(map[string]bool)
	paths := make([]string, 0, m.NumCols())
	for i, col := range m.Columns {
		base := names.SafeFilename(col)
		candidate := base
		for n := 2; used[candidate] || fileExists(filepath.Join(colDir, candidate+".csv")); n++ {
			candidate = fmt.Sprintf("%s_%d", base, n)
		}
		used[candidate] = true

		path := filepath.Join(colDir, candidate+".csv")
		if err := writeColumnCSV(path, col, m.Column(i), columnType(dt, col)); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeColumnCSV(path, header string, cells []models.Cell, t models.DType) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(utf8BOM); err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"row_index", header}); err != nil {
		return err
	}
	for r, cell := range cells {
		if err := w.Write([]string{strconv.Itoa(r), formatCell(cell, t)}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func columnType(dt *models.DTypes, col string) models.DType {
	if t, ok := dt.Get(col); ok {
		return t
	}
	return models.DTypeString
}

// formatCell renders a cell for delimited output. Nulls become empty
// fields; int columns print without a decimal point.
func formatCell(c models.Cell, t models.DType) string {
	if c.IsNull() {
		return ""
	}
	if c.Kind == models.KindNumber {
		if t == models.DTypeFloat {
			return strconv.FormatFloat(c.Num, 'g', -1, 64)
		}
		return models.FormatNumber(c.Num)
	}
	return c.Text
}
