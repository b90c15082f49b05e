// Package unify folds independently-headed sheets into one master table.
package unify

import (
	"github.com/tmaldonado/unisheet/pkg/unisheet/models"
	"github.com/tmaldonado/unisheet/pkg/unisheet/names"
)

// Unify normalizes every sheet's headers, aligns all sheets to the union
// of their column names, and concatenates the rows into a master table.
//
// Duplicate headers are resolved per sheet. The union keeps first-seen
// order across sheets so column order is deterministic. Cells for columns
// a sheet does not have are null. A _sheet column recording each row's
// origin is appended last. Row order is sheet order, then original row
// order within each sheet.
func Unify(sheets []models.Sheet) *models.Master {
	var union []string
	position := make(map[string]int)
	normalized := make([][]string, len(sheets))

	for i, sheet := range sheets {
		cols := names.NormalizeAll(sheet.Columns)
		normalized[i] = cols
		for _, c := range cols {
			if _, ok := position[c]; !ok {
				position[c] = len(union)
				union = append(union, c)
			}
		}
	}

	width := len(union) + 1
	master := &models.Master{
		Columns: append(append(make([]string, 0, width), union...), models.SheetColumn),
	}

	for i, sheet := range sheets {
		target := make([]int, len(normalized[i]))
		for j, c := range normalized[i] {
			target[j] = position[c]
		}
		for _, row := range sheet.Rows {
			out := make([]models.Cell, width)
			for k := range out {
				out[k] = models.NullCell()
			}
			for j, cell := range row {
				if j < len(target) {
					out[target[j]] = cell
				}
			}
			out[width-1] = models.TextCell(sheet.Name)
			master.Rows = append(master.Rows, out)
		}
	}

	return master
}
