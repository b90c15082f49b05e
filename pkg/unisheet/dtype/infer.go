// Package dtype infers and applies simple per-column types on the master
// table: integer, decimal, or text.
package dtype

import (
	"math"

	"github.com/tmaldonado/unisheet/pkg/unisheet/models"
)

// Infer classifies every column of the master table. The rule is strict
// all-or-nothing, ignoring null cells:
//
//   - no non-null values            -> string
//   - all numeric, all integral     -> int
//   - all numeric, some fractional  -> float
//   - any value that fails to parse -> string
//
// The _sheet column is always string.
func Infer(m *models.Master) *models.DTypes {
	dt := models.NewDTypes()
	for i, col := range m.Columns {
		if col == models.SheetColumn {
			dt.Set(col, models.DTypeString)
			continue
		}
		dt.Set(col, inferColumn(m, i))
	}
	return dt
}

func inferColumn(m *models.Master, idx int) models.DType {
	sawValue := false
	allIntegral := true
	for _, row := range m.Rows {
		cell := row[idx]
		if cell.IsNull() {
			continue
		}
		sawValue = true
		v, ok := cell.AsNumber()
		if !ok {
			return models.DTypeString
		}
		if math.IsInf(v, 0) || v != math.Trunc(v) {
			allIntegral = false
		}
	}
	switch {
	case !sawValue:
		return models.DTypeString
	case allIntegral:
		return models.DTypeInt
	default:
		return models.DTypeFloat
	}
}
