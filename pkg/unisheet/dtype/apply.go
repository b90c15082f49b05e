package dtype

import (
	"fmt"

	"github.com/tmaldonado/unisheet/pkg/unisheet/models"
)

// Apply returns a new master table with every column coerced to its
// recorded type. Numeric coercion turns unparseable cells into nulls; a
// column whose coercion fails as a whole (an unknown type tag) falls back
// to its text representation instead of aborting the run. Columns absent
// from the map are left untouched.
func Apply(m *models.Master, dt *models.DTypes) *models.Master {
	out := &models.Master{
		Columns: append([]string(nil), m.Columns...),
		Rows:    make([][]models.Cell, len(m.Rows)),
	}
	for r := range m.Rows {
		out.Rows[r] = append([]models.Cell(nil), m.Rows[r]...)
	}

	for i, col := range out.Columns {
		t, ok := dt.Get(col)
		if !ok {
			continue
		}
		if err := coerceColumn(out, i, t); err != nil {
			// fallback path: text representation never fails
			_ = coerceColumn(out, i, models.DTypeString)
		}
	}
	return out
}

func coerceColumn(m *models.Master, idx int, t models.DType) error {
	switch t {
	case models.DTypeInt, models.DTypeFloat:
		for r := range m.Rows {
			cell := m.Rows[r][idx]
			if cell.IsNull() {
				continue
			}
			if v, ok := cell.AsNumber(); ok {
				m.Rows[r][idx] = models.NumberCell(v)
			} else {
				m.Rows[r][idx] = models.NullCell()
			}
		}
		return nil
	case models.DTypeString:
		for r := range m.Rows {
			cell := m.Rows[r][idx]
			if cell.IsNull() {
				continue
			}
			m.Rows[r][idx] = models.TextCell(cell.AsText())
		}
		return nil
	default:
		return fmt.Errorf("unknown dtype %q for column %q", t, m.Columns[idx])
	}
}
