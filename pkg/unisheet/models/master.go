package models

// SheetColumn is the name of the provenance column appended during
// unification; it records each row's originating sheet.
const SheetColumn = "_sheet"

// Master is the unified table built by concatenating all sheets after
// header normalization and column-union alignment. Column names are
// normalized and unique; the last column is always SheetColumn. Rows are
// identified by their position (0..N-1).
type Master struct {
	Columns []string
	Rows    [][]Cell
}

// NumRows returns the number of rows.
func (m *Master) NumRows() int {
	return len(m.Rows)
}

// NumCols returns the number of columns, including SheetColumn.
func (m *Master) NumCols() int {
	return len(m.Columns)
}

// ColumnIndex returns the index of the named column, or -1 if absent.
func (m *Master) ColumnIndex(name string) int {
	for i, c := range m.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns the cells of column i in row order.
func (m *Master) Column(i int) []Cell {
	col := make([]Cell, len(m.Rows))
	for r, row := range m.Rows {
		col[r] = row[i]
	}
	return col
}
