package models

// Sheet is one named grid of cells read from the source workbook. Columns
// holds the raw header strings in sheet order; every row in Rows is aligned
// to the same length as Columns.
type Sheet struct {
	// Name is the sheet's name in the workbook.
	Name string
	// Columns are the raw, un-normalized header strings.
	Columns []string
	// Rows are the data rows below the header row.
	Rows [][]Cell
}

// NumRows returns the number of data rows.
func (s Sheet) NumRows() int {
	return len(s.Rows)
}
