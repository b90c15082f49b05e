package dtype

import (
	"testing"

	"github.com/tmaldonado/unisheet/pkg/unisheet/models"
)

// column builds a one-column master table from raw values; "" means null.
func column(name string, values ...string) *models.Master {
	m := &models.Master{Columns: []string{name}}
	for _, v := range values {
		if v == "" {
			m.Rows = append(m.Rows, []models.Cell{models.NullCell()})
		} else {
			m.Rows = append(m.Rows, []models.Cell{models.TextCell(v)})
		}
	}
	return m
}

func TestInfer(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected models.DType
	}{
		{"all ints", []string{"1", "2", "3"}, models.DTypeInt},
		{"mixed fractional", []string{"1", "2.5", "3"}, models.DTypeFloat},
		{"one text value", []string{"1", "a", "3"}, models.DTypeString},
		{"all null", []string{"", "", ""}, models.DTypeString},
		{"ints with nulls", []string{"1", "", "3"}, models.DTypeInt},
		{"negative ints", []string{"-5", "0", "12"}, models.DTypeInt},
		{"scientific", []string{"1e3", "2e-1"}, models.DTypeFloat},
		{"whole floats", []string{"1.0", "2.0"}, models.DTypeInt},
		{"no rows", nil, models.DTypeString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := column("c", tt.values...)
			dt := Infer(m)
			if got, _ := dt.Get("c"); got != tt.expected {
				t.Errorf("Infer(%v) = %q, expected %q", tt.values, got, tt.expected)
			}
		})
	}
}

func TestInferSheetColumnForced(t *testing.T) {
	m := &models.Master{
		Columns: []string{"n", models.SheetColumn},
		Rows: [][]models.Cell{
			{models.TextCell("1"), models.TextCell("2024")},
			{models.TextCell("2"), models.TextCell("2025")},
		},
	}
	dt := Infer(m)
	if got, _ := dt.Get(models.SheetColumn); got != models.DTypeString {
		t.Errorf("_sheet inferred as %q, must always be string", got)
	}
	if got, _ := dt.Get("n"); got != models.DTypeInt {
		t.Errorf("n inferred as %q, expected int", got)
	}
}

func TestInferNumberCells(t *testing.T) {
	m := &models.Master{
		Columns: []string{"c"},
		Rows: [][]models.Cell{
			{models.NumberCell(1)},
			{models.NumberCell(2.5)},
		},
	}
	dt := Infer(m)
	if got, _ := dt.Get("c"); got != models.DTypeFloat {
		t.Errorf("Infer on number cells = %q, expected float", got)
	}
}

func TestApplyNumeric(t *testing.T) {
	m := column("c", "1", "not a number", "3", "")
	dt := models.NewDTypes()
	dt.Set("c", models.DTypeInt)

	out := Apply(m, dt)

	if out.Rows[0][0].Kind != models.KindNumber || out.Rows[0][0].Num != 1 {
		t.Errorf("Expected number 1, got %+v", out.Rows[0][0])
	}
	// unparseable values coerce to null
	if !out.Rows[1][0].IsNull() {
		t.Errorf("Expected null for unparseable value, got %+v", out.Rows[1][0])
	}
	if !out.Rows[3][0].IsNull() {
		t.Errorf("Null must stay null, got %+v", out.Rows[3][0])
	}

	// the input table is untouched
	if m.Rows[0][0].Kind != models.KindText {
		t.Error("Apply mutated its input")
	}
}

func TestApplyString(t *testing.T) {
	m := &models.Master{
		Columns: []string{"c"},
		Rows: [][]models.Cell{
			{models.NumberCell(7)},
			{models.TextCell("x")},
			{models.NullCell()},
		},
	}
	dt := models.NewDTypes()
	dt.Set("c", models.DTypeString)

	out := Apply(m, dt)
	if out.Rows[0][0].Kind != models.KindText || out.Rows[0][0].Text != "7" {
		t.Errorf("Expected text %q, got %+v", "7", out.Rows[0][0])
	}
	if !out.Rows[2][0].IsNull() {
		t.Errorf("Null must stay null under string, got %+v", out.Rows[2][0])
	}
}

func TestApplyUnknownTagFallsBack(t *testing.T) {
	m := column("c", "1", "b")
	dt := models.NewDTypes()
	dt.Set("c", models.DType("decimal"))

	out := Apply(m, dt)
	for r, want := range []string{"1", "b"} {
		cell := out.Rows[r][0]
		if cell.Kind != models.KindText || cell.Text != want {
			t.Errorf("Row %d = %+v, expected text %q fallback", r, cell, want)
		}
	}
}

func TestApplySkipsUnmappedColumns(t *testing.T) {
	m := column("c", "1")
	out := Apply(m, models.NewDTypes())
	if out.Rows[0][0] != m.Rows[0][0] {
		t.Errorf("Unmapped column was modified: %+v", out.Rows[0][0])
	}
}
