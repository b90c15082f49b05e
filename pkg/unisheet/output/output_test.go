package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tmaldonado/unisheet/pkg/unisheet/models"
)

func sampleMaster() (*models.Master, *models.DTypes) {
	m := &models.Master{
		Columns: []string{"id", "nombre", "precio", models.SheetColumn},
		Rows: [][]models.Cell{
			{models.NumberCell(1), models.TextCell("Ana"), models.NumberCell(9.5), models.TextCell("Hoja1")},
			{models.NumberCell(2), models.NullCell(), models.NumberCell(3), models.TextCell("Hoja2")},
		},
	}
	dt := models.NewDTypes()
	dt.Set("id", models.DTypeInt)
	dt.Set("nombre", models.DTypeString)
	dt.Set("precio", models.DTypeFloat)
	dt.Set(models.SheetColumn, models.DTypeString)
	return m, dt
}

func TestWriteMasterCSV(t *testing.T) {
	m, dt := sampleMaster()
	outdir := t.TempDir()

	path, err := WriteMasterCSV(m, dt, outdir)
	if err != nil {
		t.Fatalf("WriteMasterCSV failed: %v", err)
	}
	if filepath.Base(path) != MasterCSVName {
		t.Errorf("Path = %q, expected %q", path, MasterCSVName)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte(utf8BOM)) {
		t.Error("master.csv is missing the UTF-8 BOM")
	}

	// round-trip: same row and column count
	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, []byte(utf8BOM)))).ReadAll()
	if err != nil {
		t.Fatalf("Re-reading master.csv failed: %v", err)
	}
	if len(records) != m.NumRows()+1 {
		t.Errorf("Expected %d records, got %d", m.NumRows()+1, len(records))
	}
	for _, rec := range records {
		if len(rec) != m.NumCols() {
			t.Errorf("Record has %d fields, expected %d", len(rec), m.NumCols())
		}
	}

	// int columns print without a decimal point, nulls are empty
	if records[1][0] != "1" {
		t.Errorf("id cell = %q, expected %q", records[1][0], "1")
	}
	if records[1][2] != "9.5" {
		t.Errorf("precio cell = %q, expected %q", records[1][2], "9.5")
	}
	if records[2][1] != "" {
		t.Errorf("null nombre cell = %q, expected empty", records[2][1])
	}
}

func TestWriteColumnCSVs(t *testing.T) {
	m, dt := sampleMaster()
	outdir := t.TempDir()

	paths, err := WriteColumnCSVs(m, dt, outdir)
	if err != nil {
		t.Fatalf("WriteColumnCSVs failed: %v", err)
	}
	if len(paths) != m.NumCols() {
		t.Fatalf("Expected %d files, got %d", m.NumCols(), len(paths))
	}

	raw, err := os.ReadFile(filepath.Join(outdir, ColumnsDirName, "id.csv"))
	if err != nil {
		t.Fatalf("Failed to read id.csv: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, []byte(utf8BOM)))).ReadAll()
	if err != nil {
		t.Fatalf("Re-reading id.csv failed: %v", err)
	}
	if records[0][0] != "row_index" || records[0][1] != "id" {
		t.Errorf("Header = %v, expected row_index,id", records[0])
	}
	if records[1][0] != "0" || records[2][0] != "1" {
		t.Errorf("Row indices = %q, %q; expected 0, 1", records[1][0], records[2][0])
	}
}

func TestWriteColumnCSVsCollision(t *testing.T) {
	m, dt := sampleMaster()
	outdir := t.TempDir()

	// a file already on disk claims the first candidate name
	colDir := filepath.Join(outdir, ColumnsDirName)
	if err := os.MkdirAll(colDir, 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(colDir, "id.csv"), []byte("taken"), 0644); err != nil {
		t.Fatalf("seed file failed: %v", err)
	}

	paths, err := WriteColumnCSVs(m, dt, outdir)
	if err != nil {
		t.Fatalf("WriteColumnCSVs failed: %v", err)
	}

	found := false
	for _, p := range paths {
		if filepath.Base(p) == "id_2.csv" {
			found = true
		}
		if filepath.Base(p) == "id.csv" {
			t.Error("Exporter overwrote a pre-existing file")
		}
	}
	if !found {
		t.Errorf("Expected id_2.csv among %v", paths)
	}

	// all generated names are distinct
	seen := make(map[string]bool)
	for _, p := range paths {
		if seen[p] {
			t.Errorf("Duplicate output path %q", p)
		}
		seen[p] = true
	}
}

func TestWriteDTypesJSON(t *testing.T) {
	_, dt := sampleMaster()
	outdir := t.TempDir()

	path, err := WriteDTypesJSON(dt, outdir)
	if err != nil {
		t.Fatalf("WriteDTypesJSON failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back: %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("inferred_dtypes.json is not valid JSON: %v", err)
	}
	expected := map[string]string{
		"id": "int", "nombre": "string", "precio": "float", models.SheetColumn: "string",
	}
	for col, want := range expected {
		if decoded[col] != want {
			t.Errorf("dtype[%q] = %q, expected %q", col, decoded[col], want)
		}
	}

	// keys appear in column order
	text := string(raw)
	if strings.Index(text, `"id"`) > strings.Index(text, `"precio"`) {
		t.Error("Keys are not in column order")
	}
}

func TestWriteMasterXLSX(t *testing.T) {
	m, dt := sampleMaster()
	outdir := t.TempDir()

	path, err := WriteMasterXLSX(m, dt, outdir)
	if err != nil {
		t.Fatalf("WriteMasterXLSX failed: %v", err)
	}
	if filepath.Base(path) != MasterXLSXName {
		t.Errorf("Path = %q, expected %q", path, MasterXLSXName)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("master.xlsx was not written: %v", err)
	}
}
