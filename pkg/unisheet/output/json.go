package output

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tmaldonado/unisheet/pkg/unisheet/models"
)

// DTypesJSONName is the filename of the inferred type map export.
const DTypesJSONName = "inferred_dtypes.json"

// WriteDTypesJSON writes the inferred type map to
// <outdir>/inferred_dtypes.json with keys in column order and UTF-8 text
// left unescaped.
func WriteDTypesJSON(dt *models.DTypes, outdir string) (string, error) {
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(outdir, DTypesJSONName)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(dt); err != nil {
		return "", err
	}
	return path, f.Close()
}
