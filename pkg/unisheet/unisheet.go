package unisheet

import (
	"path/filepath"

	"github.com/tmaldonado/unisheet/pkg/unisheet/dtype"
	"github.com/tmaldonado/unisheet/pkg/unisheet/models"
	"github.com/tmaldonado/unisheet/pkg/unisheet/output"
	"github.com/tmaldonado/unisheet/pkg/unisheet/unify"
)

// Result summarizes a completed pipeline run.
type Result struct {
	// Rows and Cols are the master table's dimensions (Cols includes the
	// _sheet column).
	Rows int
	Cols int
	// OutDir is the absolute output directory.
	OutDir string
	// Paths of the artifacts written.
	MasterCSV  string
	ColumnCSVs []string
	DTypesJSON string
	MasterXLSX string // empty unless Options.MasterXLSX was set
	// DTypes is the inferred type map.
	DTypes *models.DTypes
}

// Run executes the whole pipeline: read the selected sheets, unify them
// into a master table, infer per-column types, apply them, and export
// everything to outdir. The stages are strictly ordered; if any stage
// fails, nothing is exported.
func Run(inputPath, outdir string, opts Options) (*Result, error) {
	sheets, err := ReadAllSheets(inputPath, opts.Sheets)
	if err != nil {
		return nil, err
	}

	master := unify.Unify(sheets)
	inferred := dtype.Infer(master)
	master = dtype.Apply(master, inferred)

	return Export(master, inferred, outdir, opts)
}

// Export writes the master table and its sidecar artifacts to outdir,
// creating it if needed, and returns the run summary.
func Export(master *models.Master, inferred *models.DTypes, outdir string, opts Options) (*Result, error) {
	masterCSV, err := output.WriteMasterCSV(master, inferred, outdir)
	if err != nil {
		return nil, err
	}
	columnCSVs, err := output.WriteColumnCSVs(master, inferred, outdir)
	if err != nil {
		return nil, err
	}
	dtypesJSON, err := output.WriteDTypesJSON(inferred, outdir)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Rows:       master.NumRows(),
		Cols:       master.NumCols(),
		MasterCSV:  masterCSV,
		ColumnCSVs: columnCSVs,
		DTypesJSON: dtypesJSON,
		DTypes:     inferred,
	}

	if opts.MasterXLSX {
		path, err := output.WriteMasterXLSX(master, inferred, outdir)
		if err != nil {
			return nil, err
		}
		res.MasterXLSX = path
	}

	abs, err := filepath.Abs(outdir)
	if err != nil {
		abs = outdir
	}
	res.OutDir = abs

	return res, nil
}
