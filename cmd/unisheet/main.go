// Package main provides the CLI entry point for unisheet.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tmaldonado/unisheet/pkg/unisheet"
	"github.com/tmaldonado/unisheet/pkg/unisheet/dtype"
	"github.com/tmaldonado/unisheet/pkg/unisheet/unify"
)

const (
	defaultInput  = "data/2025A.xlsx"
	defaultOutdir = "outputs"
)

var (
	sheetsFlag string
	masterXLSX bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "unisheet [input.xlsx] [outdir]",
		Short: "Unify a multi-sheet spreadsheet into one normalized table",
		Long: `unisheet reads every sheet of a spreadsheet, normalizes the column
headers, unifies all sheets into a single master table, infers a simple
per-column type (int, float, or string), and exports the result as
master.csv, one CSV per column, and a JSON type map.`,
		Args:         cobra.MaximumNArgs(2),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&sheetsFlag, "sheets", "all", `Sheets to read: "all" or a comma-separated list of names`)
	rootCmd.Flags().BoolVar(&masterXLSX, "master-xlsx", false, "Also write the master table as master.xlsx")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := defaultInput
	outdir := defaultOutdir
	if len(args) > 0 {
		inputPath = args[0]
	}
	if len(args) > 1 {
		outdir = args[1]
	}

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	opts := unisheet.Options{
		Sheets:     parseSheetSelection(sheetsFlag),
		MasterXLSX: masterXLSX,
	}

	fmt.Printf("== Reading spreadsheet: %s\n", inputPath)
	sheets, err := unisheet.ReadAllSheets(inputPath, opts.Sheets)
	if err != nil {
		return err
	}

	fmt.Println("== Unifying sheets and normalizing headers…")
	master := unify.Unify(sheets)

	fmt.Println("== Typing columns (numeric vs string)…")
	inferred := dtype.Infer(master)
	master = dtype.Apply(master, inferred)

	fmt.Println("== Exporting…")
	res, err := unisheet.Export(master, inferred, outdir, opts)
	if err != nil {
		return err
	}

	printSummary(res)
	return nil
}

// parseSheetSelection turns the --sheets flag into a SheetSelection:
// "all" reads every sheet, anything else is a comma-separated name list.
func parseSheetSelection(flag string) unisheet.SheetSelection {
	if strings.TrimSpace(flag) == "all" {
		return unisheet.AllSheets()
	}
	var sheetNames []string
	for _, name := range strings.Split(flag, ",") {
		if name = strings.TrimSpace(name); name != "" {
			sheetNames = append(sheetNames, name)
		}
	}
	return unisheet.SheetList(sheetNames...)
}

func printSummary(res *unisheet.Result) {
	fmt.Println("=== DONE ===")
	fmt.Printf("Rows: %d | Columns: %d\n", res.Rows, res.Cols)
	fmt.Printf("Output: %s\n", res.OutDir)
	fmt.Println("Generated:")
	fmt.Printf(" - %s\n", filepath.Base(res.MasterCSV))
	fmt.Printf(" - columns/*.csv (%d files, one per column)\n", len(res.ColumnCSVs))
	fmt.Printf(" - %s (applied type map)\n", filepath.Base(res.DTypesJSON))
	if res.MasterXLSX != "" {
		fmt.Printf(" - %s\n", filepath.Base(res.MasterXLSX))
	}
}
