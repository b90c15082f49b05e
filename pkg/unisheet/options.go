// Package unisheet unifies the sheets of a spreadsheet into one normalized,
// typed master table and exports it.
package unisheet

import "fmt"

// SheetSelection specifies which sheets to read: every sheet in workbook
// order, or an explicit ordered list of names.
type SheetSelection struct {
	All   bool
	Names []string
}

// AllSheets selects every sheet in workbook order.
func AllSheets() SheetSelection {
	return SheetSelection{All: true}
}

// SheetList selects exactly the named sheets, in the given order.
func SheetList(names ...string) SheetSelection {
	return SheetSelection{Names: names}
}

// Validate checks that the selection is one of the two supported forms.
func (s SheetSelection) Validate() error {
	if s.All && len(s.Names) > 0 {
		return fmt.Errorf("%w: both all-sheets and an explicit list given", ErrInvalidConfig)
	}
	if !s.All && len(s.Names) == 0 {
		return fmt.Errorf("%w: must be all sheets or an explicit list of names", ErrInvalidConfig)
	}
	return nil
}

// Options configures a pipeline run.
type Options struct {
	// Sheets selects which sheets to read.
	Sheets SheetSelection
	// MasterXLSX additionally writes the master table as master.xlsx.
	MasterXLSX bool
}

// DefaultOptions reads every sheet and writes only the CSV/JSON artifacts.
func DefaultOptions() Options {
	return Options{Sheets: AllSheets()}
}
