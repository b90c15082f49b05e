package unisheet

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates the sheet selection is neither "all" nor an
// explicit list of names.
var ErrInvalidConfig = errors.New("invalid sheet selection")

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnreadableFile indicates the input exists but cannot be parsed as a
// spreadsheet.
var ErrUnreadableFile = errors.New("unreadable spreadsheet")

// SheetError wraps an error raised while processing one sheet.
type SheetError struct {
	Sheet string
	Stage string // "read", "unify", "export"
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.Sheet, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
