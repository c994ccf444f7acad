package excelhelper

import (
	"archive/zip"
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors returned by Book operations. Callers should test them
// with errors.Is since they are always returned wrapped with context.
var (
	// ErrFileNotFound is returned by Open when the workbook file does not exist.
	ErrFileNotFound = errors.New("workbook file not found")

	// ErrPermissionDenied is returned when the workbook file cannot be
	// read or written due to filesystem permissions.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidFormat is returned when the file is not a valid xlsx/xlsm archive.
	ErrInvalidFormat = errors.New("invalid workbook format")

	// ErrSheetNotFound is returned when a named sheet does not exist in the workbook.
	ErrSheetNotFound = errors.New("sheet not found")

	// ErrOutOfRange is returned when a row or column coordinate falls
	// outside the sheet's addressable area.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrMacroUnsupported is returned by RunMacro when no MacroRunner has
	// been injected into the Book.
	ErrMacroUnsupported = errors.New("macro execution not supported")

	// ErrNoPath is returned by Save when the Book was created in memory
	// and no file path has been set with SaveAs.
	ErrNoPath = errors.New("workbook has no file path")
)

// classifyOpenError maps low-level open failures onto the named error kinds
// so callers never have to inspect engine or filesystem error strings.
func classifyOpenError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("open %q: %w", path, ErrFileNotFound)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("open %q: %w", path, ErrPermissionDenied)
	case errors.Is(err, zip.ErrFormat):
		return fmt.Errorf("open %q: %w", path, ErrInvalidFormat)
	}
	return fmt.Errorf("open %q: %w", path, err)
}

// checkCoord validates that a 1-based (row, col) pair is addressable.
func checkCoord(row, col int) error {
	if row < 1 || col < 1 || row > MaxRows || col > MaxColumns {
		return fmt.Errorf("cell (%d,%d): %w", row, col, ErrOutOfRange)
	}
	return nil
}
