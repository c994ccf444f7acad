// Package excelhelper is a convenience façade over the excelize spreadsheet
// engine. It bundles workbook lifecycle management, cell/row/column/range
// read-write helpers, formula construction and relative-reference
// translation, styling, charts, pivot tables, data validation, conditional
// formatting, a data-frame bridge, and placeholder-based report rendering.
//
// The only piece of original logic is TranslateFormula; everything else
// delegates to excelize. A Book wraps exactly one open workbook and is not
// safe for concurrent use, matching the engine's whole-file ownership model.
package excelhelper

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Book wraps a single open workbook and tracks the active sheet that all
// cell-level operations address.
type Book struct {
	file   *excelize.File
	path   string
	active string

	macro      MacroRunner
	fitPadding float64
	password   string
}

// New creates an in-memory workbook with one empty sheet. Call SaveAs to
// bind it to a file.
func New(opts ...Option) *Book {
	b := newBook(excelize.NewFile(), "", opts...)
	return b
}

// Open opens an existing workbook file. Failures are classified into
// ErrFileNotFound, ErrPermissionDenied, or ErrInvalidFormat.
func Open(path string, opts ...Option) (*Book, error) {
	b := newBook(nil, path, opts...)
	var engineOpts []excelize.Options
	if b.password != "" {
		engineOpts = append(engineOpts, excelize.Options{Password: b.password})
	}
	f, err := excelize.OpenFile(path, engineOpts...)
	if err != nil {
		return nil, classifyOpenError(path, err)
	}
	b.file = f
	b.active = f.GetSheetName(f.GetActiveSheetIndex())
	return b, nil
}

// OpenReader opens a workbook from a stream. The Book has no file path
// until SaveAs is called.
func OpenReader(r io.Reader, opts ...Option) (*Book, error) {
	b := newBook(nil, "", opts...)
	var engineOpts []excelize.Options
	if b.password != "" {
		engineOpts = append(engineOpts, excelize.Options{Password: b.password})
	}
	f, err := excelize.OpenReader(r, engineOpts...)
	if err != nil {
		return nil, classifyOpenError("<reader>", err)
	}
	b.file = f
	b.active = f.GetSheetName(f.GetActiveSheetIndex())
	return b, nil
}

func newBook(f *excelize.File, path string, opts ...Option) *Book {
	b := &Book{
		file:       f,
		path:       path,
		fitPadding: defaultFitPadding,
	}
	if f != nil {
		b.active = f.GetSheetName(f.GetActiveSheetIndex())
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Save writes the workbook back to the path it was opened from or last
// saved to. Books created with New or OpenReader need SaveAs first.
func (b *Book) Save() error {
	if b.path == "" {
		return ErrNoPath
	}
	return b.SaveAs(b.path)
}

// SaveAs writes the workbook to the given path and makes it the Book's path.
func (b *Book) SaveAs(path string) error {
	if err := b.file.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %q: %w", path, err)
	}
	b.path = path
	return nil
}

// WriteTo streams the workbook to w without touching the Book's path. It
// implements io.WriterTo.
func (b *Book) WriteTo(w io.Writer) (int64, error) {
	n, err := b.file.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("write workbook: %w", err)
	}
	return n, nil
}

// Close releases the underlying engine resources. The Book must not be used
// afterwards.
func (b *Book) Close() error {
	return b.file.Close()
}

// Path returns the file path the workbook is bound to, or "" for in-memory books.
func (b *Book) Path() string {
	return b.path
}

// File exposes the underlying excelize file for operations the façade does
// not cover.
func (b *Book) File() *excelize.File {
	return b.file
}
