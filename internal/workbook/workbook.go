// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workbook loads spreadsheet files into plain string grids.
//
// Modern .xlsx workbooks are read with excelize. Legacy BIFF .xls workbooks
// are read directly first; when that fails the file is re-encoded to .xlsx
// by a Converter (LibreOffice) and read again. Every cell is exposed as text,
// the way the conversion rules expect it.
package workbook

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/FranCalveyra/austral-map-v2/internal/office"
)

// ErrUnsupportedFormat is returned for files that are neither .xls nor .xlsx.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// Sheet is one worksheet as ragged rows of cell text.
type Sheet struct {
	Name string
	Rows [][]string
}

// Cell returns the text at row r, column c, or "" when out of range.
func (s Sheet) Cell(r, c int) string {
	if r < 0 || r >= len(s.Rows) {
		return ""
	}
	row := s.Rows[r]
	if c < 0 || c >= len(row) {
		return ""
	}
	return row[c]
}

// Workbook is every sheet of a file, in workbook order.
type Workbook struct {
	Path   string
	Sheets []Sheet
}

// First returns the first sheet of the workbook.
func (w *Workbook) First() (Sheet, error) {
	if len(w.Sheets) == 0 {
		return Sheet{}, fmt.Errorf("workbook %s has no sheets", w.Path)
	}
	return w.Sheets[0], nil
}

// Converter re-encodes a legacy spreadsheet to .xlsx, returning the new path.
type Converter interface {
	ConvertToXLSX(ctx context.Context, src string) (string, error)
}

// ConverterFunc adapts a function to Converter.
type ConverterFunc func(ctx context.Context, src string) (string, error)

// ConvertToXLSX calls f.
func (f ConverterFunc) ConvertToXLSX(ctx context.Context, src string) (string, error) {
	return f(ctx, src)
}

type reader func(path string) (*Workbook, error)

type options struct {
	converter Converter
	logger    *zap.Logger
	readXLS   reader
	readXLSX  reader
}

// Option configures Open.
type Option func(*options)

// WithConverter enables the .xls re-encode fallback.
func WithConverter(c Converter) Option {
	return func(o *options) { o.converter = c }
}

// WithLogger sets the logger used for fallback diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts ...Option) *options {
	o := &options{
		logger:   zap.NewNop(),
		readXLS:  readXLS,
		readXLSX: readXLSX,
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// Open reads every sheet of the workbook at path.
func Open(ctx context.Context, path string, opts ...Option) (*Workbook, error) {
	o := newOptions(opts...)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return o.readXLSX(path)
	case ".xls":
		return o.openLegacy(ctx, path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func (o *options) openLegacy(ctx context.Context, path string) (*Workbook, error) {
	wb, err := o.readXLS(path)
	if err == nil {
		return wb, nil
	}
	o.logger.Warn("xls parse failed", zap.String("path", path), zap.Error(err))

	if o.converter == nil {
		return nil, fmt.Errorf("could not parse %s (%v) and no LibreOffice converter is configured; "+
			"install LibreOffice (soffice) or convert the file to .xlsx manually", path, err)
	}

	converted, cerr := o.converter.ConvertToXLSX(ctx, path)
	if cerr != nil {
		if errors.Is(cerr, office.ErrNotFound) {
			return nil, fmt.Errorf("could not parse %s and %w; "+
				"install LibreOffice (soffice) or convert the file to .xlsx manually", path, cerr)
		}
		return nil, fmt.Errorf("re-encoding %s: %w", path, cerr)
	}
	o.logger.Info("re-encoded legacy workbook", zap.String("from", path), zap.String("to", converted))

	return o.readXLSX(converted)
}

// floatInt matches the text of a whole number stored as a float ("2.0").
var floatInt = regexp.MustCompile(`^-?\d+\.0$`)

// normalizeCell trims surrounding whitespace and renders whole floats as integers.
func normalizeCell(s string) string {
	s = strings.TrimSpace(s)
	if floatInt.MatchString(s) {
		return strings.TrimSuffix(s, ".0")
	}
	return s
}

// normalizeRows normalizes every cell and drops trailing empty cells and rows.
func normalizeRows(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = normalizeCell(c)
		}
		end := len(cells)
		for end > 0 && cells[end-1] == "" {
			end--
		}
		out = append(out, cells[:end])
	}
	end := len(out)
	for end > 0 && len(out[end-1]) == 0 {
		end--
	}
	return out[:end]
}
