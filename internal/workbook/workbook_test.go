// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workbook

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/FranCalveyra/austral-map-v2/internal/office"
)

type fixtureSheet struct {
	name string
	rows [][]interface{}
}

// writeXLSX saves the given sheets, in order, to path.
func writeXLSX(t *testing.T, path string, sheets ...fixtureSheet) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for r, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			values := row
			require.NoError(t, f.SetSheetRow(s.name, cell, &values))
		}
	}
	require.NoError(t, f.SaveAs(path))
}

func TestOpenXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planes.xlsx")
	writeXLSX(t, path,
		fixtureSheet{name: "Ing Informatica", rows: [][]interface{}{
			{"Cód.", "Materia", "Créditos"},
			{1001, "Análisis Matemático I", 6.5},
		}},
		fixtureSheet{name: "Ciencia de Datos", rows: [][]interface{}{
			{"Cód.", "Materia"},
		}},
	)

	wb, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 2)

	assert.Equal(t, "Ing Informatica", wb.Sheets[0].Name)
	assert.Equal(t, "Ciencia de Datos", wb.Sheets[1].Name)
	assert.Equal(t, []string{"1001", "Análisis Matemático I", "6.5"}, wb.Sheets[0].Rows[1])

	first, err := wb.First()
	require.NoError(t, err)
	assert.Equal(t, "Cód.", first.Cell(0, 0))
	assert.Equal(t, "", first.Cell(0, 10))
	assert.Equal(t, "", first.Cell(10, 0))
}

func TestOpenUnsupported(t *testing.T) {
	_, err := Open(context.Background(), "plan.csv")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestOpenLegacyFallback(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "historia.xls")
	require.NoError(t, os.WriteFile(src, []byte("not really biff"), 0o644))

	converted := filepath.Join(dir, "historia.xlsx")
	writeXLSX(t, converted, fixtureSheet{name: "Hoja1", rows: [][]interface{}{
		{"Alumno: Ada Lovelace"},
	}})

	brokenXLS := func(path string) (*Workbook, error) {
		return nil, errors.New("bad BIFF record")
	}

	tests := []struct {
		name      string
		converter Converter
		wantErr   string
		wantCell  string
	}{
		{
			name: "re-encoded file is read",
			converter: ConverterFunc(func(_ context.Context, in string) (string, error) {
				if in != src {
					return "", fmt.Errorf("unexpected source %s", in)
				}
				return converted, nil
			}),
			wantCell: "Alumno: Ada Lovelace",
		},
		{
			name:    "no converter configured",
			wantErr: "install LibreOffice",
		},
		{
			name: "converter binary missing",
			converter: ConverterFunc(func(context.Context, string) (string, error) {
				return "", fmt.Errorf("%w: looked for soffice", office.ErrNotFound)
			}),
			wantErr: "LibreOffice CLI not found",
		},
		{
			name: "converter failure",
			converter: ConverterFunc(func(context.Context, string) (string, error) {
				return "", errors.New("exit status 77")
			}),
			wantErr: "exit status 77",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			if tt.converter != nil {
				opts = append(opts, WithConverter(tt.converter))
			}
			o := newOptions(opts...)
			o.readXLS = brokenXLS

			wb, err := o.openLegacy(context.Background(), src)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			first, err := wb.First()
			require.NoError(t, err)
			assert.Equal(t, tt.wantCell, first.Cell(0, 0))
		})
	}
}

func TestOpenLegacyDirect(t *testing.T) {
	called := false
	o := newOptions(WithConverter(ConverterFunc(func(context.Context, string) (string, error) {
		called = true
		return "", nil
	})))
	o.readXLS = func(path string) (*Workbook, error) {
		return &Workbook{Path: path, Sheets: []Sheet{{Name: "Hoja1"}}}, nil
	}
	wb, err := o.openLegacy(context.Background(), "historia.xls")
	require.NoError(t, err)
	assert.Equal(t, "Hoja1", wb.Sheets[0].Name)
	assert.False(t, called, "converter must not run when the direct read succeeds")
}

func TestNormalizeRows(t *testing.T) {
	in := [][]string{
		{" 2.0 ", "6.00", "1C", "", ""},
		{},
		{"x"},
		{"", ""},
		{},
	}
	want := [][]string{
		{"2", "6.00", "1C"},
		{},
		{"x"},
	}
	assert.Equal(t, want, normalizeRows(in))
}

func TestFirstEmpty(t *testing.T) {
	_, err := (&Workbook{Path: "empty.xlsx"}).First()
	assert.Error(t, err)
}
