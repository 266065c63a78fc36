package main

import (
	"context"
	"fmt"
	"io"

	"github.com/FranCalveyra/austral-map-v2/internal/office"
	"github.com/FranCalveyra/austral-map-v2/internal/workbook"
	"github.com/FranCalveyra/austral-map-v2/pkg/types"
)

// openWorkbook reads path, re-encoding legacy .xls files through LibreOffice
// when the native reader cannot handle them. LibreOffice is only looked up
// if the fallback is actually needed.
func openWorkbook(ctx context.Context, path string, cfg types.OfficeConfig, w io.Writer) (*workbook.Workbook, error) {
	conv := workbook.ConverterFunc(func(ctx context.Context, src string) (string, error) {
		o, err := office.Detect(office.WithBinary(cfg.Binary), office.WithOutputDir(cfg.OutputDir))
		if err != nil {
			return "", err
		}
		fmt.Fprintf(w, "Converting %s to .xlsx with %s\n", src, o.Name())
		return o.ConvertToXLSX(ctx, src)
	})

	return workbook.Open(ctx, path,
		workbook.WithConverter(conv),
		workbook.WithLogger(logger),
	)
}
