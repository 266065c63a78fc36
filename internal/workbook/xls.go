// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workbook

import (
	"fmt"

	"github.com/extrame/xls"
)

// readXLS reads a BIFF workbook. The BIFF decoder panics on some malformed
// records, so panics are reported as errors to trigger the re-encode fallback.
func readXLS(path string) (wb *Workbook, err error) {
	defer func() {
		if r := recover(); r != nil {
			wb = nil
			err = fmt.Errorf("parsing %s: %v", path, r)
		}
	}()

	book, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	wb = &Workbook{Path: path}
	for i := 0; i < book.NumSheets(); i++ {
		ws := book.GetSheet(i)
		if ws == nil {
			continue
		}
		rows := make([][]string, 0, int(ws.MaxRow)+1)
		for r := 0; r <= int(ws.MaxRow); r++ {
			row := ws.Row(r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			cells := make([]string, row.LastCol())
			for c := max(row.FirstCol(), 0); c < row.LastCol(); c++ {
				cells[c] = row.Col(c)
			}
			rows = append(rows, cells)
		}
		wb.Sheets = append(wb.Sheets, Sheet{Name: ws.Name, Rows: normalizeRows(rows)})
	}
	if len(wb.Sheets) == 0 {
		return nil, fmt.Errorf("parsing %s: no readable sheets", path)
	}
	return wb, nil
}
