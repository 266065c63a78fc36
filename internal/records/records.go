// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package records turns a sheet into a list of header-keyed records, the
// generic dump used to inspect plan workbooks before writing plan rules.
package records

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/FranCalveyra/austral-map-v2/internal/workbook"
)

// Field is one column value of a record.
type Field struct {
	Key   string
	Value any
}

// Record is a row keyed by header names, in column order.
type Record []Field

// Get returns the value for key and whether the key exists.
func (r Record) Get(key string) (any, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// MarshalJSON writes the record as an object whose keys follow column order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := marshalNoEscape(f.Value)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", f.Key, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML writes the record as a mapping whose keys follow column order.
func (r Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range r {
		var key, val yaml.Node
		if err := key.Encode(f.Key); err != nil {
			return nil, err
		}
		if err := val.Encode(f.Value); err != nil {
			return nil, fmt.Errorf("column %q: %w", f.Key, err)
		}
		node.Content = append(node.Content, &key, &val)
	}
	return node, nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Headers names the columns from the first row. Empty names become
// "Unnamed: <index>" and repeated names get ".1", ".2" suffixes.
func Headers(row []string) []string {
	out := make([]string, len(row))
	count := make(map[string]int, len(row))
	for i, h := range row {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		if n := count[h]; n > 0 {
			count[h] = n + 1
			h = fmt.Sprintf("%s.%d", h, n)
		} else {
			count[h] = 1
		}
		out[i] = h
	}
	return out
}

// FromSheet converts the rows below the header into records. Blank rows are
// dropped. The header spans the widest row; columns without a header name
// are keyed "Unnamed: <index>".
func FromSheet(sheet workbook.Sheet) []Record {
	out := []Record{}
	if len(sheet.Rows) == 0 {
		return out
	}
	width := 0
	for _, row := range sheet.Rows {
		width = max(width, len(row))
	}
	header := make([]string, width)
	copy(header, sheet.Rows[0])
	headers := Headers(header)

	for _, row := range sheet.Rows[1:] {
		if blank(row) {
			continue
		}
		rec := make(Record, len(headers))
		for c, h := range headers {
			var cell string
			if c < len(row) {
				cell = row[c]
			}
			rec[c] = Field{Key: h, Value: Value(cell)}
		}
		out = append(out, rec)
	}
	return out
}

// leadingZero matches numeric text that only a text cell can hold ("007").
var leadingZero = regexp.MustCompile(`^[-+]?0\d`)

// Value types a cell: nil when empty, int64 or float64 for numbers, the
// trimmed string otherwise. Numbers written with leading zeros stay strings.
func Value(cell string) any {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	if leadingZero.MatchString(cell) {
		return cell
	}
	if i, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil && !strings.ContainsAny(cell, "xXnNiI") {
		return f
	}
	return cell
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
