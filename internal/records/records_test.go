// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package records

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/FranCalveyra/austral-map-v2/internal/workbook"
)

func TestHeaders(t *testing.T) {
	got := Headers([]string{"Cód.", "", "Materia", "Materia", " Materia ", ""})
	assert.Equal(t, []string{"Cód.", "Unnamed: 1", "Materia", "Materia.1", "Materia.2", "Unnamed: 5"}, got)
}

func TestValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"", nil},
		{"  ", nil},
		{"1001", int64(1001)},
		{"6.5", 6.5},
		{"-", "-"},
		{"1001; 1002", "1001; 1002"},
		{"NaN", "NaN"},
		{"Inf", "Inf"},
		{"0x1F", "0x1F"},
		{" Análisis ", "Análisis"},
		{"007", "007"},
		{"-01", "-01"},
		{"0", int64(0)},
		{"0.5", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Value(tt.in))
		})
	}
}

func TestFromSheet(t *testing.T) {
	sheet := workbook.Sheet{
		Name: "Ing Industrial",
		Rows: [][]string{
			{"Cód.", "Materia", "Créditos"},
			{"1er Año"},
			{},
			{"", "  "},
			{"1001", "Análisis <I>", "6.5", "extra"},
		},
	}
	recs := FromSheet(sheet)
	require.Len(t, recs, 2)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	require.NoError(t, enc.Encode(recs))
	data := buf.Bytes()
	assert.JSONEq(t, `[
		{"Cód.": "1er Año", "Materia": null, "Créditos": null, "Unnamed: 3": null},
		{"Cód.": 1001, "Materia": "Análisis <I>", "Créditos": 6.5, "Unnamed: 3": "extra"}
	]`, string(data))
	assert.Contains(t, string(data), `{"Cód.":1001,"Materia":"Análisis <I>","Créditos":6.5,"Unnamed: 3":"extra"}`,
		"keys keep column order and HTML is not escaped")

	v, ok := recs[1].Get("Materia")
	assert.True(t, ok)
	assert.Equal(t, "Análisis <I>", v)
	v, ok = recs[1].Get("Unnamed: 3")
	assert.True(t, ok)
	assert.Equal(t, "extra", v)
}

func TestFromSheetKeepsColumnsPastHeader(t *testing.T) {
	// An empty trailing header cell is trimmed when the sheet is read.
	sheet := workbook.Sheet{
		Name: "Ing Informática",
		Rows: [][]string{
			{"Cód.", "Materia"},
			{"1001", "Análisis", "nota importante"},
			{"007", "Taller"},
		},
	}
	recs := FromSheet(sheet)
	require.Len(t, recs, 2)

	want := []Record{
		{{Key: "Cód.", Value: int64(1001)}, {Key: "Materia", Value: "Análisis"}, {Key: "Unnamed: 2", Value: "nota importante"}},
		{{Key: "Cód.", Value: "007"}, {Key: "Materia", Value: "Taller"}, {Key: "Unnamed: 2", Value: nil}},
	}
	assert.Equal(t, want, recs)
}

func TestFromSheetEmpty(t *testing.T) {
	recs := FromSheet(workbook.Sheet{Name: "vacía"})
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestRecordYAMLKeepsOrder(t *testing.T) {
	rec := Record{{Key: "z", Value: int64(1)}, {Key: "a", Value: nil}, {Key: "m", Value: "x"}}
	out, err := yaml.Marshal([]Record{rec})
	require.NoError(t, err)

	doc := string(out)
	z, a, m := strings.Index(doc, "z: 1"), strings.Index(doc, "a: null"), strings.Index(doc, "m: x")
	require.True(t, z >= 0 && a >= 0 && m >= 0, "missing keys in %q", doc)
	assert.True(t, z < a && a < m, "keys out of column order in %q", doc)
}
