// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectColumns(t *testing.T) {
	cols := detectColumns([]string{"Cód.", "Materia", "Sem.", "Hs", "Correlativas", "Créditos"})
	assert.Equal(t, columns{code: 0, course: 1, correlatives: 4, credits: 5, semester: 2}, cols)
	assert.Empty(t, cols.missing())

	cols = detectColumns([]string{"Codigo", "ASIGNATURA", "Semestre", "Correlatividades", "Creditos"})
	assert.Equal(t, columns{code: 0, course: 1, correlatives: 3, credits: 4, semester: 2}, cols)
}

func TestDetectColumnsFirstMatchWins(t *testing.T) {
	cols := detectColumns([]string{"Cód.", "Materia", "Materia (inglés)", "Sem.", "Correlativas", "Créditos", "Créditos ECTS"})
	assert.Equal(t, 1, cols.course)
	assert.Equal(t, 5, cols.credits)
}

func TestLocateHeader(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]string
		wantIdx int
		wantErr bool
	}{
		{
			name:    "header on first row",
			rows:    [][]string{{"Cód.", "Materia", "Sem.", "Correlativas", "Créditos"}},
			wantIdx: 0,
		},
		{
			name: "title row above header",
			rows: [][]string{
				{"Plan de Estudios Ingeniería Informática 2023"},
				{"Cód.", "Materia", "Sem.", "Correlativas", "Créditos"},
			},
			wantIdx: 1,
		},
		{
			name:    "missing credits",
			rows:    [][]string{{"Cód.", "Materia", "Sem.", "Correlativas"}},
			wantErr: true,
		},
		{
			name:    "empty sheet",
			rows:    nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, _, err := locateHeader(tt.rows)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMissingColumns)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIdx, idx)
		})
	}
}

func TestLocateHeaderErrorNamesColumns(t *testing.T) {
	_, _, err := locateHeader([][]string{{"Cód.", "Materia", "Sem."}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "correlatives, credits")
	assert.Contains(t, err.Error(), "Materia")
}
