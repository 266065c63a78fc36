// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrdinal(t *testing.T) {
	tests := []struct {
		text string
		want int
		ok   bool
	}{
		{"1er Año", 1, true},
		{"2do. Cuatrimestre", 2, true},
		{"  3 ", 3, true},
		{"10mo Año", 10, true},
		{"Primer Año", 1, true},
		{"PRIMERO", 1, true},
		{"Segundo Cuatrimestre", 2, true},
		{"Tercer año", 3, true},
		{"Cuarto", 4, true},
		{"Quinto Año", 5, true},
		{"Sexto", 6, true},
		{"Séptimo", 7, true},
		{"septimo", 7, true},
		{"Octavo", 8, true},
		{"Noveno", 9, true},
		{"Décimo", 10, true},
		{"Año 2", 0, false},
		{"Anual", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := ParseOrdinal(tt.text)
			if !tt.ok {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}
