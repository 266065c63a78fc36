// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MÓDULO: 1er. Año", "modulo: 1er. ano"},
		{"Cód.", "cod."},
		{"Séptimo", "septimo"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.in))
		})
	}
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("MÓDULO: 2DO. AÑO", "módulo:"))
	assert.True(t, ContainsFold("Modulo: optativas", "MÓDULO:"))
	assert.False(t, ContainsFold("Actividad", "módulo"))
}

func TestUpperLower(t *testing.T) {
	assert.Equal(t, "MÓDULO", Upper("módulo"))
	assert.Equal(t, "año", Lower("AÑO"))
}

func TestIsBlank(t *testing.T) {
	for _, s := range []string{"", "  ", "nan", " NaN "} {
		assert.True(t, IsBlank(s), "%q", s)
	}
	assert.False(t, IsBlank("0"))
}
