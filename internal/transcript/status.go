// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/FranCalveyra/austral-map-v2/internal/textutil"
	"github.com/FranCalveyra/austral-map-v2/pkg/types"
)

// gradePattern matches the first number in a grade cell. A comma is accepted
// as the decimal separator.
var gradePattern = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

// ClassifyStatus maps the free-text grade (nota) and origin (origen) cells of
// a transcript row to a completion status. The grade is returned only for
// approved courses whose grade cell contains a number.
//
// Rules are checked in order: "en curso" in either cell, "regularidad" in the
// origin, a failing grade, a passing grade, and finally DISPONIBLE.
func ClassifyStatus(nota, origen string) (types.Status, *float64) {
	nota = cleanCell(nota)
	origen = cleanCell(origen)
	notaLower := textutil.Lower(nota)
	origenLower := textutil.Lower(origen)

	switch {
	case strings.Contains(notaLower, "en curso") || strings.Contains(origenLower, "en curso"):
		return types.StatusCursando, nil
	case strings.Contains(origenLower, "regularidad"):
		return types.StatusEnFinal, nil
	// "desaprobado" contains "aprobado", so failures are matched first.
	case strings.Contains(notaLower, "desaprobad"):
		return types.StatusDesaprobada, nil
	case strings.Contains(notaLower, "aprobado") || strings.Contains(notaLower, "promocionado"):
		return types.StatusAprobada, parseGrade(nota)
	default:
		return types.StatusDisponible, nil
	}
}

func parseGrade(nota string) *float64 {
	m := gradePattern.FindString(nota)
	if m == "" {
		return nil
	}
	g, err := strconv.ParseFloat(strings.Replace(m, ",", ".", 1), 64)
	if err != nil {
		return nil
	}
	return &g
}

// SemesterFromPeriod maps a period cell to the semester within the year.
// Annual courses and empty periods span the whole year and return nil.
// Unrecognised periods default to the first semester.
func SemesterFromPeriod(period string) *int {
	period = strings.TrimSpace(period)
	if period == "" || textutil.Upper(period) == "ANUAL" {
		return nil
	}
	sem := 1
	switch {
	case strings.Contains(period, "1C"):
		sem = 1
	case strings.Contains(period, "2C"):
		sem = 2
	}
	return &sem
}

// coreYears are the folded module headings of the five core curriculum years.
var coreYears = []string{"1er. ano", "2do. ano", "3er. ano", "4to. ano", "5to. ano"}

// IsCoreModule reports whether a module heading belongs to the core
// curriculum (years one to five) rather than electives or other requirements.
func IsCoreModule(header string) bool {
	folded := textutil.Fold(header)
	for _, y := range coreYears {
		if strings.Contains(folded, y) {
			return true
		}
	}
	return false
}

// cleanCell trims a cell and blanks the "nan" placeholder.
func cleanCell(s string) string {
	if textutil.IsBlank(s) {
		return ""
	}
	return strings.TrimSpace(s)
}
