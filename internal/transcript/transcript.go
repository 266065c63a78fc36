// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcript converts a student's academic record spreadsheet into the
// course list consumed by the curriculum map.
//
// The record is a single sheet split into modules ("MÓDULO: 1er. Año", ...).
// Each module has a column header row starting with "Actividad" followed by
// one row per course: name and code, type, year, period, grade, origin and
// credits. Only the five core years are kept.
package transcript

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/FranCalveyra/austral-map-v2/internal/textutil"
	"github.com/FranCalveyra/austral-map-v2/pkg/types"
)

const (
	studentMarker = "Alumno:"
	moduleMarker  = "módulo:"
	headerMarker  = "Actividad"

	defaultCredits = "0.00"
	defaultYear    = 1
)

// Column positions within a course row.
const (
	colActivity = iota
	colType
	colYear
	colPeriod
	colNota
	colOrigen
	colCredits
)

// activityPattern splits "Course Name (ID)" into name and ID.
var activityPattern = regexp.MustCompile(`^(.+?)\s*\(([^)]+)\)`)

// DetectStudentName returns the text after the first colon of the first cell
// containing "Alumno:", or "" when the record has none.
func DetectStudentName(rows [][]string) string {
	for _, row := range rows {
		for _, cell := range row {
			if !strings.Contains(cell, studentMarker) {
				continue
			}
			_, name, _ := strings.Cut(cell, ":")
			return strings.TrimSpace(name)
		}
	}
	return ""
}

// Parser converts transcript rows. The zero value is usable.
type Parser struct {
	Logger *zap.Logger
}

// Parse converts the rows of a transcript sheet into a Transcript.
func Parse(rows [][]string) types.Transcript {
	return Parser{}.Parse(rows)
}

// Parse converts the rows of a transcript sheet into a Transcript.
func (p Parser) Parse(rows [][]string) types.Transcript {
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}

	out := types.Transcript{
		StudentName: DetectStudentName(rows),
		Courses:     []types.TranscriptCourse{},
	}

	var module string
	core := false

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		first := row[0]

		if textutil.ContainsFold(first, moduleMarker) {
			module = first
			core = IsCoreModule(module)
			log.Debug("module", zap.Int("row", i), zap.String("header", module), zap.Bool("core", core))
			continue
		}
		if strings.Contains(first, headerMarker) {
			continue
		}
		if module == "" {
			continue
		}

		activity := cleanCell(first)
		if activity == "" {
			continue
		}
		m := activityPattern.FindStringSubmatch(activity)
		if m == nil {
			continue
		}
		if !core {
			continue
		}

		nota := cell(row, colNota)
		origen := cell(row, colOrigen)
		status, grade := ClassifyStatus(nota, origen)

		credits := cleanCell(cell(row, colCredits))
		if credits == "" {
			credits = defaultCredits
		}

		out.Courses = append(out.Courses, types.TranscriptCourse{
			Course:      strings.TrimSpace(m[1]),
			ID:          strings.TrimSpace(m[2]),
			Year:        parseYear(cell(row, colYear)),
			Semester:    SemesterFromPeriod(cell(row, colPeriod)),
			Credits:     credits,
			Status:      status,
			DebugNota:   nota,
			DebugOrigen: origen,
			Grade:       grade,
		})
	}

	return out
}

// parseYear accepts only a plain run of digits; anything else is year one.
func parseYear(s string) int {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return defaultYear
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return defaultYear
	}
	return y
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
