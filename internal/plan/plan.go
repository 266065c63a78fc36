// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package plan converts study-plan sheets into the normalized plan schema.
//
// A plan sheet lists courses under section rows that carry only a code-column
// label: "1er Año" opens a year, "2do Cuatrimestre" opens a semester. Course
// rows hold a numeric code, a name, credits, an optional semester and a
// semicolon-separated list of correlative (prerequisite) codes. From the
// correlatives the package derives each course's forward requirements and its
// reverse dependents to a depth of two.
package plan

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/FranCalveyra/austral-map-v2/internal/textutil"
	"github.com/FranCalveyra/austral-map-v2/internal/workbook"
	"github.com/FranCalveyra/austral-map-v2/pkg/types"
)

// Subject is a course row as extracted from a plan sheet, before the
// prerequisite closure is derived.
type Subject struct {
	Name         string
	ID           string
	Year         *int
	Semester     *int
	Credits      *string
	Correlatives []string
}

// Parser extracts plan sheets. The zero value is usable.
type Parser struct {
	Logger *zap.Logger
}

func (p Parser) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

// ParseSheet converts one plan sheet into plan-schema courses.
func (p Parser) ParseSheet(sheet workbook.Sheet) ([]types.Course, error) {
	subjects, err := p.ExtractSubjects(sheet)
	if err != nil {
		return nil, err
	}
	return Derive(subjects), nil
}

// ExtractSubjects walks the rows of a plan sheet, tracking the current year
// and semester headings, and returns one Subject per course row.
func (p Parser) ExtractSubjects(sheet workbook.Sheet) ([]Subject, error) {
	log := p.logger().With(zap.String("sheet", sheet.Name))

	headerIdx, cols, err := locateHeader(sheet.Rows)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet.Name, err)
	}

	var (
		year     *int
		semester *int
		subjects []Subject
	)

	for r := headerIdx + 1; r < len(sheet.Rows); r++ {
		code := strings.TrimSpace(sheet.Cell(r, cols.code))
		course := strings.TrimSpace(sheet.Cell(r, cols.course))

		if course == "" && code != "" && !isNumeric(code) {
			switch {
			case strings.Contains(textutil.Lower(code), "año"):
				year = ParseOrdinal(code)
				log.Debug("year heading", zap.Int("row", r), zap.String("text", code))
				continue
			case strings.Contains(textutil.Fold(code), "cuatrimestre"):
				semester = ParseOrdinal(code)
				log.Debug("semester heading", zap.Int("row", r), zap.String("text", code))
				continue
			}
		}

		if code == "" || course == "" || textutil.Lower(course) == "total" {
			continue
		}

		id, ok := normalizeCode(code)
		if !ok {
			log.Warn("non-numeric course code kept as text", zap.Int("row", r), zap.String("code", code))
		}

		sem := semester
		if raw := strings.TrimSpace(sheet.Cell(r, cols.semester)); raw != "" {
			sem = ParseOrdinal(raw)
		}

		subjects = append(subjects, Subject{
			Name:         course,
			ID:           id,
			Year:         year,
			Semester:     sem,
			Credits:      formatCredits(sheet.Cell(r, cols.credits)),
			Correlatives: splitCorrelatives(sheet.Cell(r, cols.correlatives)),
		})
	}

	return subjects, nil
}

// integerCode matches a code stored as a whole number ("1234" or "1234.0").
var integerCode = regexp.MustCompile(`^\d+(?:\.0+)?$`)

// normalizeCode renders numeric codes as integers ("1234.0" -> "1234").
// Anything else, including NaN, Inf and exponents, is returned with ok=false.
func normalizeCode(code string) (string, bool) {
	if !integerCode.MatchString(code) {
		return code, false
	}
	digits, _, _ := strings.Cut(code, ".")
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return code, false
	}
	return strconv.FormatInt(n, 10), true
}

// formatCredits renders a finite numeric credit value with two decimals, or nil.
func formatCredits(raw string) *string {
	if textutil.IsBlank(raw) {
		return nil
	}
	f, ok := parseFinite(raw)
	if !ok {
		return nil
	}
	s := fmt.Sprintf("%.2f", f)
	return &s
}

// splitCorrelatives splits "1001; 1002" into codes. "-" means none.
func splitCorrelatives(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "-" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, ";") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isNumeric(s string) bool {
	_, ok := parseFinite(s)
	return ok
}

func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// SheetResult is the outcome of converting one sheet.
type SheetResult struct {
	Sheet   string
	Courses []types.Course
	Err     error
}

// ConvertWorkbook converts every sheet. Sheets that fail, typically with
// ErrMissingColumns, are logged and reported with Err set.
func (p Parser) ConvertWorkbook(wb *workbook.Workbook) []SheetResult {
	results := make([]SheetResult, 0, len(wb.Sheets))
	for _, sheet := range wb.Sheets {
		courses, err := p.ParseSheet(sheet)
		if err != nil {
			p.logger().Warn("skipping sheet", zap.String("sheet", sheet.Name), zap.Error(err))
		}
		results = append(results, SheetResult{Sheet: sheet.Name, Courses: courses, Err: err})
	}
	return results
}
