// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/FranCalveyra/austral-map-v2/internal/textutil"
)

// ErrMissingColumns is returned for sheets lacking one of the required columns.
var ErrMissingColumns = errors.New("required columns not found")

// Header patterns, matched against folded (accent-free, lower-case) names.
var (
	codeHeader         = regexp.MustCompile(`^cod`)
	courseHeader       = regexp.MustCompile(`^(materi|asigna)`)
	correlativesHeader = regexp.MustCompile(`correl`)
	creditsHeader      = regexp.MustCompile(`credit`)
	semesterHeader     = regexp.MustCompile(`^sem(estr)?`)
)

// columns holds the index of each required column, -1 when absent.
type columns struct {
	code         int
	course       int
	correlatives int
	credits      int
	semester     int
}

func detectColumns(header []string) columns {
	cols := columns{code: -1, course: -1, correlatives: -1, credits: -1, semester: -1}
	for i, name := range header {
		folded := textutil.Fold(strings.TrimSpace(name))
		if folded == "" {
			continue
		}
		first(&cols.code, i, codeHeader.MatchString(folded))
		first(&cols.course, i, courseHeader.MatchString(folded))
		first(&cols.correlatives, i, correlativesHeader.MatchString(folded))
		first(&cols.credits, i, creditsHeader.MatchString(folded))
		first(&cols.semester, i, semesterHeader.MatchString(folded))
	}
	return cols
}

func first(dst *int, i int, ok bool) {
	if ok && *dst < 0 {
		*dst = i
	}
}

func (c columns) missing() []string {
	var out []string
	for _, f := range []struct {
		name string
		idx  int
	}{
		{"code", c.code},
		{"course", c.course},
		{"correlatives", c.correlatives},
		{"credits", c.credits},
		{"semester", c.semester},
	} {
		if f.idx < 0 {
			out = append(out, f.name)
		}
	}
	return out
}

// locateHeader picks the header row: the first row, unless it has no code
// column, in which case the row after a title row is used.
func locateHeader(rows [][]string) (int, columns, error) {
	idx := 0
	var cols columns
	if len(rows) > 0 {
		cols = detectColumns(rows[0])
	}
	if (len(rows) == 0 || cols.code < 0) && len(rows) > 1 {
		idx = 1
		cols = detectColumns(rows[1])
	}

	if missing := cols.missing(); len(missing) > 0 {
		var seen []string
		if idx < len(rows) {
			seen = rows[idx]
		}
		return 0, cols, fmt.Errorf("%w: missing %s (columns: %q)",
			ErrMissingColumns, strings.Join(missing, ", "), seen)
	}
	return idx, cols, nil
}
