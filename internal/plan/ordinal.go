// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/FranCalveyra/austral-map-v2/internal/textutil"
)

var leadingDigits = regexp.MustCompile(`^\s*(\d+)`)

// ordinalWords maps folded Spanish ordinals to numbers. The order matters:
// the first word found in the text wins.
var ordinalWords = []struct {
	word string
	n    int
}{
	{"primer", 1},
	{"segundo", 2},
	{"tercer", 3},
	{"cuarto", 4},
	{"quinto", 5},
	{"sexto", 6},
	{"septimo", 7},
	{"octavo", 8},
	{"noveno", 9},
	{"decimo", 10},
}

// ParseOrdinal reads the number out of headings such as "1er Año",
// "Segundo Cuatrimestre" or "Séptimo". Leading digits take precedence over
// ordinal words. It returns nil when the text names no number.
func ParseOrdinal(text string) *int {
	if m := leadingDigits.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return &n
		}
	}
	folded := textutil.Fold(text)
	for _, o := range ordinalWords {
		if strings.Contains(folded, o.word) {
			n := o.n
			return &n
		}
	}
	return nil
}
