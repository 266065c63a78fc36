// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import (
	"regexp"
	"strings"

	"github.com/FranCalveyra/austral-map-v2/pkg/types"
)

// Derive builds plan-schema courses from extracted subjects.
//
// Forward fields repeat the subject's own correlatives: "to take" requires
// them regularised, "to pass" requires them approved. Reverse fields list the
// subjects that depend on this one: direct dependents (children) followed by
// dependents of those (grandchildren, excluding any child). For "to take for"
// children are Regularizada and grandchildren Aprobada; "to pass for" marks
// both Aprobada. Correlatives naming codes outside the sheet appear in the
// forward fields but never produce reverse entries. Cycles are not checked.
func Derive(subjects []Subject) []types.Course {
	// When a code repeats, its last row's correlatives win.
	prereqs := make(map[string][]string, len(subjects))
	var order []string
	for _, s := range subjects {
		if _, seen := prereqs[s.ID]; !seen {
			order = append(order, s.ID)
		}
		prereqs[s.ID] = s.Correlatives
	}

	reverse := make(map[string][]string, len(subjects))
	for _, s := range subjects {
		reverse[s.ID] = nil
	}
	for _, id := range order {
		for _, p := range prereqs[id] {
			if _, ok := reverse[p]; ok {
				reverse[p] = append(reverse[p], id)
			}
		}
	}

	courses := make([]types.Course, 0, len(subjects))
	for _, s := range subjects {
		take := prereqs[s.ID]
		children := dedupe(reverse[s.ID], nil)
		grandchildren := grandchildrenOf(children, reverse)

		takeFor := make([]types.Requirement, 0, len(children)+len(grandchildren))
		passFor := make([]types.Requirement, 0, len(children)+len(grandchildren))
		for _, c := range children {
			takeFor = append(takeFor, types.Requirement{ID: c, Condition: types.ConditionRegularizada})
			passFor = append(passFor, types.Requirement{ID: c, Condition: types.ConditionAprobada})
		}
		for _, g := range grandchildren {
			takeFor = append(takeFor, types.Requirement{ID: g, Condition: types.ConditionAprobada})
			passFor = append(passFor, types.Requirement{ID: g, Condition: types.ConditionAprobada})
		}

		courses = append(courses, types.Course{
			Course:                s.Name,
			ID:                    s.ID,
			Year:                  s.Year,
			Semester:              s.Semester,
			Credits:               s.Credits,
			PrerequisitesToTake:   FormatRequirements(withCondition(take, types.ConditionRegularizada)),
			PrerequisitesToPass:   FormatRequirements(withCondition(take, types.ConditionAprobada)),
			PrerequisiteToTakeFor: FormatRequirements(takeFor),
			PrerequisiteToPassFor: FormatRequirements(passFor),
		})
	}
	return courses
}

func grandchildrenOf(children []string, reverse map[string][]string) []string {
	exclude := make(map[string]bool, len(children))
	for _, c := range children {
		exclude[c] = true
	}
	var all []string
	for _, c := range children {
		all = append(all, reverse[c]...)
	}
	return dedupe(all, exclude)
}

// dedupe keeps the first occurrence of each id, skipping excluded ones.
func dedupe(ids []string, exclude map[string]bool) []string {
	seen := make(map[string]bool, len(ids))
	var out []string
	for _, id := range ids {
		if seen[id] || exclude[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func withCondition(ids []string, cond types.Condition) []types.Requirement {
	out := make([]types.Requirement, len(ids))
	for i, id := range ids {
		out[i] = types.Requirement{ID: id, Condition: cond}
	}
	return out
}

// FormatRequirements serializes requirements as "(ID, Condition), ...".
// It returns nil for an empty list, which encodes as null.
func FormatRequirements(reqs []types.Requirement) *string {
	if len(reqs) == 0 {
		return nil
	}
	parts := make([]string, len(reqs))
	for i, r := range reqs {
		parts[i] = "(" + r.ID + ", " + string(r.Condition) + ")"
	}
	s := strings.Join(parts, ", ")
	return &s
}

var requirementPattern = regexp.MustCompile(`\(([^,]+),\s*([^)]+)\)`)

// ParseRequirements reads every "(ID, Condition)" pair of a serialized
// prerequisite field. A nil or empty field yields no requirements.
func ParseRequirements(field *string) []types.Requirement {
	if field == nil {
		return nil
	}
	var out []types.Requirement
	for _, m := range requirementPattern.FindAllStringSubmatch(*field, -1) {
		out = append(out, types.Requirement{
			ID:        strings.TrimSpace(m[1]),
			Condition: types.Condition(strings.TrimSpace(m[2])),
		})
	}
	return out
}
