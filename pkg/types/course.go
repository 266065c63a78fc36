// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Condition states how far a prerequisite course must have progressed.
type Condition string

const (
	// ConditionRegularizada means the prerequisite course was attended and
	// regularised; the final exam may still be pending.
	ConditionRegularizada Condition = "Regularizada"

	// ConditionAprobada means the prerequisite course was fully passed.
	ConditionAprobada Condition = "Aprobada"
)

// Requirement is one "(ID, Condition)" entry of a prerequisite field.
type Requirement struct {
	// ID is the related course identifier.
	ID string `json:"id" yaml:"id"`

	// Condition is the state the related course must reach.
	Condition Condition `json:"condition" yaml:"condition"`
}

// Course is one entry of a study plan in the normalized plan schema.
// Prerequisite fields hold comma-separated "(ID, Condition)" lists and are
// null when empty.
type Course struct {
	// Course is the course name as printed in the plan.
	Course string `json:"Course" yaml:"Course"`

	// ID is the numeric course code from the plan's code column.
	ID string `json:"ID" yaml:"ID"`

	// Year is the academic year from the most recent year header, or null
	// when the course appears before any year header.
	Year *int `json:"Year" yaml:"Year"`

	// Semester is the row's own semester cell, falling back to the most recent
	// semester header.
	Semester *int `json:"Semester" yaml:"Semester"`

	// Credits is the credit value with two decimals (e.g. "6.00").
	Credits *string `json:"Credits" yaml:"Credits"`

	// PrerequisitesToTake lists the courses that must be regularised before enrolling.
	PrerequisitesToTake *string `json:"Prerequisites to Take" yaml:"Prerequisites to Take"`

	// PrerequisitesToPass lists the courses that must be passed before the final exam.
	PrerequisitesToPass *string `json:"Prerequisites to Pass" yaml:"Prerequisites to Pass"`

	// PrerequisiteToTakeFor lists direct dependents (Regularizada) followed by
	// second-level dependents (Aprobada).
	PrerequisiteToTakeFor *string `json:"Prerequisite to Take for" yaml:"Prerequisite to Take for"`

	// PrerequisiteToPassFor lists direct and second-level dependents, all Aprobada.
	PrerequisiteToPassFor *string `json:"Prerequisite to Pass for" yaml:"Prerequisite to Pass for"`
}
