// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Status is a course's completion state for a given student.
type Status string

const (
	StatusDisponible  Status = "DISPONIBLE"
	StatusCursando    Status = "CURSANDO"
	StatusEnFinal     Status = "EN_FINAL"
	StatusDesaprobada Status = "DESAPROBADA"
	StatusAprobada    Status = "APROBADA"
)

// TranscriptCourse is a course read from a student's academic record.
// It shares the plan schema's field names; prerequisite fields are always
// null because a transcript carries no correlatives.
type TranscriptCourse struct {
	Course   string `json:"Course" yaml:"Course"`
	ID       string `json:"ID" yaml:"ID"`
	Year     int    `json:"Year" yaml:"Year"`
	Semester *int   `json:"Semester" yaml:"Semester"`
	Credits  string `json:"Credits" yaml:"Credits"`

	PrerequisitesToTake   *string `json:"Prerequisites to Take" yaml:"Prerequisites to Take"`
	PrerequisitesToPass   *string `json:"Prerequisites to Pass" yaml:"Prerequisites to Pass"`
	PrerequisiteToTakeFor *string `json:"Prerequisite to Take for" yaml:"Prerequisite to Take for"`
	PrerequisiteToPassFor *string `json:"Prerequisite to Pass for" yaml:"Prerequisite to Pass for"`

	// Status is derived from the grade and origin cells.
	Status Status `json:"status" yaml:"status"`

	// DebugNota and DebugOrigen keep the raw cells the status came from.
	DebugNota   string `json:"_debug_nota" yaml:"_debug_nota"`
	DebugOrigen string `json:"_debug_origen" yaml:"_debug_origen"`

	// Grade is present only for approved courses whose grade cell holds a number.
	Grade *float64 `json:"grade,omitempty" yaml:"grade,omitempty"`
}

// Transcript is the output document for one student record.
type Transcript struct {
	StudentName string             `json:"student_name" yaml:"student_name"`
	Courses     []TranscriptCourse `json:"courses" yaml:"courses"`
}
