// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/FranCalveyra/austral-map-v2/pkg/types"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]types.OutputFormat{
		"":     types.OutputJSON,
		"json": types.OutputJSON,
		"YAML": types.OutputYAML,
		"yml":  types.OutputYAML,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("csv")
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Plan_Ing_Informática_2023.json", FileName("Plan Ing Informática 2023", types.OutputJSON))
	assert.Equal(t, "Datos.yaml", FileName("Datos", types.OutputYAML))
}

func sampleCourse() types.Course {
	year, sem := 1, 2
	credits := "6.00"
	take := "(1001, Regularizada)"
	return types.Course{
		Course:              "Análisis Matemático II",
		ID:                  "1003",
		Year:                &year,
		Semester:            &sem,
		Credits:             &credits,
		PrerequisitesToTake: &take,
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "plan.json")
	require.NoError(t, Write(path, []types.Course{sampleCourse()}, types.OutputJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := `[
  {
    "Course": "Análisis Matemático II",
    "ID": "1003",
    "Year": 1,
    "Semester": 2,
    "Credits": "6.00",
    "Prerequisites to Take": "(1001, Regularizada)",
    "Prerequisites to Pass": null,
    "Prerequisite to Take for": null,
    "Prerequisite to Pass for": null
  }
]
`
	assert.Equal(t, want, string(data))
}

func TestWriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, Write(path, []types.Course{sampleCourse()}, types.OutputYAML))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var back []types.Course
	require.NoError(t, yaml.Unmarshal(data, &back))
	require.Len(t, back, 1)
	assert.Equal(t, sampleCourse(), back[0])
	assert.Contains(t, string(data), "Prerequisites to Pass: null")
}

func TestEncodeEmptyTranscript(t *testing.T) {
	data, err := Encode(types.Transcript{Courses: []types.TranscriptCourse{}}, types.OutputJSON)
	require.NoError(t, err)
	assert.JSONEq(t, `{"student_name": "", "courses": []}`, string(data))
}
