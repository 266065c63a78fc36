// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects the encoding of generated files.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// OfficeConfig holds settings for the LibreOffice re-encode fallback.
type OfficeConfig struct {
	// Binary is an explicit converter path. When empty, soffice and then
	// libreoffice are looked up on PATH.
	Binary string `json:"binary,omitempty" yaml:"binary,omitempty"`

	// OutputDir receives the re-encoded .xlsx. Defaults to the source file's directory.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
}

// StudentConfig holds settings for the transcript conversion.
type StudentConfig struct {
	// Output is the JSON file written for the student (default "output.json").
	Output string `json:"output" yaml:"output"`
}

// PlansConfig holds settings for the plan workbook conversion.
type PlansConfig struct {
	// Input is the plan workbook (default "docs/planes_pdf/planes_parseados.xlsx").
	Input string `json:"input" yaml:"input"`

	// OutputDir receives one file per sheet (default "docs/planes_json").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Format selects json or yaml output.
	Format OutputFormat `json:"format" yaml:"format"`

	// DB is an optional SQLite catalog written alongside the plan files.
	DB string `json:"db,omitempty" yaml:"db,omitempty"`
}

// SheetsConfig holds settings for the raw per-sheet dump.
type SheetsConfig struct {
	Input     string `json:"input" yaml:"input"`
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// Config groups every command's settings as read from austral-map.yaml.
type Config struct {
	Verbose bool          `json:"verbose" yaml:"verbose"`
	Office  OfficeConfig  `json:"office" yaml:"office"`
	Student StudentConfig `json:"student" yaml:"student"`
	Plans   PlansConfig   `json:"plans" yaml:"plans"`
	Sheets  SheetsConfig  `json:"sheets" yaml:"sheets"`
}
