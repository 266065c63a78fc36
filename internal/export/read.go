// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/FranCalveyra/austral-map-v2/pkg/types"
)

// ReadCourses loads a plan file previously written by Write. The format is
// chosen by extension: .yaml/.yml for YAML, anything else as JSON.
func ReadCourses(path string) ([]types.Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var courses []types.Course
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &courses)
	default:
		err = json.Unmarshal(data, &courses)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return courses, nil
}

// PlanName derives a plan's name from its file name ("Plan_Ing.json" -> "Plan_Ing").
func PlanName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
