// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes conversion results to JSON or YAML files.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/FranCalveyra/austral-map-v2/pkg/types"
)

// ParseFormat validates a format name. An empty name means JSON.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "", types.OutputJSON:
		return types.OutputJSON, nil
	case types.OutputYAML, "yml":
		return types.OutputYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use json or yaml", s)
	}
}

// FileName derives an output file name from a sheet name: spaces become
// underscores and the format's extension is appended.
func FileName(sheet string, format types.OutputFormat) string {
	ext := ".json"
	if format == types.OutputYAML {
		ext = ".yaml"
	}
	return strings.ReplaceAll(sheet, " ", "_") + ext
}

// Encode renders v in the given format. JSON is indented with two spaces
// and leaves non-ASCII and HTML characters unescaped.
func Encode(v any, format types.OutputFormat) ([]byte, error) {
	switch format {
	case types.OutputYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return buf.Bytes(), nil
	case types.OutputJSON, "":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// Write encodes v and writes it to path, creating parent directories.
func Write(path string, v any, format types.OutputFormat) error {
	data, err := Encode(v, format)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
