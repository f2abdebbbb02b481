// Package snapshot loads host model snapshot documents from disk. The host
// tool dumps its element collection to a JSON or YAML file; everything past
// this point treats the result as a read-only Document.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jdamm/matlist/internal/model"
	"github.com/jdamm/matlist/internal/units"
)

// Load reads and parses a snapshot file. Format is detected from the file
// extension; anything that is not .json is tried as YAML (which also
// parses JSON, but the explicit path gives better error messages).
func Load(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	doc, err := Parse(data, ext)
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes snapshot bytes into a linked, validated Document
func Parse(data []byte, ext string) (*model.Document, error) {
	doc := &model.Document{}

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	}

	if doc.Units == "" {
		doc.Units = string(units.Imperial)
	}
	switch units.System(doc.Units) {
	case units.Imperial, units.Metric:
	default:
		return nil, fmt.Errorf("unknown unit system %q", doc.Units)
	}

	if err := doc.Link(); err != nil {
		return nil, err
	}

	return doc, nil
}
