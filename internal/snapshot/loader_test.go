// internal/snapshot/loader_test.go
package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const jsonSnapshot = `{
  "project": "Test House",
  "units": "metric",
  "materials": {
    "mat-1": {
      "id": "101",
      "name": "Concrete",
      "class": "Concrete",
      "color": {"r": 128, "g": 64, "b": 32},
      "shininess": 64,
      "transparency": 0
    }
  },
  "types": {
    "wt-1": {
      "id": "wt-1",
      "family": "Basic Wall",
      "name": "Generic 300",
      "layers": [
        {"index": 0, "material": "mat-1", "thickness": 0.2},
        {"index": 1, "material": "<By Category>", "thickness": 0.1}
      ]
    }
  },
  "elements": [
    {
      "id": "w-1",
      "category": "Walls",
      "type": "wt-1",
      "properties": {"Area": 10.5, "Mark": "W-01", "Comments": ""}
    }
  ]
}`

const yamlSnapshot = `project: Test House
units: metric
materials:
  mat-1:
    id: "101"
    name: Concrete
types:
  wt-1:
    id: wt-1
    family: Basic Wall
    name: Generic 300
elements:
  - id: w-1
    category: Walls
    type: wt-1
`

func writeSnapshot(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write snapshot file: %v", err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	doc, err := Load(writeSnapshot(t, "model.json", jsonSnapshot))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if doc.Project != "Test House" {
		t.Errorf("Project = %q", doc.Project)
	}
	if len(doc.Elements) != 1 {
		t.Fatalf("Elements = %d, want 1", len(doc.Elements))
	}
	if doc.DocumentID == "" {
		t.Errorf("DocumentID was not assigned")
	}

	el := doc.Elements[0]
	if el.ElementType() == nil || el.ElementType().TypeID != "wt-1" {
		t.Errorf("element type was not linked")
	}
	if len(el.ElementType().Layers) != 2 {
		t.Errorf("Layers = %d, want 2", len(el.ElementType().Layers))
	}

	area, ok := el.Property("Area")
	if !ok {
		t.Fatalf("Area property missing")
	}
	if n, ok := area.Number(); !ok || n != 10.5 {
		t.Errorf("Area = %v (numeric %v), want 10.5", area, ok)
	}

	// present-but-empty stays distinguishable from absent
	comments, ok := el.Property("Comments")
	if !ok {
		t.Errorf("Comments property should be present")
	}
	if !comments.IsEmpty() {
		t.Errorf("Comments should be empty, got %q", comments.Text())
	}
	if _, ok := el.Property("DoesNotExist"); ok {
		t.Errorf("absent property reported as present")
	}

	mat, ok := doc.MaterialByRef("mat-1")
	if !ok {
		t.Fatalf("mat-1 missing")
	}
	if got := mat.ColorLabel(); got != "RGB(128, 64, 32)" {
		t.Errorf("ColorLabel() = %q, want \"RGB(128, 64, 32)\"", got)
	}
	if mat.Shininess == nil || *mat.Shininess != 64 {
		t.Errorf("Shininess = %v, want 64", mat.Shininess)
	}
	// zero is a real value, distinct from absent
	if mat.Transparency == nil || *mat.Transparency != 0 {
		t.Errorf("Transparency = %v, want 0", mat.Transparency)
	}
	if mat.Smoothness != nil {
		t.Errorf("Smoothness = %v, want absent", *mat.Smoothness)
	}
}

func TestLoadYAML(t *testing.T) {
	doc, err := Load(writeSnapshot(t, "model.yaml", yamlSnapshot))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(doc.Elements) != 1 {
		t.Fatalf("Elements = %d, want 1", len(doc.Elements))
	}
	if doc.Elements[0].ElementType() == nil {
		t.Errorf("element type was not linked")
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "dangling type reference",
			content: `elements:
  - id: w-1
    category: Walls
    type: missing
`,
			wantErr: "unknown type",
		},
		{
			name: "duplicate element id",
			content: `elements:
  - id: w-1
    category: Walls
  - id: w-1
    category: Walls
`,
			wantErr: "duplicate element id",
		},
		{
			name: "dangling layer material",
			content: `types:
  wt-1:
    id: wt-1
    name: Generic
    layers:
      - index: 0
        material: missing
        thickness: 0.1
elements: []
`,
			wantErr: "unknown material",
		},
		{
			name: "gapped layer index",
			content: `types:
  wt-1:
    id: wt-1
    name: Generic
    layers:
      - index: 0
        material: "<By Category>"
        thickness: 0.1
      - index: 2
        material: "<By Category>"
        thickness: 0.1
elements: []
`,
			wantErr: "stacking order must be contiguous",
		},
		{
			name: "unknown unit system",
			content: `units: cubits
elements: []
`,
			wantErr: "unknown unit system",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content), ".yaml")
			if err == nil {
				t.Fatalf("Parse() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseDefaultsToImperial(t *testing.T) {
	doc, err := Parse([]byte("elements: []\n"), ".yaml")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if doc.Units != "imperial" {
		t.Errorf("Units = %q, want \"imperial\"", doc.Units)
	}
}
