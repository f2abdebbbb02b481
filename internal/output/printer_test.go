// internal/output/printer_test.go
package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jdamm/matlist/internal/model"
)

func intp(v int) *int { return &v }

func TestPrintSnapshotMaterialsTable(t *testing.T) {
	doc := &model.Document{
		Units: "metric",
		Materials: map[string]*model.Material{
			"mat-1": {
				MaterialID:   "101",
				Name:         "Concrete",
				Class:        "Concrete",
				Color:        &model.RGB{R: 128, G: 64, B: 32},
				Shininess:    intp(64),
				Smoothness:   intp(50),
				Transparency: intp(0),
			},
			"mat-2": {MaterialID: "102", Name: "Air Gap"},
		},
	}

	var buf bytes.Buffer
	printer := NewPrinterWithWriter(&buf, FormatTable, false)
	if err := printer.PrintSnapshot(doc); err != nil {
		t.Fatalf("PrintSnapshot() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"RGB(128, 64, 32)", // full appearance material
		"64",
		"No Color", // material without appearance data
		"N/A",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("materials table missing %q:\n%s", want, out)
		}
	}
}

func TestPrintSnapshotJSONSummary(t *testing.T) {
	doc := &model.Document{
		Units: "metric",
		Elements: []*model.Element{
			{ElementID: "w-1", CategoryName: "Walls"},
		},
	}

	var buf bytes.Buffer
	printer := NewPrinterWithWriter(&buf, FormatJSON, false)
	if err := printer.PrintSnapshot(doc); err != nil {
		t.Fatalf("PrintSnapshot() error: %v", err)
	}
	if !strings.Contains(buf.String(), `"elements": 1`) {
		t.Errorf("JSON summary missing element count:\n%s", buf.String())
	}
}
