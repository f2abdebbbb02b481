// internal/model/model_test.go
package model

import (
	"encoding/json"
	"testing"
)

func TestValueUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		kind ValueKind
		text string
	}{
		{"string", `"Concrete"`, KindString, "Concrete"},
		{"empty string", `""`, KindEmpty, ""},
		{"null", `null`, KindEmpty, ""},
		{"integer", `42`, KindInt, "42"},
		{"float", `10.5`, KindFloat, "10.5"},
		{"integral float collapses to int", `3.0`, KindInt, "3"},
		{"true becomes one", `true`, KindInt, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			if err := json.Unmarshal([]byte(tt.json), &v); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", tt.json, err)
			}
			if v.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", v.Kind, tt.kind)
			}
			if v.Text() != tt.text {
				t.Errorf("Text() = %q, want %q", v.Text(), tt.text)
			}
		})
	}
}

func TestElementTypeBuiltInProperties(t *testing.T) {
	elType := &ElementType{
		TypeID:     "wt-1",
		FamilyName: "Basic Wall",
		TypeName:   "Generic 300",
		Properties: map[string]Value{
			"Family Name": StringValue("Overridden Family"),
		},
	}

	// explicit properties win over the built-in names
	v, ok := elType.Property("Family Name")
	if !ok || v.Text() != "Overridden Family" {
		t.Errorf("Family Name = (%q, %v), want explicit property", v.Text(), ok)
	}

	v, ok = elType.Property("Type Name")
	if !ok || v.Text() != "Generic 300" {
		t.Errorf("Type Name = (%q, %v), want built-in fallback", v.Text(), ok)
	}

	if _, ok := elType.Property("Width"); ok {
		t.Errorf("absent type property reported as present")
	}
}

func TestElementTypeIsUntypedNilInInterface(t *testing.T) {
	el := &Element{ElementID: "e-1", CategoryName: "Walls"}
	if el.Type() != nil {
		t.Errorf("element without a type must return a nil Entity")
	}
}

func TestMaterialColorLabel(t *testing.T) {
	withColor := &Material{Name: "Brick", Color: &RGB{R: 200, G: 80, B: 60}}
	if got := withColor.ColorLabel(); got != "RGB(200, 80, 60)" {
		t.Errorf("ColorLabel() = %q, want \"RGB(200, 80, 60)\"", got)
	}

	noColor := &Material{Name: "Air"}
	if got := noColor.ColorLabel(); got != "No Color" {
		t.Errorf("ColorLabel() = %q, want \"No Color\"", got)
	}
}

func TestDocumentLink(t *testing.T) {
	doc := &Document{
		Types: map[string]*ElementType{
			"wt-1": {TypeID: "wt-1", TypeName: "Generic"},
		},
		Elements: []*Element{
			{ElementID: "w-1", CategoryName: "Walls", TypeRef: "wt-1"},
		},
	}

	if err := doc.Link(); err != nil {
		t.Fatalf("Link() error: %v", err)
	}
	if doc.DocumentID == "" {
		t.Errorf("Link() did not assign a document id")
	}
	if doc.Elements[0].ElementType() != doc.Types["wt-1"] {
		t.Errorf("Link() did not wire the type reference")
	}
}

func TestDocumentLinkRejectsDanglingType(t *testing.T) {
	doc := &Document{
		Elements: []*Element{
			{ElementID: "w-1", CategoryName: "Walls", TypeRef: "missing"},
		},
	}
	if err := doc.Link(); err == nil {
		t.Errorf("Link() expected error for dangling type reference")
	}
}
