// Package model defines the snapshot data structures exported from the host
// modeling tool: elements, element types with compound-structure layers, and
// materials. Elements are read-only inputs; nothing in this package mutates
// them after a document is linked.
package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Material reference sentinels used in compound-structure layers.
// An empty reference means no material is assigned; RefByCategory means the
// layer inherits its material from the element's category settings.
const (
	RefNone       = ""
	RefByCategory = "<By Category>"
)

// Entity is the capability surface the resolver works against. Both element
// instances and element types implement it, so the same lookup cascade runs
// on either level.
type Entity interface {
	// ID returns the entity's unique identifier within the document
	ID() string
	// Category returns the category label, or "" when the entity has none
	Category() string
	// Property looks up a named property. The second return distinguishes
	// an absent property from one that is present but empty.
	Property(name string) (Value, bool)
	// Type returns the related type entity, or nil when there is none
	Type() Entity
}

// Layer is one slice of an element type's compound structure. Index reflects
// the physical stacking order and must be preserved in output.
type Layer struct {
	Index     int     `json:"index"               yaml:"index"`
	Material  string  `json:"material,omitempty"  yaml:"material,omitempty"`
	Thickness float64 `json:"thickness"           yaml:"thickness"`
}

// RGB is a material's display color
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// Material holds the identity, classification, and appearance of a model
// material. The appearance numbers are optional; not every host material
// carries them.
type Material struct {
	MaterialID   string `json:"id"                     yaml:"id"`
	Name         string `json:"name"                   yaml:"name"`
	Class        string `json:"class,omitempty"        yaml:"class,omitempty"`
	Category     string `json:"category,omitempty"     yaml:"category,omitempty"`
	Color        *RGB   `json:"color,omitempty"        yaml:"color,omitempty"`
	Shininess    *int   `json:"shininess,omitempty"    yaml:"shininess,omitempty"`
	Smoothness   *int   `json:"smoothness,omitempty"   yaml:"smoothness,omitempty"`
	Transparency *int   `json:"transparency,omitempty" yaml:"transparency,omitempty"`
}

// ColorLabel renders the display color as "RGB(r, g, b)", or "No Color"
// when the material has none
func (m *Material) ColorLabel() string {
	if m.Color == nil {
		return "No Color"
	}
	return fmt.Sprintf("RGB(%d, %d, %d)", m.Color.R, m.Color.G, m.Color.B)
}

// ElementType is the shared definition object referenced by element
// instances. It carries type-level properties and the ordered layer list.
type ElementType struct {
	TypeID     string           `json:"id"                   yaml:"id"`
	FamilyName string           `json:"family,omitempty"     yaml:"family,omitempty"`
	TypeName   string           `json:"name"                 yaml:"name"`
	Properties map[string]Value `json:"properties,omitempty" yaml:"properties,omitempty"`
	Layers     []Layer          `json:"layers,omitempty"     yaml:"layers,omitempty"`
}

// ID returns the type identifier
func (t *ElementType) ID() string { return t.TypeID }

// Category returns "" since types carry no category of their own
func (t *ElementType) Category() string { return "" }

// Type returns nil; a type entity has no further type level
func (t *ElementType) Type() Entity { return nil }

// Property looks up a type-level property. Family and type names are
// addressable through the host's built-in parameter names as well, so the
// resolver can reach them with the same candidate-key cascade it uses for
// everything else.
func (t *ElementType) Property(name string) (Value, bool) {
	if v, ok := t.Properties[name]; ok {
		return v, true
	}
	switch name {
	case "Family Name":
		return StringValue(t.FamilyName), t.FamilyName != ""
	case "Type Name":
		return StringValue(t.TypeName), t.TypeName != ""
	}
	return Value{}, false
}

// Element is one model element instance with its own properties and an
// optional reference to a shared element type.
type Element struct {
	ElementID    string           `json:"id"                   yaml:"id"`
	CategoryName string           `json:"category"             yaml:"category"`
	TypeRef      string           `json:"type,omitempty"       yaml:"type,omitempty"`
	Properties   map[string]Value `json:"properties,omitempty" yaml:"properties,omitempty"`

	elementType *ElementType
}

// ID returns the element identifier
func (e *Element) ID() string { return e.ElementID }

// Category returns the element's category label
func (e *Element) Category() string { return e.CategoryName }

// Property looks up an instance-level property
func (e *Element) Property(name string) (Value, bool) {
	v, ok := e.Properties[name]
	return v, ok
}

// Type returns the element's type entity, or nil when it has none.
// The untyped nil check matters here: returning a nil *ElementType inside
// the Entity interface would compare non-nil.
func (e *Element) Type() Entity {
	if e.elementType == nil {
		return nil
	}
	return e.elementType
}

// ElementType returns the concrete type for layer access
func (e *Element) ElementType() *ElementType { return e.elementType }

// Document is one host model snapshot: elements in model order plus the
// shared type and material tables they reference.
type Document struct {
	DocumentID string                  `json:"document_id,omitempty" yaml:"document_id,omitempty"`
	Project    string                  `json:"project,omitempty"     yaml:"project,omitempty"`
	Units      string                  `json:"units,omitempty"       yaml:"units,omitempty"`
	Elements   []*Element              `json:"elements"              yaml:"elements"`
	Types      map[string]*ElementType `json:"types,omitempty"       yaml:"types,omitempty"`
	Materials  map[string]*Material    `json:"materials,omitempty"   yaml:"materials,omitempty"`
}

// MaterialByRef resolves a concrete material reference
func (d *Document) MaterialByRef(ref string) (*Material, bool) {
	m, ok := d.Materials[ref]
	return m, ok
}

// Link wires element type references, assigns a document id when the
// snapshot carries none, and validates referential integrity. Duplicate
// element ids and dangling type or material references fail the whole
// document; the export contract hard-fails at the run boundary rather than
// guessing at broken input.
func (d *Document) Link() error {
	if d.DocumentID == "" {
		d.DocumentID = uuid.New().String()
	}

	seen := make(map[string]bool, len(d.Elements))
	for _, el := range d.Elements {
		if el.ElementID == "" {
			return fmt.Errorf("element without id in snapshot")
		}
		if seen[el.ElementID] {
			return fmt.Errorf("duplicate element id %q", el.ElementID)
		}
		seen[el.ElementID] = true

		if el.TypeRef != "" {
			t, ok := d.Types[el.TypeRef]
			if !ok {
				return fmt.Errorf("element %s references unknown type %q", el.ElementID, el.TypeRef)
			}
			el.elementType = t
		}
	}

	for id, t := range d.Types {
		for i, layer := range t.Layers {
			// layers list the stacking order explicitly; a gap or
			// reordering means the snapshot is inconsistent
			if layer.Index != i {
				return fmt.Errorf("type %s layer at position %d has index %d, stacking order must be contiguous",
					id, i, layer.Index)
			}
			if layer.Material == RefNone || layer.Material == RefByCategory {
				continue
			}
			if _, ok := d.Materials[layer.Material]; !ok {
				return fmt.Errorf("type %s layer %d references unknown material %q",
					id, layer.Index, layer.Material)
			}
		}
	}

	return nil
}
