// Package export flattens a snapshot document into tabular records and
// writes them to a delimited file. One record is produced per element and
// compound-structure layer; elements without layers fall back to a single
// material record or, for categories expected to carry materials, a
// placeholder row.
package export

import (
	"github.com/jdamm/matlist/internal/resolver"
	"github.com/jdamm/matlist/internal/units"
)

// Column names, in the fixed output order. The set and order never change
// during a run; every record carries every column.
const (
	ColElementID     = "ElementID"
	ColCategory      = "Category"
	ColExportID      = "ExportID"
	ColFamilyName    = "FamilyName"
	ColFamilyAndType = "FamilyAndType"
	ColTypeID        = "TypeID"
	ColWidth         = "Width"
	ColHeight        = "Height"
	ColLayerIndex    = "LayerIndex"
	ColMaterialID    = "MaterialID"
	ColMaterialName  = "MaterialName"
	ColMaterialClass = "MaterialClass"
	ColThickness     = "Thickness"
	ColMaterialVol   = "MaterialVolume"
	ColMaterialArea  = "MaterialArea"
	ColElementVol    = "ElementVolume"
	ColElementArea   = "ElementArea"
)

var columns = []string{
	ColElementID,
	ColCategory,
	ColExportID,
	ColFamilyName,
	ColFamilyAndType,
	ColTypeID,
	ColWidth,
	ColHeight,
	ColLayerIndex,
	ColMaterialID,
	ColMaterialName,
	ColMaterialClass,
	ColThickness,
	ColMaterialVol,
	ColMaterialArea,
	ColElementVol,
	ColElementArea,
}

var columnIndex = func() map[string]int {
	m := make(map[string]int, len(columns))
	for i, name := range columns {
		m[name] = i
	}
	return m
}()

// Columns returns the ordered column set
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// Record is one flattened output row, aligned with Columns(). Records are
// immutable once emitted by the aggregator.
type Record []string

// Get returns the value of a named column
func (r Record) Get(name string) string {
	if i, ok := columnIndex[name]; ok {
		return r[i]
	}
	return resolver.NotAvailable
}

func (r Record) set(name, value string) {
	r[columnIndex[name]] = value
}

func newRecord() Record {
	r := make(Record, len(columns))
	for i := range r {
		r[i] = resolver.NotAvailable
	}
	return r
}

func (r Record) clone() Record {
	out := make(Record, len(r))
	copy(out, r)
	return out
}

// Attribute specs for the resolver-driven scalar columns. The host's
// parameter names drift across versions and locales; semantically-equal
// names live here as data, so supporting a new host revision means adding
// a key, not a branch.
var (
	exportIDSpec = resolver.Spec{
		Keys:   []string{"IfcGUID", "IFC GUID"},
		Legacy: []string{"Export GUID", "UniqueId"},
	}
	familyNameSpec = resolver.Spec{
		Keys:         []string{"Family Name"},
		Legacy:       []string{"ALL_MODEL_FAMILY_NAME"},
		TypeFallback: true,
	}
	familyAndTypeSpec = resolver.Spec{
		Keys:         []string{"Family and Type"},
		Legacy:       []string{"ELEM_FAMILY_AND_TYPE_PARAM"},
		TypeFallback: true,
	}
	widthSpec = resolver.Spec{
		Keys:         []string{"Width", "b"},
		Legacy:       []string{"WINDOW_WIDTH", "DOOR_WIDTH", "FAMILY_WIDTH_PARAM"},
		TypeFallback: true,
		Unit:         units.Length,
	}
	heightSpec = resolver.Spec{
		Keys:         []string{"Height", "h"},
		Legacy:       []string{"WINDOW_HEIGHT", "DOOR_HEIGHT", "FAMILY_HEIGHT_PARAM"},
		TypeFallback: true,
		Unit:         units.Length,
	}
	areaSpec = resolver.Spec{
		Keys:   []string{"Area"},
		Legacy: []string{"HOST_AREA_COMPUTED"},
		Unit:   units.Area,
	}
	volumeSpec = resolver.Spec{
		Keys:   []string{"Volume"},
		Legacy: []string{"HOST_VOLUME_COMPUTED"},
		Unit:   units.Volume,
	}
	// materialRefSpec finds a single-material fallback for elements whose
	// type has no compound structure (structural columns, generic models)
	materialRefSpec = resolver.Spec{
		Keys:         []string{"Material"},
		Legacy:       []string{"Structural Material", "MATERIAL_ID_PARAM"},
		TypeFallback: true,
	}
)

// ColumnInfo describes one export column for the `columns` command
type ColumnInfo struct {
	Name   string   `json:"name"`
	Source string   `json:"source"`
	Keys   []string `json:"keys,omitempty"`
	Legacy []string `json:"legacy,omitempty"`
	Unit   string   `json:"unit,omitempty"`
}

// Describe returns the column table in output order, annotated with where
// each column's value comes from
func Describe() []ColumnInfo {
	unitName := func(k units.Kind) string {
		switch k {
		case units.Length:
			return "length"
		case units.Area:
			return "area"
		case units.Volume:
			return "volume"
		default:
			return ""
		}
	}
	fromSpec := func(name, source string, s resolver.Spec) ColumnInfo {
		return ColumnInfo{
			Name: name, Source: source,
			Keys: s.Keys, Legacy: s.Legacy,
			Unit: unitName(s.Unit),
		}
	}

	return []ColumnInfo{
		{Name: ColElementID, Source: "element identity"},
		{Name: ColCategory, Source: "element category"},
		fromSpec(ColExportID, "resolved attribute", exportIDSpec),
		fromSpec(ColFamilyName, "resolved attribute", familyNameSpec),
		fromSpec(ColFamilyAndType, "resolved attribute", familyAndTypeSpec),
		{Name: ColTypeID, Source: "type identity"},
		fromSpec(ColWidth, "resolved attribute", widthSpec),
		fromSpec(ColHeight, "resolved attribute", heightSpec),
		{Name: ColLayerIndex, Source: "layer position"},
		{Name: ColMaterialID, Source: "layer material"},
		{Name: ColMaterialName, Source: "layer material"},
		{Name: ColMaterialClass, Source: "layer material"},
		{Name: ColThickness, Source: "layer thickness", Unit: "length"},
		{Name: ColMaterialVol, Source: "layer thickness x element area", Unit: "volume"},
		{Name: ColMaterialArea, Source: "element area", Unit: "area"},
		fromSpec(ColElementVol, "resolved attribute", volumeSpec),
		fromSpec(ColElementArea, "resolved attribute", areaSpec),
	}
}
