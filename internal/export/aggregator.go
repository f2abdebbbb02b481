package export

import (
	"fmt"
	"strconv"

	"github.com/jdamm/matlist/internal/config"
	"github.com/jdamm/matlist/internal/logger"
	"github.com/jdamm/matlist/internal/model"
	"github.com/jdamm/matlist/internal/resolver"
	"github.com/jdamm/matlist/internal/units"
)

// Sentinel strings for material columns. A layer that inherits its
// material from the element category keeps the by-category class rather
// than degrading to the missing-value placeholder.
const (
	ByCategoryName  = "<By Category>"
	ByCategoryClass = "By Category"
	NoMaterial      = "No Material Assigned"

	// fallbacks mirroring how the host labels incomplete materials
	unnamedMaterial = "Unnamed Material"
	unknownClass    = "Unknown"
)

// Stats summarizes one aggregation pass
type Stats struct {
	Elements int // elements seen
	Records  int // records emitted
	Skipped  int // elements dropped by the per-element error boundary
}

// Aggregator walks a document's elements once, front to back, and builds
// the flat record sequence. It owns no state between runs; aggregating the
// same document twice yields identical records.
type Aggregator struct {
	cfg *config.Config
	log *logger.Logger
}

// NewAggregator creates an aggregator with the run configuration
func NewAggregator(cfg *config.Config, log *logger.Logger) *Aggregator {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Aggregator{cfg: cfg, log: log}
}

// Aggregate flattens every element of the document into records. A bad
// unit configuration is a run-level failure; anything that goes wrong
// inside a single element skips that element and counts it.
func (a *Aggregator) Aggregate(doc *model.Document) ([]Record, Stats, error) {
	conv, err := units.NewConverter(units.System(doc.Units),
		a.cfg.LengthUnit, a.cfg.AreaUnit, a.cfg.VolumeUnit)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("cannot convert units: %w", err)
	}
	// Hand-constructed configs may have skipped LoadConfig validation;
	// fall back to the defaults rather than panicking mid-run
	decimal := byte(',')
	if a.cfg.DecimalSeparator != "" {
		decimal = a.cfg.DecimalSeparator[0]
	}
	progressEvery := a.cfg.ProgressEvery
	if progressEvery <= 0 {
		progressEvery = 50
	}
	res := resolver.New(conv, a.cfg.Precision, decimal)

	stats := Stats{Elements: len(doc.Elements)}
	records := make([]Record, 0, len(doc.Elements))

	for i, el := range doc.Elements {
		rows, err := a.elementRecords(doc, res, el)
		if err != nil {
			stats.Skipped++
			a.log.Warn("skipping element %d of %d: %v", i+1, len(doc.Elements), err)
			continue
		}
		records = append(records, rows...)

		if (i+1)%progressEvery == 0 {
			a.log.Debug("processed %d/%d elements", i+1, len(doc.Elements))
		}
	}

	stats.Records = len(records)
	return records, stats, nil
}

// elementRecords builds all records for one element. The recover boundary
// turns an unexpected panic into a per-element error so a single broken
// element never aborts the run.
func (a *Aggregator) elementRecords(
	doc *model.Document,
	res *resolver.Resolver,
	el *model.Element,
) (rows []Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			rows = nil
			err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()

	base := newRecord()
	base.set(ColElementID, el.ID())
	if c := el.Category(); c != "" {
		base.set(ColCategory, c)
	}
	base.set(ColExportID, res.Resolve(el, exportIDSpec))
	base.set(ColFamilyName, res.Resolve(el, familyNameSpec))
	base.set(ColFamilyAndType, a.familyAndType(res, el))
	base.set(ColWidth, res.Resolve(el, widthSpec))
	base.set(ColHeight, res.Resolve(el, heightSpec))

	elType := el.ElementType()
	if elType != nil {
		base.set(ColTypeID, elType.ID())
	}

	// Area and volume are whole-element quantities, duplicated across all
	// of the element's rows. Raw native values are kept for the per-layer
	// volume derivation below.
	areaNative, hasArea := res.ResolveNumber(el, areaSpec)
	volumeNative, hasVolume := res.ResolveNumber(el, volumeSpec)
	if hasArea {
		base.set(ColElementArea, res.FormatQuantity(areaNative, units.Area))
		base.set(ColMaterialArea, res.FormatQuantity(areaNative, units.Area))
	}
	if hasVolume {
		base.set(ColElementVol, res.FormatQuantity(volumeNative, units.Volume))
	}

	// One record per compound-structure layer, stacking order preserved
	if elType != nil && len(elType.Layers) > 0 {
		for i, layer := range elType.Layers {
			row := base.clone()
			row.set(ColLayerIndex, strconv.Itoa(i))
			row.set(ColThickness, res.FormatQuantity(layer.Thickness, units.Length))
			a.setMaterial(row, doc, layer.Material)
			if hasArea {
				row.set(ColMaterialVol,
					res.FormatQuantity(layer.Thickness*areaNative, units.Volume))
			}
			rows = append(rows, row)
		}
		return rows, nil
	}

	// Single-material fallback for elements without layers
	if ref, ok := res.Lookup(el, materialRefSpec); ok {
		row := base.clone()
		row.set(ColLayerIndex, "0")
		a.setMaterial(row, doc, ref.Text())
		if hasVolume {
			row.set(ColMaterialVol, res.FormatQuantity(volumeNative, units.Volume))
		}
		return []Record{row}, nil
	}

	// Placeholder record for categories expected to carry materials
	if a.cfg.ExpectsMaterials(el.Category()) {
		row := base.clone()
		row.set(ColLayerIndex, "0")
		row.set(ColMaterialName, NoMaterial)
		row.set(ColMaterialClass, NoMaterial)
		if hasVolume {
			row.set(ColMaterialVol, res.FormatQuantity(volumeNative, units.Volume))
		}
		return []Record{row}, nil
	}

	return nil, nil
}

// familyAndType resolves the combined family/type label, composing it from
// the type entity when the host did not precompute it
func (a *Aggregator) familyAndType(res *resolver.Resolver, el *model.Element) string {
	if v, ok := res.Lookup(el, familyAndTypeSpec); ok {
		return v.Text()
	}
	t := el.ElementType()
	if t == nil {
		return resolver.NotAvailable
	}
	if t.FamilyName != "" && t.TypeName != "" {
		return t.FamilyName + ": " + t.TypeName
	}
	if t.TypeName != "" {
		return t.TypeName
	}
	return resolver.NotAvailable
}

// setMaterial fills the material columns for one reference. Concrete
// references resolve against the document's material table; references
// that only exist as free text keep the text as the material name.
func (a *Aggregator) setMaterial(row Record, doc *model.Document, ref string) {
	switch ref {
	case model.RefByCategory:
		row.set(ColMaterialName, ByCategoryName)
		row.set(ColMaterialClass, ByCategoryClass)
	case model.RefNone:
		row.set(ColMaterialName, NoMaterial)
		row.set(ColMaterialClass, NoMaterial)
	default:
		m, ok := doc.MaterialByRef(ref)
		if !ok {
			row.set(ColMaterialName, ref)
			return
		}
		row.set(ColMaterialID, m.MaterialID)
		if m.Name != "" {
			row.set(ColMaterialName, m.Name)
		} else {
			row.set(ColMaterialName, unnamedMaterial)
		}
		if m.Class != "" {
			row.set(ColMaterialClass, m.Class)
		} else {
			row.set(ColMaterialClass, unknownClass)
		}
	}
}
