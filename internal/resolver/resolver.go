// Package resolver implements the multi-strategy attribute lookup used to
// pull semantically-equal parameters out of elements whose schemas drift
// across host versions and locales. The same attribute may live on the
// instance, on its type, or under a legacy internal name; the resolver
// encodes that priority order as data so a new fallback name is a table
// entry, not a new conditional.
package resolver

import (
	"github.com/jdamm/matlist/internal/model"
	"github.com/jdamm/matlist/internal/units"
)

// NotAvailable is the placeholder emitted for any attribute that cannot be
// resolved. Resolution failure is never fatal.
const NotAvailable = "N/A"

// Spec declares how one attribute is found: the candidate keys in priority
// order, optional legacy names tried only after every candidate key misses,
// whether the type entity is consulted, and the dimensional kind for unit
// conversion when the attribute is numeric.
type Spec struct {
	Keys         []string
	Legacy       []string
	TypeFallback bool
	Unit         units.Kind
}

// Resolver resolves attributes against the Entity capability interface.
// Precision and the decimal separator are fixed for the life of a run.
type Resolver struct {
	conv      *units.Converter
	precision int
	decimal   byte
}

// New creates a resolver with the run's unit converter and formatting rules
func New(conv *units.Converter, precision int, decimal byte) *Resolver {
	return &Resolver{conv: conv, precision: precision, decimal: decimal}
}

// lookupKeys scans candidate keys on one entity, first present
// non-empty value wins
func lookupKeys(e model.Entity, keys []string) (model.Value, bool) {
	for _, key := range keys {
		if v, ok := e.Property(key); ok && !v.IsEmpty() {
			return v, true
		}
	}
	return model.Value{}, false
}

// Lookup runs the raw cascade without conversion or formatting:
// candidate keys on the instance, then on the type when TypeFallback is
// set, then the legacy names through the same two levels. First match
// wins; partial results are never merged.
func (r *Resolver) Lookup(e model.Entity, spec Spec) (model.Value, bool) {
	for _, keys := range [][]string{spec.Keys, spec.Legacy} {
		if len(keys) == 0 {
			continue
		}
		if v, ok := lookupKeys(e, keys); ok {
			return v, true
		}
		if spec.TypeFallback {
			if t := e.Type(); t != nil {
				if v, ok := lookupKeys(t, keys); ok {
					return v, true
				}
			}
		}
	}
	return model.Value{}, false
}

// Resolve runs the cascade and renders the result for export. Numeric
// attributes are unit-converted and formatted; a type mismatch or
// conversion failure degrades to the placeholder, never an error.
func (r *Resolver) Resolve(e model.Entity, spec Spec) string {
	v, ok := r.Lookup(e, spec)
	if !ok {
		return NotAvailable
	}

	if spec.Unit != units.None {
		num, ok := v.Number()
		if !ok {
			return NotAvailable
		}
		return r.FormatQuantity(num, spec.Unit)
	}

	return v.Text()
}

// ResolveNumber runs the cascade and returns the raw native-unit number.
// Used where the aggregator derives quantities (layer volume from
// thickness and area) before converting the result once.
func (r *Resolver) ResolveNumber(e model.Entity, spec Spec) (float64, bool) {
	v, ok := r.Lookup(e, spec)
	if !ok {
		return 0, false
	}
	return v.Number()
}

// FormatQuantity converts a native-unit quantity and formats it with the
// run's precision and decimal separator
func (r *Resolver) FormatQuantity(v float64, kind units.Kind) string {
	converted, err := r.conv.Convert(v, kind)
	if err != nil {
		return NotAvailable
	}
	return FormatNumber(converted, r.precision, r.decimal)
}
