// internal/units/units_test.go
package units

import (
	"math"
	"testing"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		system System
		length string
		area   string
		volume string
		kind   Kind
		value  float64
		want   float64
	}{
		{"feet to millimeters", Imperial, "mm", "m2", "m3", Length, 1, 304.8},
		{"feet to meters", Imperial, "m", "m2", "m3", Length, 10, 3.048},
		{"square feet to square meters", Imperial, "mm", "m2", "m3", Area, 1, 0.09290304},
		{"cubic feet to cubic meters", Imperial, "mm", "m2", "m3", Volume, 1, 0.028316846592},
		{"meters to millimeters", Metric, "mm", "m2", "m3", Length, 0.2, 200},
		{"metric passthrough area", Metric, "mm", "m2", "m3", Area, 12.5, 12.5},
		{"meters to feet", Metric, "ft", "m2", "m3", Length, 0.3048, 1},
		{"kind none passes through", Metric, "mm", "m2", "m3", None, 42, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv, err := NewConverter(tt.system, tt.length, tt.area, tt.volume)
			if err != nil {
				t.Fatalf("NewConverter() error: %v", err)
			}

			got, err := conv.Convert(tt.value, tt.kind)
			if err != nil {
				t.Fatalf("Convert() error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Convert(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestNewConverterRejectsUnknownUnits(t *testing.T) {
	tests := []struct {
		name   string
		system System
		length string
		area   string
		volume string
	}{
		{"unknown system", System("nautical"), "mm", "m2", "m3"},
		{"unknown length unit", Metric, "furlong", "m2", "m3"},
		{"unknown area unit", Metric, "mm", "acre", "m3"},
		{"unknown volume unit", Metric, "mm", "m2", "barrel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewConverter(tt.system, tt.length, tt.area, tt.volume); err == nil {
				t.Errorf("NewConverter() expected error, got nil")
			}
		})
	}
}
