package model

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ValueKind identifies the underlying type of a property value
type ValueKind int

const (
	// KindEmpty marks a property that exists but carries no value
	KindEmpty ValueKind = iota
	KindString
	KindInt
	KindFloat
)

// Value is a single typed property value on an element or element type.
// Properties in a snapshot are either absent, present-but-empty, or carry
// a string, integer, or floating-point value.
type Value struct {
	Kind  ValueKind
	Str   string
	Int   int64
	Float float64
}

// StringValue creates a string-typed value. An empty string yields an
// empty value, matching how the host serializes blank parameters.
func StringValue(s string) Value {
	if s == "" {
		return Value{Kind: KindEmpty}
	}
	return Value{Kind: KindString, Str: s}
}

// IntValue creates an integer-typed value
func IntValue(i int64) Value {
	return Value{Kind: KindInt, Int: i}
}

// FloatValue creates a floating-point value
func FloatValue(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

// IsEmpty reports whether the value is present but carries nothing
func (v Value) IsEmpty() bool {
	return v.Kind == KindEmpty
}

// Number returns the value as a float64 if it is numeric
func (v Value) Number() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	default:
		return 0, false
	}
}

// Text returns the value rendered as a plain string
func (v Value) Text() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindFloat:
		return fmt.Sprintf("%g", v.Float)
	default:
		return ""
	}
}

// fromInterface converts a decoded JSON/YAML scalar into a Value
func fromInterface(raw interface{}) (Value, error) {
	switch val := raw.(type) {
	case nil:
		return Value{Kind: KindEmpty}, nil
	case string:
		return StringValue(val), nil
	case bool:
		// Booleans show up in host dumps for yes/no parameters
		if val {
			return IntValue(1), nil
		}
		return IntValue(0), nil
	case int:
		return IntValue(int64(val)), nil
	case int64:
		return IntValue(val), nil
	case float64:
		// JSON numbers always decode as float64; keep integral ones as ints
		if val == float64(int64(val)) {
			return IntValue(int64(val)), nil
		}
		return FloatValue(val), nil
	default:
		return Value{}, fmt.Errorf("unsupported property value type %T", raw)
	}
}

// UnmarshalJSON decodes a property value from a JSON scalar
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := fromInterface(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalJSON encodes the value back to its natural JSON scalar
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindString:
		return json.Marshal(v.Str)
	case KindInt:
		return json.Marshal(v.Int)
	case KindFloat:
		return json.Marshal(v.Float)
	default:
		return json.Marshal(nil)
	}
}

// UnmarshalYAML decodes a property value from a YAML scalar
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var raw interface{}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := fromInterface(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes the value back to its natural YAML scalar
func (v Value) MarshalYAML() (interface{}, error) {
	switch v.Kind {
	case KindString:
		return v.Str, nil
	case KindInt:
		return v.Int, nil
	case KindFloat:
		return v.Float, nil
	default:
		return nil, nil
	}
}
