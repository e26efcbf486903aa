package schema

import (
	"math"
	"strconv"
)

// Kind is the type of a setting value.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// Value is a typed setting value. The zero Value is invalid.
type Value struct {
	s    string
	f    float64
	i    int
	kind Kind
	b    bool
}

// Bool returns a boolean value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Int returns an integer value.
func Int(v int) Value { return Value{kind: KindInt, i: v} }

// Float returns a float value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// String returns a string value.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Kind reports the value's kind.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether the value was built by one of the constructors.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// AsBool returns the boolean payload, false for other kinds.
func (v Value) AsBool() bool { return v.b }

// AsInt returns the integer payload, 0 for other kinds.
func (v Value) AsInt() int { return v.i }

// AsFloat returns the float payload, 0 for other kinds.
func (v Value) AsFloat() float64 { return v.f }

// AsString returns the string payload, "" for other kinds.
func (v Value) AsString() string { return v.s }

// Number returns integer and float payloads as float64.
func (v Value) Number() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// Format renders the value the way it is written to a configuration file.
// Floats use a fixed number of decimals so that repeated writes are byte stable.
func (v Value) Format(precision int) string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.Itoa(v.i)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', precision, 64)
	case KindString:
		return v.s
	default:
		return ""
	}
}

// String renders the value for display.
func (v Value) String() string {
	if v.kind == KindFloat {
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	}
	return v.Format(0)
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(other Value) bool {
	return v == other
}

// Round returns a float value rounded to precision decimals; other kinds are returned unchanged.
func (v Value) Round(precision int) Value {
	if v.kind != KindFloat {
		return v
	}
	scale := math.Pow(10, float64(precision))
	return Float(math.Round(v.f*scale) / scale)
}
