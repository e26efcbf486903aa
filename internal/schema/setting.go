package schema

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrUnknownDomain is returned for a domain name outside the schema.
	ErrUnknownDomain = errors.New("unknown settings domain")
	// ErrUnknownKey is returned for a key outside the schema.
	ErrUnknownKey = errors.New("unknown setting")
	// ErrWrongDomain is returned when a key is used with a domain it does not belong to.
	ErrWrongDomain = errors.New("setting belongs to another domain")
	// ErrKindMismatch is returned when a value's kind differs from the key's declared kind.
	ErrKindMismatch = errors.New("value kind does not match setting")
	// ErrOutOfRange is returned for numbers outside the key's valid range or precision.
	ErrOutOfRange = errors.New("value out of range")
	// ErrInvalidText is returned for string values that cannot be written on a single line.
	ErrInvalidText = errors.New("invalid text value")
)

// Key names a setting. The set of keys is closed; see Lookup.
type Key string

func (k Key) String() string { return string(k) }

// ParseKey resolves a user supplied key name.
func ParseKey(name string) (Key, error) {
	key := Key(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := Lookup(key); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return key, nil
}

// Setting describes one key: where it lives in its file and what it may hold.
type Setting struct {
	Default     Value
	validate    func(Value) error
	Key         Key
	Domain      Domain
	Name        string
	Title       string
	Description string
	Block       []string
	Min         float64
	Max         float64
	Precision   int
	Kind        Kind
	// Loose marks block "enabled" flags that are detected by a normalized substring
	// match. An absent flag and an explicit false read back the same.
	Loose bool
	// Insert marks the one key that is added after its block opener when missing.
	Insert bool
}

// Scope returns the dotted block path, or "top-level".
func (s Setting) Scope() string {
	if len(s.Block) == 0 {
		return "top-level"
	}
	return strings.Join(s.Block, ".")
}

// HasRange reports whether numeric values are bounded.
func (s Setting) HasRange() bool {
	return s.Max > s.Min
}

// Check validates a value against the setting's kind, range and text rules.
func (s Setting) Check(v Value) error {
	if v.Kind() != s.Kind {
		return fmt.Errorf("%w: %s wants %s, got %s", ErrKindMismatch, s.Key, s.Kind, v.Kind())
	}

	switch s.Kind {
	case KindInt:
		if s.HasRange() && (v.Number() < s.Min || v.Number() > s.Max) {
			return fmt.Errorf("%w: %s must be between %g and %g, got %s", ErrOutOfRange, s.Key, s.Min, s.Max, v)
		}
	case KindFloat:
		f := v.AsFloat()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrOutOfRange, s.Key)
		}
		if s.HasRange() && (f < s.Min || f > s.Max) {
			return fmt.Errorf("%w: %s must be between %g and %g, got %s", ErrOutOfRange, s.Key, s.Min, s.Max, v)
		}
		if rounded := v.Round(s.Precision).AsFloat(); math.Abs(rounded-f) > 1e-9 {
			return fmt.Errorf("%w: %s allows at most %d decimals, got %s", ErrOutOfRange, s.Key, s.Precision, v)
		}
	case KindString:
		text := v.AsString()
		if strings.ContainsAny(text, "\r\n") {
			return fmt.Errorf("%w: %s must fit on one line", ErrInvalidText, s.Key)
		}
		if text != strings.TrimSpace(text) || text == "" {
			return fmt.Errorf("%w: %s must be non-empty without surrounding spaces", ErrInvalidText, s.Key)
		}
	}

	if s.validate != nil {
		return s.validate(v)
	}
	return nil
}

// Parse converts user input into a value of the setting's kind. Floats are
// rounded to the setting's precision.
func (s Setting) Parse(text string) (Value, error) {
	text = strings.TrimSpace(text)
	switch s.Kind {
	case KindBool:
		switch strings.ToLower(text) {
		case "true", "yes", "on", "1":
			return Bool(true), nil
		case "false", "no", "off", "0":
			return Bool(false), nil
		}
		return Value{}, fmt.Errorf("%w: %s wants true or false, got %q", ErrKindMismatch, s.Key, text)
	case KindInt:
		n, err := strconv.Atoi(text)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s wants an integer, got %q", ErrKindMismatch, s.Key, text)
		}
		return Int(n), nil
	case KindFloat:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s wants a number, got %q", ErrKindMismatch, s.Key, text)
		}
		return Float(f).Round(s.Precision), nil
	case KindString:
		return String(text), nil
	default:
		return Value{}, fmt.Errorf("%w: %s", ErrUnknownKey, s.Key)
	}
}

// Format renders a value for the configuration file.
func (s Setting) Format(v Value) string {
	return v.Format(s.Precision)
}
