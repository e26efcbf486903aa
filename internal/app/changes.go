package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wizzomafizzo/hyprsettings/internal/schema"
	"gopkg.in/yaml.v3"
)

// ParseChanges reads a YAML document of domain sections holding key: value pairs:
//
//	decoration:
//	  blur_size: 12
//	input:
//	  sensitivity: -0.25
//
// Every value is checked against its setting; all problems are reported together.
func ParseChanges(data []byte) (map[schema.Domain]schema.Map, error) {
	var doc map[string]map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse changes: %w", err)
	}

	changes := map[schema.Domain]schema.Map{}
	var errs []error
	for section, values := range doc {
		d, err := schema.ParseDomain(section)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		delta := schema.Map{}
		for name, node := range values {
			if node.Kind != yaml.ScalarNode {
				errs = append(errs, fmt.Errorf("%s.%s must be a single value", section, name))
				continue
			}
			key, value, err := parseAssignment(name, node.Value)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			delta[key] = value
		}
		if err := delta.Validate(d); err != nil {
			errs = append(errs, err)
		}
		changes[d] = delta
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return changes, nil
}

// ParseAssignments turns key=value arguments into a delta for one domain.
func ParseAssignments(d schema.Domain, args []string) (schema.Map, error) {
	delta := schema.Map{}
	var errs []error
	for _, arg := range args {
		name, text, ok := strings.Cut(arg, "=")
		if !ok {
			errs = append(errs, fmt.Errorf("expected key=value, got %q", arg))
			continue
		}
		key, value, err := parseAssignment(name, text)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		delta[key] = value
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := delta.Validate(d); err != nil {
		return nil, err //nolint:wrapcheck // validation errors name their keys
	}
	return delta, nil
}

// parseAssignment converts text for a key. Floats are not rounded so that values
// with too many decimals are rejected instead of silently changed.
func parseAssignment(name, text string) (schema.Key, schema.Value, error) {
	key, err := schema.ParseKey(name)
	if err != nil {
		return "", schema.Value{}, err //nolint:wrapcheck // already names the key
	}
	setting, _ := schema.Lookup(key)

	if setting.Kind == schema.KindFloat {
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return "", schema.Value{}, fmt.Errorf("%w: %s wants a number, got %q", schema.ErrKindMismatch, key, text)
		}
		return key, schema.Float(f), nil
	}

	value, err := setting.Parse(text)
	if err != nil {
		return "", schema.Value{}, err //nolint:wrapcheck // already names the key
	}
	return key, value, nil
}
