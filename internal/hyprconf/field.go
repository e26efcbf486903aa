package hyprconf

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/wizzomafizzo/hyprsettings/internal/schema"
)

// field is a located `name = value` assignment. Offsets are absolute.
type field struct {
	nameStart  int
	valueStart int
	valueEnd   int
}

var (
	intLiteral   = regexp.MustCompile(`^\d+`)
	floatLiteral = regexp.MustCompile(`^-?(?:\d+(?:\.\d*)?|\.\d+)`)
	spaceRun     = regexp.MustCompile(`\s+`)
	spacedEquals = regexp.MustCompile(`\s*=\s*`)
)

const looseTrueToken = "enabled = true"

func fieldPattern(name string, fold bool) *regexp.Regexp {
	quoted := regexp.QuoteMeta(name)
	if fold {
		quoted = `(?i:` + quoted + `)`
	}
	return regexp.MustCompile(`(?m)(?:^|\{)[ \t]*(` + quoted + `)[ \t]*=[ \t]*([^\n]*)`)
}

// findField locates the first assignment to name in masked, which holds the text of
// scope with nested blocks blanked. The value ends at the end of the line, without
// trailing whitespace. With fold set the name matches in any case.
func findField(masked string, scope span, name string, fold bool) (field, bool) {
	m := fieldPattern(name, fold).FindStringSubmatchIndex(masked)
	if m == nil {
		return field{}, false
	}

	valueStart, valueEnd := m[4], m[5]
	for valueEnd > valueStart && strings.ContainsRune(" \t\r", rune(masked[valueEnd-1])) {
		valueEnd--
	}
	return field{
		nameStart:  scope.start + m[2],
		valueStart: scope.start + valueStart,
		valueEnd:   scope.start + valueEnd,
	}, true
}

// parseLiteral converts a value token to the setting's kind.
func parseLiteral(s schema.Setting, literal string) (schema.Value, error) {
	literal = strings.TrimSpace(literal)
	switch s.Kind {
	case schema.KindBool:
		first := ""
		if fields := strings.Fields(literal); len(fields) > 0 {
			first = fields[0]
		}
		return schema.Bool(strings.EqualFold(first, "true")), nil
	case schema.KindInt:
		digits := intLiteral.FindString(literal)
		n, err := strconv.Atoi(digits)
		if err != nil {
			return schema.Value{}, fmt.Errorf("%w: %s = %q", ErrUnparsableValue, s.Name, literal)
		}
		return schema.Int(n), nil
	case schema.KindFloat:
		number := floatLiteral.FindString(literal)
		f, err := strconv.ParseFloat(number, 64)
		if err != nil {
			return schema.Value{}, fmt.Errorf("%w: %s = %q", ErrUnparsableValue, s.Name, literal)
		}
		return schema.Float(f), nil
	case schema.KindString:
		if literal == "" {
			return schema.Value{}, fmt.Errorf("%w: %s is empty", ErrUnparsableValue, s.Name)
		}
		return schema.String(literal), nil
	default:
		return schema.Value{}, fmt.Errorf("%w: %s has no kind", ErrUnparsableValue, s.Name)
	}
}

// looseEnabled reports whether a block body contains "enabled = true" once lower
// cased with whitespace collapsed. An absent flag and "enabled = false" both read
// as false.
func looseEnabled(masked string) bool {
	normalized := strings.ToLower(masked)
	normalized = spaceRun.ReplaceAllString(normalized, " ")
	normalized = spacedEquals.ReplaceAllString(normalized, " = ")
	return strings.Contains(normalized, looseTrueToken)
}
