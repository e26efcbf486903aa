package hyprconf

import (
	"fmt"
	"regexp"
	"strings"
)

// span is a half-open byte range of a file's text.
type span struct {
	start int
	end   int
}

// block is a located brace-delimited region. open and close index the braces.
type block struct {
	name  string
	open  int
	close int
}

// body is the text between the braces.
func (b block) body() span {
	return span{start: b.open + 1, end: b.close}
}

func openerPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)(?:^|\{)[ \t]*` + regexp.QuoteMeta(name) + `[ \t]*\{`)
}

// findBlock returns the first block called name that opens inside within. The opener
// must start a line or directly follow another opening brace, so commented out
// openers and names embedded in longer words are ignored.
func findBlock(text string, within span, name string) (block, error) {
	loc := openerPattern(name).FindStringIndex(text[within.start:within.end])
	if loc == nil {
		return block{}, fmt.Errorf("%w: %s", ErrBlockNotFound, name)
	}

	open := within.start + loc[1] - 1
	closing, ok := matchBrace(text, open, within.end)
	if !ok {
		return block{}, fmt.Errorf("%w: %s opened at byte %d is never closed", ErrMalformedBlock, name, open)
	}
	return block{name: name, open: open, close: closing}, nil
}

// matchBrace returns the index of the brace closing the one at open, scanning no
// further than limit. Braces in # comments are ignored.
func matchBrace(text string, open, limit int) (int, bool) {
	depth := 0
	for i := open; i < limit; i++ {
		switch text[i] {
		case '#':
			i = lineEnd(text, i, limit) - 1
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// locate resolves a block path such as ["input", "touchpad"], each name searched
// inside the previous block's body. An empty path is the whole file.
func locate(text string, path []string) (block, span, error) {
	scope := span{start: 0, end: len(text)}
	var found block
	for _, name := range path {
		b, err := findBlock(text, scope, name)
		if err != nil {
			return block{}, span{}, err
		}
		found = b
		scope = b.body()
	}
	return found, scope, nil
}

// maskNested returns the text of scope with the contents of nested blocks blanked
// out. Newlines are kept and the length is unchanged, so offsets into the result
// are offsets into scope.
func maskNested(text string, scope span) string {
	var sb strings.Builder
	sb.Grow(scope.end - scope.start)

	depth := 0
	for i := scope.start; i < scope.end; i++ {
		c := text[i]
		if c == '#' {
			end := lineEnd(text, i, scope.end)
			if depth == 0 {
				sb.WriteString(text[i:end])
			} else {
				sb.WriteString(strings.Repeat(" ", end-i))
			}
			i = end - 1
			continue
		}

		switch {
		case c == '{':
			depth++
			sb.WriteByte(' ')
		case c == '}' && depth > 0:
			depth--
			sb.WriteByte(' ')
		case depth > 0 && c != '\n':
			sb.WriteByte(' ')
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// lineEnd returns the index of the newline ending the line containing i, or limit.
func lineEnd(text string, i, limit int) int {
	if n := strings.IndexByte(text[i:limit], '\n'); n >= 0 {
		return i + n
	}
	return limit
}
