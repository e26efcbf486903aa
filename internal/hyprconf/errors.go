package hyprconf

import (
	"errors"

	"github.com/wizzomafizzo/hyprsettings/internal/schema"
)

var (
	// ErrMissingFile means the configuration file for a domain does not exist.
	ErrMissingFile = errors.New("configuration file not found")
	// ErrBlockNotFound means no opener for a block was found in the searched span.
	ErrBlockNotFound = errors.New("block not found")
	// ErrMalformedBlock means a block opener has no matching closing brace.
	ErrMalformedBlock = errors.New("malformed block")
	// ErrUnparsableValue means a key's literal does not match its kind.
	ErrUnparsableValue = errors.New("unparsable value")
	// ErrInvalidDelta means a delta was rejected before the file was touched.
	ErrInvalidDelta = errors.New("invalid settings delta")
)

// keyNotFoundError reports a key missing from its scope.
type keyNotFoundError struct {
	key   schema.Key
	scope string
}

func (e *keyNotFoundError) Error() string {
	return "key " + e.key.String() + " not found in " + e.scope
}

func errNotFound(s schema.Setting) error {
	return &keyNotFoundError{key: s.Key, scope: s.Scope()}
}
