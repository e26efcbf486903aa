// Package schema defines the closed set of window manager settings hyprsettings
// knows how to read and write.
//
// Every key belongs to exactly one Domain, has a fixed Kind and a structural scope
// (top-level or a block path such as "input.touchpad"). The reader and the writer
// both resolve keys through this table, so anything one side understands the other
// side understands too.
package schema

import (
	"fmt"
	"strings"

	"github.com/wizzomafizzo/hyprsettings/internal/constants"
)

// Domain is one logical settings group backed by a single configuration file.
type Domain string

const (
	Decoration Domain = "decoration"
	General    Domain = "general"
	Input      Domain = "input"
	Animations Domain = "animations"
)

// Domains returns every domain in apply order.
func Domains() []Domain {
	return []Domain{Input, Decoration, General, Animations}
}

// ParseDomain resolves a user supplied domain name.
func ParseDomain(name string) (Domain, error) {
	d := Domain(strings.ToLower(strings.TrimSpace(name)))
	switch d {
	case Decoration, General, Input, Animations:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDomain, name)
	}
}

// File returns the configuration file name holding the domain.
func (d Domain) File() string {
	if d == Input {
		return constants.InputFilename
	}
	return constants.LookAndFeelFilename
}

// Label is the human readable group name used in apply summaries.
func (d Domain) Label() string {
	switch d {
	case Decoration:
		return "Decoration settings"
	case General:
		return "General settings"
	case Input:
		return "Input settings"
	case Animations:
		return "Animation settings"
	default:
		return string(d)
	}
}

func (d Domain) String() string {
	return string(d)
}
