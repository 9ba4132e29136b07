package scale

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAppearance is returned when an appearance is neither light nor dark.
var ErrInvalidAppearance = errors.New("invalid appearance")

// Appearance selects the reference library and the lightness transposition
// applied to a generated scale.
type Appearance int

const (
	// Light is dark text on a light background.
	Light Appearance = iota
	// Dark is light text on a dark background.
	Dark
)

// ParseAppearance parses "light" or "dark", case-insensitively.
func ParseAppearance(s string) (Appearance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("%w: %q (want light or dark)", ErrInvalidAppearance, s)
	}
}

// String returns "light" or "dark".
func (a Appearance) String() string {
	switch a {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "unknown"
	}
}

// Set implements pflag.Value.
func (a *Appearance) Set(s string) error {
	v, err := ParseAppearance(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Type implements pflag.Value.
func (a *Appearance) Type() string { return "appearance" }

// MarshalText implements encoding.TextMarshaler.
func (a Appearance) MarshalText() ([]byte, error) {
	if a != Light && a != Dark {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAppearance, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Appearance) UnmarshalText(b []byte) error {
	return a.Set(string(b))
}

// DefaultBackground returns the page background used when none is given.
func (a Appearance) DefaultBackground() string {
	if a == Dark {
		return "#111111"
	}
	return "#ffffff"
}
