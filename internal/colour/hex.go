package colour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColorFormat is returned for strings that are not 3, 4, 6 or 8
// digit hex colours.
var ErrInvalidColorFormat = errors.New("invalid colour format")

func invalidFormat(s string) error {
	return fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
}

// NormalizeHex validates a hex colour with or without a leading '#' and
// returns it in canonical lowercase form: "#rrggbb", or "#rrggbbaa" when
// the input carries an alpha component.
func NormalizeHex(s string) (string, error) {
	digits := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "#"))

	switch len(digits) {
	case 3, 4:
		var b strings.Builder
		b.Grow(len(digits) * 2)
		for i := 0; i < len(digits); i++ {
			b.WriteByte(digits[i])
			b.WriteByte(digits[i])
		}
		digits = b.String()
	case 6, 8:
	default:
		return "", fmt.Errorf("%w: %q must have 3, 4, 6 or 8 hex digits", ErrInvalidColorFormat, s)
	}

	if _, err := strconv.ParseUint(digits, 16, 64); err != nil {
		return "", fmt.Errorf("%w: %q contains non-hex characters", ErrInvalidColorFormat, s)
	}

	return "#" + digits, nil
}

// ParseRGBA parses a hex colour into 8-bit channels. Alpha defaults to 255.
func ParseRGBA(s string) (RGBA, error) {
	hex, err := NormalizeHex(s)
	if err != nil {
		return RGBA{}, err
	}

	col, err := colorful.Hex(hex[:7])
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %v", ErrInvalidColorFormat, err)
	}
	r, g, b := col.RGB255()

	a := uint64(255)
	if len(hex) == 9 {
		a, _ = strconv.ParseUint(hex[7:], 16, 8)
	}

	return RGBA{R: r, G: g, B: b, A: uint8(a)}, nil
}

// ParseRGB parses a hex colour into 8-bit sRGB, discarding any alpha.
func ParseRGB(s string) (RGB, error) {
	c, err := ParseRGBA(s)
	if err != nil {
		return RGB{}, err
	}
	return c.RGB(), nil
}

// ParseHex parses a hex colour into OKLCH. Any alpha component is validated
// and then ignored.
func ParseHex(s string) (Color, error) {
	rgb, err := ParseRGB(s)
	if err != nil {
		return Color{}, err
	}
	return FromRGB(rgb), nil
}

// MustParseHex is like ParseHex but panics on error. It is intended for
// package-level constants.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
