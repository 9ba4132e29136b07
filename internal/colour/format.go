package colour

import (
	"strconv"
	"strings"
)

// OKLCHString formats c in CSS oklch() notation, e.g. "oklch(62.8% 0.2577 29.23)".
// Hueless colours use the "none" keyword.
func OKLCHString(c Color) string {
	h := "none"
	if c.hasHue {
		h = formatFloat(c.h, 2)
	}
	return "oklch(" + formatFloat(c.l*100, 2) + "% " + formatFloat(c.c, 4) + " " + h + ")"
}

// DisplayP3String formats unit Display P3 coordinates in CSS color() notation.
func DisplayP3String(v [3]float64) string {
	return "color(display-p3 " + formatFloat(v[0], 4) + " " + formatFloat(v[1], 4) + " " + formatFloat(v[2], 4) + ")"
}

// DisplayP3AlphaString formats translucent Display P3 coordinates, with alpha
// as the fourth element.
func DisplayP3AlphaString(v [4]float64) string {
	return "color(display-p3 " + formatFloat(v[0], 4) + " " + formatFloat(v[1], 4) + " " +
		formatFloat(v[2], 4) + " / " + formatFloat(v[3], 3) + ")"
}

// ParseDisplayP3 parses "color(display-p3 r g b)" notation. Any alpha
// component is ignored.
func ParseDisplayP3(s string) (Color, error) {
	inner, ok := strings.CutPrefix(strings.TrimSpace(s), "color(display-p3")
	if !ok {
		return Color{}, invalidFormat(s)
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return Color{}, invalidFormat(s)
	}
	inner, _, _ = strings.Cut(inner, "/")

	fields := strings.Fields(inner)
	if len(fields) != 3 {
		return Color{}, invalidFormat(s)
	}
	var v [3]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Color{}, invalidFormat(s)
		}
		v[i] = n
	}
	return FromDisplayP3(v[0], v[1], v[2]), nil
}

// formatFloat rounds to at most prec decimals and drops trailing zeros.
func formatFloat(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
