// Package colour provides colour space conversion, contrast and compositing
// primitives for building perceptual colour scales.
package colour

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// achromaticEpsilon is the OKLab a/b magnitude below which a colour is
// treated as having no hue.
const achromaticEpsilon = 0.0002

// Color is an immutable point in OKLCH space.
//
// Lightness is in [0, 1], chroma is >= 0 and hue is in degrees [0, 360).
// A colour without a defined hue (greys) reports HasHue() == false and is
// converted with a == b == 0 regardless of any residual chroma.
type Color struct {
	l, c, h float64
	hasHue  bool
}

// OKLCH returns a colour from lightness, chroma and hue (degrees).
func OKLCH(l, c, h float64) Color {
	return Color{l: l, c: c, h: normalizeHue(h), hasHue: true}
}

// Achromatic returns a hueless colour with the given lightness and chroma.
func Achromatic(l, c float64) Color {
	return Color{l: l, c: c}
}

// OKLab returns a colour from OKLab coordinates.
func OKLab(l, a, b float64) Color {
	c := math.Sqrt(a*a + b*b)
	if math.Abs(a) < achromaticEpsilon && math.Abs(b) < achromaticEpsilon {
		return Color{l: l, c: c}
	}
	return OKLCH(l, c, math.Atan2(b, a)*180/math.Pi)
}

// FromColorful converts a go-colorful sRGB colour. Out of range channels are
// kept as-is so wide-gamut values survive the conversion.
func FromColorful(col colorful.Color) Color {
	return OKLab(srgbGamut.decode([3]float64{col.R, col.G, col.B}))
}

// FromRGB converts an 8-bit sRGB colour.
func FromRGB(rgb RGB) Color {
	return FromColorful(colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255,
	})
}

// FromHSL converts an HSL colour. h is in degrees, s and l are in [0, 1].
func FromHSL(h, s, l float64) Color {
	return FromColorful(colorful.Hsl(h, s, l))
}

// L returns the perceptual lightness.
func (c Color) L() float64 { return c.l }

// C returns the chroma.
func (c Color) C() float64 { return c.c }

// H returns the hue in degrees, or 0 when the hue is undefined.
func (c Color) H() float64 { return c.h }

// HasHue reports whether the hue is defined.
func (c Color) HasHue() bool { return c.hasHue }

// WithL returns a copy of c with lightness l.
func (c Color) WithL(l float64) Color {
	c.l = l
	return c
}

// WithC returns a copy of c with chroma ch.
func (c Color) WithC(ch float64) Color {
	c.c = ch
	return c
}

// WithHueOf returns a copy of c carrying the hue (or lack of one) of src.
func (c Color) WithHueOf(src Color) Color {
	c.h = src.h
	c.hasHue = src.hasHue
	return c
}

// OKLab returns the OKLab coordinates of c.
func (c Color) OKLab() (l, a, b float64) {
	if !c.hasHue {
		return c.l, 0, 0
	}
	rad := c.h * math.Pi / 180
	return c.l, c.c * math.Cos(rad), c.c * math.Sin(rad)
}

// Colorful returns the unclamped go-colorful sRGB representation of c.
func (c Color) Colorful() colorful.Color {
	v := srgbGamut.encode(c.OKLab())
	return colorful.Color{R: v[0], G: v[1], B: v[2]}
}

// RGB returns c gamut mapped into sRGB and rounded to 8 bits per channel.
func (c Color) RGB() RGB {
	return rgbFromUnit(srgbGamut.fit(c))
}

// Hex returns c as a canonical "#rrggbb" sRGB string.
func (c Color) Hex() string {
	return c.RGB().Hex()
}

// HSL returns the HSL coordinates of the sRGB rendition of c.
// Hue is in degrees, saturation and lightness are in [0, 1].
func (c Color) HSL() (h, s, l float64) {
	rgb := c.RGB()
	return colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255,
	}.Hsl()
}

// String returns the CSS oklch() notation of c.
func (c Color) String() string {
	return OKLCHString(c)
}

// GoString implements fmt.GoStringer for test failure output.
func (c Color) GoString() string {
	if !c.hasHue {
		return fmt.Sprintf("colour.Achromatic(%g, %g)", c.l, c.c)
	}
	return fmt.Sprintf("colour.OKLCH(%g, %g, %g)", c.l, c.c, c.h)
}

// Distance returns the Euclidean distance between a and b in OKLab (ΔE OK).
func Distance(a, b Color) float64 {
	l1, a1, b1 := a.OKLab()
	l2, a2, b2 := b.OKLab()
	return labDistance(l1, a1, b1, l2, a2, b2)
}

func labDistance(l1, a1, b1, l2, a2, b2 float64) float64 {
	dl, da, db := l1-l2, a1-a2, b1-b2
	return math.Sqrt(dl*dl + da*da + db*db)
}

// Mix interpolates between a and b in OKLCH, taking the shorter arc for hue.
// t = 0 yields a and t = 1 yields b. When only one side has a hue, that hue
// is used throughout.
func Mix(a, b Color, t float64) Color {
	l := a.l + (b.l-a.l)*t
	ch := a.c + (b.c-a.c)*t

	switch {
	case a.hasHue && b.hasHue:
		d := b.h - a.h
		if d > 180 {
			d -= 360
		} else if d < -180 {
			d += 360
		}
		return OKLCH(l, ch, a.h+d*t)
	case a.hasHue:
		return OKLCH(l, ch, a.h)
	case b.hasHue:
		return OKLCH(l, ch, b.h)
	default:
		return Achromatic(l, ch)
	}
}

// normalizeHue wraps h into [0, 360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
