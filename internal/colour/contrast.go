package colour

import (
	"math"
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(rgb RGB) float64 {
	u := rgb.Unit()
	return 0.2126*gammaCorrect(u[0]) + 0.7152*gammaCorrect(u[1]) + 0.0722*gammaCorrect(u[2])
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// Meets WCAG AA standard for normal text at 4.5:1, large text at 3:1.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// APCA 0.0.98G constants.
const (
	apcaNormBG     = 0.56
	apcaNormTxt    = 0.57
	apcaRevTxt     = 0.62
	apcaRevBG      = 0.65
	apcaBlkThrs    = 0.022
	apcaBlkClmp    = 1.414
	apcaScale      = 1.14
	apcaLoOffset   = 0.027
	apcaLoClip     = 0.1
	apcaDeltaYMin  = 0.0005
	apcaCoeffRed   = 0.2126729
	apcaCoeffGreen = 0.7151522
	apcaCoeffBlue  = 0.0721750
)

// Contrast returns the APCA lightness contrast (Lc) of text over background.
//
// Positive values are dark text on a light background, negative values are
// light text on a dark background. |Lc| of 60 is roughly body-text legible,
// below 40 is unsuitable for text. Both colours are used unclamped so
// out-of-gamut scale colours still compare sensibly.
func Contrast(text, background Color) float64 {
	yTxt := apcaClampBlack(apcaLuminance(text))
	yBg := apcaClampBlack(apcaLuminance(background))

	if math.Abs(yBg-yTxt) < apcaDeltaYMin {
		return 0
	}

	var c float64
	if yBg > yTxt {
		c = (math.Pow(yBg, apcaNormBG) - math.Pow(yTxt, apcaNormTxt)) * apcaScale
	} else {
		c = (math.Pow(yBg, apcaRevBG) - math.Pow(yTxt, apcaRevTxt)) * apcaScale
	}

	switch {
	case math.Abs(c) < apcaLoClip:
		return 0
	case c > 0:
		return (c - apcaLoOffset) * 100
	default:
		return (c + apcaLoOffset) * 100
	}
}

// apcaLuminance reads unclamped, sign-preserving sRGB channels. Colours far
// outside the gamut can sum below zero; those are floored at black.
func apcaLuminance(c Color) float64 {
	col := c.Colorful()
	y := apcaLinearize(col.R)*apcaCoeffRed +
		apcaLinearize(col.G)*apcaCoeffGreen +
		apcaLinearize(col.B)*apcaCoeffBlue
	return math.Max(y, 0)
}

// apcaLinearize uses APCA's simple 2.4 exponent, preserving sign.
func apcaLinearize(v float64) float64 {
	return math.Copysign(math.Pow(math.Abs(v), 2.4), v)
}

func apcaClampBlack(y float64) float64 {
	if y >= apcaBlkThrs {
		return y
	}
	return y + math.Pow(apcaBlkThrs-y, apcaBlkClmp)
}
