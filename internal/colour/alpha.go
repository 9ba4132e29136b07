package colour

import "math"

// Quantisation grids for alpha compositing.
const (
	PrecisionSRGB      = 255
	PrecisionWideAlpha = 1000
)

// AlphaColor finds the translucent colour that, composited over background,
// reproduces target once both are quantised to rgbPrecision steps per
// channel. Inputs and the returned RGB are unit channels; the fourth element
// is alpha in [0, 1] on the alphaPrecision grid.
//
// The foreground is pushed towards white when any target channel is brighter
// than the background and towards black otherwise.
func AlphaColor(target, background [3]float64, rgbPrecision, alphaPrecision int) [4]float64 {
	return alphaColor(target, background, float64(rgbPrecision), float64(alphaPrecision), 0, false)
}

// AlphaColorAt is like AlphaColor but composites at a fixed alpha instead of
// the smallest alpha that can reach the target.
func AlphaColorAt(target, background [3]float64, rgbPrecision, alphaPrecision int, alpha float64) [4]float64 {
	return alphaColor(target, background, float64(rgbPrecision), float64(alphaPrecision), alpha, true)
}

func alphaColor(target, background [3]float64, p, ap, pinned float64, isPinned bool) [4]float64 {
	var t, b [3]float64
	for i := range 3 {
		t[i] = jsRound(target[i] * p)
		b[i] = jsRound(background[i] * p)
	}

	desired := 0.0
	if t[0] > b[0] || t[1] > b[1] || t[2] > b[2] {
		desired = p
	}

	var alphas [3]float64
	for i := range 3 {
		alphas[i] = safeDiv(t[i]-b[i], desired-b[i])
	}

	if !isPinned && alphas[0] == alphas[1] && alphas[1] == alphas[2] {
		v := desired / p
		return [4]float64{v, v, v, alphas[0]}
	}

	maxAlpha := pinned
	if !isPinned {
		maxAlpha = math.Max(alphas[0], math.Max(alphas[1], alphas[2]))
	}

	a := clampNaN(math.Ceil(maxAlpha*ap), ap) / ap

	var fg [3]float64
	for i := range 3 {
		fg[i] = math.Ceil(clampNaN(safeDiv(t[i]-b[i]*(1-a), a), p))
	}

	for i := range 3 {
		blended := blendChannel(fg[i], a, b[i])
		if t[i] == blended {
			continue
		}
		if (desired == 0 && t[i] <= b[i]) || (desired == p && t[i] >= b[i]) {
			if t[i] > blended {
				fg[i]++
			} else {
				fg[i]--
			}
		}
	}

	return [4]float64{fg[0] / p, fg[1] / p, fg[2] / p, a}
}

// blendChannel composites one quantised channel the way browsers do, rounding
// each contribution separately.
func blendChannel(fg, alpha, bg float64) float64 {
	return jsRound(bg*(1-alpha)) + jsRound(fg*alpha)
}

// Blend composites fg at alpha over bg in 8-bit sRGB.
func Blend(fg RGBA, bg RGB) RGB {
	a := fg.AlphaFloat()
	return RGB{
		R: uint8(blendChannel(float64(fg.R), a, float64(bg.R))),
		G: uint8(blendChannel(float64(fg.G), a, float64(bg.G))),
		B: uint8(blendChannel(float64(fg.B), a, float64(bg.B))),
	}
}

// AlphaRGBA computes the 8-bit translucent twin of target over background.
func AlphaRGBA(target, background RGB) RGBA {
	return rgbaFromUnit(AlphaColor(target.Unit(), background.Unit(), PrecisionSRGB, PrecisionSRGB))
}

// AlphaRGBAAt is like AlphaRGBA with a fixed alpha in [0, 1].
func AlphaRGBAAt(target, background RGB, alpha float64) RGBA {
	return rgbaFromUnit(AlphaColorAt(target.Unit(), background.Unit(), PrecisionSRGB, PrecisionSRGB, alpha))
}

// AlphaDisplayP3 computes the translucent twin of target over background in
// Display P3, with alpha on a 1/1000 grid. Returns r, g, b and alpha.
func AlphaDisplayP3(target, background Color) [4]float64 {
	return AlphaColor(target.DisplayP3(), background.DisplayP3(), PrecisionSRGB, PrecisionWideAlpha)
}

// AlphaDisplayP3At is like AlphaDisplayP3 with a fixed alpha in [0, 1].
func AlphaDisplayP3At(target, background Color, alpha float64) [4]float64 {
	return AlphaColorAt(target.DisplayP3(), background.DisplayP3(), PrecisionSRGB, PrecisionWideAlpha, alpha)
}

func rgbaFromUnit(v [4]float64) RGBA {
	rgb := rgbFromUnit([3]float64{v[0], v[1], v[2]})
	return RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: uint8(jsRound(math.Max(0, math.Min(1, v[3])) * 255))}
}

// jsRound rounds half up, matching JavaScript's Math.round.
func jsRound(x float64) float64 {
	return math.Floor(x + 0.5)
}

// safeDiv returns 0 for a zero denominator.
func safeDiv(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return n / d
}

// clampNaN clamps x to [0, hi], mapping NaN to 0.
func clampNaN(x, hi float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return math.Max(0, math.Min(hi, x))
}
