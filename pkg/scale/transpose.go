package scale

import (
	"math"

	"github.com/jmylchreest/tincture/internal/colour"
)

// Default lightness easing curves.
var (
	LightEasing = colour.Easing{X1: 0, Y1: 2, X2: 0, Y2: 2}
	DarkEasing  = colour.Easing{X1: 1, Y1: 0, X2: 1, Y2: 0}
)

// darkMaxRatio is the background to step 1 lightness ratio at which the dark
// easing has faded to a uniform shift.
const darkMaxRatio = 1.5

// transposeStart shifts values so the first lands on to. The shift tapers
// along the sequence following curve, from the full difference at the first
// value to none at the last.
func transposeStart(to float64, values []float64, curve colour.Easing) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	if len(values) == 1 {
		out[0] = to
		return out
	}

	ease := curve.Func()
	last := float64(len(values) - 1)
	diff := values[0] - to
	for i, v := range values {
		out[i] = v - diff*ease(1-float64(i)/last)
	}
	return out
}

// transposeLight anchors a light scale to the background lightness bgL. A
// virtual white step is prepended so that step 1 keeps its offset from white.
func transposeLight(s Scale, bgL float64, curve colour.Easing) Scale {
	values := make([]float64, 0, Steps+1)
	values = append(values, 1)
	for _, c := range s {
		values = append(values, c.L())
	}

	shifted := transposeStart(clamp01(bgL), values, curve)[1:]

	var out Scale
	for i, c := range s {
		out[i] = c.WithL(shifted[i])
	}
	return out
}

// transposeDark anchors a dark scale to the background lightness bgL. When
// the background is lighter than step 1 the curve fades towards a uniform
// shift, reaching it at darkMaxRatio.
func transposeDark(s Scale, bgL float64, curve colour.Easing) Scale {
	bgL = clamp01(bgL)
	curve = fadeDarkEasing(curve, darkRatio(bgL, s[0].L()))

	values := make([]float64, Steps)
	for i, c := range s {
		values[i] = c.L()
	}

	shifted := transposeStart(bgL, values, curve)

	var out Scale
	for i, c := range s {
		out[i] = c.WithL(shifted[i])
	}
	return out
}

// darkRatio returns bgL / refL. A black step 1 counts as infinitely darker
// than any non-black background.
func darkRatio(bgL, refL float64) float64 {
	if refL < degenerateEpsilon {
		if bgL > 0 {
			return math.Inf(1)
		}
		return 1
	}
	return bgL / refL
}

func fadeDarkEasing(curve colour.Easing, ratioL float64) colour.Easing {
	switch {
	case ratioL <= 1:
		return curve
	case ratioL > darkMaxRatio:
		return colour.Easing{}
	default:
		meta := (ratioL - 1) * (darkMaxRatio / (darkMaxRatio - 1))
		return curve.Scale(1 - meta)
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
