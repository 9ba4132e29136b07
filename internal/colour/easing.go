package colour

import (
	"fmt"
	"math"
)

// Easing holds the control points (X1, Y1) and (X2, Y2) of a cubic Bezier
// timing function anchored at (0, 0) and (1, 1), as in CSS
// cubic-bezier(). X values must lie in [0, 1]; Y values are unbounded.
type Easing struct {
	X1, Y1, X2, Y2 float64
}

// Cubic Bezier solver parameters.
const (
	newtonIterations         = 4
	newtonMinSlope           = 0.001
	subdivisionPrecision     = 0.0000001
	subdivisionMaxIterations = 10
	splineTableSize          = 11
	sampleStepSize           = 1.0 / (splineTableSize - 1.0)
)

// Validate checks that both X control points are within [0, 1].
func (e Easing) Validate() error {
	if e.X1 < 0 || e.X1 > 1 || e.X2 < 0 || e.X2 > 1 {
		return fmt.Errorf("easing x values must be in [0, 1], got x1=%g x2=%g", e.X1, e.X2)
	}
	return nil
}

// Scale returns the easing with every control parameter multiplied by f,
// floored at zero.
func (e Easing) Scale(f float64) Easing {
	return Easing{
		X1: math.Max(0, e.X1*f),
		Y1: math.Max(0, e.Y1*f),
		X2: math.Max(0, e.X2*f),
		Y2: math.Max(0, e.Y2*f),
	}
}

// Func builds the easing function mapping progress x in [0, 1] to eased
// progress. Func(e)(0) == 0 and Func(e)(1) == 1 for every valid curve.
// X control points outside [0, 1] are clamped.
func (e Easing) Func() func(float64) float64 {
	x1 := math.Max(0, math.Min(1, e.X1))
	x2 := math.Max(0, math.Min(1, e.X2))
	y1, y2 := e.Y1, e.Y2

	if x1 == y1 && x2 == y2 {
		return func(x float64) float64 { return x }
	}

	// Samples are stored at single precision, as browsers do.
	var samples [splineTableSize]float32
	for i := range samples {
		samples[i] = float32(calcBezier(float64(i)*sampleStepSize, x1, x2))
	}

	tForX := func(x float64) float64 {
		intervalStart := 0.0
		current := 1
		last := splineTableSize - 1
		for ; current != last && float64(samples[current]) <= x; current++ {
			intervalStart += sampleStepSize
		}
		current--

		lo, hi := float64(samples[current]), float64(samples[current+1])
		dist := (x - lo) / (hi - lo)
		guess := intervalStart + dist*sampleStepSize

		slope := bezierSlope(guess, x1, x2)
		switch {
		case slope >= newtonMinSlope:
			return newtonRaphson(x, guess, x1, x2)
		case slope == 0:
			return guess
		default:
			return binarySubdivide(x, intervalStart, intervalStart+sampleStepSize, x1, x2)
		}
	}

	return func(x float64) float64 {
		if x == 0 || x == 1 {
			return x
		}
		return calcBezier(tForX(x), y1, y2)
	}
}

func bezierA(a1, a2 float64) float64 { return 1 - 3*a2 + 3*a1 }
func bezierB(a1, a2 float64) float64 { return 3*a2 - 6*a1 }
func bezierC(a1 float64) float64     { return 3 * a1 }

// calcBezier returns x(t) or y(t) for control values a1 and a2.
func calcBezier(t, a1, a2 float64) float64 {
	return ((bezierA(a1, a2)*t+bezierB(a1, a2))*t + bezierC(a1)) * t
}

// bezierSlope returns dx/dt or dy/dt.
func bezierSlope(t, a1, a2 float64) float64 {
	return 3*bezierA(a1, a2)*t*t + 2*bezierB(a1, a2)*t + bezierC(a1)
}

func binarySubdivide(x, a, b, x1, x2 float64) float64 {
	var currentX, currentT float64
	for i := 0; ; {
		currentT = a + (b-a)/2
		currentX = calcBezier(currentT, x1, x2) - x
		if currentX > 0 {
			b = currentT
		} else {
			a = currentT
		}
		i++
		if math.Abs(currentX) <= subdivisionPrecision || i >= subdivisionMaxIterations {
			break
		}
	}
	return currentT
}

func newtonRaphson(x, guess, x1, x2 float64) float64 {
	for range newtonIterations {
		slope := bezierSlope(guess, x1, x2)
		if slope == 0 {
			return guess
		}
		guess -= (calcBezier(guess, x1, x2) - x) / slope
	}
	return guess
}
