package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// OKLab matrices for the CSS Color 4 D65 white point.
var (
	xyzToLMS = mat3{
		{0.8190224379967030, 0.3619062600528904, -0.1288737815209879},
		{0.0329836539323885, 0.9292868615863434, 0.0361446663506424},
		{0.0481771893596242, 0.2642395317527308, 0.6335478284694309},
	}
	lmsToOKLab = mat3{
		{0.2104542683093140, 0.7936177747023054, -0.0040720430116193},
		{1.9779985324311684, -2.4285922420485799, 0.4505937096174110},
		{0.0259040424655478, 0.7827717124575296, -0.8086757549230774},
	}

	linearSRGBToLMS = xyzToLMS.mul(linearSRGBToXYZ)
	lmsToLinearSRGB = linearSRGBToLMS.inverse()
	okLabToLMS      = lmsToOKLab.inverse()
)

func linearSRGBToOKLab(v [3]float64) (l, a, b float64) {
	lms := linearSRGBToLMS.apply(v)
	for i, ch := range lms {
		lms[i] = math.Cbrt(ch)
	}
	lab := lmsToOKLab.apply(lms)
	return lab[0], lab[1], lab[2]
}

func okLabToLinearSRGB(l, a, b float64) [3]float64 {
	lms := okLabToLMS.apply([3]float64{l, a, b})
	for i, ch := range lms {
		lms[i] = ch * ch * ch
	}
	return lmsToLinearSRGB.apply(lms)
}

// linearize applies the sRGB transfer function, mirrored for negative values.
func linearize(v float64) float64 {
	r, _, _ := colorful.Color{R: math.Abs(v)}.LinearRgb()
	return math.Copysign(r, v)
}

// delinearize is the inverse of linearize.
func delinearize(v float64) float64 {
	return math.Copysign(colorful.LinearRgb(math.Abs(v), 0, 0).R, v)
}
