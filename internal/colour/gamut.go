package colour

import "math"

// Gamut mapping constants from CSS Color 4: a just-noticeable difference in
// OKLab and the chroma search tolerance.
const (
	gamutJND     = 0.02
	gamutEpsilon = 0.0001
	gamutNoise   = 1e-9
)

// gamut is an RGB colour space with the sRGB transfer function.
type gamut struct {
	// fromLinearSRGB converts linear sRGB to the gamut's linear RGB.
	fromLinearSRGB mat3
	// toLinearSRGB converts the gamut's linear RGB to linear sRGB.
	toLinearSRGB mat3
}

var (
	srgbGamut      = gamut{fromLinearSRGB: identity3, toLinearSRGB: identity3}
	displayP3Gamut = gamut{
		fromLinearSRGB: xyzToLinearP3.mul(linearSRGBToXYZ),
		toLinearSRGB:   xyzToLinearSRGB.mul(linearP3ToXYZ),
	}
)

// encode converts OKLab to gamma-encoded, unclamped gamut coordinates.
func (g gamut) encode(l, a, b float64) [3]float64 {
	v := g.fromLinearSRGB.apply(okLabToLinearSRGB(l, a, b))
	for i, ch := range v {
		v[i] = delinearize(ch)
	}
	return v
}

// decode converts gamma-encoded gamut coordinates to OKLab.
func (g gamut) decode(v [3]float64) (l, a, b float64) {
	for i, ch := range v {
		v[i] = linearize(ch)
	}
	return linearSRGBToOKLab(g.toLinearSRGB.apply(v))
}

// contains allows for float noise at the edges, so colours decoded from
// 8-bit sRGB count as inside.
func (g gamut) contains(v [3]float64) bool {
	for _, ch := range v {
		if ch < -gamutNoise || ch > 1+gamutNoise || math.IsNaN(ch) {
			return false
		}
	}
	return true
}

func clip(v [3]float64) [3]float64 {
	for i, ch := range v {
		v[i] = math.Max(0, math.Min(1, ch))
	}
	return v
}

// fit maps c into the gamut following the CSS Color 4 algorithm: colours
// that clip within one JND are clipped, otherwise chroma is reduced by
// binary search in OKLCH until the clipped result is within one JND.
func (g gamut) fit(c Color) [3]float64 {
	if c.l >= 1 {
		return [3]float64{1, 1, 1}
	}
	if c.l <= 0 {
		return [3]float64{}
	}

	v := g.encode(c.OKLab())
	if g.contains(v) {
		return clip(v)
	}

	clipped := clip(v)
	if g.clipError(c, clipped) < gamutJND {
		return clipped
	}

	lo, hi := 0.0, c.c
	loInGamut := true
	current := c
	for hi-lo > gamutEpsilon {
		chroma := (lo + hi) / 2
		current = current.WithC(chroma)
		v = g.encode(current.OKLab())

		if loInGamut && g.contains(v) {
			lo = chroma
			continue
		}

		clipped = clip(v)
		e := g.clipError(current, clipped)
		if e < gamutJND {
			if gamutJND-e < gamutEpsilon {
				break
			}
			loInGamut = false
			lo = chroma
		} else {
			hi = chroma
		}
	}

	return clipped
}

func (g gamut) clipError(c Color, clipped [3]float64) float64 {
	l1, a1, b1 := c.OKLab()
	l2, a2, b2 := g.decode(clipped)
	return labDistance(l1, a1, b1, l2, a2, b2)
}

// InSRGB reports whether c is displayable in sRGB without mapping.
func (c Color) InSRGB() bool {
	return srgbGamut.contains(srgbGamut.encode(c.OKLab()))
}

type mat3 [3][3]float64

var identity3 = mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// D65 conversion matrices as published in CSS Color 4.
var (
	linearSRGBToXYZ = mat3{
		{0.41239079926595934, 0.357584339383878, 0.1804807884018343},
		{0.21263900587151027, 0.715168678767756, 0.07219231536073371},
		{0.01933081871559182, 0.11919477979462598, 0.9505321522496607},
	}
	xyzToLinearSRGB = mat3{
		{3.2409699419045226, -1.537383177570094, -0.4986107602930034},
		{-0.9692436362808796, 1.8759675015077202, 0.04155505740717559},
		{0.05563007969699366, -0.20397695888897652, 1.0569715142428786},
	}
	linearP3ToXYZ = mat3{
		{0.4865709486482162, 0.26566769316909306, 0.1982172852343625},
		{0.2289745640697488, 0.6917385218365064, 0.079286914093745},
		{0, 0.04511338185890264, 1.043944368900976},
	}
	xyzToLinearP3 = mat3{
		{2.4934969119414254, -0.9313836179191239, -0.40271078445071684},
		{-0.8294889695615747, 1.7626640603183463, 0.023624685841943577},
		{0.03584583024378447, -0.07617238926804182, 0.9568845240076872},
	}
)

func (m mat3) apply(v [3]float64) [3]float64 {
	var out [3]float64
	for i := range 3 {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return out
}

// inverse returns the inverse of m using cofactors. m must be invertible.
func (m mat3) inverse() mat3 {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])

	var out mat3
	for i := range 3 {
		for j := range 3 {
			a, b := (j+1)%3, (j+2)%3
			c, d := (i+1)%3, (i+2)%3
			out[i][j] = (m[a][c]*m[b][d] - m[a][d]*m[b][c]) / det
		}
	}
	return out
}

func (m mat3) mul(n mat3) mat3 {
	var out mat3
	for i := range 3 {
		for j := range 3 {
			for k := range 3 {
				out[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return out
}
