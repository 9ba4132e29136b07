package colour

// FromDisplayP3 converts gamma-encoded Display P3 coordinates in [0, 1].
func FromDisplayP3(r, g, b float64) Color {
	return OKLab(displayP3Gamut.decode([3]float64{r, g, b}))
}

// DisplayP3 returns c gamut mapped into Display P3, as unit coordinates.
func (c Color) DisplayP3() [3]float64 {
	return displayP3Gamut.fit(c)
}

// SRGB returns c gamut mapped into sRGB, as unit coordinates.
func (c Color) SRGB() [3]float64 {
	return srgbGamut.fit(c)
}
