package colour

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a colour in 8-bit sRGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Unit returns the channels scaled to [0, 1].
func (rgb RGB) Unit() [3]float64 {
	return [3]float64{float64(rgb.R) / 255, float64(rgb.G) / 255, float64(rgb.B) / 255}
}

// IsBlack reports whether all channels are 0.
func (rgb RGB) IsBlack() bool { return rgb == RGB{} }

// IsWhite reports whether all channels are 255.
func (rgb RGB) IsWhite() bool { return rgb == RGB{R: 255, G: 255, B: 255} }

// RGBA represents a colour in 8-bit sRGB with straight alpha.
type RGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Hex returns the colour as "#rrggbb", dropping alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexAlpha returns the colour as "#rrggbbaa".
func (c RGBA) HexAlpha() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// CSSRgba returns the colour in rgba() notation.
func (c RGBA) CSSRgba() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.3f)", c.R, c.G, c.B, c.AlphaFloat())
}

// AlphaFloat returns alpha in [0, 1].
func (c RGBA) AlphaFloat() float64 {
	return float64(c.A) / 255.0
}

// RGB drops the alpha channel.
func (c RGBA) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// rgbFromUnit clamps unit channels into [0, 1] and rounds them to 8 bits.
func rgbFromUnit(v [3]float64) RGB {
	r, g, b := colorful.Color{R: v[0], G: v[1], B: v[2]}.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}
