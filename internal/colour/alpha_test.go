package colour

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	white = RGB{R: 255, G: 255, B: 255}
	black = RGB{}
)

func TestAlphaRGBAEndpoints(t *testing.T) {
	tests := []struct {
		name   string
		target RGB
		bg     RGB
		want   string
	}{
		{"black over white", black, white, "#000000ff"},
		{"white over white", white, white, "#00000000"},
		{"white over black", white, black, "#ffffffff"},
		{"gray over white", RGB{R: 128, G: 128, B: 128}, white, "#0000007f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AlphaRGBA(tt.target, tt.bg)
			assert.Equal(t, tt.want, got.HexAlpha())
			assert.Equal(t, tt.target, Blend(got, tt.bg))
		})
	}
}

func TestAlphaRGBAReproducesTargetOverWhite(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				target := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				got := Blend(AlphaRGBA(target, white), white)
				if got != target {
					t.Fatalf("%s over white composites to %s", target.Hex(), got.Hex())
				}
			}
		}
	}
}

func TestAlphaRGBAReproducesTargetOverDark(t *testing.T) {
	bg := RGB{R: 17, G: 17, B: 17}
	for _, hex := range []string{"#191919", "#222222", "#2a2a2a", "#6e6e6e", "#eeeeee", "#1d2e62", "#3d63dd", "#9eb1ff"} {
		target, err := ParseRGB(hex)
		assert.NoError(t, err)

		got := Blend(AlphaRGBA(target, bg), bg)
		assert.InDelta(t, float64(target.R), float64(got.R), 1, hex)
		assert.InDelta(t, float64(target.G), float64(got.G), 1, hex)
		assert.InDelta(t, float64(target.B), float64(got.B), 1, hex)
	}
}

func TestAlphaColorZeroDenominator(t *testing.T) {
	// The red channel already sits at the white endpoint.
	got := AlphaColor([3]float64{1, 128.0 / 255, 0}, [3]float64{1, 0, 0}, PrecisionSRGB, PrecisionSRGB)
	for _, v := range got {
		assert.False(t, math.IsNaN(v))
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}

	fg := rgbaFromUnit(got)
	assert.Equal(t, RGB{R: 255, G: 128, B: 0}, Blend(fg, RGB{R: 255}))
}

func TestAlphaRGBAAt(t *testing.T) {
	target := RGB{R: 0x3d, G: 0x63, B: 0xdd}

	got := AlphaRGBAAt(target, white, 0.8)
	assert.Equal(t, uint8(0xcc), got.A)

	blended := Blend(got, white)
	assert.InDelta(t, float64(target.R), float64(blended.R), 1)
	assert.InDelta(t, float64(target.G), float64(blended.G), 1)
	assert.InDelta(t, float64(target.B), float64(blended.B), 1)
}

func TestAlphaDisplayP3(t *testing.T) {
	bg := Achromatic(1, 0)

	same := AlphaDisplayP3(bg, bg)
	assert.InDelta(t, 0, same[3], 1e-9)

	accent := MustParseHex("#3d63dd")
	got := AlphaDisplayP3(accent, bg)
	for _, v := range got {
		assert.False(t, math.IsNaN(v))
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
	// Alpha lands on the 1/1000 grid.
	assert.InDelta(t, math.Round(got[3]*1000), got[3]*1000, 1e-9)

	pinned := AlphaDisplayP3At(accent, bg, 0.5)
	assert.InDelta(t, 0.5, pinned[3], 1e-9)
}
