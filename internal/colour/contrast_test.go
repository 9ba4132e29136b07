package colour

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContrastRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b RGB
		want float64
	}{
		{"black on white", RGB{}, RGB{255, 255, 255}, 21},
		{"order independent", RGB{255, 255, 255}, RGB{}, 21},
		{"same colour", RGB{61, 99, 221}, RGB{61, 99, 221}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ContrastRatio(tt.a, tt.b), 0.01)
		})
	}
}

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 0, Luminance(RGB{}), 1e-9)
	assert.InDelta(t, 1, Luminance(RGB{255, 255, 255}), 1e-9)
}

func TestContrastAPCA(t *testing.T) {
	black := MustParseHex("#000000")
	white := MustParseHex("#ffffff")

	assert.InDelta(t, 106.04, Contrast(black, white), 0.1)
	assert.InDelta(t, -107.88, Contrast(white, black), 0.1)
	assert.Zero(t, Contrast(white, white))

	mid := MustParseHex("#3d63dd")
	assert.Greater(t, Contrast(black, white), Contrast(mid, white))
}

func TestContrastAPCAOutOfGamut(t *testing.T) {
	white := MustParseHex("#ffffff")

	// The blue channel of this yellow is negative in sRGB.
	yellow := OKLCH(0.8586, 0.2755, 100.95)
	col := yellow.Colorful()
	assert.InDelta(t, -0.4827, col.B, 1e-3)

	lc := Contrast(yellow, white)
	assert.False(t, math.IsNaN(lc))
	assert.InDelta(t, 24.07, lc, 0.1)

	// Nothing sums below black, however far out of gamut.
	assert.False(t, math.IsNaN(Contrast(OKLCH(0.05, 0.4, 264), white)))
}
