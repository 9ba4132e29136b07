package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmylchreest/tincture/internal/colour"
)

func TestTextColorOutOfGamutSolid(t *testing.T) {
	// A vivid yellow well outside sRGB; white text is not legible on it.
	yellow := colour.OKLCH(0.8586, 0.2755, 100.95)
	assert.False(t, yellow.InSRGB())

	text := textColor(yellow)
	assert.NotEqual(t, white, text)
	assert.InDelta(t, 0.25, text.L(), 1e-9)
	assert.InDelta(t, 100.95, text.H(), 1e-9)
}

func TestTextColorDarkSolid(t *testing.T) {
	assert.Equal(t, white, textColor(colour.MustParseHex("#3d63dd")))
}

func TestHoverColorUsesAccentSteps(t *testing.T) {
	var accent Scale
	for i := range accent {
		accent[i] = colour.OKLCH(0.2+float64(i)*0.06, 0.12, 30)
	}

	// The hovered colour is neutral, so a gray step at the same spot would be
	// an exact match. Only accent steps may donate chroma and hue.
	solid := colour.Achromatic(0.6, 0)
	hover := hoverColor(solid, accent)

	assert.True(t, hover.HasHue())
	assert.InDelta(t, 30, hover.H(), 1e-9)
	assert.InDelta(t, 0.12, hover.C(), 1e-9)
	assert.InDelta(t, 0.6-0.03/0.7, hover.L(), 1e-9)
}

func TestHoverColorDarkSolidGetsLighter(t *testing.T) {
	var accent Scale
	for i := range accent {
		accent[i] = colour.OKLCH(0.1+float64(i)*0.07, 0.1, 250)
	}

	solid := colour.OKLCH(0.3, 0.1, 250)
	hover := hoverColor(solid, accent)
	assert.InDelta(t, 0.3+0.03/0.4, hover.L(), 1e-9)
}
