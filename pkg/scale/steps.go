package scale

import (
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tincture/internal/colour"
)

// Step indices, zero based.
const (
	stepBorder      = 7  // step 8
	stepSolid       = 8  // step 9
	stepSolidHover  = 9  // step 10
	stepTextLow     = 10 // step 11
	stepTextHigh    = 11 // step 12
	solidMinDelta   = 25
	textMinContrast = 40
)

var white = colour.Achromatic(1, 0)

// solidColors picks step 9 and its text colour. The source is used unless it
// sits too close to step 1, as with white on white.
func solidColors(s Scale, src colour.Color) (solid, text colour.Color, fromSource bool) {
	if colour.Distance(src, s[0])*100 < solidMinDelta {
		return s[stepSolid], textColor(s[stepSolid]), false
	}
	return src, textColor(src), true
}

// textColor returns white, or a dark shade of bg when white text would not be
// legible on it.
func textColor(bg colour.Color) colour.Color {
	// APCA here measures bg against white, as a readability proxy.
	if math.Abs(colour.Contrast(bg, white)) < textMinContrast {
		dark := colour.Achromatic(0.25, math.Max(0.08*bg.C(), 0.04))
		return dark.WithHueOf(bg)
	}
	return white
}

// hoverColor derives step 10 from step 9, then takes chroma and hue from the
// nearest step of the accent scale.
func hoverColor(solid colour.Color, accent Scale) colour.Color {
	l, c := solid.L(), solid.C()

	var newL, newC float64
	if l > 0.4 {
		newL = l - 0.03/(l+0.1)
	} else {
		newL = l + 0.03/(l+0.1)
	}
	newC = c
	if l > 0.4 && solid.HasHue() {
		newC = c * 0.93
	}

	hover := solid.WithL(newL).WithC(newC)

	donor := hover
	minDist := math.Inf(1)
	for _, d := range accent {
		if dist := colour.Distance(hover, d); dist < minDist {
			minDist = dist
			donor = d
		}
	}

	return hover.WithC(donor.C()).WithHueOf(donor)
}

// postProcess fixes up steps 9 to 12 of an accent scale. It returns the new
// scale and the text colour for step 9.
func postProcess(accent Scale, src colour.Color, log hclog.Logger) (Scale, colour.Color) {
	solid, text, fromSource := solidColors(accent, src)
	log.Trace("selected solid step", "from_source", fromSource, "solid", solid.String(), "text", text.String())

	accent[stepSolid] = solid
	accent[stepSolidHover] = hoverColor(solid, accent)
	log.Trace("derived hover step", "hover", accent[stepSolidHover].String())

	maxC := math.Max(accent[stepSolid].C(), accent[stepBorder].C())
	for _, i := range []int{stepTextLow, stepTextHigh} {
		accent[i] = accent[i].WithC(math.Min(maxC, accent[i].C()))
	}

	return accent, text
}
