package scale

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/tincture/internal/colour"
)

var (
	opaqueHex = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	alphaHex  = regexp.MustCompile(`^#[0-9a-f]{8}$`)
)

func mustGenerate(t *testing.T, req Request) *Result {
	t.Helper()
	res, err := Generate(req)
	require.NoError(t, err)
	return res
}

func TestGenerateSolidStepKeepsSource(t *testing.T) {
	res := mustGenerate(t, Request{Appearance: Light, Accent: "#3D63DD", Gray: "#888888", Background: "#ffffff"})
	assert.Equal(t, "#3d63dd", res.AccentScale[8])
	assert.Equal(t, "#ffffff", res.AccentContrast)
	assert.Equal(t, "#ffffff", res.Background)

	for _, req := range []Request{
		{Appearance: Dark, Accent: "#00db02", Gray: "#8b8d98", Background: "#111111"},
		{Appearance: Light, Accent: "#00f404", Gray: "#8b8d98", Background: "#ffffff"},
		{Appearance: Dark, Accent: "#3d63dd", Gray: "#8b8d98", Background: "#0d1117"},
	} {
		res := mustGenerate(t, req)
		assert.Equal(t, req.Accent, res.AccentScale[8], "%s on %s", req.Accent, req.Background)
	}
}

func TestGenerateDarkTextOnLightSolid(t *testing.T) {
	res := mustGenerate(t, Request{Appearance: Light, Accent: "#ffe629", Gray: "#8b8d98", Background: "#ffffff"})
	assert.NotEqual(t, "#ffffff", res.AccentContrast)

	text := colour.MustParseHex(res.AccentContrast)
	assert.InDelta(t, 0.25, text.L(), 0.01)
}

func TestGenerateWellFormed(t *testing.T) {
	requests := []Request{
		{Appearance: Light, Accent: "#3d63dd", Gray: "#8b8d98", Background: "#ffffff"},
		{Appearance: Dark, Accent: "#3d63dd", Gray: "#8b8d98", Background: "#111111"},
		{Appearance: Light, Accent: "#e5484d", Gray: "#8d8d8d", Background: "#fcfcfd"},
		{Appearance: Dark, Accent: "#30a46c", Gray: "#6f6d78", Background: "#18191b"},
		{Appearance: Dark, Accent: "#ffc53d", Gray: "#888", Background: "#000"},
		{Appearance: Light, Accent: "#7b61ff", Gray: "#999999", Background: "#f0f0f0"},
	}

	for _, req := range requests {
		t.Run(req.Appearance.String()+req.Accent, func(t *testing.T) {
			res := mustGenerate(t, req)

			for _, scale := range [][Steps]string{res.AccentScale, res.GrayScale} {
				for _, hex := range scale {
					assert.Regexp(t, opaqueHex, hex)
				}
			}
			for _, scale := range [][Steps]string{res.AccentScaleAlpha, res.GrayScaleAlpha} {
				for _, hex := range scale {
					assert.Regexp(t, alphaHex, hex)
				}
			}
			for _, scale := range [][Steps]string{res.AccentScaleWideGamut, res.GrayScaleWideGamut} {
				for _, s := range scale {
					assert.True(t, strings.HasPrefix(s, "oklch("), s)
					assert.NotContains(t, s, "NaN")
				}
			}
			for _, scale := range [][Steps]string{res.AccentScaleAlphaWideGamut, res.GrayScaleAlphaWideGamut} {
				for _, s := range scale {
					assert.True(t, strings.HasPrefix(s, "color(display-p3 "), s)
					assert.NotContains(t, s, "NaN")
				}
			}

			assert.Regexp(t, opaqueHex, res.AccentContrast)
			assert.Regexp(t, alphaHex, res.AccentSurface)
			assert.Regexp(t, alphaHex, res.GraySurface)
			assert.Regexp(t, opaqueHex, res.Background)
		})
	}
}

func TestGenerateAlphaReproducesOpaque(t *testing.T) {
	res := mustGenerate(t, Request{Appearance: Light, Accent: "#3d63dd", Gray: "#8b8d98", Background: "#ffffff"})
	bg := colour.RGB{R: 255, G: 255, B: 255}

	check := func(opaque, alpha [Steps]string) {
		for i := range opaque {
			fg, err := colour.ParseRGBA(alpha[i])
			require.NoError(t, err)
			assert.Equal(t, opaque[i], colour.Blend(fg, bg).Hex(), "step %d", i+1)
		}
	}
	check(res.AccentScale, res.AccentScaleAlpha)
	check(res.GrayScale, res.GrayScaleAlpha)
}

func TestGenerateAlphaDark(t *testing.T) {
	res := mustGenerate(t, Request{Appearance: Dark, Accent: "#3d63dd", Gray: "#8b8d98", Background: "#111111"})
	bg := colour.RGB{R: 17, G: 17, B: 17}

	// Step 1 sits on the background and may dip below it in one channel,
	// which no translucent white can reproduce.
	for i := 1; i < Steps; i++ {
		fg, err := colour.ParseRGBA(res.GrayScaleAlpha[i])
		require.NoError(t, err)
		want, err := colour.ParseRGB(res.GrayScale[i])
		require.NoError(t, err)

		got := colour.Blend(fg, bg)
		assert.InDelta(t, float64(want.R), float64(got.R), 1, "step %d", i+1)
		assert.InDelta(t, float64(want.G), float64(got.G), 1, "step %d", i+1)
		assert.InDelta(t, float64(want.B), float64(got.B), 1, "step %d", i+1)
	}
}

func TestGenerateDegenerateAccent(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{"white on white", Request{Appearance: Light, Accent: "#ffffff", Gray: "#888888", Background: "#ffffff"}},
		{"black on dark", Request{Appearance: Dark, Accent: "#000000", Gray: "#888888", Background: "#111111"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := mustGenerate(t, tt.req)
			for i := range res.AccentScale {
				// Step 10 is always re-derived from step 9.
				if i == stepSolidHover {
					continue
				}
				assert.Equal(t, res.GrayScale[i], res.AccentScale[i], "step %d", i+1)
			}
		})
	}
}

func TestGenerateIdempotent(t *testing.T) {
	req := Request{Appearance: Dark, Accent: "#e54666", Gray: "#8b8d98", Background: "#111113"}
	first := mustGenerate(t, req)
	second := mustGenerate(t, req)
	assert.Equal(t, first, second)
}

func TestGenerateTextStepsChromaCapped(t *testing.T) {
	res := mustGenerate(t, Request{Appearance: Light, Accent: "#d6409f", Gray: "#8b8d98", Background: "#ffffff"})

	solid := colour.MustParseHex(res.AccentScale[8])
	border := colour.MustParseHex(res.AccentScale[7])
	limit := max(solid.C(), border.C())
	for _, i := range []int{10, 11} {
		// Re-parsing the hex loses a little precision.
		assert.LessOrEqual(t, colour.MustParseHex(res.AccentScale[i]).C(), limit+0.01, "step %d", i+1)
	}
}

func TestGenerateInvalidInput(t *testing.T) {
	valid := Request{Appearance: Light, Accent: "#3d63dd", Gray: "#8b8d98", Background: "#ffffff"}

	tests := []struct {
		name     string
		mutate   func(*Request)
		field    string
		sentinel error
	}{
		{"accent", func(r *Request) { r.Accent = "blue" }, "accent", colour.ErrInvalidColorFormat},
		{"gray", func(r *Request) { r.Gray = "#12345" }, "gray", colour.ErrInvalidColorFormat},
		{"background", func(r *Request) { r.Background = "" }, "background", colour.ErrInvalidColorFormat},
		{"appearance", func(r *Request) { r.Appearance = Appearance(7) }, "appearance", ErrInvalidAppearance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			res, err := Generate(req)
			assert.Nil(t, res)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestGenerateSurfaces(t *testing.T) {
	light := mustGenerate(t, Request{Appearance: Light, Accent: "#3d63dd", Gray: "#8b8d98", Background: "#ffffff"})
	assert.Equal(t, "#ffffffcc", light.GraySurface)
	assert.True(t, strings.HasSuffix(light.AccentSurface, "cc"), light.AccentSurface)
	assert.Equal(t, "color(display-p3 1 1 1 / 0.8)", light.GraySurfaceWideGamut)

	dark := mustGenerate(t, Request{Appearance: Dark, Accent: "#3d63dd", Gray: "#8b8d98", Background: "#111111"})
	assert.Equal(t, "#0000000d", dark.GraySurface)
	assert.True(t, strings.HasSuffix(dark.AccentSurface, "80"), dark.AccentSurface)
	assert.True(t, strings.HasSuffix(dark.AccentSurfaceWideGamut, "/ 0.5)"), dark.AccentSurfaceWideGamut)
}

func TestGeneratorTracesStages(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Name: "scale", Output: &buf, Level: hclog.Trace})

	g, err := NewGenerator(WithLogger(logger))
	require.NoError(t, err)

	_, err = g.Generate(Request{Appearance: Light, Accent: "#3d63dd", Gray: "#8b8d98", Background: "#ffffff"})
	require.NoError(t, err)

	out := buf.String()
	for _, msg := range []string{"matched reference scales", "retinting scale", "transposed scale", "selected solid step", "derived hover step", "generated scales"} {
		assert.Contains(t, out, msg)
	}
}

func TestNewGeneratorEasing(t *testing.T) {
	_, err := NewGenerator(WithEasing(colour.Easing{X1: 2}, DarkEasing))
	assert.Error(t, err)

	g, err := NewGenerator(WithEasing(colour.Easing{X1: 0, Y1: 0, X2: 1, Y2: 1}, DarkEasing), WithLogger(nil))
	require.NoError(t, err)

	req := Request{Appearance: Light, Accent: "#3d63dd", Gray: "#8b8d98", Background: "#f0f0f0"}
	linear, err := g.Generate(req)
	require.NoError(t, err)
	standard := mustGenerate(t, req)
	assert.NotEqual(t, standard.GrayScale, linear.GrayScale)
}
