// Package scale generates 12-step perceptual colour scales from an accent, a
// gray and a background colour.
//
// Each input is matched against a library of reference scales, the two
// nearest scales are blended and retinted to the input, and the lightness
// progression is re-anchored on the background. Every opaque scale comes
// with an alpha twin that reproduces it when composited over the background.
package scale

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tincture/internal/colour"
)

// Surface alphas for the accent surface colour.
const (
	lightSurfaceAlpha = 0.8
	darkSurfaceAlpha  = 0.5
)

// Request is the input to a generation.
type Request struct {
	Appearance Appearance `json:"appearance" yaml:"appearance"`
	Accent     string     `json:"accent" yaml:"accent"`
	Gray       string     `json:"gray" yaml:"gray"`
	Background string     `json:"background" yaml:"background"`
}

// Result holds the generated scales. All hex codes are lowercase; opaque
// colours are "#rrggbb" and translucent ones "#rrggbbaa".
type Result struct {
	AccentScale      [Steps]string `json:"accentScale"`
	AccentScaleAlpha [Steps]string `json:"accentScaleAlpha"`
	AccentContrast   string        `json:"accentContrast"`
	AccentSurface    string        `json:"accentSurface"`

	GrayScale      [Steps]string `json:"grayScale"`
	GrayScaleAlpha [Steps]string `json:"grayScaleAlpha"`
	GraySurface    string        `json:"graySurface"`

	// Wide gamut renditions: opaque steps in oklch(), translucent ones in
	// color(display-p3).
	AccentScaleWideGamut      [Steps]string `json:"accentScaleWideGamut"`
	AccentScaleAlphaWideGamut [Steps]string `json:"accentScaleAlphaWideGamut"`
	AccentContrastWideGamut   string        `json:"accentContrastWideGamut"`
	AccentSurfaceWideGamut    string        `json:"accentSurfaceWideGamut"`
	GrayScaleWideGamut        [Steps]string `json:"grayScaleWideGamut"`
	GrayScaleAlphaWideGamut   [Steps]string `json:"grayScaleAlphaWideGamut"`
	GraySurfaceWideGamut      string        `json:"graySurfaceWideGamut"`

	Background string `json:"background"`
}

// FieldError reports which request field was rejected.
type FieldError struct {
	Field string
	Value string
	Err   error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Generator produces scales. It holds no mutable state and is safe for
// concurrent use.
type Generator struct {
	logger hclog.Logger
	light  colour.Easing
	dark   colour.Easing
}

// Option configures a Generator.
type Option func(*Generator) error

// WithLogger sets the logger used to trace each generation stage.
func WithLogger(logger hclog.Logger) Option {
	return func(g *Generator) error {
		if logger == nil {
			logger = hclog.NewNullLogger()
		}
		g.logger = logger
		return nil
	}
}

// WithEasing overrides the lightness easing curves.
func WithEasing(light, dark colour.Easing) Option {
	return func(g *Generator) error {
		if err := light.Validate(); err != nil {
			return fmt.Errorf("light easing: %w", err)
		}
		if err := dark.Validate(); err != nil {
			return fmt.Errorf("dark easing: %w", err)
		}
		g.light, g.dark = light, dark
		return nil
	}
}

// NewGenerator creates a Generator with the default easing curves and no
// logging.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		logger: hclog.NewNullLogger(),
		light:  LightEasing,
		dark:   DarkEasing,
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

var defaultGenerator = &Generator{
	logger: hclog.NewNullLogger(),
	light:  LightEasing,
	dark:   DarkEasing,
}

// Generate runs req with the default Generator.
func Generate(req Request) (*Result, error) {
	return defaultGenerator.Generate(req)
}

// Generate builds the accent and gray scales for req.
func (g *Generator) Generate(req Request) (*Result, error) {
	if req.Appearance != Light && req.Appearance != Dark {
		return nil, &FieldError{Field: "appearance", Value: req.Appearance.String(), Err: ErrInvalidAppearance}
	}

	accent, err := parseField("accent", req.Accent)
	if err != nil {
		return nil, err
	}
	gray, err := parseField("gray", req.Gray)
	if err != nil {
		return nil, err
	}
	bg, err := parseField("background", req.Background)
	if err != nil {
		return nil, err
	}

	log := g.logger.With("appearance", req.Appearance.String())
	palettes := PalettesFor(req.Appearance)

	grayScale := g.scaleFor(gray, palettes.Gray, bg, req.Appearance, log.With("scale", "gray"))

	accentLog := log.With("scale", "accent")
	var accentScale Scale
	if rgb := accent.RGB(); rgb.IsBlack() || rgb.IsWhite() {
		accentLog.Debug("accent has no hue, using gray scale", "accent", rgb.Hex())
		accentScale = grayScale
	} else {
		accentScale = g.scaleFor(accent, palettes.All, bg, req.Appearance, accentLog)
	}

	accentScale, contrast := postProcess(accentScale, accent, accentLog)

	res := &Result{
		AccentContrast:          contrast.Hex(),
		AccentContrastWideGamut: contrast.String(),
		Background:              bg.Hex(),
	}
	res.AccentScale, res.AccentScaleAlpha, res.AccentScaleWideGamut, res.AccentScaleAlphaWideGamut = renderScale(accentScale, bg)
	res.GrayScale, res.GrayScaleAlpha, res.GrayScaleWideGamut, res.GrayScaleAlphaWideGamut = renderScale(grayScale, bg)

	surfaceAlpha := lightSurfaceAlpha
	res.GraySurface = "#ffffffcc"
	res.GraySurfaceWideGamut = colour.DisplayP3AlphaString([4]float64{1, 1, 1, 0.8})
	if req.Appearance == Dark {
		surfaceAlpha = darkSurfaceAlpha
		res.GraySurface = "#0000000d"
		res.GraySurfaceWideGamut = colour.DisplayP3AlphaString([4]float64{0, 0, 0, 0.05})
	}
	res.AccentSurface = colour.AlphaRGBAAt(accentScale[1].RGB(), bg.RGB(), surfaceAlpha).HexAlpha()
	res.AccentSurfaceWideGamut = colour.DisplayP3AlphaString(colour.AlphaDisplayP3At(accentScale[1], bg, surfaceAlpha))

	log.Debug("generated scales", "accent", req.Accent, "gray", req.Gray, "background", res.Background,
		"solid", res.AccentScale[stepSolid])

	return res, nil
}

// scaleFor matches, retints and transposes one scale.
func (g *Generator) scaleFor(src colour.Color, refs []NamedScale, bg colour.Color, a Appearance, log hclog.Logger) Scale {
	s := retint(src, matchScale(src, refs, log), log)

	if a == Light {
		s = transposeLight(s, bg.L(), g.light)
	} else {
		s = transposeDark(s, bg.L(), g.dark)
	}

	if log.IsTrace() {
		hex := s.Hex()
		log.Trace("transposed scale", "background_l", bg.L(), "steps", hex[:])
	}
	return s
}

// renderScale formats s and its alpha twin over bg.
func renderScale(s Scale, bg colour.Color) (opaque, alpha, wide, wideAlpha [Steps]string) {
	bgRGB := bg.RGB()
	for i, c := range s {
		rgb := c.RGB()
		opaque[i] = rgb.Hex()
		alpha[i] = colour.AlphaRGBA(rgb, bgRGB).HexAlpha()
		wide[i] = c.String()
		wideAlpha[i] = colour.DisplayP3AlphaString(colour.AlphaDisplayP3(c, bg))
	}
	return opaque, alpha, wide, wideAlpha
}

func parseField(field, value string) (colour.Color, error) {
	c, err := colour.ParseHex(value)
	if err != nil {
		return colour.Color{}, &FieldError{Field: field, Value: value, Err: err}
	}
	return c, nil
}
