package colour

import (
	"fmt"
	"strings"
)

// Truecolour terminal escapes.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	defaultWidth = 8
)

func ansiBg(c RGB) string { return fmt.Sprintf("%s%d;%d;%dm", ansiBgPrefix, c.R, c.G, c.B) }
func ansiFg(c RGB) string { return fmt.Sprintf("%s%d;%d;%dm", ansiFgPrefix, c.R, c.G, c.B) }

// Swatch returns a solid block of width cells painted in c.
func Swatch(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return ansiBg(c) + strings.Repeat(" ", width) + ansiReset
}

// SwatchWithText paints c as a block with text centred on it. The text is
// black or white, whichever has the higher WCAG contrast ratio.
func SwatchWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := RGB{R: 255, G: 255, B: 255}
	if ContrastRatio(c, RGB{}) > ContrastRatio(c, fg) {
		fg = RGB{}
	}

	if len(text) > width {
		text = text[:width]
	} else if len(text) < width {
		pad := (width - len(text)) / 2
		text = strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-len(text)-pad)
	}

	return ansiBg(c) + ansiFg(fg) + text + ansiReset
}

// SwatchOver paints a translucent colour as it appears composited over bg.
func SwatchOver(c RGBA, bg RGB, width int) string {
	return Swatch(Blend(c, bg), width)
}

// FormatWithLabel renders a swatch followed by a label and the hex code.
func FormatWithLabel(rgb RGB, label string, width int) string {
	return fmt.Sprintf("%s  %-20s %s", Swatch(rgb, width), label, rgb.Hex())
}

// Colourise wraps text in a truecolour foreground escape.
func Colourise(rgb RGB, text string) string {
	return ansiFg(rgb) + text + ansiReset
}
