package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
	"sigs.k8s.io/yaml"

	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/config"
	"github.com/jmylchreest/tincture/pkg/scale"
)

// swatchWidth is the number of cells painted per colour in table output.
const swatchWidth = 4

// document is the generate output for json and yaml.
type document struct {
	Themes []themeDocument `json:"themes"`
}

// themeDocument is one theme's set of scales.
type themeDocument struct {
	Name string `json:"name"`
	*scale.SetResult
}

// isTerminal reports whether w is a terminal that can show swatches.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// writeDocument renders doc to w in format. Table output is painted with
// swatches when swatches is set.
func writeDocument(w io.Writer, doc document, format string, swatches bool) error {
	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case config.FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	case config.FormatHex:
		return writeHex(w, doc)
	case config.FormatTable:
		return writeTable(w, doc, swatches)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// writeHex writes one line per scale, named theme.accent.field.
func writeHex(w io.Writer, doc document) error {
	var b strings.Builder
	for _, theme := range doc.Themes {
		for _, name := range theme.Names() {
			res := theme.Accents[name]
			prefix := theme.Name + "." + name + "."
			fields := []struct {
				key    string
				values []string
			}{
				{"accentScale", res.AccentScale[:]},
				{"accentScaleAlpha", res.AccentScaleAlpha[:]},
				{"accentContrast", []string{res.AccentContrast}},
				{"accentSurface", []string{res.AccentSurface}},
				{"grayScale", res.GrayScale[:]},
				{"grayScaleAlpha", res.GrayScaleAlpha[:]},
				{"graySurface", []string{res.GraySurface}},
				{"background", []string{res.Background}},
			}
			for _, f := range fields {
				fmt.Fprintf(&b, "%s%s %s\n", prefix, f.key, strings.Join(f.values, " "))
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// writeTable writes a step table per theme and accent.
func writeTable(w io.Writer, doc document, swatches bool) error {
	var b strings.Builder
	for _, theme := range doc.Themes {
		for _, name := range theme.Names() {
			res := theme.Accents[name]
			fmt.Fprintf(&b, "%s / %s (%s on %s)\n\n", theme.Name, name, theme.Appearance, res.Background)
			table, err := scaleTable(res, swatches)
			if err != nil {
				return err
			}
			b.WriteString(table.Render())
			fmt.Fprintf(&b, "\nContrast: %s  Accent surface: %s  Gray surface: %s\n\n",
				res.AccentContrast, res.AccentSurface, res.GraySurface)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func scaleTable(res *scale.Result, swatches bool) (*Table, error) {
	bg, err := colour.ParseRGB(res.Background)
	if err != nil {
		return nil, err
	}

	table := NewTable([]string{"Step", "Accent", "Accent α", "Gray", "Gray α"})
	for i := range scale.Steps {
		row := []string{strconv.Itoa(i + 1)}
		for _, hex := range []string{res.AccentScale[i], res.AccentScaleAlpha[i], res.GrayScale[i], res.GrayScaleAlpha[i]} {
			cell, err := swatchCell(hex, bg, swatches)
			if err != nil {
				return nil, err
			}
			row = append(row, cell)
		}
		table.AddRow(row)
	}
	return table, nil
}

// swatchCell returns hex, prefixed by its swatch when swatches is set.
// Translucent colours are painted composited over bg.
func swatchCell(hex string, bg colour.RGB, swatches bool) (string, error) {
	if !swatches {
		return hex, nil
	}
	c, err := colour.ParseRGBA(hex)
	if err != nil {
		return "", err
	}
	return colour.SwatchOver(c, bg, swatchWidth) + " " + hex, nil
}
