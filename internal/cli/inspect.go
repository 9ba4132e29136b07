package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/colour"
)

var (
	inspectWhite = colour.Achromatic(1, 0)
	inspectBlack = colour.Achromatic(0, 0)
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <colour>...",
		Short: "Show a colour in every supported notation",
		Long: `Show one or more hex colours as RGB, HSL, OKLCH and Display P3, with their
APCA and WCAG contrast against white and black.

Examples:
  tincture inspect "#3d63dd"
  tincture inspect "#3d63dd" "#ffe629"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return writeInspect(out, args, isTerminal(out))
		},
	}
}

// writeInspect writes a table with one column per colour.
func writeInspect(w io.Writer, args []string, swatches bool) error {
	colours := make([]colour.Color, len(args))
	for i, arg := range args {
		c, err := colour.ParseHex(arg)
		if err != nil {
			return err
		}
		colours[i] = c
	}

	headers := []string{""}
	for _, c := range colours {
		headers = append(headers, c.Hex())
	}
	table := NewTable(headers)

	addRow := func(label string, cell func(c colour.Color) string) {
		row := []string{label}
		for _, c := range colours {
			row = append(row, cell(c))
		}
		table.AddRow(row)
	}

	if swatches {
		addRow("", func(c colour.Color) string { return colour.Swatch(c.RGB(), 8) })
	}
	addRow("RGB", func(c colour.Color) string { return c.RGB().String() })
	addRow("HSL", func(c colour.Color) string {
		h, s, l := c.HSL()
		return fmt.Sprintf("hsl(%.0f %.0f%% %.0f%%)", h, s*100, l*100)
	})
	addRow("OKLCH", func(c colour.Color) string { return c.String() })
	addRow("Display P3", func(c colour.Color) string { return colour.DisplayP3String(c.DisplayP3()) })
	addRow("APCA on white", func(c colour.Color) string { return formatLc(colour.Contrast(c, inspectWhite)) })
	addRow("APCA on black", func(c colour.Color) string { return formatLc(colour.Contrast(c, inspectBlack)) })
	addRow("WCAG on white", func(c colour.Color) string {
		return fmt.Sprintf("%.2f:1", colour.ContrastRatio(c.RGB(), inspectWhite.RGB()))
	})
	addRow("WCAG on black", func(c colour.Color) string {
		return fmt.Sprintf("%.2f:1", colour.ContrastRatio(c.RGB(), inspectBlack.RGB()))
	})

	_, err := io.WriteString(w, table.Render())
	return err
}

// formatLc formats an APCA lightness contrast, dropping the sign of zero.
func formatLc(lc float64) string {
	lc = math.Round(lc*10) / 10
	if lc == 0 {
		lc = 0
	}
	return fmt.Sprintf("Lc %.1f", lc)
}
