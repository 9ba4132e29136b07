package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/config"
	"github.com/jmylchreest/tincture/pkg/scale"
)

type libraryOptions struct {
	appearance scale.Appearance
	grayOnly   bool
	format     string
}

// libraryEntry is one reference scale as written to json and yaml.
type libraryEntry struct {
	Name  string              `json:"name"`
	Gray  bool                `json:"gray"`
	Steps [scale.Steps]string `json:"steps"`
}

func newLibraryCmd() *cobra.Command {
	opts := &libraryOptions{}

	cmd := &cobra.Command{
		Use:   "library",
		Short: "List the reference scales",
		Long: `List the reference scales that generated scales are matched against.

Examples:
  tincture library
  tincture library -a dark --gray -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return writeLibrary(out, opts.entries(), opts.format, isTerminal(out))
		},
	}

	cmd.Flags().VarP(&opts.appearance, "appearance", "a", "library appearance (light, dark)")
	cmd.Flags().BoolVar(&opts.grayOnly, "gray", false, "only list the gray scales")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatTable, "output format (json, yaml, hex, table)")

	return cmd
}

func (o *libraryOptions) entries() []libraryEntry {
	palettes := scale.PalettesFor(o.appearance)
	scales := palettes.All
	if o.grayOnly {
		scales = palettes.Gray
	}

	entries := make([]libraryEntry, len(scales))
	for i, ns := range scales {
		entries[i] = libraryEntry{
			Name:  ns.Name,
			Gray:  scale.IsGrayFamily(ns.Name),
			Steps: ns.Scale.Hex(),
		}
	}
	return entries
}

func writeLibrary(w io.Writer, entries []libraryEntry, format string, swatches bool) error {
	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case config.FormatYAML:
		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	case config.FormatHex:
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%s %s\n", e.Name, strings.Join(e.Steps[:], " ")); err != nil {
				return err
			}
		}
		return nil
	case config.FormatTable:
		headers := []string{"Scale"}
		for i := range scale.Steps {
			headers = append(headers, strconv.Itoa(i+1))
		}
		table := NewTable(headers)
		for _, e := range entries {
			row := []string{e.Name}
			for _, hex := range e.Steps {
				cell := hex
				if swatches {
					rgb, err := colour.ParseRGB(hex)
					if err != nil {
						return err
					}
					cell = colour.Swatch(rgb, swatchWidth)
				}
				row = append(row, cell)
			}
			table.AddRow(row)
		}
		_, err := io.WriteString(w, table.Render())
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
