// Package cli provides the command-line interface for Tincture.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/version"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbose int
	quiet   bool
}

// NewRootCmd builds the tincture command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "tincture",
		Short: "A perceptual colour scale generator",
		Long: `Tincture generates 12-step colour scales from an accent, a gray and a
background colour.

Each scale is built from a library of hand-tuned reference scales, retinted to
your colour and anchored on your background, so that every step keeps its
role: app backgrounds, component backgrounds, borders, solid fills and text.
Every scale comes with a translucent twin that looks identical over the
background.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", "verbose output (repeat for trace logging)")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newLibraryCmd())

	return rootCmd
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// logger returns a logger writing to w at the level selected by --verbose.
func (o *globalOptions) logger(w io.Writer) hclog.Logger {
	if o.verbose == 0 {
		return hclog.NewNullLogger()
	}

	level := hclog.Debug
	if o.verbose > 1 {
		level = hclog.Trace
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tincture",
		Output: w,
		Level:  level,
	})
}

// status prints a progress line to w unless --quiet is set.
func (o *globalOptions) status(w io.Writer, format string, a ...any) {
	if o.quiet {
		return
	}
	fmt.Fprintf(w, "%s %s\n", color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a warning line to w. Warnings are shown even with --quiet.
func (o *globalOptions) warn(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "%s %s\n", color.YellowString("⚠"), fmt.Sprintf(format, a...))
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return nil
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(version.GetInfo())
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")

	return cmd
}
