package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/config"
	"github.com/jmylchreest/tincture/pkg/scale"
)

// defaultAccentName names an accent given on the command line without one.
const defaultAccentName = "accent"

type generateOptions struct {
	*globalOptions

	fs afero.Fs

	appearance scale.Appearance
	accents    []string
	gray       string
	background string
	configPath string
	watch      bool
	format     string
	output     string
	preview    bool
}

func newGenerateCmd(global *globalOptions) *cobra.Command {
	opts := &generateOptions{globalOptions: global, fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate accent and gray scales",
		Long: `Generate 12-step accent and gray scales, with their translucent twins, for
one or more themes.

Colours come from the config file and the TINCTURE_* environment variables;
flags override both. Accents are given as name=#hex, or just #hex for a single
unnamed accent.

Examples:
  # One accent on the default light background
  tincture generate --accent "#3d63dd"

  # Dark theme on a custom background, as a table
  tincture generate -a dark --background "#0d1117" --accent "#3d63dd" -f table

  # Several named accents from a config file, regenerated on every save
  tincture generate -c tincture.yaml --watch -o scales.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}

	cmd.Flags().VarP(&opts.appearance, "appearance", "a", "theme appearance (light, dark)")
	cmd.Flags().StringArrayVar(&opts.accents, "accent", nil, "accent colour as name=#hex or #hex (repeatable)")
	cmd.Flags().StringVar(&opts.gray, "gray", "", "gray colour")
	cmd.Flags().StringVar(&opts.background, "background", "", "page background colour")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "configuration file (YAML)")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "regenerate whenever the config file changes")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format (json, yaml, hex, table)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour swatches on stderr")

	return cmd
}

func (o *generateOptions) run(cmd *cobra.Command) error {
	if o.watch && o.configPath == "" {
		return errors.New("--watch requires --config")
	}

	logger := o.logger(cmd.ErrOrStderr())
	gen, err := scale.NewGenerator(scale.WithLogger(logger))
	if err != nil {
		return err
	}

	loader := config.NewLoader(o.fs)
	cfg, err := loader.Load(o.configPath)
	if err != nil {
		return err
	}
	if err := o.generate(cmd, gen, cfg); err != nil {
		return err
	}
	if !o.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	updates, err := loader.Watch(ctx, o.configPath)
	if err != nil {
		return err
	}
	o.status(cmd.ErrOrStderr(), "Watching %s for changes", o.configPath)

	for u := range updates {
		if u.Err != nil {
			o.warn(cmd.ErrOrStderr(), "Reload failed: %v", u.Err)
			continue
		}
		logger.Debug("config reloaded", "path", o.configPath)
		if err := o.generate(cmd, gen, u.Config); err != nil {
			o.warn(cmd.ErrOrStderr(), "Generate failed: %v", err)
		}
	}
	return nil
}

// generate applies the flags to cfg, generates every theme and writes the
// result.
func (o *generateOptions) generate(cmd *cobra.Command, gen *scale.Generator, cfg *config.Config) error {
	if err := o.applyFlags(cmd.Flags(), cfg); err != nil {
		return err
	}
	if len(cfg.Accents) == 0 {
		return errors.New("no accents: pass --accent or set accents in the config")
	}

	doc, err := generateDocument(cmd.Context(), gen, cfg)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if cfg.Output.Path == "" {
		swatches := cfg.Output.Format == config.FormatTable && isTerminal(cmd.OutOrStdout())
		if err := writeDocument(&buf, doc, cfg.Output.Format, swatches); err != nil {
			return err
		}
		if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
			return err
		}
	} else {
		if err := writeDocument(&buf, doc, cfg.Output.Format, false); err != nil {
			return err
		}
		if err := afero.WriteFile(o.fs, cfg.Output.Path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if o.preview {
		if err := writeTable(cmd.ErrOrStderr(), doc, true); err != nil {
			return err
		}
	}

	o.status(cmd.ErrOrStderr(), "Generated %d accent(s) for %d theme(s)", len(cfg.Accents), len(doc.Themes))
	if cfg.Output.Path != "" {
		o.status(cmd.ErrOrStderr(), "Wrote %s (%s)", cfg.Output.Path, cfg.Output.Format)
	}
	return nil
}

// applyFlags overrides cfg with every flag the user set.
func (o *generateOptions) applyFlags(flags *pflag.FlagSet, cfg *config.Config) error {
	if flags.Changed("gray") {
		cfg.Gray = o.gray
	}
	if flags.Changed("accent") {
		accents, err := parseAccents(o.accents)
		if err != nil {
			return err
		}
		cfg.Accents = accents
	}
	if flags.Changed("appearance") {
		cfg.Themes = selectThemes(cfg.Themes, o.appearance)
	}
	if flags.Changed("background") {
		for i := range cfg.Themes {
			cfg.Themes[i].Background = o.background
		}
	}
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if flags.Changed("output") {
		cfg.Output.Path = o.output
	}
	return nil
}

// parseAccents parses name=#hex pairs. A bare colour is named "accent".
func parseAccents(values []string) (map[string]string, error) {
	accents := make(map[string]string, len(values))
	for _, v := range values {
		name, hex, found := strings.Cut(v, "=")
		if !found {
			name, hex = defaultAccentName, v
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("accent %q: missing name", v)
		}
		if _, dup := accents[name]; dup {
			return nil, fmt.Errorf("accent %q given more than once", name)
		}
		if _, err := colour.NormalizeHex(hex); err != nil {
			return nil, fmt.Errorf("accent %s: %w", name, err)
		}
		accents[name] = hex
	}
	return accents, nil
}

// selectThemes keeps the themes with appearance a, or returns a single
// default theme when there are none.
func selectThemes(themes []config.Theme, a scale.Appearance) []config.Theme {
	var out []config.Theme
	for _, t := range themes {
		if t.Appearance == a {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		t := config.Theme{Appearance: a}
		t.SetDefaults()
		out = append(out, t)
	}
	return out
}

// generateDocument generates every theme in cfg concurrently.
func generateDocument(ctx context.Context, gen *scale.Generator, cfg *config.Config) (document, error) {
	themes := make([]themeDocument, len(cfg.Themes))

	eg, ctx := errgroup.WithContext(ctx)
	for i, theme := range cfg.Themes {
		eg.Go(func() error {
			res, err := gen.GenerateSet(ctx, cfg.SetRequest(theme))
			if err != nil {
				return fmt.Errorf("theme %s: %w", theme.Name, err)
			}
			themes[i] = themeDocument{Name: theme.Name, SetResult: res}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return document{}, err
	}
	return document{Themes: themes}, nil
}
