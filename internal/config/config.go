// Package config loads tincture theme configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/pkg/scale"
)

// Environment variables that override the file.
const (
	EnvAppearance = "TINCTURE_APPEARANCE"
	EnvBackground = "TINCTURE_BACKGROUND"
	EnvGray       = "TINCTURE_GRAY"
)

// DotEnvFile is read from the config file's directory, or the working
// directory when no file is given. Real environment variables take
// precedence over its values.
const DotEnvFile = ".env"

// Output formats.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatHex   = "hex"
	FormatTable = "table"
)

// Config is the top-level configuration.
type Config struct {
	Gray    string            `yaml:"gray" json:"gray" default:"#8b8d98" validate:"required,colourhex"`
	Accents map[string]string `yaml:"accents" json:"accents" validate:"dive,keys,required,endkeys,colourhex"`
	Themes  []Theme           `yaml:"themes" json:"themes" default:"[{\"name\":\"light\",\"appearance\":\"light\"}]" validate:"min=1,unique=Name,dive"`
	Output  Output            `yaml:"output" json:"output"`
}

// Theme is one appearance and background to generate scales for.
type Theme struct {
	Name       string           `yaml:"name" json:"name" validate:"required"`
	Appearance scale.Appearance `yaml:"appearance" json:"appearance"`
	Background string           `yaml:"background" json:"background" validate:"colourhex"`
}

// SetDefaults fills the background from the appearance. It is called by
// defaults.Set.
func (t *Theme) SetDefaults() {
	if t.Background == "" {
		t.Background = t.Appearance.DefaultBackground()
	}
	if t.Name == "" {
		t.Name = t.Appearance.String()
	}
}

// Output controls how results are written.
type Output struct {
	Format string `yaml:"format" json:"format" default:"json" validate:"oneof=json yaml hex table"`
	Path   string `yaml:"path" json:"path"`
}

// ValidationError wraps validation failures.
type ValidationError struct {
	Source string
	Err    error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("invalid configuration in %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("invalid configuration: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Loader reads configuration from a filesystem and the environment.
type Loader struct {
	fs        afero.Fs
	lookupEnv func(string) (string, bool)
	validate  *validator.Validate
}

// NewLoader returns a Loader reading from fs and the process environment.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{
		fs:        fs,
		lookupEnv: os.LookupEnv,
		validate:  newValidator(),
	}
}

// WithEnv replaces the environment lookup, for tests.
func (l *Loader) WithEnv(lookup func(string) (string, bool)) *Loader {
	l.lookupEnv = lookup
	return l
}

// colourHexTag is the validator tag for hex colour fields.
const colourHexTag = "colourhex"

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation(colourHexTag, func(fl validator.FieldLevel) bool {
		_, err := colour.NormalizeHex(fl.Field().String())
		return err == nil
	})
	if err != nil {
		panic(fmt.Sprintf("config: register %s validation: %v", colourHexTag, err))
	}
	return v
}

// Load reads path, applies defaults and environment overrides and validates
// the result. An empty path yields the defaults plus overrides.
func (l *Loader) Load(path string) (*Config, error) {
	var data []byte
	if path != "" {
		var err error
		data, err = afero.ReadFile(l.fs, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return l.parse(path, data)
}

func (l *Loader) parse(source string, data []byte) (*Config, error) {
	cfg := &Config{}
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", displayName(source), err)
		}
	}

	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	env, err := l.environment(source)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(env); err != nil {
		return nil, &ValidationError{Source: source, Err: err}
	}

	if err := l.validate.Struct(cfg); err != nil {
		return nil, &ValidationError{Source: source, Err: err}
	}

	cfg.normalise()
	return cfg, nil
}

// environment merges the .env file beneath the process environment.
func (l *Loader) environment(source string) (func(string) (string, bool), error) {
	dir := "."
	if source != "" {
		dir = filepath.Dir(source)
	}

	dotenv := map[string]string{}
	f, err := l.fs.Open(filepath.Join(dir, DotEnvFile))
	switch {
	case err == nil:
		defer f.Close()
		dotenv, err = godotenv.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", DotEnvFile, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to open %s: %w", DotEnvFile, err)
	}

	return func(key string) (string, bool) {
		if v, ok := l.lookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvGray); ok && v != "" {
		c.Gray = v
	}

	if v, ok := lookup(EnvAppearance); ok && v != "" {
		a, err := scale.ParseAppearance(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAppearance, err)
		}
		c.Themes = []Theme{c.themeFor(a)}
	}

	if v, ok := lookup(EnvBackground); ok && v != "" {
		for i := range c.Themes {
			c.Themes[i].Background = v
		}
	}
	return nil
}

// themeFor returns the first configured theme with appearance a, or a new
// default one.
func (c *Config) themeFor(a scale.Appearance) Theme {
	for _, t := range c.Themes {
		if t.Appearance == a {
			return t
		}
	}
	t := Theme{Appearance: a}
	t.SetDefaults()
	return t
}

// normalise rewrites every colour in canonical form. It runs after
// validation so every value parses.
func (c *Config) normalise() {
	c.Gray, _ = colour.NormalizeHex(c.Gray)
	for name, hex := range c.Accents {
		c.Accents[name], _ = colour.NormalizeHex(hex)
	}
	for i := range c.Themes {
		c.Themes[i].Background, _ = colour.NormalizeHex(c.Themes[i].Background)
	}
}

// SetRequest builds the generation request for theme t.
func (c *Config) SetRequest(t Theme) scale.SetRequest {
	return scale.SetRequest{
		Appearance: t.Appearance,
		Gray:       c.Gray,
		Background: t.Background,
		Accents:    c.Accents,
	}
}

func displayName(source string) string {
	if source == "" {
		return "config"
	}
	return source
}
