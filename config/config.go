// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/oaxiom/domain-draw/internal/render"
)

const (
	// EnvPrefix is the prefix of environment variables that override
	// defaults and settings files, ex: DOMAINDRAW_STYLE=generic
	EnvPrefix = "DOMAINDRAW"

	// DefaultOut is the directory images are written to if not set
	DefaultOut = "."

	// DefaultStyle is the drawing style used if not set
	DefaultStyle = "family"
)

// Config is the root-level settings struct and is a mix of settings
// from a settings file, the environment and the command line.
type Config struct {
	// path to the annotation file, "-" for stdin
	In string `mapstructure:"in"`

	// directory to write full/ and thumbs/ to
	Out string `mapstructure:"out"`

	// drawing style, see render.ParseStyle
	Style string `mapstructure:"style"`

	// palette to colour with, empty for the style's default
	Palette string `mapstructure:"palette"`

	// YAML file of palettes laid over the built-in ones
	PaletteFile string `mapstructure:"palette-file"`

	// draw each protein edge-to-edge rather than to a shared scale
	Fixed bool `mapstructure:"fixed"`

	// write full sized images as SVG rather than PNG
	SVG bool `mapstructure:"svg"`

	// skip writing thumbnails
	NoThumbs bool `mapstructure:"no-thumbs"`

	// log every image written
	Verbose bool `mapstructure:"verbose"`

	// path to the settings file these were read from
	Settings string `mapstructure:"settings"`
}

// Setup prepares viper: defaults, DOMAINDRAW_ environment variables and,
// if settings isn't empty, a YAML/TOML/JSON settings file.
func Setup(settings string) error {
	viper.SetDefault("out", DefaultOut)
	viper.SetDefault("style", DefaultStyle)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if settings == "" {
		return nil
	}

	viper.SetConfigFile(settings)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read settings file %s: %w", settings, err)
	}
	return nil
}

// New returns a new Config populated by viper.
func New() (*Config, error) {
	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return c, nil
}

// Validate checks that the settings needed to draw are present.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.In) == "" {
		return fmt.Errorf("no input file, set one with --in")
	}
	if strings.TrimSpace(c.Out) == "" {
		return fmt.Errorf("no output directory, set one with --out")
	}
	if _, _, err := render.ParseStyle(c.Style); err != nil {
		return err
	}
	return nil
}

// Options returns the render options for the settings. The palette is the
// one asked for or else the style's own, ex: "ptp" for the ptp style.
func (c *Config) Options() (render.Options, error) {
	style, pal, err := render.ParseStyle(c.Style)
	if err != nil {
		return render.Options{}, err
	}
	if c.Palette != "" {
		pal = c.Palette
	}

	format := render.PNG
	if c.SVG {
		format = render.SVG
	}

	return render.Options{
		Style:      style,
		Palette:    pal,
		Fixed:      c.Fixed,
		Format:     format,
		Thumbnails: !c.NoThumbs,
	}, nil
}
