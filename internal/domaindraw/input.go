// Package domaindraw holds the handlers behind the domaindraw commands:
// reading settings, driving the parser and renderer, and printing results.
package domaindraw

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oaxiom/domain-draw/config"
	"github.com/oaxiom/domain-draw/internal/palette"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// BindFlags binds the running command's flags to viper, so settings
// files and the environment are overridden only by flags that were set.
func BindFlags(cmd *cobra.Command, args []string) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		stderr.Fatalf("failed to bind flags: %v", err)
	}
}

// Setup reads the settings file, if one was passed, before any command runs.
func Setup(cmd *cobra.Command, args []string) {
	settings, _ := cmd.Flags().GetString("settings")
	if err := config.Setup(settings); err != nil {
		stderr.Fatal(err)
	}
}

// parseCmdFlags gathers the in path, out path, style, etc from viper and
// checks them. It exits if they're unusable.
func parseCmdFlags(cmd *cobra.Command) *config.Config {
	c, err := config.New()
	if err != nil {
		stderr.Fatal(err)
	}

	if err := c.Validate(); err != nil {
		cmd.Help()
		stderr.Fatal(err)
	}

	return c
}

// loadPalettes returns the built-in palettes with those in path, if
// set, laid over them.
func loadPalettes(path string) (*palette.Set, error) {
	pals, err := palette.Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return pals, nil
	}

	user, err := palette.Load(path)
	if err != nil {
		return nil, err
	}
	return pals.Merge(user), nil
}
