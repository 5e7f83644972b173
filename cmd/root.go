// Package cmd is for command line interactions with the domaindraw application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oaxiom/domain-draw/internal/domaindraw"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "domaindraw",
	Short: `Draw schematic images of proteins and their domains.
Reads a domain annotation file and writes a full sized image and a thumbnail per protein`,
	Version:          "0.1.0",
	PersistentPreRun: domaindraw.Setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	// settings is an optional settings file (YAML, TOML or JSON) with defaults for the flags
	RootCmd.PersistentFlags().StringP("settings", "s", "", "settings file with defaults for flags")
	RootCmd.PersistentFlags().Bool("verbose", false, "whether to log every image written")

	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}
