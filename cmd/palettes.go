package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oaxiom/domain-draw/internal/domaindraw"
)

// palettesCmd is for listing palettes and finding colours in them
var palettesCmd = &cobra.Command{
	Use:                        "palettes [palette] [key]",
	Short:                      "List palettes, their entries, or find a key in one",
	PreRun:                     domaindraw.BindFlags,
	Run:                        domaindraw.PalettesCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
With no arguments, list the palettes available and their sizes. With a
palette name, list its keys and colours. With a palette name and a key,
print the key's colour or, if it's missing, keys that look like it.`,
	Aliases: []string{"colours", "colors"},
	Example: "  domaindraw palettes ubl \"RNF finger\"",
}

// set flags
func init() {
	palettesCmd.Flags().String("palette-file", "", "YAML file of palettes merged over the built-in ones")

	RootCmd.AddCommand(palettesCmd)
}
