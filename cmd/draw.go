package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oaxiom/domain-draw/config"
	"github.com/oaxiom/domain-draw/internal/domaindraw"
)

var (
	styleHelp = `how to draw domains: family, source-db, generic or unknown-domain.
The legacy names ubl, ptp, pfsmsff, gen and unk_domains are also accepted.`

	paletteHelp = `palette to colour domains with, defaults to the style's own.
'domaindraw palettes' prints a list of palettes.`
)

// drawCmd is for drawing every protein in an annotation file
var drawCmd = &cobra.Command{
	Use:                        "draw",
	Short:                      "Draw an image of each protein in a domain annotation file",
	PreRun:                     domaindraw.BindFlags,
	Run:                        domaindraw.DrawCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
Draw each protein in a domain annotation file as a bar with a box for each
of its domains. Full sized images are written to <out>/full and thumbnails
to <out>/thumbs, one per protein, named by the protein's ID.

By default proteins are drawn to a common scale, set by the longest protein
in the file. With --fixed each protein is drawn edge-to-edge.`,
	Aliases: []string{"render", "schematic"},
	Example: "  domaindraw draw --in domains.txt --out images --style family",
}

// set flags
func init() {
	drawCmd.Flags().StringP("in", "i", "", "input domain annotation file, '-' for stdin (gzip ok)")
	drawCmd.Flags().StringP("out", "o", config.DefaultOut, "output directory")
	drawCmd.Flags().StringP("style", "y", config.DefaultStyle, styleHelp)
	drawCmd.Flags().StringP("palette", "p", "", paletteHelp)
	drawCmd.Flags().String("palette-file", "", "YAML file of palettes merged over the built-in ones")
	drawCmd.Flags().BoolP("fixed", "f", false, "draw each protein edge-to-edge rather than to a common scale")
	drawCmd.Flags().BoolP("svg", "v", false, "write full sized images as SVG")
	drawCmd.Flags().Bool("no-thumbs", false, "skip writing thumbnails")

	RootCmd.AddCommand(drawCmd)
}
