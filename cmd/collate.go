package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oaxiom/domain-draw/internal/domaindraw"
)

// collateCmd is for counting family defining domains and suggesting colours for them
var collateCmd = &cobra.Command{
	Use:                        "collate",
	Short:                      "Count the family defining domains in an annotation file and suggest a palette",
	PreRun:                     domaindraw.BindFlags,
	Run:                        domaindraw.CollateCmd,
	SuggestionsMinimumDistance: 2,
	Long: `
Count how often each family defining domain appears in an annotation file
and summarize the proteins' lengths. Ends with a palette that gives each
domain a colour, as YAML that can be passed to 'domaindraw draw --palette-file'.`,
	Aliases: []string{"suggest"},
	Example: "  domaindraw collate --in domains.txt",
}

// set flags
func init() {
	collateCmd.Flags().StringP("in", "i", "", "input domain annotation file, '-' for stdin (gzip ok)")

	RootCmd.AddCommand(collateCmd)
}
