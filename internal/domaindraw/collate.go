package domaindraw

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/oaxiom/domain-draw/config"
	"github.com/oaxiom/domain-draw/internal/collate"
	"github.com/oaxiom/domain-draw/internal/record"
)

// CollateCmd counts the family defining domains in an annotation file
// and prints a palette for them.
func CollateCmd(cmd *cobra.Command, args []string) {
	c, err := config.New()
	if err != nil {
		stderr.Fatal(err)
	}
	if c.In == "" {
		cmd.Help()
		stderr.Fatal("no input file, set one with --in")
	}

	if err := Collate(c.In, cmd.OutOrStdout(), stderr); err != nil {
		stderr.Fatal(err)
	}
}

// Collate reads the annotation file at in and writes its collate report
// to out.
func Collate(in string, out io.Writer, logger *log.Logger) error {
	set, err := record.ParseFile(in)
	if err != nil {
		return err
	}
	logParse(set, logger)

	report, err := collate.Collate(set)
	if err != nil {
		return err
	}
	return report.Write(out)
}
