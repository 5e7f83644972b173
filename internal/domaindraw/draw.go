package domaindraw

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/oaxiom/domain-draw/config"
	"github.com/oaxiom/domain-draw/internal/record"
	"github.com/oaxiom/domain-draw/internal/render"
)

// DrawCmd parses an annotation file and draws every protein in it to
// <out>/full and <out>/thumbs.
func DrawCmd(cmd *cobra.Command, args []string) {
	c := parseCmdFlags(cmd)

	report, err := Draw(c, osfs.New(c.Out), cmd.OutOrStdout(), stderr)
	if err != nil {
		stderr.Fatal(err)
	}

	if len(report.Errors) > 0 {
		os.Exit(1)
	}
}

// Draw parses the input file in c and renders its records onto fs. Records
// that fail to parse or render are logged and skipped. A summary is
// printed to out.
func Draw(c *config.Config, fs billy.Filesystem, out io.Writer, logger *log.Logger) (*render.Report, error) {
	set, err := record.ParseFile(c.In)
	if err != nil {
		return nil, err
	}
	logParse(set, logger)

	opts, err := c.Options()
	if err != nil {
		return nil, err
	}

	pals, err := loadPalettes(c.PaletteFile)
	if err != nil {
		return nil, err
	}

	r, err := render.New(fs, pals, opts, logger)
	if err != nil {
		return nil, err
	}

	report := r.RenderAll(set)
	for _, err := range report.Errors {
		logger.Printf("failed to draw %v", err)
	}

	if c.Verbose {
		for _, path := range report.Written {
			fmt.Fprintln(out, fs.Join(c.Out, path))
		}
	}

	fmt.Fprintf(out, "drew %d proteins (%d images) to %s: %d skipped, %d colour warnings\n",
		len(set.Records), len(report.Written), c.Out, len(set.Errors), len(report.Warnings))

	return report, nil
}

// logParse logs the records that were dropped and the length mismatches.
func logParse(set *record.Set, logger *log.Logger) {
	for _, err := range set.Errors {
		logger.Printf("skipping record: %v", err)
	}
	for _, w := range set.Warnings {
		logger.Printf("Warning: %s", w)
	}
}
