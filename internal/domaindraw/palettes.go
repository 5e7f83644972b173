package domaindraw

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/oaxiom/domain-draw/config"
	"github.com/oaxiom/domain-draw/internal/palette"
)

// PalettesCmd lists the palettes, the entries of one palette, or looks up
// a key in a palette.
func PalettesCmd(cmd *cobra.Command, args []string) {
	c, err := config.New()
	if err != nil {
		stderr.Fatal(err)
	}

	pals, err := loadPalettes(c.PaletteFile)
	if err != nil {
		stderr.Fatal(err)
	}

	if err := Palettes(pals, args, cmd.OutOrStdout()); err != nil {
		stderr.Fatal(err)
	}
}

// Palettes writes palette info to out. With no args it lists the
// palettes, with one it lists that palette's entries, and with more it
// looks up the rest of the args, joined by spaces, as a key.
func Palettes(pals *palette.Set, args []string, out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', tabwriter.TabIndent)

	if len(args) < 1 {
		for _, name := range pals.Names() {
			p, _ := pals.Palette(name)
			fmt.Fprintf(w, "%s\t%d\n", name, p.Len())
		}
		return w.Flush()
	}

	p, err := pals.Palette(args[0])
	if err != nil {
		return err
	}

	if len(args) == 1 {
		for _, key := range p.Keys() {
			fmt.Fprintf(w, "%s\t%s\n", key, p.Spec(key))
		}
		return w.Flush()
	}

	key := strings.Join(args[1:], " ")
	if _, ok := p.Lookup(key); ok {
		fmt.Fprintf(w, "%s\t%s\n", key, p.Spec(key))
		return w.Flush()
	}

	similar := p.Similar(key)
	if len(similar) == 0 {
		return fmt.Errorf("failed to find %q in %s", key, p.Name())
	}

	fmt.Fprintf(out, "failed to find %q in %s, similar keys:\n", key, p.Name())
	for _, s := range similar {
		fmt.Fprintf(w, "%s\t%s\n", s, p.Spec(s))
	}
	return w.Flush()
}
