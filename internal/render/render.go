// Package render draws schematic images of proteins: a horizontal bar
// for the protein with a coloured box for each of its domains.
//
// Drawing goes through a Figure, a list of rectangles and labels in
// residue coordinates, which is then written out as a PNG or SVG. Each
// record gets a full sized image and, optionally, a thumbnail.
package render

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"
	"golang.org/x/image/font/opentype"

	"github.com/oaxiom/domain-draw/internal/palette"
	"github.com/oaxiom/domain-draw/internal/record"
)

// Options are the settings shared by every image in a batch.
type Options struct {
	// Style of drawing the domains
	Style Style

	// Palette is the colour table to use, empty for the style's default
	Palette string

	// Fixed draws every protein edge-to-edge. Otherwise proteins are drawn
	// to the scale of the longest in the batch.
	Fixed bool

	// Format of full sized images. Thumbnails are always PNGs.
	Format Format

	// Thumbnails are written alongside full images when true
	Thumbnails bool
}

// Warning is a domain that wasn't in the colour table. It was drawn
// with a fallback colour.
type Warning struct {
	// Record is the ID of the protein
	Record string

	// Key is what was looked for in the palette
	Key string

	// Size of the image being drawn
	Size Size
}

func (w Warning) String() string {
	return fmt.Sprintf("Warning: '%s' not found in colour map (%s, %s)", w.Key, w.Record, w.Size)
}

// Report is the result of rendering a batch of records.
type Report struct {
	// Written are the paths of images written
	Written []string

	// Warnings are colour lookups that fell back
	Warnings []Warning

	// Errors are records that failed to render
	Errors []error
}

// Renderer writes images of records to a filesystem.
type Renderer struct {
	fs     billy.Filesystem
	opts   Options
	drawer Drawer
	font   *opentype.Font
	log    *log.Logger
}

// New returns a Renderer writing to fs and colouring from palettes. A nil
// logger logs warnings to stderr.
func New(fs billy.Filesystem, palettes *palette.Set, opts Options, logger *log.Logger) (*Renderer, error) {
	name := opts.Palette
	if name == "" {
		_, name, _ = ParseStyle(opts.Style.String())
	}
	pal, err := palettes.Palette(name)
	if err != nil {
		return nil, err
	}

	drawer, err := NewDrawer(opts.Style, pal, palettes)
	if err != nil {
		return nil, err
	}

	fnt, err := loadFont()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}

	return &Renderer{
		fs:     fs,
		opts:   opts,
		drawer: drawer,
		font:   fnt,
		log:    logger,
	}, nil
}

// Discard is a logger that drops everything, for quiet Renderers.
var Discard = log.New(io.Discard, "", 0)

// Draw lays out a record onto a new Figure. maxLength is the length of the
// longest record in the batch.
func (r *Renderer) Draw(rec *record.Record, size Size, maxLength int) (*Figure, []Warning) {
	geo := NewGeometry(size, r.opts.Fixed || size == Thumbnail, rec.Length, maxLength)
	fig := NewFigure(geo.Width, geo.Height, geo.XMin, geo.XMax, -1, 1)

	// the protein
	fig.AddRect(Rect{
		X:    0,
		Y:    -geo.Line,
		W:    float64(rec.Length - 1),
		H:    geo.Line * 2,
		Fill: black,
		Z:    zBackbone,
	})

	var warnings []Warning
	if len(rec.Domains) > 0 {
		r.drawer.Draw(fig, rec, geo, func(key string) {
			warnings = append(warnings, Warning{Record: rec.ID, Key: key, Size: size})
		})
	}

	return fig, warnings
}

// Render draws a record and writes it to <size dir>/<id>.<ext>. It
// returns the path written to.
func (r *Renderer) Render(rec *record.Record, size Size, maxLength int) (string, []Warning, error) {
	return r.render(rec, size, maxLength, Filename(rec.ID))
}

func (r *Renderer) render(rec *record.Record, size Size, maxLength int, name string) (string, []Warning, error) {
	fig, warnings := r.Draw(rec, size, maxLength)
	for _, w := range warnings {
		r.log.Println(w)
	}

	format := r.opts.Format
	if size == Thumbnail {
		format = PNG
	}
	enc, err := r.encoder(format)
	if err != nil {
		return "", warnings, err
	}

	if err := r.fs.MkdirAll(size.Dir(), 0755); err != nil {
		return "", warnings, fmt.Errorf("failed to make %s: %w", size.Dir(), err)
	}

	path := r.fs.Join(size.Dir(), name+format.Ext())
	f, err := r.fs.Create(path)
	if err != nil {
		return "", warnings, fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := enc.encode(f, fig); err != nil {
		f.Close()
		return "", warnings, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", warnings, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, warnings, nil
}

// RenderAll renders every record in the set, full sized and as a
// thumbnail if asked for. A record that fails doesn't stop the others.
// IDs that map to the same file name get a numbered suffix, ex: "sp_P3-2".
func (r *Renderer) RenderAll(set *record.Set) *Report {
	sizes := []Size{Full}
	if r.opts.Thumbnails {
		sizes = append(sizes, Thumbnail)
	}

	report := &Report{}
	used := map[string]bool{}
	for _, rec := range set.Records {
		name := uniqueName(Filename(rec.ID), used)
		for _, size := range sizes {
			path, warnings, err := r.render(rec, size, set.MaxLength, name)
			report.Warnings = append(report.Warnings, warnings...)
			if err != nil {
				report.Errors = append(report.Errors, fmt.Errorf("%s: %w", rec.ID, err))
				continue
			}
			report.Written = append(report.Written, path)
		}
	}

	return report
}

// uniqueName returns name, or name with the lowest free "-N" suffix if
// it was already used, and marks the result as used.
func uniqueName(name string, used map[string]bool) string {
	unique := name
	for i := 2; used[unique]; i++ {
		unique = fmt.Sprintf("%s-%d", name, i)
	}
	used[unique] = true
	return unique
}

// Filename makes a record ID safe to use as a file name.
func Filename(id string) string {
	return strings.NewReplacer("/", "_", "\\", "_", "\x00", "_").Replace(id)
}
