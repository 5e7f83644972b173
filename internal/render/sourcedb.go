package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/oaxiom/domain-draw/internal/palette"
	"github.com/oaxiom/domain-draw/internal/record"
)

// sourceDBStyle colours each domain by the database it was annotated from.
type sourceDBStyle struct {
	pal palette.Palette
}

// sourceDBs are checked in order against a domain's source db identifier.
var sourceDBs = []struct {
	prefix string
	name   string
}{
	{"SSF", "SUPERFAMILY"},
	{"PF", "Pfam-A"},
	{"SM", "SMART"},
}

// classifyDB returns the name of the database a source db identifier
// belongs to, ex: "SM00355" is "SMART".
func classifyDB(db string) (string, bool) {
	for _, s := range sourceDBs {
		if strings.Contains(db, s.prefix) {
			return s.name, true
		}
	}
	return "", false
}

func (s *sourceDBStyle) Draw(fig *Figure, rec *record.Record, geo Geometry, warn func(string)) {
	for _, d := range rec.Domains {
		var fill color.Color = lightgrey
		if name, ok := classifyDB(d.SourceDB); !ok {
			warn(d.SourceDB)
		} else if c, ok := s.pal.Lookup(name); !ok {
			warn(name)
		} else {
			fill = c
		}

		fig.AddRect(Rect{
			X:    float64(d.Span.Start),
			Y:    -0.25,
			W:    float64(d.Span.Width()),
			H:    0.5,
			Fill: fill,
			Edge: black,
			Z:    zBox,
		})

		if !geo.Thumbnail {
			fig.AddText(Text{X: d.Span.Mid(), Y: -0.5, S: d.Label, Size: 6, HAlign: Center, VAlign: Middle, Z: zText})
		}
	}

	if geo.Thumbnail {
		return
	}
	fig.AddText(Text{
		X:      float64(rec.Length) / 2,
		Y:      0.7,
		S:      fmt.Sprintf("ID: %s", rec.ID),
		Size:   geo.TitleSize,
		HAlign: Center,
		Z:      zText,
	})
}
