package render

import (
	"github.com/oaxiom/domain-draw/internal/palette"
	"github.com/oaxiom/domain-draw/internal/record"
)

// genericStyle colours domains by their label. Domains missing from the
// palette are drawn as an outline.
type genericStyle struct {
	pal palette.Palette
}

func (s *genericStyle) Draw(fig *Figure, rec *record.Record, geo Geometry, warn func(string)) {
	for _, d := range rec.Domains {
		r := Rect{
			X: float64(d.Span.Start),
			Y: -0.25,
			W: float64(d.Span.Width()),
			H: 0.5,
			Z: zBox,
		}
		if c, ok := s.pal.Lookup(d.Label); ok {
			r.Fill = c
		} else {
			warn(d.Label)
			r.Edge = grey
		}
		fig.AddRect(r)

		if geo.Thumbnail {
			continue
		}
		fig.AddText(Text{X: d.Span.Mid(), Y: -0.5, S: d.Label, Size: 7, HAlign: Center, VAlign: Middle, Z: zText})
		fig.AddText(Text{X: d.Span.Mid(), Y: -0.7, S: d.SourceDB, Size: 6, HAlign: Center, VAlign: Middle, Z: zText})
	}

	if geo.Thumbnail {
		return
	}

	title := Text{X: float64(rec.Length) / 2, Y: 0.7, S: rec.ID, Size: geo.TitleSize, HAlign: Center, Z: zText}
	if geo.TitleLeft {
		title.X = 0
		title.HAlign = Left
	}
	fig.AddText(title)
}
