package render

import (
	"fmt"

	"github.com/oaxiom/domain-draw/internal/palette"
	"github.com/oaxiom/domain-draw/internal/record"
)

// unknownStyle is for figures of domains of unknown function. Labels are
// large so they alternate between two heights to keep neighbours from
// overlapping.
type unknownStyle struct {
	pal palette.Palette
}

// label heights, alternated between successive domains
var unknownLabelY = [2]float64{-0.5, -0.8}

func (s *unknownStyle) Draw(fig *Figure, rec *record.Record, geo Geometry, warn func(string)) {
	for i, d := range rec.Domains {
		c, ok := s.pal.Lookup(d.Label)
		if !ok {
			warn(d.Label)
			c = lightgrey
		}
		fig.AddRect(Rect{
			X:    float64(d.Span.Start),
			Y:    -0.25,
			W:    float64(d.Span.Width()),
			H:    0.5,
			Fill: c,
			Z:    zBox,
		})

		if !geo.Thumbnail {
			fig.AddText(Text{
				X:      d.Span.Mid(),
				Y:      unknownLabelY[i%2],
				S:      d.Label,
				Size:   11,
				HAlign: Center,
				VAlign: Middle,
				Z:      zText,
			})
		}
	}

	if geo.Thumbnail {
		return
	}
	fig.AddText(Text{
		X:      0,
		Y:      0.5,
		S:      fmt.Sprintf("%s (%d amino acids)", rec.ID, rec.Length),
		Size:   20,
		HAlign: Left,
		Z:      zText,
	})
}
