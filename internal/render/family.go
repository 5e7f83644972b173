package render

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/oaxiom/domain-draw/internal/palette"
	"github.com/oaxiom/domain-draw/internal/record"
)

// familyStyle is the drawing style for the ubiquitin ligase database.
// Family defining domains are tall and coloured by the protein's family,
// accessory domains are short and grey.
type familyStyle struct {
	pal    palette.Palette
	labels *palette.Set
}

func (s *familyStyle) Draw(fig *Figure, rec *record.Record, geo Geometry, warn func(string)) {
	var labels []Text

	for _, d := range rec.Domains {
		if !d.FamilyDefining() {
			fig.AddRect(Rect{
				X:    float64(d.Span.Start),
				Y:    -geo.Box,
				W:    float64(d.Span.Width()),
				H:    geo.Box * 2,
				Fill: grey,
				Z:    zGreyBox,
			})
			labels = append(labels, Text{X: d.Span.Mid(), Y: -0.5, S: d.Label, Size: 6, Color: grey})
			continue
		}

		col, label, ok := s.resolve(rec, d)
		if !ok {
			warn(d.SourceDB)
		}

		fig.AddRect(Rect{
			X:    float64(d.Span.Start),
			Y:    -geo.FamilyBox,
			W:    float64(d.Span.Width()),
			H:    geo.FamilyBox * 2,
			Fill: col,
			Z:    zFamilyBox,
		})
		labels = append(labels, Text{X: d.Span.Mid(), Y: -0.5, S: label, Size: 9, Color: black})

		if geo.Thumbnail {
			continue
		}

		// 1-based positions of the domain's ends
		fig.AddText(Text{
			X:      float64(d.Span.Start) + geo.Pad2,
			Y:      0,
			S:      strconv.Itoa(d.Span.Start + 1),
			Size:   5,
			HAlign: Left,
			VAlign: Middle,
			Z:      zFamilyText,
		})
		fig.AddText(Text{
			X:      float64(d.Span.End) - geo.Pad2,
			Y:      0,
			S:      strconv.Itoa(d.Span.End + 1),
			Size:   5,
			HAlign: Right,
			VAlign: Middle,
			Z:      zFamilyText,
		})
	}

	if geo.Thumbnail {
		return
	}

	for _, l := range labels {
		l.HAlign = Center
		l.VAlign = Middle
		l.Z = zText
		fig.AddText(l)
	}

	title := rec.ID
	if rec.Category != "" {
		title = fmt.Sprintf("%s (%s)", rec.ID, rec.Category)
	}
	fig.AddText(Text{
		X:      float64(rec.Length) / 2,
		Y:      0.7,
		S:      title,
		Size:   geo.TitleSize,
		HAlign: Center,
		Z:      zText,
	})
}

// resolve finds the colour and label of a family defining domain. It tries
// the protein's category, then the family of the domain's source db, then
// the domain's own label. If none are in the palette the domain is pink
// and labelled with its source db.
func (s *familyStyle) resolve(rec *record.Record, d record.Domain) (color.Color, string, bool) {
	if rec.Category != "" {
		if c, ok := s.pal.Lookup(rec.Category); ok {
			return c, rec.Category, true
		}
	}

	// composite categories end up here
	if s.labels != nil {
		if family, ok := s.labels.DomainLabel(d.SourceDB); ok {
			if c, ok := s.pal.Lookup(family); ok {
				return c, family, true
			}
		}
	}

	if c, ok := s.pal.Lookup(d.Label); ok {
		return c, d.Label, true
	}

	return pink, d.SourceDB, false
}
