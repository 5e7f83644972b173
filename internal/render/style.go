package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/oaxiom/domain-draw/internal/palette"
	"github.com/oaxiom/domain-draw/internal/record"
)

// Style is how domains are coloured and labelled.
type Style int

const (
	// Family colours family defining domains by the protein's category
	// and draws the rest as grey boxes. For ubiquitin ligase (E2/E3) figures.
	Family Style = iota

	// SourceDB colours domains by the db that annotated them: SUPERFAMILY,
	// Pfam or SMART
	SourceDB

	// Generic colours domains by label and prints their label and db
	Generic

	// UnknownDomain colours domains by label with large, staggered labels
	UnknownDomain
)

// styleNames maps names, including legacy ones, to styles and the
// palette they use by default.
var styleNames = map[string]struct {
	style   Style
	palette string
}{
	"family":         {Family, "ubl"},
	"ubl":            {Family, "ubl"},
	"ptp":            {Family, "ptp"},
	"source-db":      {SourceDB, "pfsmsff"},
	"pfsmsff":        {SourceDB, "pfsmsff"},
	"generic":        {Generic, "generic"},
	"gen":            {Generic, "generic"},
	"unknown-domain": {UnknownDomain, "unk_domains"},
	"unk_domains":    {UnknownDomain, "unk_domains"},
}

// StyleNames are the names accepted by ParseStyle.
var StyleNames = []string{"family", "source-db", "generic", "unknown-domain", "ubl", "ptp", "pfsmsff", "gen", "unk_domains"}

// ParseStyle returns the Style for a name and the palette it uses unless
// another is asked for.
func ParseStyle(name string) (Style, string, error) {
	s, ok := styleNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, "", fmt.Errorf("unknown style %q, expected one of: %s", name, strings.Join(StyleNames, ", "))
	}
	return s.style, s.palette, nil
}

func (s Style) String() string {
	switch s {
	case Family:
		return "family"
	case SourceDB:
		return "source-db"
	case Generic:
		return "generic"
	case UnknownDomain:
		return "unknown-domain"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// Drawer draws a record's domains, labels and title onto a figure that
// already has the protein's backbone. Colour lookups that miss are passed
// to warn.
type Drawer interface {
	Draw(fig *Figure, rec *record.Record, geo Geometry, warn func(key string))
}

// NewDrawer returns the Drawer for a style, colouring from pal. labels is
// used by the Family style to map source db identifiers to family names.
func NewDrawer(s Style, pal palette.Palette, labels *palette.Set) (Drawer, error) {
	switch s {
	case Family:
		return &familyStyle{pal: pal, labels: labels}, nil
	case SourceDB:
		return &sourceDBStyle{pal: pal}, nil
	case Generic:
		return &genericStyle{pal: pal}, nil
	case UnknownDomain:
		return &unknownStyle{pal: pal}, nil
	}
	return nil, fmt.Errorf("no drawer for %v", s)
}

var (
	black     = color.RGBA{0, 0, 0, 0xff}
	grey      = palette.MustColor("grey")
	pink      = palette.MustColor("pink")
	lightgrey = palette.MustColor("lightgrey")
)
