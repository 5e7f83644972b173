// Package record is for reading protein domain annotation files into
// Records, one per header line, each holding its annotated Domains.
//
// The expected format looks a bit like a FASTA file followed by tab
// separated domain rows:
//
//	>AGAP004733-PA  BTB
//	AGAP004733-PA   648     SSF54695        1       144     SSF54695        FAMILY-DEFINING
//	AGAP004733-PA   648     SM00355 481     503     Znf_C2H2        ACCESSORY
//
//	><name> [category ...]
//	<id> <length of protein> <source db> <left> <right> <label> [<kind>]
package record

import (
	"strings"

	"github.com/biogo/biogo/feat"
)

// MixedPrefix marks a category that lists more than one family ("A/B").
const MixedPrefix = "Mixed:"

// Kind discriminates the domain that defines a protein's family from the
// rest. The zero value means the kind column was missing.
type Kind string

const (
	// FamilyDefining is the domain that gives the protein its category
	FamilyDefining Kind = "FAMILY-DEFINING"

	// Accessory domains are everything else annotated on the protein
	Accessory Kind = "ACCESSORY"
)

// Span is a 0-based, inclusive range of residues.
type Span struct {
	Start int
	End   int
}

// Mid is the midpoint of the span, where labels are centered.
func (s Span) Mid() float64 {
	return float64(s.Start+s.End) / 2
}

// Width is the distance from Start to End.
func (s Span) Width() int {
	return s.End - s.Start
}

// Domain is a single annotated sub-range of a protein.
type Domain struct {
	// Label is the domain's name, ex: "Znf_C2H2"
	Label string

	// Span is the location of the domain on the protein (0-based)
	Span Span

	// SourceDB is the annotation db identifier, ex: "SSF54695" or "SM00355"
	SourceDB string

	// Kind is FamilyDefining, Accessory, or empty when not annotated
	Kind Kind

	record *Record
}

// FamilyDefining returns whether this domain sets the protein's family.
func (d Domain) FamilyDefining() bool {
	return d.Kind == FamilyDefining
}

// Start is the 0-based start of the domain.
func (d Domain) Start() int { return d.Span.Start }

// End is the half-open end of the domain.
func (d Domain) End() int { return d.Span.End + 1 }

// Len is the number of residues in the domain.
func (d Domain) Len() int { return d.End() - d.Start() }

// Name returns the domain's label.
func (d Domain) Name() string { return d.Label }

// Description returns the db the annotation came from.
func (d Domain) Description() string { return d.SourceDB }

// Location returns the Record the domain is annotated on.
func (d Domain) Location() feat.Feature {
	if d.record == nil {
		return nil
	}
	return d.record
}

// Record is a single protein and its domains.
type Record struct {
	// ID is the protein's name from its header line, ex: "AGAP004733-PA"
	ID string

	// Category is the free text classification after the name on the
	// header line. Empty if there was none.
	Category string

	// Length is the protein's length in amino acids
	Length int

	// Domains in the order they appear in the file
	Domains []Domain
}

// Composite returns whether the header listed more than one category.
func (r *Record) Composite() bool {
	return strings.HasPrefix(r.Category, MixedPrefix)
}

// Start of the protein.
func (r *Record) Start() int { return 0 }

// End of the protein.
func (r *Record) End() int { return r.Length }

// Len is the protein's length.
func (r *Record) Len() int { return r.Length }

// Name returns the protein's ID.
func (r *Record) Name() string { return r.ID }

// Description returns the protein's category.
func (r *Record) Description() string { return r.Category }

// Location is nil, a protein isn't relative to anything else.
func (r *Record) Location() feat.Feature { return nil }

// add appends a domain, pointing it back at this record.
func (r *Record) add(d Domain) {
	d.record = r
	r.Domains = append(r.Domains, d)
}

var (
	_ feat.Feature = (*Record)(nil)
	_ feat.Feature = Domain{}
)

// Set is the result of reading one annotation file.
type Set struct {
	// Records in file order. Records with a FormatError are left out.
	Records []*Record

	// MaxLength is the longest length seen across the Records, used to draw
	// all proteins to the same scale
	MaxLength int

	// Errors are the FormatErrors of records that were dropped
	Errors []error

	// Warnings are non-fatal oddities, like inconsistent length columns
	Warnings []string
}
