// Package collate summarizes an annotation file: how often each family
// defining domain appears and a suggested palette to colour them with.
package collate

import (
	"fmt"
	"image/color"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/montanaflynn/stats"
	"gopkg.in/yaml.v3"

	"github.com/oaxiom/domain-draw/internal/palette"
	"github.com/oaxiom/domain-draw/internal/record"
)

// PaletteName is the name given to the suggested palette.
const PaletteName = "suggested"

// paired is matplotlib's 12 colour "Paired" qualitative map.
var paired = []string{
	"#a6cee3", "#1f78b4", "#b2df8a", "#33a02c",
	"#fb9a99", "#e31a1c", "#fdbf6f", "#ff7f00",
	"#cab2d6", "#6a3d9a", "#ffff99", "#b15928",
}

// Paired samples the Paired map at i/n, spreading n colours across it.
func Paired(i, n int) color.RGBA {
	if n <= 0 {
		return palette.MustColor(paired[0])
	}
	idx := i * len(paired) / n
	if idx >= len(paired) {
		idx = len(paired) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return palette.MustColor(paired[idx])
}

// Count is the number of times a label was seen.
type Count struct {
	Label string
	Count int
}

// Summary describes the records in a set.
type Summary struct {
	Records      int
	MeanLength   float64
	MedianLength float64
	MaxLength    float64
	MeanDomains  float64
}

// Report is the result of collating a set.
type Report struct {
	// Counts of family defining domain labels, most common first
	Counts []Count

	// Summary of the record lengths and domain counts
	Summary Summary

	// Palette is a palette file with one colour per label in Counts
	Palette palette.File
}

// Collate counts the family defining domains in a set and suggests a
// palette for them.
func Collate(set *record.Set) (*Report, error) {
	counts := map[string]int{}
	var lengths, domains []float64
	for _, rec := range set.Records {
		lengths = append(lengths, float64(rec.Length))
		domains = append(domains, float64(len(rec.Domains)))
		for _, d := range rec.Domains {
			if d.FamilyDefining() {
				counts[d.Label]++
			}
		}
	}

	report := &Report{}
	for label, n := range counts {
		report.Counts = append(report.Counts, Count{Label: label, Count: n})
	}
	sort.Slice(report.Counts, func(i, j int) bool {
		a, b := report.Counts[i], report.Counts[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Label < b.Label
	})

	suggested := map[string]string{}
	for i, c := range report.Counts {
		suggested[c.Label] = palette.Hex(Paired(i, len(report.Counts)))
	}
	report.Palette = palette.File{Palettes: map[string]map[string]string{PaletteName: suggested}}

	report.Summary.Records = len(set.Records)
	if len(set.Records) == 0 {
		return report, nil
	}

	var err error
	if report.Summary.MeanLength, err = stats.Mean(lengths); err != nil {
		return nil, fmt.Errorf("failed to average lengths: %w", err)
	}
	if report.Summary.MedianLength, err = stats.Median(lengths); err != nil {
		return nil, fmt.Errorf("failed to find median length: %w", err)
	}
	if report.Summary.MaxLength, err = stats.Max(lengths); err != nil {
		return nil, fmt.Errorf("failed to find max length: %w", err)
	}
	if report.Summary.MeanDomains, err = stats.Mean(domains); err != nil {
		return nil, fmt.Errorf("failed to average domain counts: %w", err)
	}

	return report, nil
}

// Write prints the report: label counts, then the summary, then the
// suggested palette as YAML that can be passed to --palette-file.
func (r *Report) Write(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 3, ' ', 0)
	for _, c := range r.Counts {
		fmt.Fprintf(w, "%d\t%s\n", c.Count, c.Label)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	s := r.Summary
	fmt.Fprintf(out, "\nrecords: %d\n", s.Records)
	fmt.Fprintf(out, "length: mean %.1f, median %.1f, max %.0f\n", s.MeanLength, s.MedianLength, s.MaxLength)
	fmt.Fprintf(out, "domains per record: mean %.2f\n", s.MeanDomains)

	fmt.Fprintf(out, "\n# suggested palette, use with --palette-file <file> --palette %s\n", PaletteName)
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(r.Palette); err != nil {
		return fmt.Errorf("failed to write palette: %w", err)
	}
	return enc.Close()
}
