// Package palette holds the colour tables used to fill domains, and the
// lookup from source db identifiers to family labels. Tables are read once
// from YAML and aren't modified afterwards.
package palette

import (
	"bytes"
	_ "embed"
	"fmt"
	"image/color"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

//go:embed palettes.yaml
var builtin []byte

// File is the YAML layout of a palette file.
type File struct {
	// Palettes maps a palette name to its key -> colour entries
	Palettes map[string]map[string]string `yaml:"palettes"`

	// DomainLabels maps a source db identifier to a family label
	DomainLabels map[string]string `yaml:"domain_labels,omitempty"`
}

// Palette is a named colour table.
type Palette struct {
	name    string
	colours map[string]color.RGBA
	specs   map[string]string
}

// Name of the palette, ex: "ubl".
func (p Palette) Name() string {
	return p.name
}

// Lookup returns the colour for key and whether it's in the palette.
func (p Palette) Lookup(key string) (color.RGBA, bool) {
	c, ok := p.colours[key]
	return c, ok
}

// Spec returns the colour of key as written in the palette file.
func (p Palette) Spec(key string) string {
	return p.specs[key]
}

// Keys returns the palette's keys, sorted case-insensitively.
func (p Palette) Keys() []string {
	keys := make([]string, 0, len(p.colours))
	for k := range p.colours {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return strings.ToLower(keys[i]) < strings.ToLower(keys[j])
	})
	return keys
}

// Len is the number of entries in the palette.
func (p Palette) Len() int {
	return len(p.colours)
}

// Set is every palette available plus the source db label lookup.
type Set struct {
	palettes map[string]Palette
	labels   map[string]string
}

// Default returns the built-in palettes.
func Default() (*Set, error) {
	s, err := Decode(bytes.NewReader(builtin))
	if err != nil {
		return nil, fmt.Errorf("failed to read built-in palettes: %w", err)
	}
	return s, nil
}

// Load reads a palette file from the local filesystem.
func Load(path string) (*Set, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open palette file: %w", err)
	}
	defer fh.Close()

	s, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file %s: %w", path, err)
	}
	return s, nil
}

// Decode reads a palette file's YAML. Every colour must parse.
func Decode(r io.Reader) (*Set, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, err
	}
	return New(f)
}

// New builds a Set from a File's tables.
func New(f File) (*Set, error) {
	s := &Set{
		palettes: make(map[string]Palette, len(f.Palettes)),
		labels:   make(map[string]string, len(f.DomainLabels)),
	}

	for name, entries := range f.Palettes {
		p := Palette{
			name:    name,
			colours: make(map[string]color.RGBA, len(entries)),
			specs:   make(map[string]string, len(entries)),
		}
		for key, spec := range entries {
			c, err := ParseColor(spec)
			if err != nil {
				return nil, fmt.Errorf("palette %s, %q: %w", name, key, err)
			}
			p.colours[key] = c
			p.specs[key] = spec
		}
		s.palettes[name] = p
	}

	for db, label := range f.DomainLabels {
		s.labels[db] = label
	}

	return s, nil
}

// Merge returns a new Set with other's palette entries and labels laid
// over those in s. Neither s nor other is changed.
func (s *Set) Merge(other *Set) *Set {
	merged := &Set{
		palettes: make(map[string]Palette),
		labels:   make(map[string]string),
	}

	for _, src := range []*Set{s, other} {
		for name, p := range src.palettes {
			m, ok := merged.palettes[name]
			if !ok {
				m = Palette{name: name, colours: map[string]color.RGBA{}, specs: map[string]string{}}
			}
			for k, c := range p.colours {
				m.colours[k] = c
				m.specs[k] = p.specs[k]
			}
			merged.palettes[name] = m
		}
		for db, label := range src.labels {
			merged.labels[db] = label
		}
	}

	return merged
}

// Palette returns the palette with the name passed.
func (s *Set) Palette(name string) (Palette, error) {
	if p, ok := s.palettes[name]; ok {
		return p, nil
	}
	return Palette{}, fmt.Errorf(
		"failed to find palette %q, 'domaindraw palettes' lists those available", name,
	)
}

// Names of the palettes in the set, sorted.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.palettes))
	for n := range s.palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DomainLabel returns the family label for a source db identifier.
func (s *Set) DomainLabel(db string) (string, bool) {
	label, ok := s.labels[db]
	return label, ok
}

// ParseColor turns a hex code ("#1f78b4", "#abc") or a colour name
// ("pink", "grey") into a colour.
func ParseColor(spec string) (color.RGBA, error) {
	spec = strings.TrimSpace(spec)
	if strings.HasPrefix(spec, "#") {
		hex := spec[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return color.RGBA{}, fmt.Errorf("bad hex colour %q", spec)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("bad hex colour %q", spec)
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}

	if c, ok := colornames.Map[strings.ToLower(spec)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown colour %q", spec)
}

// MustColor is ParseColor for colours known to be valid.
func MustColor(spec string) color.RGBA {
	c, err := ParseColor(spec)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats a colour as "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
