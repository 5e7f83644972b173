package record

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// legacy category names and what they're called now
var renamed = map[string]string{
	"RING finger": "RNF finger",
}

// ParseFile reads the annotation file at path (or stdin for "-"). Gzipped
// files are decompressed. The returned error is only for files that can't
// be opened or read, malformed lines end up in Set.Errors.
func ParseFile(path string) (*Set, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer rc.Close()

	set, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return set, nil
}

// Parse reads annotation records from r.
func Parse(r io.Reader) (*Set, error) {
	p := &parser{set: &Set{}}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		p.line++
		p.read(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	p.close() // the last record has no header after it
	return p.set, nil
}

// parser holds the state of a single pass over a file.
type parser struct {
	set  *Set
	line int

	// the record being read, nil before the first header
	current *Record

	// number of domain rows read into current
	rows int

	// longest length column seen for current
	peak int

	// whether current had a bad row (it won't be kept)
	failed bool

	// whether the rows until the next header belong to a bad header
	skipping bool

	// whether a length mismatch was already reported for current
	mismatched bool
}

func (p *parser) read(line string) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, ">") {
		p.header(trimmed[1:])
		return
	}

	fields := strings.Fields(trimmed)
	if len(fields) != 6 && len(fields) != 7 {
		return // blank or unrecognized, not a domain row
	}

	if p.current == nil {
		if !p.skipping {
			p.fail(ErrNoRecord)
		}
		return
	}
	if p.failed {
		return
	}

	if err := p.domain(fields); err != nil {
		p.fail(err)
	}
}

// header closes the open record and starts a new one.
func (p *parser) header(text string) {
	p.close()

	fields := strings.Fields(text)
	if len(fields) == 0 {
		p.fail(ErrNoName)
		p.skipping = true
		return
	}

	category := strings.Join(fields[1:], " ")
	for old, now := range renamed {
		category = strings.ReplaceAll(category, old, now)
	}
	if strings.Contains(category, "/") {
		category = MixedPrefix + category
	}

	p.current = &Record{
		ID:       fields[0],
		Category: category,
		Length:   1,
	}
}

// domain parses a 6 or 7 column row into a Domain on the current record.
func (p *parser) domain(fields []string) error {
	length, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("length column: %w", err)
	}
	if length < 1 {
		return fmt.Errorf("%w: %d", ErrLength, length)
	}

	left, err := strconv.Atoi(fields[3])
	if err != nil {
		return fmt.Errorf("left column: %w", err)
	}
	right, err := strconv.Atoi(fields[4])
	if err != nil {
		return fmt.Errorf("right column: %w", err)
	}
	if left < 1 || left > right {
		return fmt.Errorf("%w: %d..%d", ErrSpan, left, right)
	}

	d := Domain{
		Label:    fields[5],
		Span:     Span{Start: left - 1, End: right - 1}, // make 0-indexed
		SourceDB: fields[2],
	}
	if len(fields) == 7 {
		d.Kind = Kind(fields[6])
	}
	p.current.add(d)

	// every row repeats the protein length, the last one wins
	if p.rows > 0 && length != p.current.Length && !p.mismatched {
		p.set.Warnings = append(p.set.Warnings, fmt.Sprintf(
			"line %d (%s): length %d differs from earlier rows (%d), using the last",
			p.line, p.current.ID, length, p.current.Length,
		))
		p.mismatched = true
	}
	p.current.Length = length
	p.rows++
	if length > p.peak {
		p.peak = length
	}

	return nil
}

// fail records a FormatError against the current line and record.
func (p *parser) fail(err error) {
	id := ""
	if p.current != nil {
		id = p.current.ID
		p.failed = true
	}
	p.set.Errors = append(p.set.Errors, &FormatError{Line: p.line, Record: id, Err: err})
}

// close keeps the current record, if it was read without errors, and
// resets the per-record state.
func (p *parser) close() {
	if p.current != nil && !p.failed {
		p.set.Records = append(p.set.Records, p.current)
		if p.peak > p.set.MaxLength {
			p.set.MaxLength = p.peak
		}
	}

	p.current = nil
	p.rows = 0
	p.peak = 0
	p.failed = false
	p.skipping = false
	p.mismatched = false
}
