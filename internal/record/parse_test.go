package record

import (
	"compress/gzip"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ubiquitin = `>AGAP004733-PA  BTB
AGAP004733-PA	648	SSF54695	1	144	SSF54695	FAMILY-DEFINING
AGAP004733-PA	648	SM00355	481	503	Znf_C2H2	ACCESSORY
AGAP004733-PA	648	SM00355	564	587	Znf_C2H2	ACCESSORY
>AGAP000001-PA  RING finger/HECT
AGAP000001-PA	1200	SM00184	20	60	RING	FAMILY-DEFINING
AGAP000001-PA	1200	PF00632	900	1190	HECT	FAMILY-DEFINING
>AGAP000002-PA
>AGAP000003-PA  UBC
AGAP000003-PA	152	PF00179	5	140	UQ_con
`

func Test_Parse_scenario(t *testing.T) {
	set, err := Parse(strings.NewReader(">P1 TypeA\nP1\t100\tSSFX\t10\t20\tDomX\tFAMILY-DEFINING\n"))
	require.NoError(t, err)
	require.Len(t, set.Records, 1)

	r := set.Records[0]
	assert.Equal(t, "P1", r.ID)
	assert.Equal(t, "TypeA", r.Category)
	assert.Equal(t, 100, r.Length)
	require.Len(t, r.Domains, 1)

	d := r.Domains[0]
	assert.Equal(t, Span{Start: 9, End: 19}, d.Span)
	assert.Equal(t, "DomX", d.Label)
	assert.Equal(t, "SSFX", d.SourceDB)
	assert.Equal(t, FamilyDefining, d.Kind)
	assert.True(t, d.FamilyDefining())
	assert.Empty(t, set.Errors)
	assert.Equal(t, 100, set.MaxLength)
}

func Test_Parse_records(t *testing.T) {
	set, err := Parse(strings.NewReader(ubiquitin))
	require.NoError(t, err)
	require.Len(t, set.Records, 4)

	ids := []string{}
	for _, r := range set.Records {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"AGAP004733-PA", "AGAP000001-PA", "AGAP000002-PA", "AGAP000003-PA"}, ids)

	assert.Len(t, set.Records[0].Domains, 3)
	assert.Equal(t, "Znf_C2H2", set.Records[0].Domains[2].Label)
	assert.Equal(t, Span{563, 586}, set.Records[0].Domains[2].Span)

	// no category, no domains
	empty := set.Records[2]
	assert.Equal(t, "", empty.Category)
	assert.Equal(t, 1, empty.Length)
	assert.Empty(t, empty.Domains)

	// six columns, kind is missing
	ubc := set.Records[3].Domains[0]
	assert.Equal(t, Kind(""), ubc.Kind)
	assert.False(t, ubc.FamilyDefining())

	assert.Equal(t, 1200, set.MaxLength)
	assert.Empty(t, set.Errors)
	assert.Empty(t, set.Warnings)
}

func Test_Parse_category(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		category  string
		composite bool
	}{
		{"single", ">P1 BTB", "BTB", false},
		{"multiple words", ">P1 Zinc finger  C2H2", "Zinc finger C2H2", false},
		{"composite", ">P1 BTB/HECT", "Mixed:BTB/HECT", true},
		{"legacy name", ">P1 RING finger", "RNF finger", false},
		{"legacy name in composite", ">P1 RING finger/UBC", "Mixed:RNF finger/UBC", true},
		{"none", ">P1", "", false},
		{"leading whitespace", "  >P1 UBC", "UBC", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Parse(strings.NewReader(tt.header + "\n"))
			require.NoError(t, err)
			require.Len(t, set.Records, 1)
			assert.Equal(t, "P1", set.Records[0].ID)
			assert.Equal(t, tt.category, set.Records[0].Category)
			assert.Equal(t, tt.composite, set.Records[0].Composite())
		})
	}
}

func Test_Parse_span(t *testing.T) {
	tests := []struct {
		left, right int
		want        Span
	}{
		{1, 1, Span{0, 0}},
		{1, 144, Span{0, 143}},
		{481, 503, Span{480, 502}},
	}
	for _, tt := range tests {
		line := strings.Join([]string{"P1", "648", "SM1", strconv.Itoa(tt.left), strconv.Itoa(tt.right), "D", "ACCESSORY"}, "\t")
		set, err := Parse(strings.NewReader(">P1\n" + line + "\n"))
		require.NoError(t, err)
		require.Len(t, set.Records[0].Domains, 1)

		got := set.Records[0].Domains[0].Span
		if got != tt.want {
			t.Errorf("span for %d..%d = %v, want %v", tt.left, tt.right, got, tt.want)
		}
		if got.Start > got.End {
			t.Errorf("span %v is decreasing", got)
		}
	}
}

func Test_Parse_idempotent(t *testing.T) {
	first, err := Parse(strings.NewReader(ubiquitin))
	require.NoError(t, err)
	second, err := Parse(strings.NewReader(ubiquitin))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func Test_Parse_maxLength(t *testing.T) {
	input := `>A
A	50	PF1	1	10	x	ACCESSORY
>B
B	200	PF1	1	10	x	ACCESSORY
>C
C	120	PF1	1	10	x	ACCESSORY
`
	set, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	want := 0
	for _, r := range set.Records {
		if r.Length > want {
			want = r.Length
		}
	}
	assert.Equal(t, 200, want)
	assert.Equal(t, want, set.MaxLength)
}

func Test_Parse_ignoresOtherShapes(t *testing.T) {
	input := `>A
# a comment
A	50	PF1	1
A	50	PF1	1	10	x	ACCESSORY	extra	columns

A	50	PF1	1	10	x	ACCESSORY
`
	set, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, set.Records, 1)
	assert.Len(t, set.Records[0].Domains, 1)
	assert.Empty(t, set.Errors)
}

func Test_Parse_formatErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kept    []string
		line    int
		record  string
		wantErr error
	}{
		{
			"non-numeric length",
			">A\nA\tlots\tPF1\t1\t10\tx\tACCESSORY\n>B\nB\t50\tPF1\t1\t10\tx\tACCESSORY\n",
			[]string{"B"},
			2,
			"A",
			nil,
		},
		{
			"non-numeric position",
			">A\nA\t50\tPF1\t1\t10\tx\tACCESSORY\nA\t50\tPF1\tone\t10\tx\tACCESSORY\n>B\n",
			[]string{"B"},
			3,
			"A",
			nil,
		},
		{
			"left after right",
			">A\nA\t50\tPF1\t20\t10\tx\tACCESSORY\n>B\n",
			[]string{"B"},
			2,
			"A",
			ErrSpan,
		},
		{
			"zero length",
			">A\nA\t0\tPF1\t1\t10\tx\tACCESSORY\n>B\n",
			[]string{"B"},
			2,
			"A",
			ErrLength,
		},
		{
			"header without name",
			">A\n>\nX\t50\tPF1\t1\t10\tx\tACCESSORY\n>B\n",
			[]string{"A", "B"},
			2,
			"",
			ErrNoName,
		},
		{
			"row before header",
			"X\t50\tPF1\t1\t10\tx\tACCESSORY\n>B\n",
			[]string{"B"},
			1,
			"",
			ErrNoRecord,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)

			kept := []string{}
			for _, r := range set.Records {
				kept = append(kept, r.ID)
			}
			assert.Equal(t, tt.kept, kept)

			require.Len(t, set.Errors, 1)
			var fe *FormatError
			require.True(t, errors.As(set.Errors[0], &fe))
			assert.Equal(t, tt.line, fe.Line)
			assert.Equal(t, tt.record, fe.Record)
			if tt.wantErr != nil {
				assert.ErrorIs(t, set.Errors[0], tt.wantErr)
			}
		})
	}
}

func Test_Parse_lengthMismatch(t *testing.T) {
	input := `>A
A	50	PF1	1	10	x	ACCESSORY
A	60	PF1	11	20	y	ACCESSORY
A	70	PF1	21	30	z	ACCESSORY
`
	set, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, set.Records, 1)

	assert.Equal(t, 70, set.Records[0].Length)
	assert.Len(t, set.Warnings, 1)
	assert.Equal(t, 70, set.MaxLength)
}

func Test_Domain_feature(t *testing.T) {
	set, err := Parse(strings.NewReader(">P1 TypeA\nP1\t100\tSSFX\t10\t20\tDomX\tFAMILY-DEFINING\n"))
	require.NoError(t, err)

	r := set.Records[0]
	d := r.Domains[0]
	assert.Equal(t, 9, d.Start())
	assert.Equal(t, 20, d.End())
	assert.Equal(t, 11, d.Len())
	assert.Equal(t, "DomX", d.Name())
	assert.Equal(t, "SSFX", d.Description())
	assert.Equal(t, 14.0, d.Span.Mid())
	assert.Equal(t, 10, d.Span.Width())
	assert.Same(t, r, d.Location())

	assert.Equal(t, 100, r.End())
	assert.Equal(t, "TypeA", r.Description())
	assert.Nil(t, r.Location())
	assert.Nil(t, Domain{}.Location())
}

func Test_ParseFile(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "domains.txt")
	require.NoError(t, os.WriteFile(plain, []byte(ubiquitin), 0644))

	// gzipped, without a .gz suffix to check the magic number
	zipped := filepath.Join(dir, "domains.dat")
	fh, err := os.Create(zipped)
	require.NoError(t, err)
	zw := gzip.NewWriter(fh)
	_, err = zw.Write([]byte(ubiquitin))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, fh.Close())

	for _, path := range []string{plain, zipped} {
		set, err := ParseFile(path)
		require.NoError(t, err, path)
		assert.Len(t, set.Records, 4, path)
	}

	_, err = ParseFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
