package collate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oaxiom/domain-draw/internal/palette"
	"github.com/oaxiom/domain-draw/internal/record"
)

const input = `>P1 E3
P1	100	SSF1	10	20	RING	FAMILY-DEFINING
P1	100	SM1	30	40	UBA	ACCESSORY
>P2 E3
P2	300	SSF1	10	20	RING	FAMILY-DEFINING
P2	300	PF1	50	90	HECT	FAMILY-DEFINING
>P3
P3	200	PF2	1	100	BTB	FAMILY-DEFINING
P3	200	PF3	101	150	Kelch
`

func Test_Paired(t *testing.T) {
	tests := []struct {
		name string
		i, n int
		want string
	}{
		{"one", 0, 1, "#a6cee3"},
		{"first of three", 0, 3, "#a6cee3"},
		{"second of three", 1, 3, "#fb9a99"},
		{"third of three", 2, 3, "#cab2d6"},
		{"last of twelve", 11, 12, "#b15928"},
		{"more than twelve", 24, 25, "#b15928"},
		{"none", 0, 0, "#a6cee3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, palette.Hex(Paired(tt.i, tt.n)))
		})
	}
}

func Test_Collate(t *testing.T) {
	set, err := record.Parse(strings.NewReader(input))
	require.NoError(t, err)

	report, err := Collate(set)
	require.NoError(t, err)

	assert.Equal(t, []Count{
		{"RING", 2},
		{"BTB", 1},
		{"HECT", 1},
	}, report.Counts)

	assert.Equal(t, Summary{
		Records:      3,
		MeanLength:   200,
		MedianLength: 200,
		MaxLength:    300,
		MeanDomains:  2,
	}, report.Summary)

	assert.Equal(t, map[string]string{
		"RING": "#a6cee3",
		"BTB":  "#fb9a99",
		"HECT": "#cab2d6",
	}, report.Palette.Palettes[PaletteName])
}

func Test_Collate_empty(t *testing.T) {
	report, err := Collate(&record.Set{})
	require.NoError(t, err)
	assert.Empty(t, report.Counts)
	assert.Equal(t, 0, report.Summary.Records)
}

func Test_Report_Write(t *testing.T) {
	set, err := record.Parse(strings.NewReader(input))
	require.NoError(t, err)
	report, err := Collate(set)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, report.Write(&out))

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "2   RING", lines[0])
	assert.Equal(t, "1   BTB", lines[1])
	assert.Contains(t, out.String(), "records: 3")
	assert.Contains(t, out.String(), "length: mean 200.0, median 200.0, max 300")

	// the palette section can be read back as a palette file
	yml := out.String()[strings.Index(out.String(), "palettes:"):]
	pals, err := palette.Decode(strings.NewReader(yml))
	require.NoError(t, err)
	p, err := pals.Palette(PaletteName)
	require.NoError(t, err)
	c, ok := p.Lookup("HECT")
	assert.True(t, ok)
	assert.Equal(t, "#cab2d6", palette.Hex(c))
}
