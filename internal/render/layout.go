package render

// Size is an output image preset.
type Size int

const (
	// Full is the figure-sized image, with labels and a title
	Full Size = iota

	// Thumbnail is a small image with only the protein and its domains
	Thumbnail
)

// Dir is the directory images of this size are written to.
func (s Size) Dir() string {
	if s == Thumbnail {
		return "thumbs"
	}
	return "full"
}

func (s Size) String() string {
	if s == Thumbnail {
		return "thumbnail"
	}
	return "full"
}

// Geometry is the layout of one image. Vertical sizes are half-heights on
// a y axis running from -1 to 1.
type Geometry struct {
	// Width and Height of the image in pixels
	Width, Height int

	// XMin and XMax are the visible range of residues
	XMin, XMax float64

	// Pad1 is the space left of residue 0 and right of the protein's end
	Pad1 float64

	// Pad2 is the inset of the position numbers within a domain
	Pad2 float64

	// Line is the half-height of the protein's backbone
	Line float64

	// FamilyBox is the half-height of family defining domains
	FamilyBox float64

	// Box is the half-height of other domains
	Box float64

	// TitleSize is the font size of the title in points
	TitleSize float64

	// TitleLeft puts titles at the protein's start rather than its middle
	TitleLeft bool

	// Thumbnail images have no text
	Thumbnail bool
}

// NewGeometry returns the layout of an image for a protein of the length
// passed. Thumbnails and fixed images span the protein end-to-end.
// Otherwise the image spans maxLength, the longest protein in the batch, so
// every protein is drawn on the same scale.
func NewGeometry(size Size, fixed bool, length, maxLength int) Geometry {
	l := float64(length)

	if size == Thumbnail {
		return Geometry{
			Width:     150,
			Height:    30,
			XMin:      -l * 0.02,
			XMax:      l + l*0.02,
			Pad1:      l * 0.02,
			Pad2:      l * 0.003,
			Line:      0.16,
			FamilyBox: 0.5,
			Box:       0.4,
			Thumbnail: true,
		}
	}

	if fixed {
		return Geometry{
			Width:     700,
			Height:    100,
			XMin:      -l * 0.02,
			XMax:      l + l*0.02,
			Pad1:      l * 0.02,
			Pad2:      l * 0.003,
			Line:      0.02,
			FamilyBox: 0.25,
			Box:       0.2,
			TitleSize: 13,
		}
	}

	if maxLength < length {
		maxLength = length
	}
	m := float64(maxLength)
	return Geometry{
		Width:     2500,
		Height:    100,
		XMin:      -m * 0.01,
		XMax:      m + m*0.01,
		Pad1:      m * 0.01,
		Pad2:      m * 0.003,
		Line:      0.02,
		FamilyBox: 0.25,
		Box:       0.2,
		TitleSize: 13,
		TitleLeft: true,
	}
}
