package render

import (
	"image/color"
	"sort"
)

// DPI of the output images. Text sizes are in points.
const DPI = 100

// HAlign is the horizontal anchor of a text label.
type HAlign int

const (
	// Left aligns the start of the text with its x
	Left HAlign = iota
	// Center centers the text on its x
	Center
	// Right aligns the end of the text with its x
	Right
)

// VAlign is the vertical anchor of a text label.
type VAlign int

const (
	// Baseline puts the text's baseline at its y
	Baseline VAlign = iota
	// Middle centers the text on its y
	Middle
)

// draw order, higher is drawn later
const (
	zBackbone   = 1
	zBox        = 1
	zGreyBox    = 2
	zText       = 3
	zFamilyBox  = 100000
	zFamilyText = 100001
)

// Rect is a rectangle in data coordinates, (X, Y) being its bottom left.
type Rect struct {
	X, Y, W, H float64

	// Fill is nil for an outline
	Fill color.Color

	// Edge is nil for no outline
	Edge color.Color

	Z int
}

// Text is a label in data coordinates.
type Text struct {
	X, Y   float64
	S      string
	Size   float64
	Color  color.Color
	HAlign HAlign
	VAlign VAlign
	Z      int
}

// Item is one thing drawn on a Figure, either a Rect or a Text.
type Item struct {
	Rect *Rect
	Text *Text
}

func (i Item) z() int {
	if i.Rect != nil {
		return i.Rect.Z
	}
	return i.Text.Z
}

// Figure is the drawing for one image: a list of rectangles and labels
// in data coordinates and the window of data coordinates that's visible.
// The x axis is residues, the y axis runs from YMin at the bottom to YMax.
type Figure struct {
	// Width and Height of the image in pixels
	Width, Height int

	XMin, XMax float64
	YMin, YMax float64

	items []Item
}

// NewFigure returns an empty figure of w by h pixels showing the data
// window [xmin, xmax] by [ymin, ymax].
func NewFigure(w, h int, xmin, xmax, ymin, ymax float64) *Figure {
	return &Figure{
		Width:  w,
		Height: h,
		XMin:   xmin,
		XMax:   xmax,
		YMin:   ymin,
		YMax:   ymax,
	}
}

// AddRect adds a rectangle to the figure.
func (f *Figure) AddRect(r Rect) {
	f.items = append(f.items, Item{Rect: &r})
}

// AddText adds a label to the figure.
func (f *Figure) AddText(t Text) {
	if t.Color == nil {
		t.Color = color.Black
	}
	f.items = append(f.items, Item{Text: &t})
}

// Items returns everything on the figure in draw order: by Z, then in the
// order they were added.
func (f *Figure) Items() []Item {
	items := append([]Item(nil), f.items...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].z() < items[j].z()
	})
	return items
}

// Rects returns the rectangles on the figure in the order they were added.
func (f *Figure) Rects() []Rect {
	var rects []Rect
	for _, it := range f.items {
		if it.Rect != nil {
			rects = append(rects, *it.Rect)
		}
	}
	return rects
}

// Texts returns the labels on the figure in the order they were added.
func (f *Figure) Texts() []Text {
	var texts []Text
	for _, it := range f.items {
		if it.Text != nil {
			texts = append(texts, *it.Text)
		}
	}
	return texts
}

// X converts a data x coordinate to pixels from the left edge.
func (f *Figure) X(x float64) float64 {
	return (x - f.XMin) / (f.XMax - f.XMin) * float64(f.Width)
}

// Y converts a data y coordinate to pixels from the top edge.
func (f *Figure) Y(y float64) float64 {
	return (f.YMax - y) / (f.YMax - f.YMin) * float64(f.Height)
}

// Scale is the number of pixels per residue.
func (f *Figure) Scale() float64 {
	return float64(f.Width) / (f.XMax - f.XMin)
}

// points to pixels
func px(pt float64) float64 {
	return pt * DPI / 72
}
