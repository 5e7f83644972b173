package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// loadFont parses the font labels are drawn in.
func loadFont() (*opentype.Font, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return fnt, nil
}

// pngEncoder rasterises figures.
type pngEncoder struct {
	font *opentype.Font
}

func (e *pngEncoder) encode(w io.Writer, fig *Figure) error {
	img := image.NewRGBA(image.Rect(0, 0, fig.Width, fig.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	// faces by point size, closed once the figure is drawn
	faces := map[float64]font.Face{}
	defer func() {
		for _, f := range faces {
			f.Close()
		}
	}()

	for _, it := range fig.Items() {
		if it.Rect != nil {
			e.rect(img, fig, it.Rect)
			continue
		}

		face, ok := faces[it.Text.Size]
		if !ok {
			var err error
			face, err = opentype.NewFace(e.font, &opentype.FaceOptions{
				Size:    it.Text.Size,
				DPI:     DPI,
				Hinting: font.HintingFull,
			})
			if err != nil {
				return fmt.Errorf("failed to make %vpt font: %w", it.Text.Size, err)
			}
			faces[it.Text.Size] = face
		}
		e.text(img, fig, it.Text, face)
	}

	return png.Encode(w, img)
}

// rect fills the pixels covered by r and outlines them with its edge colour.
func (e *pngEncoder) rect(img *image.RGBA, fig *Figure, r *Rect) {
	x0 := int(math.Round(fig.X(r.X)))
	x1 := int(math.Round(fig.X(r.X + r.W)))
	y0 := int(math.Round(fig.Y(r.Y + r.H)))
	y1 := int(math.Round(fig.Y(r.Y)))

	// keep zero width domains visible
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	bounds := image.Rect(x0, y0, x1, y1)

	if r.Fill != nil {
		draw.Draw(img, bounds, image.NewUniform(r.Fill), image.Point{}, draw.Over)
	}
	if r.Edge != nil {
		edge := image.NewUniform(r.Edge)
		for _, side := range []image.Rectangle{
			image.Rect(x0, y0, x1, y0+1),
			image.Rect(x0, y1-1, x1, y1),
			image.Rect(x0, y0, x0+1, y1),
			image.Rect(x1-1, y0, x1, y1),
		} {
			draw.Draw(img, side, edge, image.Point{}, draw.Over)
		}
	}
}

// text draws t anchored by its alignment.
func (e *pngEncoder) text(img *image.RGBA, fig *Figure, t *Text, face font.Face) {
	x := fig.X(t.X)
	y := fig.Y(t.Y)

	width := float64(font.MeasureString(face, t.S)) / 64
	switch t.HAlign {
	case Center:
		x -= width / 2
	case Right:
		x -= width
	}

	if t.VAlign == Middle {
		m := face.Metrics()
		y += float64(m.Ascent-m.Descent) / 64 / 2
	}

	c := t.Color
	if c == nil {
		c = color.Black
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(t.S)
}
