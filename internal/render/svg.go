package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
)

// svgEncoder writes figures as SVG documents, one element per item.
type svgEncoder struct{}

func (e *svgEncoder) encode(w io.Writer, fig *Figure) error {
	var b bytes.Buffer

	b.WriteString(xml.Header)
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		fig.Width, fig.Height, fig.Width, fig.Height,
	)
	b.WriteString(`<rect x="0" y="0" width="100%" height="100%" fill="white"/>` + "\n")

	for _, it := range fig.Items() {
		if it.Rect != nil {
			e.rect(&b, fig, it.Rect)
		} else {
			e.text(&b, fig, it.Text)
		}
	}
	b.WriteString("</svg>\n")

	_, err := w.Write(b.Bytes())
	return err
}

func (e *svgEncoder) rect(b *bytes.Buffer, fig *Figure, r *Rect) {
	x := fig.X(r.X)
	y := fig.Y(r.Y + r.H)
	fmt.Fprintf(b, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"`,
		x, y, fig.X(r.X+r.W)-x, fig.Y(r.Y)-y, svgColor(r.Fill))
	if r.Edge != nil {
		fmt.Fprintf(b, ` stroke="%s" stroke-width="%.2f"`, svgColor(r.Edge), px(0.5))
	}
	b.WriteString("/>\n")
}

func (e *svgEncoder) text(b *bytes.Buffer, fig *Figure, t *Text) {
	anchor := "start"
	switch t.HAlign {
	case Center:
		anchor = "middle"
	case Right:
		anchor = "end"
	}
	baseline := "alphabetic"
	if t.VAlign == Middle {
		baseline = "central"
	}

	fmt.Fprintf(b,
		`<text x="%.2f" y="%.2f" font-family="sans-serif" font-size="%.2f" fill="%s" text-anchor="%s" dominant-baseline="%s">`,
		fig.X(t.X), fig.Y(t.Y), px(t.Size), svgColor(t.Color), anchor, baseline,
	)
	xml.EscapeText(b, []byte(t.S))
	b.WriteString("</text>\n")
}

// svgColor formats a colour as "#rrggbb", "none" for nil.
func svgColor(c color.Color) string {
	if c == nil {
		return "none"
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
