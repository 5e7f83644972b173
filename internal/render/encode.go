package render

import (
	"fmt"
	"io"
	"strings"
)

// Format is an image file format.
type Format int

const (
	// PNG raster images
	PNG Format = iota

	// SVG vector images
	SVG
)

// Ext is the file extension for the format.
func (f Format) Ext() string {
	if f == SVG {
		return ".svg"
	}
	return ".png"
}

func (f Format) String() string {
	return strings.TrimPrefix(f.Ext(), ".")
}

// encoder writes a Figure out as an image.
type encoder interface {
	encode(w io.Writer, fig *Figure) error
}

func (r *Renderer) encoder(f Format) (encoder, error) {
	switch f {
	case PNG:
		return &pngEncoder{font: r.font}, nil
	case SVG:
		return &svgEncoder{}, nil
	}
	return nil, fmt.Errorf("unknown image format %d", int(f))
}
