package index

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette holds the pens used by Draw implementations.
type Palette struct {
	Point       color.Color
	PointRadius float64
	Vertical    color.Color // x splits
	Horizontal  color.Color // y splits
	LineRadius  float64
}

// DefaultPalette draws black points with red vertical and blue horizontal
// splitting lines.
func DefaultPalette() Palette {
	return Palette{
		Point:       colorful.Color{R: 0, G: 0, B: 0},
		PointRadius: 0.01,
		Vertical:    colorful.Hsv(0, 0.9, 0.85),
		Horizontal:  colorful.Hsv(220, 0.9, 0.85),
		LineRadius:  0.002,
	}
}

// MonoPalette draws everything in black, with splits in two shades of grey.
func MonoPalette() Palette {
	return Palette{
		Point:       colorful.Color{R: 0, G: 0, B: 0},
		PointRadius: 0.01,
		Vertical:    colorful.Hsv(0, 0, 0.35),
		Horizontal:  colorful.Hsv(0, 0, 0.6),
		LineRadius:  0.002,
	}
}
