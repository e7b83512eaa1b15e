package texture

import (
	"image"
	"image/color"
)

// Image is a texture exposed as an image.Image. Pix holds the pixel data
// exactly as it is stored in the data file, top row first.
type Image struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

// NewImage returns a width by width Image over pix. If pix is too short it
// is copied and padded with zeroes.
func NewImage(width int, pix []byte) *Image {
	n := width * width * 2
	if len(pix) < n {
		b := make([]byte, n)
		copy(b, pix)
		pix = b
	}
	return &Image{
		Pix:    pix[:n],
		Stride: width * 2,
		Rect:   image.Rect(0, 0, width, width),
	}
}

// ColorModel implements image.Image
func (m *Image) ColorModel() color.Model {
	return RGB555Model
}

// Bounds implements image.Image
func (m *Image) Bounds() image.Rectangle {
	return m.Rect
}

// PixOffset returns the index of the first byte of the pixel at (x, y)
func (m *Image) PixOffset(x, y int) int {
	return (y-m.Rect.Min.Y)*m.Stride + (x-m.Rect.Min.X)*2
}

// At implements image.Image
func (m *Image) At(x, y int) color.Color {
	return m.RGB555At(x, y)
}

// RGB555At returns the pixel at (x, y)
func (m *Image) RGB555At(x, y int) Color {
	if !(image.Point{x, y}.In(m.Rect)) {
		return 0
	}
	i := m.PixOffset(x, y)
	return Color(uint16(m.Pix[i]) | uint16(m.Pix[i+1])<<8)
}

// Set stores c at (x, y), converting it if needed
func (m *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(m.Rect)) {
		return
	}
	i := m.PixOffset(x, y)
	v := RGB555Model.Convert(c).(Color)
	m.Pix[i] = byte(v)
	m.Pix[i+1] = byte(v >> 8)
}
