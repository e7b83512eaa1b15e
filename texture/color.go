package texture

import "image/color"

// Color is a single texture pixel, packed as X RRRRR GGGGG BBBBB
type Color uint16

func expand(v uint16) uint32 {
	// 5 bits to 8 bits, then 8 bits to 16 bits
	c := uint32(v<<3 | v>>2)
	return c<<8 | c
}

// RGBA implements color.Color. The unused top bit is ignored and the color
// is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = expand(uint16(c) >> 10 & 0x1f)
	g = expand(uint16(c) >> 5 & 0x1f)
	b = expand(uint16(c) & 0x1f)
	a = 0xffff
	return
}

// RGB555Model converts any color to a Color
var RGB555Model = color.ModelFunc(rgb555Model)

func rgb555Model(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Color(r>>11<<10 | g>>11<<5 | b>>11)
}
