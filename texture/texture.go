/*
Package texture implements a reader for the texture archive pair made up of
an index file and a data file, and a converter that writes each texture as a
16-bit bitmap.

The index is a sequence of 12 byte records, each holding three little-endian
uint32 values: the offset of the pixel data within the data file, its length
in bytes, and a flag that is 1 for a 128 by 128 texture and anything else for
a 64 by 64 texture. A record with an offset of 0xffffffff, or a length of 0
or 0xffffffff, is unused.

The pixel data is stored top-down as little-endian 16-bit values with the
top bit unused followed by 5 bits each of red, green and blue.
*/
package texture

const (
	// RecordSize is the size in bytes of each index record
	RecordSize = 12

	// SmallWidth and LargeWidth are the only texture sizes
	SmallWidth = 64
	LargeWidth = 128

	// BitCount is the color depth of both the textures and the bitmaps
	BitCount = 16

	flagLarge = 1
	unused    = 0xffffffff

	// Enough to cover the largest texture without trusting the index
	maxPrealloc = LargeWidth * LargeWidth * BitCount / 8
)
