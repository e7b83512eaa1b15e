/*
Package bitmap implements the two fixed headers of an uncompressed Windows
bitmap: the 14 byte file header and the 40 byte BITMAPINFOHEADER.

No color table is ever written so pixel data always starts at offset 54.
Rows are stored bottom-up and each row is followed by PadBytes zero bytes.
All fields are little-endian regardless of the host byte order.
*/
package bitmap

const (
	// Magic is "BM" read as a little-endian uint16
	Magic = 0x4d42

	// FileHeaderSize is the size in bytes of the file header
	FileHeaderSize = 14

	// InfoHeaderSize is the size in bytes of the info header
	InfoHeaderSize = 40

	// DataOffset is where pixel data starts when there is no palette
	DataOffset = FileHeaderSize + InfoHeaderSize

	// DefaultBitCount is used when no color depth is given
	DefaultBitCount = 16

	// PelsPerMeter is 72 DPI expressed in pixels per meter, 72 * 39.37
	// truncated
	PelsPerMeter = 2834
)
