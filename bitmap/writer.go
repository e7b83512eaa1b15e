package bitmap

import (
	"encoding/binary"
	"io"
)

// FileHeader is the bitmap file header
type FileHeader struct {
	Type     uint16
	Size     uint32
	Reserved [2]uint16
	OffBits  uint32
}

// InfoHeader is the BITMAPINFOHEADER describing the pixel data
type InfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

// NewFileHeader returns a file header with the magic set and everything else
// zeroed
func NewFileHeader() FileHeader {
	return FileHeader{
		Type: Magic,
	}
}

// NewInfoHeader returns an info header for an uncompressed image without a
// palette. A depth of 0 selects DefaultBitCount.
func NewInfoHeader(width, height int32, depth uint16) InfoHeader {
	if depth == 0 {
		depth = DefaultBitCount
	}
	return InfoHeader{
		Size:          InfoHeaderSize,
		Width:         width,
		Height:        height,
		Planes:        1,
		BitCount:      depth,
		XPelsPerMeter: PelsPerMeter,
		YPelsPerMeter: PelsPerMeter,
	}
}

func (h InfoHeader) bytesPerPixel() int {
	if h.BitCount >= 8 {
		return int(h.BitCount) / 8
	}
	return 1
}

// PadBytes returns the number of zero bytes written after each row. This is
// the row length modulo 4, which is only a true alignment pad when the row
// length is already a multiple of 4 or leaves a remainder of 2.
func (h InfoHeader) PadBytes() int {
	return int(h.Width) * h.bytesPerPixel() % 4
}

// RowSize returns the number of bytes used by a single row including the
// padding
func (h InfoHeader) RowSize() int {
	return int(h.Width)*h.bytesPerPixel() + h.PadBytes()
}

// Save writes the file header to w
func (h FileHeader) Save(w io.Writer) error {
	var b [FileHeaderSize]byte
	binary.LittleEndian.PutUint16(b[0:], h.Type)
	binary.LittleEndian.PutUint32(b[2:], h.Size)
	binary.LittleEndian.PutUint16(b[6:], h.Reserved[0])
	binary.LittleEndian.PutUint16(b[8:], h.Reserved[1])
	binary.LittleEndian.PutUint32(b[10:], h.OffBits)
	_, err := w.Write(b[:])
	return err
}

// Save writes the info header to w
func (h InfoHeader) Save(w io.Writer) error {
	var b [InfoHeaderSize]byte
	binary.LittleEndian.PutUint32(b[0:], h.Size)
	binary.LittleEndian.PutUint32(b[4:], uint32(h.Width))
	binary.LittleEndian.PutUint32(b[8:], uint32(h.Height))
	binary.LittleEndian.PutUint16(b[12:], h.Planes)
	binary.LittleEndian.PutUint16(b[14:], h.BitCount)
	binary.LittleEndian.PutUint32(b[16:], h.Compression)
	binary.LittleEndian.PutUint32(b[20:], h.SizeImage)
	binary.LittleEndian.PutUint32(b[24:], uint32(h.XPelsPerMeter))
	binary.LittleEndian.PutUint32(b[28:], uint32(h.YPelsPerMeter))
	binary.LittleEndian.PutUint32(b[32:], h.ClrUsed)
	binary.LittleEndian.PutUint32(b[36:], h.ClrImportant)
	_, err := w.Write(b[:])
	return err
}
