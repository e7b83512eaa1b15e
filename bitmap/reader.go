package bitmap

import (
	"encoding/binary"
	"errors"
	"io"
)

var (
	// ErrNotEnough is returned when the headers are truncated
	ErrNotEnough = errors.New("bitmap: not enough header data")
	// ErrBadMagic is returned when the file does not start with "BM"
	ErrBadMagic = errors.New("bitmap: invalid magic")
	// ErrBadInfoSize is returned for anything other than a
	// BITMAPINFOHEADER
	ErrBadInfoSize = errors.New("bitmap: unsupported info header size")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrNotEnough
	}
	return err
}

// ReadHeaders reads and checks the file header and info header from r,
// leaving r positioned at the start of the pixel data
func ReadHeaders(r io.Reader) (FileHeader, InfoHeader, error) {
	var (
		fh  FileHeader
		ih  InfoHeader
		tmp [FileHeaderSize + InfoHeaderSize]byte
	)

	if err := readFull(r, tmp[:]); err != nil {
		return fh, ih, err
	}

	b := tmp[:FileHeaderSize]
	fh.Type = binary.LittleEndian.Uint16(b[0:])
	if fh.Type != Magic {
		return fh, ih, ErrBadMagic
	}
	fh.Size = binary.LittleEndian.Uint32(b[2:])
	fh.Reserved[0] = binary.LittleEndian.Uint16(b[6:])
	fh.Reserved[1] = binary.LittleEndian.Uint16(b[8:])
	fh.OffBits = binary.LittleEndian.Uint32(b[10:])

	b = tmp[FileHeaderSize:]
	ih.Size = binary.LittleEndian.Uint32(b[0:])
	if ih.Size != InfoHeaderSize {
		return fh, ih, ErrBadInfoSize
	}
	ih.Width = int32(binary.LittleEndian.Uint32(b[4:]))
	ih.Height = int32(binary.LittleEndian.Uint32(b[8:]))
	ih.Planes = binary.LittleEndian.Uint16(b[12:])
	ih.BitCount = binary.LittleEndian.Uint16(b[14:])
	ih.Compression = binary.LittleEndian.Uint32(b[16:])
	ih.SizeImage = binary.LittleEndian.Uint32(b[20:])
	ih.XPelsPerMeter = int32(binary.LittleEndian.Uint32(b[24:]))
	ih.YPelsPerMeter = int32(binary.LittleEndian.Uint32(b[28:]))
	ih.ClrUsed = binary.LittleEndian.Uint32(b[32:])
	ih.ClrImportant = binary.LittleEndian.Uint32(b[36:])

	return fh, ih, nil
}
