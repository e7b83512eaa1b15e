package texture

import (
	"encoding/binary"
	"errors"
)

var errRecordSize = errors.New("texture: record must be 12 bytes")

// Record is a single index entry
type Record struct {
	Offset uint32
	Length uint32
	Flag   uint32
}

// Valid reports whether the record points at pixel data
func (r Record) Valid() bool {
	return r.Offset != unused && r.Length != 0 && r.Length != unused
}

// Width returns the width, and therefore height, of the texture in pixels
func (r Record) Width() int {
	if r.Flag == flagLarge {
		return LargeWidth
	}
	return SmallWidth
}

// MarshalBinary encodes the record as it is stored in the index
func (r Record) MarshalBinary() ([]byte, error) {
	b := make([]byte, RecordSize)
	binary.LittleEndian.PutUint32(b[0:], r.Offset)
	binary.LittleEndian.PutUint32(b[4:], r.Length)
	binary.LittleEndian.PutUint32(b[8:], r.Flag)
	return b, nil
}

// UnmarshalBinary decodes a record from exactly RecordSize bytes
func (r *Record) UnmarshalBinary(b []byte) error {
	if len(b) != RecordSize {
		return errRecordSize
	}
	r.Offset = binary.LittleEndian.Uint32(b[0:])
	r.Length = binary.LittleEndian.Uint32(b[4:])
	r.Flag = binary.LittleEndian.Uint32(b[8:])
	return nil
}
