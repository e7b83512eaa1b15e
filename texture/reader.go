package texture

import (
	"bytes"
	"fmt"
	"io"
)

// Entry is a single index record along with its pixel data. Pixels is nil
// for records that are not valid.
type Entry struct {
	Number int
	Record Record
	Pixels []byte
}

// Reader walks the index one record at a time, fetching the pixel data for
// each valid record from the data file
type Reader struct {
	index io.Reader
	data  io.ReadSeeker
	count int
	tmp   [RecordSize]byte
}

// NewReader returns a Reader over the given index and data streams
func NewReader(index io.Reader, data io.ReadSeeker) (*Reader, error) {
	if index == nil {
		return nil, &OpenError{Name: "index", Err: errNotOpen}
	}
	if data == nil {
		return nil, &OpenError{Name: "data", Err: errNotOpen}
	}
	return &Reader{
		index: index,
		data:  data,
	}, nil
}

// Count returns the number of complete records read so far, valid or not
func (r *Reader) Count() int {
	return r.count
}

// Next returns the next entry. It returns io.EOF once fewer than
// RecordSize bytes remain in the index. A *ShortReadError is returned along
// with the entry if the data file cannot supply every byte of the block; the
// entry is still counted.
func (r *Reader) Next() (*Entry, error) {
	if _, err := io.ReadFull(r.index, r.tmp[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, io.EOF
		}
		return nil, err
	}

	e := &Entry{Number: r.count}
	r.count++

	if err := e.Record.UnmarshalBinary(r.tmp[:]); err != nil {
		return nil, err
	}

	if !e.Record.Valid() {
		return e, nil
	}

	if _, err := r.data.Seek(int64(e.Record.Offset), io.SeekStart); err != nil {
		return e, fmt.Errorf("texture: entry %#04x: %w", e.Number, err)
	}

	// Grow the buffer as data arrives rather than trusting the length
	size := int(e.Record.Length)
	if size > maxPrealloc {
		size = maxPrealloc
	}
	b := bytes.NewBuffer(make([]byte, 0, size))

	n, err := io.CopyN(b, r.data, int64(e.Record.Length))
	switch err {
	case nil:
	case io.EOF:
		return e, &ShortReadError{
			Entry:  e.Number,
			Offset: e.Record.Offset,
			Want:   e.Record.Length,
			Got:    n,
		}
	default:
		return e, fmt.Errorf("texture: entry %#04x: %w", e.Number, err)
	}

	e.Pixels = b.Bytes()

	return e, nil
}
