package texture

import (
	"bufio"
	"errors"
	"io"
	"log"

	"github.com/bodgit/uotex/bitmap"
)

// Sink returns somewhere to write the output for a given entry number
type Sink interface {
	Create(entry int) (io.WriteCloser, error)
}

// Aborter is implemented by targets that can discard what has been written
// to them. Abort is called before Close when an entry fails.
type Aborter interface {
	Abort()
}

// SinkFunc adapts a function to a Sink
type SinkFunc func(entry int) (io.WriteCloser, error)

// Create calls f(entry)
func (f SinkFunc) Create(entry int) (io.WriteCloser, error) {
	return f(entry)
}

// Converter writes every valid texture in an archive as a bitmap
type Converter struct {
	// Logger, if set, receives progress and skipped entries
	Logger *log.Logger

	// SkipShortReads skips entries whose pixel data is truncated rather
	// than failing the run
	SkipShortReads bool

	// Encode, if set, is used in place of WriteBitmap
	Encode func(w io.Writer, e *Entry) error
}

// ConvertAll converts every texture using a default Converter
func ConvertAll(index io.Reader, data io.ReadSeeker, sink Sink) (int, error) {
	var c Converter
	return c.ConvertAll(index, data, sink)
}

func (c *Converter) logf(format string, v ...interface{}) {
	if c.Logger != nil {
		c.Logger.Printf(format, v...)
	}
}

// ConvertAll reads each record from index, fetches its pixel data from
// data and writes a bitmap to the target that sink returns for its entry
// number.
// It returns the number of records processed, both valid and invalid.
// A nil index, data or sink is an *OpenError.
func (c *Converter) ConvertAll(index io.Reader, data io.ReadSeeker, sink Sink) (int, error) {
	r, err := NewReader(index, data)
	if err != nil {
		return 0, err
	}
	if sink == nil {
		return 0, &OpenError{Name: "output", Err: errNotOpen}
	}

	for {
		e, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			var sre *ShortReadError
			if c.SkipShortReads && errors.As(err, &sre) {
				c.logf("Skipping %v\n", err)
				continue
			}
			return r.Count(), err
		}

		if !e.Record.Valid() {
			continue
		}

		if err := c.writeEntry(e, sink); err != nil {
			return r.Count(), err
		}
		c.logf("Wrote entry %#04x (%dx%[2]d)\n", e.Number, e.Record.Width())
	}

	return r.Count(), nil
}

func headers(width int) (bitmap.FileHeader, bitmap.InfoHeader) {
	ih := bitmap.NewInfoHeader(int32(width), int32(width), BitCount)
	size := ih.RowSize() * width
	ih.SizeImage = uint32(size)

	fh := bitmap.NewFileHeader()
	fh.Size = uint32(bitmap.FileHeaderSize + bitmap.InfoHeaderSize + size)
	fh.OffBits = bitmap.DataOffset

	return fh, ih
}

// WriteBitmap writes a single entry as a bitmap to w
func WriteBitmap(w io.Writer, e *Entry) error {
	width := e.Record.Width()
	fh, ih := headers(width)

	pad := ih.PadBytes()
	row := ih.RowSize()

	// Never read past the end of a block shorter than the image
	pix := e.Pixels
	if n := row * width; len(pix) < n {
		b := make([]byte, n)
		copy(b, pix)
		pix = b
	}

	if err := fh.Save(w); err != nil {
		return err
	}
	if err := ih.Save(w); err != nil {
		return err
	}

	zero := make([]byte, pad)
	for i := 0; i < width; i++ {
		// Rows are stored bottom-up
		offset := (width - i - 1) * row
		if _, err := w.Write(pix[offset : offset+width*2]); err != nil {
			return err
		}
		if _, err := w.Write(zero); err != nil {
			return err
		}
	}

	return nil
}

func (c *Converter) writeEntry(e *Entry, sink Sink) (err error) {
	encode := c.Encode
	if encode == nil {
		encode = WriteBitmap
	}

	f, err := sink.Create(e.Number)
	if err != nil {
		return &WriteError{Entry: e.Number, Err: err}
	}
	defer func() {
		if a, ok := f.(Aborter); ok && err != nil {
			a.Abort()
		}
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &WriteError{Entry: e.Number, Err: cerr}
		}
	}()

	w := bufio.NewWriter(f)
	if err := encode(w, e); err != nil {
		return &WriteError{Entry: e.Number, Err: err}
	}
	if err := w.Flush(); err != nil {
		return &WriteError{Entry: e.Number, Err: err}
	}

	return nil
}
