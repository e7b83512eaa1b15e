package texture

import (
	"bytes"
	"errors"
	"io"
)

type nopCloser struct {
	*bytes.Buffer
	closed  bool
	aborted bool
}

func (n *nopCloser) Abort() {
	n.aborted = true
}

func (n *nopCloser) Close() error {
	n.closed = true
	return nil
}

type memSink map[int]*nopCloser

func (m memSink) Create(entry int) (io.WriteCloser, error) {
	w := &nopCloser{Buffer: new(bytes.Buffer)}
	m[entry] = w
	return w, nil
}

var errBroken = errors.New("broken")

type brokenWriter struct {
	closed  bool
	aborted bool
}

func (b *brokenWriter) Abort() {
	b.aborted = true
}

func (b *brokenWriter) Write(p []byte) (int, error) {
	return 0, errBroken
}

func (b *brokenWriter) Close() error {
	b.closed = true
	return nil
}

func index(records ...Record) []byte {
	b := new(bytes.Buffer)
	for _, r := range records {
		rb, _ := r.MarshalBinary()
		b.Write(rb)
	}
	return b.Bytes()
}

// pattern returns width*width 16-bit pixels where each pixel encodes its own
// row and column
func pattern(width int) []byte {
	b := make([]byte, width*width*2)
	for y := 0; y < width; y++ {
		for x := 0; x < width; x++ {
			v := uint16(y*width + x)
			i := (y*width + x) * 2
			b[i] = byte(v)
			b[i+1] = byte(v >> 8)
		}
	}
	return b
}
