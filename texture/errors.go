package texture

import (
	"errors"
	"fmt"
)

var errNotOpen = errors.New("stream not open")

// OpenError is returned when either half of the archive is unavailable
type OpenError struct {
	Name string // "index" or "data"
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unable to open the %s file: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("unable to open the %s file: %s: %v", e.Name, e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// ShortReadError is returned when the data file holds fewer bytes at an
// offset than the index record declares
type ShortReadError struct {
	Entry  int
	Offset uint32
	Want   uint32
	Got    int64
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("texture: entry %#04x: short read at offset %#x, wanted %d bytes, got %d", e.Entry, e.Offset, e.Want, e.Got)
}

// WriteError is returned when an output target for an entry fails
type WriteError struct {
	Entry int
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("texture: entry %#04x: write failed: %v", e.Entry, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
