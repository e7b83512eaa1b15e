package uotex

import (
	"crypto/sha1"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/uotex/texture"
)

// Filename returns the name used for the image of the given entry
func Filename(entry int, format Format) string {
	return fmt.Sprintf("0x%04X.%s", entry, format)
}

type dirSink struct {
	dir    string
	format Format
}

func (s dirSink) Create(entry int) (io.WriteCloser, error) {
	f, err := os.Create(filepath.Join(s.dir, Filename(entry, s.format)))
	if err != nil {
		return nil, err
	}
	return &outputFile{File: f}, nil
}

// outputFile removes itself on Close if the entry was aborted or the close
// failed, so no partial image is left behind
type outputFile struct {
	*os.File
	aborted bool
}

func (f *outputFile) Abort() {
	f.aborted = true
}

func (f *outputFile) Close() error {
	err := f.File.Close()
	if err != nil || f.aborted {
		os.Remove(f.Name())
	}
	return err
}

// catalogSink records every completed image in the catalog
type catalogSink struct {
	sink    texture.Sink
	catalog *Catalog
	format  Format
}

func (s catalogSink) Create(entry int) (io.WriteCloser, error) {
	w, err := s.sink.Create(entry)
	if err != nil {
		return nil, err
	}
	return &hashWriter{
		w:       w,
		h:       sha1.New(),
		catalog: s.catalog,
		entry: CatalogEntry{
			Entry: entry,
			File:  Filename(entry, s.format),
		},
	}, nil
}

type hashWriter struct {
	w       io.WriteCloser
	h       hash.Hash
	catalog *Catalog
	entry   CatalogEntry
	aborted bool
}

func (w *hashWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.h.Write(p[:n])
	w.entry.Size += int64(n)
	return n, err
}

// Abort stops the entry being recorded and passes the abort on
func (w *hashWriter) Abort() {
	w.aborted = true
	if a, ok := w.w.(texture.Aborter); ok {
		a.Abort()
	}
}

func (w *hashWriter) Close() error {
	if err := w.w.Close(); err != nil || w.aborted {
		return err
	}
	w.entry.SHA1 = fmt.Sprintf("%X", w.h.Sum(nil))
	return w.catalog.Add(w.entry)
}
