package uotex

import (
	"errors"
	"image/gif"
	"image/png"
	"io"
	"runtime"
	"strings"

	"github.com/bodgit/uotex/texture"
	"github.com/ericpauley/go-quantize/quantize"
)

const (
	// DefaultIndex is the name of the index file within the archive root
	DefaultIndex = "texidx.mul"

	// DefaultData is the name of the data file within the archive root
	DefaultData = "texmaps.mul"
)

// Format selects how each texture is written
type Format int

// Supported output formats
const (
	FormatBMP Format = iota
	FormatPNG
	FormatGIF
)

var formatNames = map[Format]string{
	FormatBMP: "bmp",
	FormatPNG: "png",
	FormatGIF: "gif",
}

var errUnknownFormat = errors.New("unknown format")

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return "unknown"
}

// ParseFormat returns the Format named s, ignoring case
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if strings.EqualFold(s, name) {
			return f, nil
		}
	}
	return 0, errUnknownFormat
}

func (f Format) encoder() (func(io.Writer, *texture.Entry) error, error) {
	switch f {
	case FormatBMP:
		return texture.WriteBitmap, nil
	case FormatPNG:
		return func(w io.Writer, e *texture.Entry) error {
			return png.Encode(w, texture.NewImage(e.Record.Width(), e.Pixels))
		}, nil
	case FormatGIF:
		return func(w io.Writer, e *texture.Entry) error {
			// 15-bit color needs reducing to a 256 color palette
			return gif.Encode(w, texture.NewImage(e.Record.Width(), e.Pixels), &gif.Options{
				NumColors: 256,
				Quantizer: &quantize.MedianCutQuantizer{},
			})
		}, nil
	default:
		return nil, errUnknownFormat
	}
}

// Config holds everything needed to extract an archive
type Config struct {
	// Root is the directory holding the archive files
	Root string
	// Index and Data are the archive file names, relative to Root
	Index string
	Data  string
	// Output is the directory the images are written to
	Output string
	Format Format
	// SkipShortReads skips truncated entries instead of failing
	SkipShortReads bool
	// Catalog, if set, is the path of a database recording each image
	Catalog string
}

// DefaultConfig returns a Config for the default archive location
func DefaultConfig() Config {
	return Config{
		Root:   DefaultRoot(),
		Index:  DefaultIndex,
		Data:   DefaultData,
		Output: ".",
		Format: FormatBMP,
	}
}

// DefaultRoot returns where the archive files are usually found
func DefaultRoot() string {
	if runtime.GOOS == "windows" {
		return `C:\Program Files (x86)\Electronic Arts\Ultima Online Classic`
	}
	return "uodata"
}
