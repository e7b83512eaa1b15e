package uotex

import (
	"bytes"
	"errors"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/uotex/texture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArchive(t *testing.T, dir string, data []byte, records ...texture.Record) {
	b := new(bytes.Buffer)
	for _, r := range records {
		rb, err := r.MarshalBinary()
		require.Nil(t, err)
		b.Write(rb)
	}
	require.Nil(t, os.WriteFile(filepath.Join(dir, DefaultIndex), b.Bytes(), 0666))
	require.Nil(t, os.WriteFile(filepath.Join(dir, DefaultData), data, 0666))
}

func testConfig(t *testing.T) Config {
	cfg := DefaultConfig()
	cfg.Root = t.TempDir()
	cfg.Output = filepath.Join(t.TempDir(), "out")
	return cfg
}

func extract(t *testing.T, cfg Config) (int, error) {
	x, err := New(cfg, nil)
	require.Nil(t, err)
	defer x.Close()
	return x.Extract()
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "0x0000.bmp", Filename(0, FormatBMP))
	assert.Equal(t, "0x00FF.png", Filename(255, FormatPNG))
	assert.Equal(t, "0x1A2B3.gif", Filename(0x1a2b3, FormatGIF))
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{FormatBMP, FormatPNG, FormatGIF} {
		got, err := ParseFormat(f.String())
		require.Nil(t, err)
		assert.Equal(t, f, got)
	}

	f, err := ParseFormat("GIF")
	require.Nil(t, err)
	assert.Equal(t, FormatGIF, f)

	_, err = ParseFormat("tga")
	assert.Equal(t, errUnknownFormat, err)
}

func TestExtract(t *testing.T) {
	cfg := testConfig(t)
	writeArchive(t, cfg.Root, make([]byte, 32768),
		texture.Record{Offset: 0xffffffff},
		texture.Record{Offset: 0, Length: 8192, Flag: 0},
		texture.Record{Offset: 0, Length: 32768, Flag: 1},
	)

	n, err := extract(t, cfg)
	require.Nil(t, err)
	assert.Equal(t, 3, n)

	files, err := os.ReadDir(cfg.Output)
	require.Nil(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "0x0001.bmp", files[0].Name())
	assert.Equal(t, "0x0002.bmp", files[1].Name())

	info, err := files[0].Info()
	require.Nil(t, err)
	assert.Equal(t, int64(8246), info.Size())

	info, err = files[1].Info()
	require.Nil(t, err)
	assert.Equal(t, int64(54+128*128*2), info.Size())
}

func TestExtractOpenError(t *testing.T) {
	cfg := testConfig(t)

	_, err := extract(t, cfg)
	var oe *texture.OpenError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, "index", oe.Name)
	assert.Equal(t, filepath.Join(cfg.Root, DefaultIndex), oe.Path)
	assert.Contains(t, err.Error(), oe.Path)

	require.Nil(t, os.WriteFile(filepath.Join(cfg.Root, DefaultIndex), nil, 0666))

	_, err = extract(t, cfg)
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, "data", oe.Name)
	assert.Equal(t, filepath.Join(cfg.Root, DefaultData), oe.Path)
}

func TestExtractUnknownFormat(t *testing.T) {
	cfg := testConfig(t)
	cfg.Format = Format(42)

	_, err := extract(t, cfg)
	assert.Equal(t, errUnknownFormat, err)
}

func TestExtractPNG(t *testing.T) {
	cfg := testConfig(t)
	cfg.Format = FormatPNG

	data := make([]byte, 8192)
	data[0], data[1] = 0x00, 0x7c
	writeArchive(t, cfg.Root, data, texture.Record{Offset: 0, Length: 8192})

	_, err := extract(t, cfg)
	require.Nil(t, err)

	f, err := os.Open(filepath.Join(cfg.Output, "0x0000.png"))
	require.Nil(t, err)
	defer f.Close()

	m, err := png.Decode(f)
	require.Nil(t, err)
	assert.Equal(t, 64, m.Bounds().Dx())
	assert.Equal(t, 64, m.Bounds().Dy())

	r, g, b, _ := m.At(0, 0).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0}, []uint32{r, g, b})
}

func TestExtractGIF(t *testing.T) {
	cfg := testConfig(t)
	cfg.Format = FormatGIF

	data := make([]byte, 32768)
	for i := range data {
		data[i] = byte(i)
	}
	writeArchive(t, cfg.Root, data, texture.Record{Offset: 0, Length: 32768, Flag: 1})

	_, err := extract(t, cfg)
	require.Nil(t, err)

	f, err := os.Open(filepath.Join(cfg.Output, "0x0000.gif"))
	require.Nil(t, err)
	defer f.Close()

	m, err := gif.Decode(f)
	require.Nil(t, err)
	assert.Equal(t, 128, m.Bounds().Dx())
	assert.Equal(t, 128, m.Bounds().Dy())
}

func TestExtractShortRead(t *testing.T) {
	cfg := testConfig(t)
	writeArchive(t, cfg.Root, make([]byte, 8192),
		texture.Record{Offset: 4096, Length: 8192},
		texture.Record{Offset: 0, Length: 8192},
	)

	_, err := extract(t, cfg)
	var sre *texture.ShortReadError
	require.True(t, errors.As(err, &sre))

	cfg.SkipShortReads = true
	n, err := extract(t, cfg)
	require.Nil(t, err)
	assert.Equal(t, 2, n)

	_, err = os.Stat(filepath.Join(cfg.Output, "0x0000.bmp"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(cfg.Output, "0x0001.bmp"))
	assert.Nil(t, err)
}

func TestExtractCatalog(t *testing.T) {
	cfg := testConfig(t)
	cfg.Catalog = filepath.Join(t.TempDir(), "catalog.db")

	data := make([]byte, 16384)
	data[8192] = 0xff
	writeArchive(t, cfg.Root, data,
		texture.Record{Offset: 0, Length: 8192},
		texture.Record{Offset: 0xffffffff},
		texture.Record{Offset: 8192, Length: 8192},
		texture.Record{Offset: 0, Length: 8192},
	)

	_, err := extract(t, cfg)
	require.Nil(t, err)

	c, err := NewCatalog(cfg.Catalog)
	require.Nil(t, err)
	defer c.Close()

	entries, err := c.List()
	require.Nil(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []int{0, 2, 3}, []int{entries[0].Entry, entries[1].Entry, entries[2].Entry})

	for _, e := range entries {
		b, err := os.ReadFile(filepath.Join(cfg.Output, e.File))
		require.Nil(t, err)
		assert.Equal(t, int64(len(b)), e.Size)
		assert.Len(t, e.SHA1, 40)
	}
	assert.NotEqual(t, entries[0].SHA1, entries[1].SHA1)

	dups, err := c.Duplicates()
	require.Nil(t, err)
	assert.Equal(t, [][]int{{0, 3}}, dups)

	e, err := c.Find(2)
	require.Nil(t, err)
	assert.Equal(t, entries[1], *e)

	e, err = c.Find(1)
	require.Nil(t, err)
	assert.Nil(t, e)
}

func TestCatalogSkipsFailedEntry(t *testing.T) {
	dir := t.TempDir()
	catalog, err := NewCatalog(filepath.Join(t.TempDir(), "catalog.db"))
	require.Nil(t, err)
	defer catalog.Close()

	errEncode := errors.New("encode failed")
	c := texture.Converter{
		Encode: func(w io.Writer, e *texture.Entry) error {
			if _, err := w.Write(make([]byte, 5000)); err != nil {
				return err
			}
			return errEncode
		},
	}

	sink := catalogSink{
		sink:    dirSink{dir: dir, format: FormatBMP},
		catalog: catalog,
		format:  FormatBMP,
	}

	b, err := texture.Record{Offset: 0, Length: 8192}.MarshalBinary()
	require.Nil(t, err)

	_, err = c.ConvertAll(bytes.NewReader(b), bytes.NewReader(make([]byte, 8192)), sink)
	var we *texture.WriteError
	require.True(t, errors.As(err, &we))
	assert.True(t, errors.Is(err, errEncode))

	entries, err := catalog.List()
	require.Nil(t, err)
	assert.Empty(t, entries)

	_, err = os.Stat(filepath.Join(dir, "0x0000.bmp"))
	assert.True(t, os.IsNotExist(err))
}
