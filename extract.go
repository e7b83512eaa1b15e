package uotex

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/bodgit/uotex/texture"
)

// Extract writes an image for every valid entry in the archive and returns
// the number of entries processed, valid or not
func (x *Extractor) Extract() (int, error) {
	encode, err := x.cfg.Format.encoder()
	if err != nil {
		return 0, err
	}

	idxPath := filepath.Join(x.cfg.Root, x.cfg.Index)
	idx, err := os.Open(idxPath)
	if err != nil {
		return 0, &texture.OpenError{Name: "index", Path: idxPath, Err: err}
	}
	defer idx.Close()

	dataPath := filepath.Join(x.cfg.Root, x.cfg.Data)
	data, err := os.Open(dataPath)
	if err != nil {
		return 0, &texture.OpenError{Name: "data", Path: dataPath, Err: err}
	}
	defer data.Close()

	if err := os.MkdirAll(x.cfg.Output, 0777); err != nil {
		return 0, err
	}

	var sink texture.Sink = dirSink{
		dir:    x.cfg.Output,
		format: x.cfg.Format,
	}
	if x.catalog != nil {
		sink = catalogSink{
			sink:    sink,
			catalog: x.catalog,
			format:  x.cfg.Format,
		}
	}

	c := texture.Converter{
		Logger:         x.logger,
		SkipShortReads: x.cfg.SkipShortReads,
		Encode:         encode,
	}

	x.logger.Printf("Extracting \"%s\" and \"%s\" to \"%s\" as %s\n", idxPath, dataPath, x.cfg.Output, x.cfg.Format)

	n, err := c.ConvertAll(bufio.NewReader(idx), data, sink)
	if err != nil {
		return n, err
	}

	x.logger.Printf("Processed %d entries\n", n)

	return n, nil
}
