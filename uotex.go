/*
Package uotex is a library for extracting the textures from an Ultima Online
style texture archive, texidx.mul and texmaps.mul, as individual image files.
*/
package uotex

import (
	"io"
	"log"
)

// Extractor converts every texture in an archive according to its Config
type Extractor struct {
	cfg     Config
	catalog *Catalog
	logger  *log.Logger
}

// New returns an Extractor for cfg. If cfg.Catalog is set the catalog
// database is opened, or created, straight away.
func New(cfg Config, logger *log.Logger) (*Extractor, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	x := &Extractor{
		cfg:    cfg,
		logger: logger,
	}

	if cfg.Catalog != "" {
		c, err := NewCatalog(cfg.Catalog)
		if err != nil {
			return nil, err
		}
		x.catalog = c
	}

	return x, nil
}

// Close releases the catalog, if any
func (x *Extractor) Close() error {
	if x.catalog != nil {
		return x.catalog.Close()
	}
	return nil
}
