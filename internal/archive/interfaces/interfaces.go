package interfaces

import "sld/internal/models"

type CompressorInterface interface {
	Compress(val []byte) ([]byte, error)
	Decompress(val []byte) ([]byte, error)
	Close()
}

// ColdArchiverInterface exports reset archives to local cold storage and
// prunes files past their retention.
type ColdArchiverInterface interface {
	Export(period string, mode models.Mode, entries []models.RankedEntry) error
	Prune() error
}
