package archive

import (
	"os"
	"path/filepath"
	"sld/internal/archive/interfaces"
	"sld/internal/models"
	"sld/internal/providers"
	"sld/internal/structures"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const coldFileSuffix = ".arch.zst"

// ColdFile is the on-disk format for one (mode, period) archive export.
type ColdFile struct {
	Period     string               `json:"period"`
	Mode       models.Mode          `json:"mode"`
	ExportedAt time.Time            `json:"exported_at"`
	Entries    []models.RankedEntry `json:"entries"`
}

// ColdArchiver writes reset archives to compressed files on disk so a
// period outlives its in-store retention window. Exports are best-effort
// from the caller's point of view; a failed export never fails a reset.
type ColdArchiver struct {
	dir        string
	coldTTL    time.Duration
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewColdArchiver(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) (interfaces.ColdArchiverInterface, error) {
	if conf.Archive.Dir == "" {
		logger.Infof(providers.TypeApp, "Cold archive export disabled")
		return &noopArchiver{}, nil
	}
	if err := os.MkdirAll(conf.Archive.Dir, 0755); err != nil {
		return nil, err
	}
	return &ColdArchiver{
		dir:        conf.Archive.Dir,
		coldTTL:    conf.Archive.ColdTTL,
		compressor: compressor,
		logger:     logger,
	}, nil
}

// Export serializes, compresses and atomically writes one mode's archived
// period. Re-exporting the same (mode, period) overwrites the prior file.
func (ca *ColdArchiver) Export(period string, mode models.Mode, entries []models.RankedEntry) error {
	cf := ColdFile{
		Period:     period,
		Mode:       mode,
		ExportedAt: time.Now(),
		Entries:    entries,
	}
	jsonData, err := json.Marshal(&cf)
	if err != nil {
		return err
	}
	compressed, err := ca.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	path := ca.coldFilePath(mode, period)
	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, compressed, 0644); err != nil {
		return err
	}
	return os.Rename(tmpFile, path)
}

// Read loads one exported archive back; used by operators, not by the
// request path.
func (ca *ColdArchiver) Read(mode models.Mode, period string) (*ColdFile, error) {
	data, err := os.ReadFile(ca.coldFilePath(mode, period))
	if err != nil {
		return nil, err
	}
	decompressed, err := ca.compressor.Decompress(data)
	if err != nil {
		return nil, err
	}
	var cf ColdFile
	if err := json.Unmarshal(decompressed, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// Prune deletes exported files older than coldTTL, judged by mtime.
func (ca *ColdArchiver) Prune() error {
	if ca.coldTTL <= 0 {
		return nil
	}
	files, err := filepath.Glob(filepath.Join(ca.dir, "*"+coldFileSuffix))
	if err != nil {
		return err
	}
	cutoff := time.Now().Add(-ca.coldTTL)
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(file); err != nil {
				ca.logger.Warnf(providers.TypeApp, "Failed to prune cold archive %s: %s", file, err)
				continue
			}
			ca.logger.Infof(providers.TypeApp, "Pruned cold archive %s", filepath.Base(file))
		}
	}
	return nil
}

func (ca *ColdArchiver) coldFilePath(mode models.Mode, period string) string {
	// Period labels may carry characters unfriendly to filenames.
	safePeriod := strings.ReplaceAll(period, ":", "-")
	return filepath.Join(ca.dir, string(mode)+"-"+safePeriod+coldFileSuffix)
}

type noopArchiver struct{}

func (n *noopArchiver) Export(string, models.Mode, []models.RankedEntry) error { return nil }
func (n *noopArchiver) Prune() error                                           { return nil }
