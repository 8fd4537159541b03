package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestLoadAppConfigFallsBackToDefaults(t *testing.T) {
	is := is.New(t)

	cfg, err := loadAppConfig("/no/such/config.yaml")
	is.NoErr(err)

	is.Equal(100, cfg.Ingest.BatchSize)
	is.Equal(5, cfg.Ingest.FlushIntervalSeconds)
	is.Equal(60, cfg.Detection.IntervalSeconds)
	is.Equal(45, cfg.Detection.LeaseSeconds)
}

func TestLoadAppConfigOverridesFromFile(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`
ingest:
  batchSize: 50
  flushIntervalSeconds: 2
detection:
  zscoreThreshold: 4.5
  minErrorCount: 10
`), 0600)
	is.NoErr(err)

	cfg, err := loadAppConfig(path)
	is.NoErr(err)

	is.Equal(50, cfg.Ingest.BatchSize)
	is.Equal(2, cfg.Ingest.FlushIntervalSeconds)
	is.Equal(4.5, cfg.Detection.ZScoreThreshold)
	is.Equal(int64(10), cfg.Detection.MinErrorCount)

	// untouched keys keep their defaults
	is.Equal(10000, cfg.Ingest.MaxPending)
	is.Equal(30, cfg.Detection.BaselineWindowMinutes)
}
