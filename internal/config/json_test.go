package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysValuesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	data := `{"vault_dir": "/data/vault", "snapshot_dsn": "snap.db", "log_level": "debug"}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	oldArgs := os.Args
	os.Args = []string{"cmd", "-c", path}
	defer func() { os.Args = oldArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "/data/vault", cfg.VaultDir)
	assert.Equal(t, "snap.db", cfg.SnapshotDSN)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"log_level": "warn"}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"cmd", "-config", path}
	defer func() { os.Args = oldArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "vault", cfg.VaultDir, "unset field keeps default")
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"cmd"}
	defer func() { os.Args = oldArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "vault", cfg.VaultDir)
}

func TestParseJson_MalformedFilePanics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"cmd", "-c", path}
	defer func() { os.Args = oldArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJson(cfg) })
}
