package config

// Config holds runtime settings for the account vault CLI.
//
// Fields:
//   - VaultDir: base directory offered to the storage provider when the user
//     grants directory access.
//   - SnapshotDSN: SQLite DSN for the durable session snapshot store.
//   - LogLevel: minimum log level ("debug", "info", "warn", "error").
type Config struct {
	VaultDir    string
	SnapshotDSN string
	LogLevel    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.VaultDir = "vault"
	c.SnapshotDSN = "session.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
