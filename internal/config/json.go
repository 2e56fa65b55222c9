package config

import (
	"encoding/json"
	"os"

	"github.com/mkarpovs/accountvault/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Zero values
// mean "not set"; only set fields are copied into the runtime Config.
type JsonConfig struct {
	VaultDir    string `json:"vault_dir"`
	SnapshotDSN string `json:"snapshot_dsn"`
	LogLevel    string `json:"log_level"`
}

// parseJson overlays cfg with values loaded from an optional JSON file.
// The file path comes from the -c/-config flags; if neither is given,
// nothing is loaded. Read or unmarshal errors panic, matching the
// fail-fast behavior for malformed explicit configuration.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.VaultDir != "" {
		cfg.VaultDir = jc.VaultDir
	}
	if jc.SnapshotDSN != "" {
		cfg.SnapshotDSN = jc.SnapshotDSN
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
