package config

import (
	"flag"
	"os"

	"github.com/mkarpovs/accountvault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Args are filtered to only the flags handled here (see flagx.FilterArgs),
// so the -c/-config flags consumed by parseJson do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.VaultDir, "d", config.VaultDir, "base directory for the account vault")
	fs.StringVar(&config.SnapshotDSN, "s", config.SnapshotDSN, "SQLite DSN for the session snapshot store")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "minimum log level (debug|info|warn|error)")

	_ = fs.Parse(args)
}
