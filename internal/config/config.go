package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level locwatch configuration.
type Config struct {
	Roots       []string `mapstructure:"roots"`
	WarnLimit   int      `mapstructure:"warn_limit"`
	FailLimit   int      `mapstructure:"fail_limit"`
	Extensions  []string `mapstructure:"extensions"`
	ExcludeDirs []string `mapstructure:"exclude_dirs"`
	ReportFile  string   `mapstructure:"report_file"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load returns the configuration with defaults applied and LOCWATCH_*
// environment overrides (e.g. LOCWATCH_WARN_LIMIT=400, LOCWATCH_ROOTS=src,lib).
// locwatch deliberately reads no config file; roots and thresholds belong on
// the command line or in the environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("roots", DefaultRoots)
	v.SetDefault("warn_limit", DefaultWarnLimit)
	v.SetDefault("fail_limit", DefaultFailLimit)
	v.SetDefault("extensions", DefaultExtensions)
	v.SetDefault("exclude_dirs", DefaultExcludeDirs)
	v.SetDefault("report_file", DefaultReportFile)

	v.SetEnvPrefix("LOCWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Expand paths.
	for i, r := range cfg.Roots {
		cfg.Roots[i] = expandPath(r)
	}
	cfg.ReportFile = expandPath(cfg.ReportFile)

	return &cfg, nil
}

// DBPath returns the full path to the scan-history SQLite database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
