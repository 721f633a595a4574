package config

// Config holds runtime settings for the SkinFlow CLI.
//
// Fields:
//   - DatabasePath: path to the SQLite file backing the persistence adapter.
//   - LogLevel: minimum slog level (debug, info, warn, error).
//   - DemoEmail / DemoName: identity of the auto-created account when no
//     session exists at startup.
type Config struct {
	DatabasePath string
	LogLevel     string
	DemoEmail    string
	DemoName     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "skinflow.db"
	c.LogLevel = "info"
	c.DemoEmail = "user@demo.com"
	c.DemoName = "Demo User"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags
// (if present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
