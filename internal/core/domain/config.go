package domain

import "time"

// Match policies for relating a changed path to a recorded source key.
const (
	MatchSuffix  = "suffix"
	MatchSegment = "segment"
)

// Config is the resolved runtime configuration.
type Config struct {
	Root      string          `mapstructure:"root"`
	Manifest  string          `mapstructure:"manifest"`
	OutputDir string          `mapstructure:"output_dir"`
	CacheDir  string          `mapstructure:"cache_dir"`
	Listen    string          `mapstructure:"listen"`
	Match     string          `mapstructure:"match"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Watch     WatchConfig     `mapstructure:"watch"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// ServerConfig configures the command server.
type ServerConfig struct {
	CommandDelay time.Duration `mapstructure:"command_delay"`
}

// LogConfig configures logging and the optional rotated log file.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// WatchConfig configures the bundled file watcher.
type WatchConfig struct {
	Root     string        `mapstructure:"root"`
	Patterns []string      `mapstructure:"patterns"`
	Ignore   []string      `mapstructure:"ignore"`
	Debounce time.Duration `mapstructure:"debounce"`
}

// TelemetryConfig toggles span timing logs.
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// CacheFile returns the dependency cache file of the configured project.
func (c *Config) CacheFile() string {
	return CacheFilePath(c.CacheDir, c.Root)
}
