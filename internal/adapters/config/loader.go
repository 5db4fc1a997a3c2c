// Package config loads the runtime configuration with viper.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// EnvPrefix prefixes every environment variable read by the loader.
	EnvPrefix = "DUMPFILES"

	// ConfigEnv names the environment variable holding an explicit config file path.
	ConfigEnv = EnvPrefix + "_CONFIG"

	configBaseName = "dumpfiles"

	defaultOutputDir    = "web"
	defaultCommandDelay = time.Second
	defaultLogLevel     = "info"
	defaultLogMaxSize   = 10
	defaultLogBackups   = 3
	defaultLogMaxAge    = 28
	defaultWatchRoot    = "src"
	defaultDebounce     = 50 * time.Millisecond
)

var (
	defaultWatchPatterns = []string{"*.css", "*.js", "*.scss"}
	defaultWatchIgnore   = []string{"*scsslint_tmp*"}
)

// Loader reads dumpfiles.yaml and DUMPFILES_* environment variables.
type Loader struct {
	// ConfigFile, when set, is read instead of searching the working directory.
	ConfigFile string
}

// NewLoader creates a Loader that honours $DUMPFILES_CONFIG.
func NewLoader() *Loader {
	return &Loader{ConfigFile: os.Getenv(ConfigEnv)}
}

// Load resolves the configuration for the given working directory.
// A missing dumpfiles.yaml is not an error.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if l.ConfigFile != "" {
		v.SetConfigFile(l.ConfigFile)
	} else {
		v.SetConfigName(configBaseName)
		v.SetConfigType("yaml")
		v.AddConfigPath(cwd)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Join(domain.ErrConfigLoadFailed, zerr.With(zerr.Wrap(err, "read config"), "dir", cwd))
		}
	}

	var cfg domain.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Join(domain.ErrConfigLoadFailed, zerr.Wrap(err, "decode config"))
	}

	if err := normalize(&cfg, cwd); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("root", ".")
	v.SetDefault("manifest", domain.ManifestFileName)
	v.SetDefault("output_dir", defaultOutputDir)
	v.SetDefault("cache_dir", "")
	v.SetDefault("listen", "")
	v.SetDefault("match", domain.MatchSuffix)
	v.SetDefault("server.command_delay", defaultCommandDelay)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", defaultLogMaxSize)
	v.SetDefault("log.max_backups", defaultLogBackups)
	v.SetDefault("log.max_age", defaultLogMaxAge)
	v.SetDefault("log.compress", true)
	v.SetDefault("watch.root", defaultWatchRoot)
	v.SetDefault("watch.patterns", defaultWatchPatterns)
	v.SetDefault("watch.ignore", defaultWatchIgnore)
	v.SetDefault("watch.debounce", defaultDebounce)
	v.SetDefault("telemetry.enabled", false)
}

// normalize makes every path absolute and validates enumerations.
func normalize(cfg *domain.Config, cwd string) error {
	cfg.Root = resolve(cwd, cfg.Root)
	cfg.Manifest = resolve(cfg.Root, cfg.Manifest)
	cfg.OutputDir = resolve(cfg.Root, cfg.OutputDir)
	cfg.Watch.Root = resolve(cfg.Root, cfg.Watch.Root)

	if cfg.CacheDir == "" {
		cfg.CacheDir = os.TempDir()
	}
	cfg.CacheDir = resolve(cwd, cfg.CacheDir)

	if cfg.Listen != "" {
		cfg.Listen = resolve(cwd, cfg.Listen)
	}

	cfg.Match = strings.ToLower(strings.TrimSpace(cfg.Match))
	if !slices.Contains([]string{domain.MatchSuffix, domain.MatchSegment}, cfg.Match) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidMatchPolicy, "unsupported match setting"), "match", cfg.Match)
	}

	if cfg.Server.CommandDelay < 0 {
		cfg.Server.CommandDelay = 0
	}

	return nil
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
