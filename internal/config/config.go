// Package config loads qrninja settings from flags, environment, .env and
// an optional config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iudanet/qrninja/internal/client/storage"
)

const (
	envPrefix        = "QRNINJA"
	defaultConfigDir = ".qrninja"
	defaultDBName    = "qrninja.db"
	defaultLogLevel  = "info"
	defaultDebounce  = 300 * time.Millisecond
)

// Keys of the configuration
const (
	KeyDB            = "db"
	KeyBackend       = "backend"
	KeyStorageKey    = "storage_key"
	KeyLogLevel      = "log_level"
	KeyTemplatesFile = "templates_file"
	KeyExportDir     = "export_dir"
	KeyDebounce      = "debounce"
	KeyEventTimezone = "event_timezone"
)

// flagKeys сопоставляет имена флагов cobra ключам конфигурации
var flagKeys = map[string]string{
	"db":             KeyDB,
	"backend":        KeyBackend,
	"storage-key":    KeyStorageKey,
	"log-level":      KeyLogLevel,
	"templates-file": KeyTemplatesFile,
	"export-dir":     KeyExportDir,
	"debounce":       KeyDebounce,
	"event-timezone": KeyEventTimezone,
}

// Config holds the resolved settings.
type Config struct {
	DBPath        string        `mapstructure:"db"`
	Backend       string        `mapstructure:"backend"`
	StorageKey    string        `mapstructure:"storage_key"`
	LogLevel      string        `mapstructure:"log_level"`
	TemplatesFile string        `mapstructure:"templates_file"`
	ExportDir     string        `mapstructure:"export_dir"`
	EventTimezone string        `mapstructure:"event_timezone"`
	Debounce      time.Duration `mapstructure:"debounce"`
}

// Options controls where Load looks for settings.
type Options struct {
	// Flags переопределяют все остальные источники, если флаг был задан
	Flags *pflag.FlagSet
	// ConfigFile явный путь к файлу конфигурации; отсутствие файла - ошибка
	ConfigFile string
	// EnvFile путь к .env; по умолчанию ".env" в текущей директории
	EnvFile string
	// SearchPaths директории для поиска config.yaml; по умолчанию ~/.qrninja и "."
	SearchPaths []string
}

// DefaultDir returns ~/.qrninja, or the working directory when the home
// directory is unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, defaultConfigDir)
}

// Load resolves the configuration. Precedence from highest: flags,
// environment (QRNINJA_*), .env, config file, defaults.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	// godotenv не перезаписывает уже выставленные переменные окружения
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	dir := DefaultDir()
	v.SetDefault(KeyDB, filepath.Join(dir, defaultDBName))
	v.SetDefault(KeyBackend, storage.BackendBolt)
	v.SetDefault(KeyStorageKey, storage.DefaultKey)
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyTemplatesFile, "")
	v.SetDefault(KeyExportDir, ".")
	v.SetDefault(KeyDebounce, defaultDebounce)
	v.SetDefault(KeyEventTimezone, "")

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		paths := opts.SearchPaths
		if paths == nil {
			paths = []string{dir, "."}
		}
		for _, p := range paths {
			v.AddConfigPath(p)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			f := opts.Flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that cannot be clamped silently.
func (c *Config) Validate() error {
	switch c.Backend {
	case storage.BackendBolt, storage.BackendSQLite, storage.BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q (use bolt, sqlite or memory)", c.Backend)
	}

	if c.Backend != storage.BackendMemory && c.DBPath == "" {
		return errors.New("database path is required")
	}
	if c.StorageKey == "" {
		return errors.New("storage key cannot be empty")
	}
	if c.Debounce < 0 {
		return fmt.Errorf("debounce cannot be negative: %s", c.Debounce)
	}
	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

// Location returns the time zone used to interpret event dates without an
// explicit offset. Empty or "Local" means the system zone.
func (c *Config) Location() (*time.Location, error) {
	switch c.EventTimezone {
	case "", "Local", "local":
		return time.Local, nil
	}

	loc, err := time.LoadLocation(c.EventTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid event timezone %q: %w", c.EventTimezone, err)
	}
	return loc, nil
}
