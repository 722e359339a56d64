package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/qrninja/internal/client/storage"
)

// isolated возвращает опции, не видящие пользовательских файлов
func isolated(t *testing.T) Options {
	t.Helper()
	dir := t.TempDir()
	return Options{
		EnvFile:     filepath.Join(dir, "missing.env"),
		SearchPaths: []string{dir},
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(isolated(t))
	require.NoError(t, err)

	assert.Equal(t, storage.BackendBolt, cfg.Backend)
	assert.Equal(t, storage.DefaultKey, cfg.StorageKey)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ".", cfg.ExportDir)
	assert.Equal(t, 300*time.Millisecond, cfg.Debounce)
	assert.Equal(t, filepath.Join(DefaultDir(), "qrninja.db"), cfg.DBPath)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoad_ConfigFile(t *testing.T) {
	opts := isolated(t)
	content := []byte("backend: sqlite\ndb: /tmp/history.db\nlog_level: debug\ndebounce: 1s\nevent_timezone: UTC\n")
	require.NoError(t, os.WriteFile(filepath.Join(opts.SearchPaths[0], "config.yaml"), content, 0o600))

	cfg, err := Load(opts)
	require.NoError(t, err)

	assert.Equal(t, storage.BackendSQLite, cfg.Backend)
	assert.Equal(t, "/tmp/history.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, time.Second, cfg.Debounce)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	opts := isolated(t)
	opts.ConfigFile = filepath.Join(t.TempDir(), "nope.yaml")

	_, err := Load(opts)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	opts := isolated(t)
	require.NoError(t, os.WriteFile(filepath.Join(opts.SearchPaths[0], "config.yaml"), []byte("backend: sqlite\n"), 0o600))
	t.Setenv("QRNINJA_BACKEND", "memory")
	t.Setenv("QRNINJA_EXPORT_DIR", "/out")

	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, storage.BackendMemory, cfg.Backend)
	assert.Equal(t, "/out", cfg.ExportDir)
}

func TestLoad_DotEnv(t *testing.T) {
	opts := isolated(t)
	opts.EnvFile = filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(opts.EnvFile, []byte("QRNINJA_STORAGE_KEY=altSlot\n"), 0o600))
	t.Setenv("QRNINJA_STORAGE_KEY", "")
	require.NoError(t, os.Unsetenv("QRNINJA_STORAGE_KEY"))

	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, "altSlot", cfg.StorageKey)
}

func TestLoad_FlagsWin(t *testing.T) {
	opts := isolated(t)
	t.Setenv("QRNINJA_BACKEND", "sqlite")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("backend", "bolt", "")
	fs.String("db", "", "")
	require.NoError(t, fs.Parse([]string{"--backend", "memory"}))
	opts.Flags = fs

	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, storage.BackendMemory, cfg.Backend)
	// Незаданный флаг не перекрывает значение по умолчанию
	assert.NotEmpty(t, cfg.DBPath)
}

func TestValidate(t *testing.T) {
	valid := Config{Backend: storage.BackendBolt, DBPath: "x.db", StorageKey: "qrData"}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "ok", mutate: func(*Config) {}},
		{name: "memory needs no path", mutate: func(c *Config) { c.Backend = storage.BackendMemory; c.DBPath = "" }},
		{name: "bad backend", mutate: func(c *Config) { c.Backend = "redis" }, wantErr: "unknown storage backend"},
		{name: "no path", mutate: func(c *Config) { c.DBPath = "" }, wantErr: "database path"},
		{name: "no key", mutate: func(c *Config) { c.StorageKey = "" }, wantErr: "storage key"},
		{name: "negative debounce", mutate: func(c *Config) { c.Debounce = -time.Second }, wantErr: "debounce"},
		{name: "bad timezone", mutate: func(c *Config) { c.EventTimezone = "Mars/Olympus" }, wantErr: "timezone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
