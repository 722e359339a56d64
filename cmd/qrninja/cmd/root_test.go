package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/qrninja/internal/client/storage"
	"github.com/iudanet/qrninja/internal/config"
)

func TestOpenStorage(t *testing.T) {
	ctx := context.Background()

	for _, backend := range []string{storage.BackendBolt, storage.BackendSQLite, storage.BackendMemory} {
		t.Run(backend, func(t *testing.T) {
			cfg := &config.Config{
				Backend: backend,
				DBPath:  filepath.Join(t.TempDir(), "nested", "history.db"),
			}

			kv, c, err := openStorage(ctx, cfg)
			require.NoError(t, err)
			defer c.Close()

			require.NoError(t, kv.Put(ctx, storage.DefaultKey, []byte(`[]`)))
			got, err := kv.Get(ctx, storage.DefaultKey)
			require.NoError(t, err)
			assert.Equal(t, []byte(`[]`), got)
		})
	}

	_, _, err := openStorage(ctx, &config.Config{Backend: "redis"})
	assert.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	c, err := loadCatalog("")
	require.NoError(t, err)
	assert.Len(t, c.All(), 12)

	path := filepath.Join(t.TempDir(), "templates.yaml")
	content := "templates:\n  - id: brand\n    name: Brand\n    background: \"#FFFFFF\"\n    foreground: \"#123456\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err = loadCatalog(path)
	require.NoError(t, err)
	tpl, err := c.Find("brand")
	require.NoError(t, err)
	assert.Equal(t, "#123456", tpl.Foreground)

	_, err = loadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCommandTree(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"add", "batch", "list", "search", "get", "edit", "delete", "clear", "export", "share", "templates", "version"} {
		assert.True(t, names[want], want)
	}
}
