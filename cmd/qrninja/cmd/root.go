// Package cmd wires configuration, storage and the record store into the
// cobra command tree.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iudanet/qrninja/internal/client/cli"
	"github.com/iudanet/qrninja/internal/client/export"
	"github.com/iudanet/qrninja/internal/client/iocli"
	"github.com/iudanet/qrninja/internal/client/records"
	"github.com/iudanet/qrninja/internal/client/render"
	"github.com/iudanet/qrninja/internal/client/storage"
	"github.com/iudanet/qrninja/internal/client/storage/boltdb"
	"github.com/iudanet/qrninja/internal/client/storage/memory"
	"github.com/iudanet/qrninja/internal/client/storage/sqlite"
	"github.com/iudanet/qrninja/internal/client/templates"
	"github.com/iudanet/qrninja/internal/config"
	"github.com/iudanet/qrninja/internal/logger"
)

var (
	cfgFile   string
	cfg       *config.Config
	log       *slog.Logger
	app       *cli.Cli
	closer    io.Closer
	buildInfo cli.BuildInfo
)

var rootCmd = &cobra.Command{
	Use:   "qrninja",
	Short: "qrninja - generate, customize and keep QR codes",
	Long: `qrninja generates QR codes for URLs, WiFi networks, contacts, email,
phone and SMS links and calendar events, keeps them in a local history
and exports them as images.

The history is stored on this machine only.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the command tree and exits with status 1 on error.
func Execute(info cli.BuildInfo) {
	buildInfo = info

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	teardown()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(config.Options{ConfigFile: cfgFile, Flags: cmd.Flags()})
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err = logger.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Warn("falling back to info level", "error", err)
	}
	slog.SetDefault(log)

	ctx := cmd.Context()

	kv, c, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	closer = c

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	store := records.NewStore(kv,
		records.WithKey(cfg.StorageKey),
		records.WithLogger(log),
		records.WithLocation(loc),
	)
	store.Load(ctx)
	log.Debug("history loaded", "backend", cfg.Backend, "records", store.Len())

	catalog, err := loadCatalog(cfg.TemplatesFile)
	if err != nil {
		return err
	}

	app = cli.New(iocli.NewStdio(), store,
		cli.WithTemplates(catalog),
		cli.WithExporter(export.NewExporter(render.NewQRRenderer())),
		cli.WithSharer(export.NewTerminalClipboard(os.Stdout)),
		cli.WithExportDir(cfg.ExportDir),
		cli.WithDebounce(cfg.Debounce),
		cli.WithLogger(log),
	)

	return nil
}

// openStorage opens the configured slot backend.
func openStorage(ctx context.Context, cfg *config.Config) (storage.KeyValueStorage, io.Closer, error) {
	switch cfg.Backend {
	case storage.BackendMemory:
		s := memory.New()
		return s, s, nil
	case storage.BackendSQLite:
		if err := ensureDir(cfg.DBPath); err != nil {
			return nil, nil, err
		}
		s, err := sqlite.New(ctx, cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		return s, s, nil
	case storage.BackendBolt:
		if err := ensureDir(cfg.DBPath); err != nil {
			return nil, nil, err
		}
		s, err := boltdb.New(ctx, cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func ensureDir(dbPath string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

func loadCatalog(path string) (*templates.Catalog, error) {
	if path == "" {
		return templates.NewCatalog(), nil
	}

	extra, err := templates.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	return templates.NewCatalog(extra...), nil
}

func teardown() {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil && !errors.Is(err, storage.ErrStorageClosed) {
		log.Error("failed to close database", "error", err)
	}
	closer = nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ~/.qrninja/config.yaml)")
	flags.String("db", "", "path to the history database")
	flags.String("backend", storage.BackendBolt, "storage backend: bolt, sqlite or memory")
	flags.String("storage-key", storage.DefaultKey, "slot the history is stored under")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("templates-file", "", "YAML file with extra style templates")
	flags.String("export-dir", ".", "directory for exported images")
	flags.Duration("debounce", 0, "settle window for size input in the editor")
	flags.String("event-timezone", "", "time zone for event dates without offset")

	// Команды будут добавлены в init() соответствующих файлов
}
