// Package cli implements the interactive qrninja commands on top of the
// record store.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/iudanet/qrninja/internal/client/customize"
	"github.com/iudanet/qrninja/internal/client/export"
	"github.com/iudanet/qrninja/internal/client/iocli"
	"github.com/iudanet/qrninja/internal/client/records"
	"github.com/iudanet/qrninja/internal/client/render"
	"github.com/iudanet/qrninja/internal/client/templates"
	"github.com/iudanet/qrninja/internal/models"
)

// BuildInfo is printed by the version command.
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

var (
	okMark   = color.New(color.FgGreen, color.Bold).SprintFunc()
	warnMark = color.New(color.FgYellow, color.Bold).SprintFunc()
)

// Cli связывает ввод/вывод пользователя с хранилищем записей и коллабораторами
type Cli struct {
	io        iocli.IO
	records   records.Service
	catalog   *templates.Catalog
	exporter  *export.Exporter
	sharer    export.Sharer
	logger    *slog.Logger
	now       func() time.Time
	exportDir string
	window    time.Duration
}

// Option configures a Cli.
type Option func(*Cli)

// WithTemplates sets the style template catalog.
func WithTemplates(c *templates.Catalog) Option {
	return func(cli *Cli) { cli.catalog = c }
}

// WithExporter sets the image exporter; nil disables export.
func WithExporter(e *export.Exporter) Option {
	return func(cli *Cli) { cli.exporter = e }
}

// WithSharer sets the clipboard collaborator; nil disables sharing.
func WithSharer(s export.Sharer) Option {
	return func(cli *Cli) { cli.sharer = s }
}

// WithExportDir sets the directory used when export has no --out.
func WithExportDir(dir string) Option {
	return func(cli *Cli) { cli.exportDir = dir }
}

// WithDebounce sets the settle window for numeric input while editing.
func WithDebounce(window time.Duration) Option {
	return func(cli *Cli) { cli.window = window }
}

// WithClock sets the time source for relative timestamps.
func WithClock(now func() time.Time) Option {
	return func(cli *Cli) { cli.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(cli *Cli) { cli.logger = l }
}

// New creates a Cli. Without options it renders with the built-in QR
// renderer, has no clipboard and exports into the working directory.
func New(io iocli.IO, svc records.Service, opts ...Option) *Cli {
	c := &Cli{
		io:        io,
		records:   svc,
		catalog:   templates.NewCatalog(),
		exporter:  export.NewExporter(render.NewQRRenderer()),
		logger:    slog.Default(),
		now:       time.Now,
		exportDir: ".",
		window:    customize.DefaultWindow,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cli) success(format string, a ...any) {
	c.io.Println(okMark("✓") + " " + fmt.Sprintf(format, a...))
}

func (c *Cli) warn(format string, a ...any) {
	c.io.Println(warnMark("!") + " " + fmt.Sprintf(format, a...))
}

// lookup resolves a record reference and turns store errors into messages
// that tell the user what to do next.
func (c *Cli) lookup(ref string) (*models.Record, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errors.New("missing QR code ID")
	}

	rec, err := c.records.Get(ref)
	switch {
	case err == nil:
		return rec, nil
	case errors.Is(err, records.ErrRecordNotFound):
		return nil, fmt.Errorf("QR code not found with ID: %s: %w", ref, err)
	case errors.Is(err, records.ErrAmbiguousRef):
		return nil, fmt.Errorf("ID prefix %q matches several QR codes, type more characters: %w", ref, err)
	default:
		return nil, fmt.Errorf("failed to get QR code: %w", err)
	}
}

// confirm asks a yes/no question; anything but yes/y declines.
func (c *Cli) confirm(question string) (bool, error) {
	answer, err := c.io.ReadInput(question + " (yes/no): ")
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "yes" || answer == "y", nil
}

func (c *Cli) funcs() template.FuncMap {
	return template.FuncMap{
		"ago": func(t time.Time) string {
			return humanize.RelTime(t, c.now(), "ago", "from now")
		},
		"label": func(t models.QRType) string { return t.Label() },
		"preview": func(s string) string {
			return preview(s, 48)
		},
		"modified": func(r *models.Record) bool {
			return r.LastModifiedAt.After(r.CreatedAt)
		},
		"bytes": func(n int) string { return humanize.Bytes(uint64(n)) },
	}
}

// render executes a text template into the output.
func (c *Cli) render(name, text string, data any) error {
	tmpl, err := template.New(name).Funcs(c.funcs()).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	if err := tmpl.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to print %s: %w", name, err)
	}
	return nil
}

// preview collapses whitespace and truncates to max runes.
func preview(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
