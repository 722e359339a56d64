// Package export writes rendered QR codes to image files and shares them.
package export

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/image/draw"

	"github.com/iudanet/qrninja/internal/client/render"
	"github.com/iudanet/qrninja/internal/models"
	"github.com/iudanet/qrninja/internal/validation"
)

// Export and share errors
var (
	// ErrRendererUnavailable indicates that no renderer is configured
	ErrRendererUnavailable = errors.New("renderer unavailable")

	// ErrUnsupportedFormat indicates an image format that cannot be produced
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// ErrNotSupported indicates that the environment cannot share
	ErrNotSupported = errors.New("sharing not supported")
)

// Format is an export image format.
type Format string

// Export formats
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatWebP Format = "webp"
)

// DefaultJPEGQuality is used when the exporter has no explicit quality
const DefaultJPEGQuality = 92

// ParseFormat parses a format flag; empty means png.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "webp":
		return FormatWebP, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Ext returns the file extension without dot.
func (f Format) Ext() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return string(f)
}

// FileName is qr-<first 8 hex digits of BLAKE2b-256(payload)>.<ext>.
// Одинаковый payload всегда дает одно и то же имя файла.
func FileName(rec *models.Record, format Format) string {
	sum := blake2b.Sum256([]byte(rec.Payload))
	return "qr-" + hex.EncodeToString(sum[:4]) + "." + format.Ext()
}

// Exporter renders records and encodes them as image files.
type Exporter struct {
	renderer render.Renderer
	quality  int
}

// NewExporter creates an exporter; a nil renderer makes every export fail
// with ErrRendererUnavailable.
func NewExporter(r render.Renderer) *Exporter {
	return &Exporter{renderer: r, quality: DefaultJPEGQuality}
}

// Render draws the record with the configured renderer.
func (e *Exporter) Render(ctx context.Context, rec *models.Record) (image.Image, error) {
	if e == nil || e.renderer == nil {
		return nil, ErrRendererUnavailable
	}
	img, err := e.renderer.Render(ctx, render.SpecFor(rec))
	if err != nil {
		return nil, fmt.Errorf("failed to render record: %w", err)
	}
	return img, nil
}

// CanEncode reports whether files of this format can be produced.
func (f Format) CanEncode() error {
	switch f {
	case FormatPNG, FormatJPEG:
		return nil
	case FormatWebP:
		// пакет x/image/webp умеет только декодировать
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Export renders rec and writes it to w in the given format.
func (e *Exporter) Export(ctx context.Context, rec *models.Record, format Format, w io.Writer) error {
	if err := format.CanEncode(); err != nil {
		return err
	}

	img, err := e.Render(ctx, rec)
	if err != nil {
		return err
	}

	switch format {
	case FormatJPEG:
		bg, err := validation.ParseHexColor(rec.Style.BackgroundColor)
		if err != nil {
			bg, _ = validation.ParseHexColor(models.DefaultBackground)
		}
		// в JPEG нет прозрачности, подкладываем фон
		flat := image.NewRGBA(img.Bounds())
		draw.Draw(flat, flat.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
		draw.Draw(flat, flat.Bounds(), img, img.Bounds().Min, draw.Over)
		if err := jpeg.Encode(w, flat, &jpeg.Options{Quality: e.quality}); err != nil {
			return fmt.Errorf("failed to encode jpeg: %w", err)
		}
	default:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("failed to encode png: %w", err)
		}
	}

	return nil
}

// ExportFile writes the record into dir under FileName and returns the path.
func (e *Exporter) ExportFile(ctx context.Context, rec *models.Record, format Format, dir string) (string, error) {
	if err := format.CanEncode(); err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	path := filepath.Join(dir, FileName(rec, format))
	return path, e.ExportPath(ctx, rec, format, path)
}

// ExportPath writes the record to path. The image goes to a temporary file
// next to path and replaces path only when it was written completely, so a
// failed export leaves an existing file untouched.
func (e *Exporter) ExportPath(ctx context.Context, rec *models.Record, format Format, path string) error {
	if err := format.CanEncode(); err != nil {
		return err
	}
	if e == nil || e.renderer == nil {
		return ErrRendererUnavailable
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	saved := false
	defer func() {
		if !saved {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := e.Export(ctx, rec, format, tmp); err != nil {
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	saved = true

	return nil
}
