package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iudanet/qrninja/internal/client/export"
)

// RunExport renders a record into an image file. out may be a file path,
// an existing directory or empty for the configured export directory.
func (c *Cli) RunExport(ctx context.Context, ref, format, out string) error {
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	if err := f.CanEncode(); err != nil {
		return err
	}

	rec, err := c.lookup(ref)
	if err != nil {
		return err
	}

	path := out
	switch {
	case out == "":
		path, err = c.exporter.ExportFile(ctx, rec, f, c.exportDir)
	case isDir(out):
		path, err = c.exporter.ExportFile(ctx, rec, f, out)
	default:
		if filepath.Ext(out) == "" {
			path = out + "." + f.Ext()
		}
		err = c.exporter.ExportPath(ctx, rec, f, path)
	}

	if errors.Is(err, export.ErrRendererUnavailable) {
		c.warn("Rendering is not available, nothing was exported.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to export QR code: %w", err)
	}

	c.success("Saved %s", path)
	return nil
}

// RunShare copies the payload text, or with image set the rendered image,
// to the clipboard.
func (c *Cli) RunShare(ctx context.Context, ref string, image bool) error {
	rec, err := c.lookup(ref)
	if err != nil {
		return err
	}

	if c.sharer == nil {
		err = export.ErrNotSupported
	} else if image {
		img, rerr := c.exporter.Render(ctx, rec)
		if errors.Is(rerr, export.ErrRendererUnavailable) {
			c.warn("Rendering is not available, nothing was shared.")
			return nil
		}
		if rerr != nil {
			return fmt.Errorf("failed to share QR code: %w", rerr)
		}
		err = c.sharer.CopyImage(ctx, img)
	} else {
		err = c.sharer.CopyText(ctx, rec.Payload)
	}

	switch {
	case err == nil:
		c.success("Copied to clipboard!")
		return nil
	case errors.Is(err, export.ErrNotSupported) && image:
		c.warn("Copying images is not supported here. Use 'qrninja export %s' instead.", rec.ID)
		return nil
	case errors.Is(err, export.ErrNotSupported):
		c.warn("Clipboard is not supported here. Payload:")
		c.io.Println(rec.Payload)
		return nil
	default:
		return fmt.Errorf("failed to share QR code: %w", err)
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
