package export

import (
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"os"

	"golang.org/x/term"
)

// Sharer hands a record's payload or image to the environment.
type Sharer interface {
	CopyText(ctx context.Context, text string) error
	CopyImage(ctx context.Context, img image.Image) error
}

// Ensure, that TerminalClipboard does implement Sharer.
var _ Sharer = (*TerminalClipboard)(nil)

// TerminalClipboard copies text with the OSC 52 escape sequence, which most
// terminal emulators forward to the system clipboard.
type TerminalClipboard struct {
	out      io.Writer
	terminal bool
}

// NewTerminalClipboard writes to f when f is a terminal.
func NewTerminalClipboard(f *os.File) *TerminalClipboard {
	return &TerminalClipboard{out: f, terminal: term.IsTerminal(int(f.Fd()))}
}

// NewClipboard writes to w; terminal reports whether w is a terminal.
func NewClipboard(w io.Writer, terminal bool) *TerminalClipboard {
	return &TerminalClipboard{out: w, terminal: terminal}
}

// CopyText puts text on the clipboard.
// Returns ErrNotSupported when output is not a terminal.
func (c *TerminalClipboard) CopyText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c == nil || c.out == nil || !c.terminal {
		return ErrNotSupported
	}

	seq := "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\a"
	if _, err := io.WriteString(c.out, seq); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// CopyImage is not available through terminal escape sequences.
func (c *TerminalClipboard) CopyImage(ctx context.Context, img image.Image) error {
	return fmt.Errorf("%w: image copy needs a graphical clipboard", ErrNotSupported)
}
