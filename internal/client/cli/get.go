package cli

import (
	"github.com/iudanet/qrninja/internal/client/render"
)

// RunGet prints the record details and, when preview is set, the QR code
// drawn with terminal block characters.
func (c *Cli) RunGet(ref string, preview bool) error {
	rec, err := c.lookup(ref)
	if err != nil {
		return err
	}

	if err := c.render("record", recordTemplate, rec); err != nil {
		return err
	}

	if !preview {
		return nil
	}

	text, err := render.Text(rec.Payload, rec.Style.ErrorCorrection)
	if err != nil {
		// превью необязательно, сама запись уже напечатана
		c.logger.Debug("preview failed", "id", rec.ID, "error", err)
		c.warn("Preview unavailable: %v", err)
		return nil
	}

	c.io.Println()
	c.io.Println(text)
	return nil
}
