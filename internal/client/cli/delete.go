package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/qrninja/internal/client/records"
)

// RunDelete removes one record after confirmation unless force is set.
func (c *Cli) RunDelete(ctx context.Context, ref string, force bool) error {
	rec, err := c.lookup(ref)
	if err != nil {
		return err
	}

	c.io.Println("=== Delete QR Code ===")
	c.io.Println()
	c.io.Println("About to delete:")
	c.io.Printf("  Type:    %s\n", rec.Type.Label())
	c.io.Printf("  ID:      %s\n", rec.ID)
	c.io.Printf("  Payload: %s\n", preview(rec.Payload, 60))
	c.io.Println()

	if !force {
		ok, err := c.confirm("Are you sure you want to delete this QR code?")
		if err != nil {
			return err
		}
		if !ok {
			c.io.Println("Deletion cancelled.")
			return nil
		}
	}

	// удаляем по полному ID: префикс мог стать неоднозначным, пока ждали ответа
	if _, err := c.records.Delete(ctx, rec.ID); err != nil {
		return fmt.Errorf("failed to delete QR code: %w", err)
	}

	c.success("QR code deleted!")
	return nil
}

// RunClear removes every record after confirmation unless force is set.
func (c *Cli) RunClear(ctx context.Context, force bool) error {
	total := len(c.records.Sorted(records.SortNewest))
	if total == 0 {
		c.io.Println("History is already empty.")
		return nil
	}

	confirmed := force
	if !confirmed {
		var err error
		confirmed, err = c.confirm(fmt.Sprintf("Delete all %d QR code(s)? This cannot be undone.", total))
		if err != nil {
			return err
		}
	}
	if !confirmed {
		c.io.Println("Nothing was deleted.")
		return nil
	}

	n, err := c.records.DeleteAll(ctx, confirmed)
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	c.success("Deleted %d QR code(s)", n)
	return nil
}
