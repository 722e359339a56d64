package cli

import (
	"fmt"
	"strings"

	"github.com/iudanet/qrninja/internal/client/records"
	"github.com/iudanet/qrninja/internal/models"
)

type listView struct {
	Title   string
	Hint    string
	Records []*models.Record
}

// RunList prints the history in the requested order.
func (c *Cli) RunList(sort string) error {
	order, err := records.ParseSortOrder(sort)
	if err != nil {
		return err
	}

	return c.render("list", listTemplate, listView{
		Title:   "Saved QR Codes",
		Hint:    "Use 'qrninja add <type>' or 'qrninja batch' to create your first QR code.",
		Records: c.records.Sorted(order),
	})
}

// RunSearch prints records whose payload, type tag or type label contains
// query, ignoring case.
func (c *Cli) RunSearch(query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return fmt.Errorf("missing search query. Usage: qrninja search <query>")
	}

	return c.render("search", listTemplate, listView{
		Title:   fmt.Sprintf("Search: %q", query),
		Records: c.records.Search(query),
	})
}
