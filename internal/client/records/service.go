// Package records keeps the ordered sequence of generated QR records in a
// single persisted slot.
package records

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/qrninja/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service определяет операции над историей QR кодов, которые использует CLI
type Service interface {
	Generate(ctx context.Context, form models.Form, c models.Customization) (*models.Record, error)
	AppendBatch(ctx context.Context, raw string, c models.Customization) ([]*models.Record, int, error)
	Sorted(order SortOrder) []*models.Record
	Search(query string) []*models.Record
	Get(ref string) (*models.Record, error)
	Update(ctx context.Context, ref string, edit Edit) (*models.Record, error)
	Delete(ctx context.Context, ref string) (*models.Record, error)
	DeleteAll(ctx context.Context, confirmed bool) (int, error)
}

// Draft is a record before it gets an identity and timestamps.
type Draft struct {
	Source        map[string]string
	Type          models.QRType
	Payload       string
	Customization models.Customization
}

// Edit describes a change to an existing record.
// Nil fields keep the current value.
type Edit struct {
	// Customization replaces style, logo and frame as a whole
	Customization *models.Customization
	// Form re-encodes the payload and replaces the source fields
	Form models.Form
}

// SortOrder selects the ordering of a read-only view.
type SortOrder string

// Sort orders
const (
	SortNewest   SortOrder = "newest"
	SortOldest   SortOrder = "oldest"
	SortModified SortOrder = "modified"
	SortType     SortOrder = "type"
)

// ParseSortOrder parses a sort flag value; empty means newest.
func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(strings.ToLower(strings.TrimSpace(s))); o {
	case "":
		return SortNewest, nil
	case SortNewest, SortOldest, SortModified, SortType:
		return o, nil
	default:
		return "", fmt.Errorf("unknown sort order %q (use newest, oldest, modified or type)", s)
	}
}
