package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/qrninja/internal/models"
)

// ErrEmptyBatch возвращается, если в пакете нет ни одной непустой строки
var ErrEmptyBatch = fmt.Errorf("%w: batch has no items", ErrInvalidInput)

// SplitBatch splits raw multi-line input into batch items.
// Blank lines are discarded, a trailing '\r' is removed, and the result is
// truncated to models.MaxBatchItems. dropped reports how many non-blank lines
// were cut off.
func SplitBatch(raw string) (items []string, dropped int, err error) {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, line)
	}

	if len(items) == 0 {
		return nil, 0, ErrEmptyBatch
	}

	if len(items) > models.MaxBatchItems {
		dropped = len(items) - models.MaxBatchItems
		items = items[:models.MaxBatchItems]
	}

	return items, dropped, nil
}

// IsValidation reports whether err is a user input validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
