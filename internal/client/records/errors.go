package records

import (
	"errors"
	"fmt"

	"github.com/iudanet/qrninja/internal/validation"
)

// Record store errors
var (
	// ErrRecordNotFound indicates that no record matches the reference
	ErrRecordNotFound = errors.New("record not found")

	// ErrAmbiguousRef indicates that an ID prefix matches several records
	ErrAmbiguousRef = errors.New("ambiguous record reference")

	// ErrConfirmationRequired is returned by DeleteAll without confirmation
	ErrConfirmationRequired = errors.New("confirmation required")

	// ErrEmptyPayload indicates an attempt to store a record without payload
	ErrEmptyPayload = fmt.Errorf("%w: payload is empty", validation.ErrInvalidInput)
)
