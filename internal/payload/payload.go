// Package payload pairs every form variant with its validator and encoder.
package payload

import (
	"fmt"
	"time"

	"github.com/iudanet/qrninja/internal/encoder"
	"github.com/iudanet/qrninja/internal/models"
	"github.com/iudanet/qrninja/internal/validation"
)

// Build validates the form and returns the encoded payload text.
// Zone-less event dates are interpreted in local time.
func Build(form models.Form) (string, error) {
	return BuildIn(form, time.Local)
}

// BuildIn is Build with an explicit location for zone-less event dates.
func BuildIn(form models.Form, loc *time.Location) (string, error) {
	if err := validation.ValidateForm(form, loc); err != nil {
		return "", err
	}

	switch f := form.(type) {
	case models.URLForm:
		// URL и произвольный текст кодируются как есть
		return f.URL, nil
	case models.WiFiForm:
		return encoder.WiFi(f), nil
	case models.VCardForm:
		return encoder.VCard(f), nil
	case models.EmailForm:
		return encoder.Email(f), nil
	case models.PhoneForm:
		return encoder.Phone(f.Phone), nil
	case models.SMSForm:
		return encoder.SMS(f), nil
	case models.EventForm:
		return encoder.EventIn(f, loc), nil
	}

	return "", fmt.Errorf("%w: unsupported form type %T", validation.ErrInvalidInput, form)
}

// Fields returns the source map stored alongside the record.
func Fields(form models.Form) map[string]string {
	if form == nil {
		return nil
	}
	return form.Fields()
}
