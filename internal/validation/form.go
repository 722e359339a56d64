package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/qrninja/internal/encoder"
	"github.com/iudanet/qrninja/internal/models"
)

// ErrInvalidInput помечает все ошибки валидации пользовательского ввода
var ErrInvalidInput = errors.New("invalid input")

func required(field string) error {
	return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateForm проверяет обязательные поля выбранного типа.
// Должна вызываться до энкодера: энкодеры сами ничего не проверяют.
// loc используется для дат события без часового пояса.
func ValidateForm(form models.Form, loc *time.Location) error {
	switch f := form.(type) {
	case models.URLForm:
		if blank(f.URL) {
			return required("url")
		}
	case models.WiFiForm:
		if blank(f.SSID) {
			return required("ssid")
		}
		switch f.Encryption {
		case "", models.EncryptionWPA, models.EncryptionWEP, models.EncryptionNoPass:
		default:
			return fmt.Errorf("%w: unknown encryption %q (use WPA, WEP or nopass)", ErrInvalidInput, f.Encryption)
		}
	case models.VCardForm:
		if blank(f.FirstName) {
			return required("firstName")
		}
	case models.EmailForm:
		if blank(f.Email) {
			return required("email")
		}
	case models.PhoneForm:
		if blank(f.Phone) {
			return required("phone")
		}
	case models.SMSForm:
		if blank(f.Phone) {
			return required("phone")
		}
	case models.EventForm:
		if blank(f.Title) {
			return required("title")
		}
		if blank(f.StartDate) {
			return required("startDate")
		}
		if _, ok := encoder.ParseEventTime(f.StartDate, loc); !ok {
			return fmt.Errorf("%w: startDate %q is not a valid date", ErrInvalidInput, f.StartDate)
		}
		if f.EndDate != "" {
			if _, ok := encoder.ParseEventTime(f.EndDate, loc); !ok {
				return fmt.Errorf("%w: endDate %q is not a valid date", ErrInvalidInput, f.EndDate)
			}
		}
	case nil:
		return fmt.Errorf("%w: form is missing", ErrInvalidInput)
	default:
		return fmt.Errorf("%w: unsupported form type %T", ErrInvalidInput, form)
	}

	return nil
}
