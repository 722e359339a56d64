package encoder

import (
	"strings"

	"github.com/iudanet/qrninja/internal/models"
)

const upperHex = "0123456789ABCDEF"

// EscapeComponent percent-encodes s the way JavaScript's encodeURIComponent
// does: every UTF-8 byte is escaped except A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func EscapeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}

	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// NormalizePhone keeps ASCII digits only; a '+' survives when it is the very
// first character.
func NormalizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))

	for i := 0; i < len(phone); i++ {
		c := phone[i]
		if ('0' <= c && c <= '9') || (i == 0 && c == '+') {
			b.WriteByte(c)
		}
	}

	return b.String()
}

// Email encodes a mailto: URI. Subject and body are appended as query
// parameters, in that order, only when non-empty.
func Email(f models.EmailForm) string {
	mailto := "mailto:" + EscapeComponent(f.Email)

	params := make([]string, 0, 2)
	if f.Subject != "" {
		params = append(params, "subject="+EscapeComponent(f.Subject))
	}
	if f.Body != "" {
		params = append(params, "body="+EscapeComponent(f.Body))
	}

	if len(params) > 0 {
		mailto += "?" + strings.Join(params, "&")
	}

	return mailto
}

// Phone encodes a tel: URI.
func Phone(phone string) string {
	return "tel:" + NormalizePhone(phone)
}

// SMS encodes an sms: URI with an optional body parameter.
func SMS(f models.SMSForm) string {
	sms := "sms:" + NormalizePhone(f.Phone)

	if f.Message != "" {
		sms += "?body=" + EscapeComponent(f.Message)
	}

	return sms
}
