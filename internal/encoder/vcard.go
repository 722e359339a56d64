package encoder

import (
	"strings"

	"github.com/iudanet/qrninja/internal/models"
)

// VCard encodes a contact as a vCard 3.0 block, lines joined with "\n".
// N and FN are emitted together when either name part is present; the other
// properties follow in fixed order and only when non-empty.
func VCard(f models.VCardForm) string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
	}

	if f.FirstName != "" || f.LastName != "" {
		lines = append(lines, "N:"+f.LastName+";"+f.FirstName+";;;")

		names := make([]string, 0, 2)
		for _, part := range []string{f.FirstName, f.LastName} {
			if part != "" {
				names = append(names, part)
			}
		}
		lines = append(lines, "FN:"+strings.Join(names, " "))
	}

	optional := []struct {
		prefix string
		value  string
	}{
		{"TEL:", f.Phone},
		{"EMAIL:", f.Email},
		{"ORG:", f.Company},
		{"TITLE:", f.JobTitle},
		{"URL:", f.Website},
	}
	for _, p := range optional {
		if p.value != "" {
			lines = append(lines, p.prefix+p.value)
		}
	}

	// Адрес целиком кладется в поле street компонента ADR
	if f.Address != "" {
		lines = append(lines, "ADR:;;"+f.Address+";;;;")
	}

	lines = append(lines, "END:VCARD")

	return strings.Join(lines, "\n")
}
