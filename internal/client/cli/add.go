package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/iudanet/qrninja/internal/client/iocli"
	"github.com/iudanet/qrninja/internal/models"
)

const addUsage = "Usage: qrninja add <url|wifi|vcard|email|phone|sms|event> [--template ID]"

// RunAdd prompts for the fields of one QR type and stores the result.
func (c *Cli) RunAdd(ctx context.Context, typeName, templateID string) error {
	if typeName == "" {
		return fmt.Errorf("missing QR type. %s", addUsage)
	}

	t := models.QRType(strings.ToLower(strings.TrimSpace(typeName)))
	if !t.Valid() || t == models.TypeBatch {
		return fmt.Errorf("unknown QR type: %s. %s", typeName, addUsage)
	}

	cust, err := c.startingCustomization(templateID)
	if err != nil {
		return err
	}

	c.io.Printf("=== New %s QR Code ===\n", t.Label())
	c.io.Println()

	form, err := readForm(c.io, t, nil)
	if err != nil {
		return err
	}

	rec, err := c.records.Generate(ctx, form, cust)
	if err != nil {
		return fmt.Errorf("failed to create QR code: %w", err)
	}

	c.io.Println()
	c.success("QR code created!")
	return c.render("record", recordTemplate, rec)
}

// RunBatch creates one URL record per non-blank line, read from file or,
// when file is empty, from the input until EOF.
func (c *Cli) RunBatch(ctx context.Context, file, templateID string) error {
	cust, err := c.startingCustomization(templateID)
	if err != nil {
		return err
	}

	var raw string
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read batch file: %w", err)
		}
		raw = string(b)
	} else {
		c.io.Println("=== Batch QR Codes ===")
		c.io.Println()
		raw, err = c.io.ReadAll(fmt.Sprintf("Enter up to %d URLs or texts, one per line. Finish with Ctrl-D:\n", models.MaxBatchItems))
		if err != nil {
			return fmt.Errorf("failed to read batch: %w", err)
		}
	}

	recs, dropped, err := c.records.AppendBatch(ctx, raw, cust)
	if err != nil {
		return fmt.Errorf("failed to create batch: %w", err)
	}

	c.io.Println()
	c.success("Created %d QR code(s)", len(recs))
	if dropped > 0 {
		c.warn("%d line(s) over the limit of %d were skipped", dropped, models.MaxBatchItems)
	}
	for _, rec := range recs {
		c.io.Printf("  %s  %s\n", rec.ID, preview(rec.Payload, 48))
	}

	return nil
}

// startingCustomization returns the defaults, recolored by a template when
// templateID is set.
func (c *Cli) startingCustomization(templateID string) (models.Customization, error) {
	cust := models.DefaultCustomization()
	if templateID == "" {
		return cust, nil
	}

	tpl, err := c.catalog.Find(templateID)
	if err != nil {
		return cust, fmt.Errorf("failed to apply template: %w", err)
	}
	cust.Style.BackgroundColor = tpl.Background
	cust.Style.ForegroundColor = tpl.Foreground
	return cust, nil
}

// prompter читает поля формы; текущее значение показывается в скобках
// и остается, если ввод пустой. "-" очищает обычное текстовое поле.
type prompter struct {
	io      iocli.IO
	err     error
	current map[string]string
}

func (p *prompter) read(label, prompt string, secret bool) (string, bool) {
	if p.err != nil {
		return "", false
	}

	read := p.io.ReadInput
	if secret {
		read = p.io.ReadPassword
	}
	v, err := read(prompt)
	if err != nil {
		p.err = fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
		return "", false
	}
	return v, true
}

func (p *prompter) text(label, key string) string {
	def := p.current[key]
	prompt := label + ": "
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, def)
	}

	v, ok := p.read(label, prompt, false)
	if !ok {
		return ""
	}

	switch v = strings.TrimSpace(v); v {
	case "":
		return def
	case "-":
		return ""
	default:
		return v
	}
}

// exact keeps the input byte for byte. Empty input keeps the current value.
func (p *prompter) exact(label, key string) string {
	def := p.current[key]
	prompt := label + ": "
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, def)
	}

	v, ok := p.read(label, prompt, false)
	if !ok || v == "" {
		return def
	}
	return v
}

// secret reads without echo and keeps the input byte for byte.
// Пустой ввод при сохраненном значении требует явного ответа, оставить его или очистить.
func (p *prompter) secret(label, key string) string {
	def := p.current[key]
	prompt := label + ": "
	if def != "" {
		prompt = label + " (empty keeps current): "
	}

	v, ok := p.read(label, prompt, true)
	if !ok || v != "" || def == "" {
		return v
	}

	if p.yesNo(fmt.Sprintf("Keep current %s", strings.ToLower(label)), true) {
		return def
	}
	return ""
}

func (p *prompter) yesNo(label string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	v, _ := p.read(label, fmt.Sprintf("%s (%s): ", label, hint), false)
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return def
	}
}

type fieldKind int

const (
	plainField fieldKind = iota
	exactField
	secretField
	flagField
)

type formField struct {
	key   string
	label string
	kind  fieldKind
}

// formFields lists the prompts per QR type in the order they are asked.
// Ключи совпадают с source полями записи.
var formFields = map[models.QRType][]formField{
	models.TypeURL:   {{key: "url", label: "URL or text"}},
	models.TypeBatch: {{key: "url", label: "URL or text"}},
	models.TypeWiFi: {
		{key: "ssid", label: "Network name (SSID)", kind: exactField},
		{key: "password", label: "Password", kind: secretField},
		{key: "encryption", label: "Encryption (WPA, WEP, nopass)"},
		{key: "hidden", label: "Hidden network", kind: flagField},
	},
	models.TypeVCard: {
		{key: "firstName", label: "First name"},
		{key: "lastName", label: "Last name"},
		{key: "phone", label: "Phone"},
		{key: "email", label: "Email"},
		{key: "company", label: "Company"},
		{key: "jobTitle", label: "Job title"},
		{key: "website", label: "Website"},
		{key: "address", label: "Address"},
	},
	models.TypeEmail: {
		{key: "email", label: "Email address"},
		{key: "subject", label: "Subject (optional)"},
		{key: "body", label: "Body (optional)"},
	},
	models.TypePhone: {{key: "phone", label: "Phone number"}},
	models.TypeSMS: {
		{key: "phone", label: "Phone number"},
		{key: "message", label: "Message (optional)"},
	},
	models.TypeEvent: {
		{key: "title", label: "Title"},
		{key: "startDate", label: "Start (YYYY-MM-DDTHH:MM)"},
		{key: "endDate", label: "End (optional)"},
		{key: "location", label: "Location (optional)"},
		{key: "description", label: "Description (optional)"},
	},
}

// readForm prompts for every field of the form of type t, starting from
// current source fields.
func readForm(io iocli.IO, t models.QRType, current map[string]string) (models.Form, error) {
	fields, ok := formFields[t]
	if !ok {
		return nil, fmt.Errorf("unknown QR type: %s", t)
	}

	p := &prompter{io: io, current: current}
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		switch f.kind {
		case exactField:
			values[f.key] = p.exact(f.label, f.key)
		case secretField:
			values[f.key] = p.secret(f.label, f.key)
		case flagField:
			def, _ := strconv.ParseBool(current[f.key])
			values[f.key] = strconv.FormatBool(p.yesNo(f.label, def))
		default:
			values[f.key] = p.text(f.label, f.key)
		}
	}

	if p.err != nil {
		return nil, p.err
	}
	return models.ParseForm(t, values)
}
