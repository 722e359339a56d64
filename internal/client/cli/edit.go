package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/iudanet/qrninja/internal/client/customize"
	"github.com/iudanet/qrninja/internal/client/records"
	"github.com/iudanet/qrninja/internal/client/render"
	"github.com/iudanet/qrninja/internal/models"
	"github.com/iudanet/qrninja/internal/validation"
)

// RunEdit opens an interactive editor for one record. Nothing is written
// until "save"; "cancel" or end of input discards the changes.
func (c *Cli) RunEdit(ctx context.Context, ref string) error {
	rec, err := c.lookup(ref)
	if err != nil {
		return err
	}

	editor, err := customize.NewEditor(rec.Customization(), customize.WithWindow(c.window))
	if err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	defer editor.Close()

	c.io.Printf("=== Edit %s QR Code %s ===\n", rec.Type.Label(), rec.ID)
	c.io.Println()
	c.io.Println(editHelp)
	c.io.Println()

	var form models.Form
	for {
		line, err := c.io.ReadInput("edit> ")
		if errors.Is(err, io.EOF) {
			c.io.Println("Changes discarded.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)

		switch strings.ToLower(cmd) {
		case "":
			continue
		case "help", "?":
			c.io.Println(editHelp)
		case "show":
			c.showEditor(editor)
		case "content":
			current := rec.Source
			if form != nil {
				current = form.Fields()
			}
			f, err := readForm(c.io, rec.Type, current)
			if err != nil {
				return err
			}
			form = f
		case "template":
			err = c.editTemplate(editor, arg)
		case "colors":
			err = c.editColors(editor)
		case "ec":
			err = editor.SetErrorCorrection(arg)
		case "size":
			// значение применяется после паузы ввода или при save
			editor.SetDimensionsInput(arg)
		case "margin":
			err = editMargin(editor, arg)
		case "logo":
			err = c.editLogo(editor, arg)
		case "frame":
			err = c.editFrame(editor, arg)
		case "save":
			editor.Blur()
			cust := editor.Customization()
			updated, err := c.records.Update(ctx, rec.ID, records.Edit{Customization: &cust, Form: form})
			if err != nil {
				if validation.IsValidation(err) {
					c.warn("%v", err)
					continue
				}
				return fmt.Errorf("failed to save QR code: %w", err)
			}
			c.success("QR code updated!")
			return c.render("record", recordTemplate, updated)
		case "cancel", "quit", "exit":
			c.io.Println("Changes discarded.")
			return nil
		default:
			c.warn("Unknown command %q, type 'help' for the list", cmd)
		}

		if err != nil {
			if !validation.IsValidation(err) && !errors.Is(err, render.ErrInvalidLogo) {
				return err
			}
			c.warn("%v", err)
		}
	}
}

func (c *Cli) showEditor(e *customize.Editor) {
	_ = c.render("settings", customizationTemplate, e.Customization())
	if e.DimensionsPending() {
		c.io.Printf("Size input %q is not applied yet\n", e.DimensionsInput())
	}
}

func (c *Cli) editTemplate(e *customize.Editor, id string) error {
	if id == "" {
		return c.RunTemplates()
	}
	tpl, err := c.catalog.Find(id)
	if err != nil {
		c.warn("%v: %s", err, id)
		return nil
	}
	return e.ApplyTemplate(tpl)
}

func (c *Cli) editColors(e *customize.Editor) error {
	cur := e.Customization().Style
	p := &prompter{io: c.io, current: map[string]string{
		"bg": cur.BackgroundColor,
		"fg": cur.ForegroundColor,
	}}
	bg := p.text("Background (#RRGGBB)", "bg")
	fg := p.text("Foreground (#RRGGBB)", "fg")
	if p.err != nil {
		return p.err
	}
	return e.SetColors(bg, fg)
}

func editMargin(e *customize.Editor, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("%w: margin must be a number", validation.ErrInvalidInput)
	}
	return e.SetMargin(n)
}

func (c *Cli) editLogo(e *customize.Editor, path string) error {
	switch path {
	case "":
		return fmt.Errorf("%w: usage: logo <path>|none", validation.ErrInvalidInput)
	case "none":
		return e.SetLogo(nil)
	}

	data, err := loadLogo(path)
	if err != nil {
		return err
	}

	logo := &models.Logo{ImageData: data}
	if cur := e.Customization().Logo; cur != nil {
		logo.Position = cur.Position
		logo.SizePercent = cur.SizePercent
		logo.PaddingPixels = cur.PaddingPixels
	}

	p := &prompter{io: c.io, current: map[string]string{
		"position": string(logo.Position),
		"size":     itoaOrEmpty(logo.SizePercent),
		"padding":  itoaOrEmpty(logo.PaddingPixels),
	}}
	logo.Position = models.LogoPosition(p.text("Position (center, corner)", "position"))
	size := p.text(fmt.Sprintf("Size %% (%d-%d)", models.MinLogoSize, models.MaxLogoSize), "size")
	padding := p.text("Padding px (0-10)", "padding")
	if p.err != nil {
		return p.err
	}
	logo.SizePercent, _ = strconv.Atoi(size)
	logo.PaddingPixels, _ = strconv.Atoi(padding)

	// центральный логотип закрывает модули, поднимаем коррекцию ошибок
	if logo.Position != models.LogoCorner {
		if lvl := e.Customization().Style.ErrorCorrection; lvl == models.ErrorCorrectionLow || lvl == models.ErrorCorrectionMedium {
			c.warn("Error correction %s may not survive a center logo, consider 'ec H'", lvl)
		}
	}

	return e.SetLogo(logo)
}

func (c *Cli) editFrame(e *customize.Editor, arg string) error {
	if arg == "none" {
		return e.SetFrame(nil)
	}

	cur := e.Customization().Frame
	if cur == nil {
		cur = &models.Frame{}
	}
	p := &prompter{io: c.io, current: map[string]string{
		"style":    string(cur.Style),
		"color":    cur.Color,
		"caption":  cur.CaptionText,
		"position": string(cur.CaptionPosition),
	}}

	f := &models.Frame{
		Style:           models.FrameStyle(p.text("Style (none, simple, rounded, shadow)", "style")),
		Color:           p.text("Color (empty uses foreground)", "color"),
		CaptionText:     p.text("Caption (optional)", "caption"),
		CaptionPosition: models.CaptionPosition(p.text("Caption position (top, bottom)", "position")),
	}
	if p.err != nil {
		return p.err
	}
	return e.SetFrame(f)
}

// loadLogo reads an image file into a data URL and checks that it decodes.
func loadLogo(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read logo: %v", validation.ErrInvalidInput, err)
	}

	// Определяем MIME type по расширению, затем по содержимому
	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mimeType == "" {
		mimeType = http.DetectContentType(content)
	}

	data := render.EncodeLogo(mimeType, content)
	if _, err := render.DecodeLogo(data); err != nil {
		return "", err
	}
	return data, nil
}

func itoaOrEmpty(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
