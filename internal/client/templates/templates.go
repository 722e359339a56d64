// Package templates provides the predefined color themes for QR codes.
package templates

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iudanet/qrninja/internal/validation"
)

// ErrTemplateNotFound is returned for an unknown template id
var ErrTemplateNotFound = errors.New("template not found")

// Template is a named background/foreground color pair.
type Template struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Preview    string `yaml:"preview,omitempty"`
}

var builtin = []Template{
	{ID: "classic", Name: "Classic", Background: "#FFFFFF", Foreground: "#000000", Preview: "⬜⬛"},
	{ID: "ocean", Name: "Ocean", Background: "#E0F4FF", Foreground: "#0077B6", Preview: "🌊"},
	{ID: "sunset", Name: "Sunset", Background: "#FFF5E6", Foreground: "#FF6B35", Preview: "🌅"},
	{ID: "forest", Name: "Forest", Background: "#E8F5E9", Foreground: "#2E7D32", Preview: "🌲"},
	{ID: "neon", Name: "Neon", Background: "#0D0D0D", Foreground: "#39FF14", Preview: "💚"},
	{ID: "minimal", Name: "Minimal", Background: "#FAFAFA", Foreground: "#424242", Preview: "◽"},
	{ID: "dark", Name: "Dark Mode", Background: "#1A1A1A", Foreground: "#FFFFFF", Preview: "🌙"},
	{ID: "pastel", Name: "Pastel", Background: "#FFF0F5", Foreground: "#DB7093", Preview: "🌸"},
	{ID: "royal", Name: "Royal", Background: "#F5F0FF", Foreground: "#6B21A8", Preview: "👑"},
	{ID: "fire", Name: "Fire", Background: "#FFF8E1", Foreground: "#D32F2F", Preview: "🔥"},
	{ID: "ice", Name: "Ice", Background: "#E3F2FD", Foreground: "#1565C0", Preview: "❄️"},
	{ID: "gold", Name: "Gold", Background: "#FFFDE7", Foreground: "#B8860B", Preview: "✨"},
}

// Builtin returns a copy of the built-in templates in display order.
func Builtin() []Template {
	return append([]Template(nil), builtin...)
}

// Catalog is an ordered, id-indexed set of templates.
type Catalog struct {
	index map[string]int
	list  []Template
}

// NewCatalog starts from the built-ins and applies extra on top: a template
// with a known id replaces it in place, a new id is appended.
func NewCatalog(extra ...Template) *Catalog {
	c := &Catalog{index: make(map[string]int)}
	for _, t := range builtin {
		c.put(t)
	}
	for _, t := range extra {
		c.put(t)
	}
	return c
}

func (c *Catalog) put(t Template) {
	key := strings.ToLower(t.ID)
	if i, ok := c.index[key]; ok {
		c.list[i] = t
		return
	}
	c.index[key] = len(c.list)
	c.list = append(c.list, t)
}

// All returns every template in display order.
func (c *Catalog) All() []Template {
	return append([]Template(nil), c.list...)
}

// Find looks a template up by id, ignoring case.
func (c *Catalog) Find(id string) (Template, error) {
	i, ok := c.index[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	return c.list[i], nil
}

type fileFormat struct {
	Templates []Template `yaml:"templates"`
}

// LoadFile reads user templates from a YAML file of the form
//
//	templates:
//	  - id: brand
//	    name: Brand
//	    background: "#FFFFFF"
//	    foreground: "#FF0066"
func LoadFile(path string) ([]Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates file: %w", err)
	}

	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse templates file: %w", err)
	}

	for i, t := range f.Templates {
		if strings.TrimSpace(t.ID) == "" {
			return nil, fmt.Errorf("%w: template #%d has no id", validation.ErrInvalidInput, i+1)
		}
		if t.Name == "" {
			f.Templates[i].Name = t.ID
		}
		if _, err := validation.ParseHexColor(t.Background); err != nil {
			return nil, fmt.Errorf("template %q background: %w", t.ID, err)
		}
		if _, err := validation.ParseHexColor(t.Foreground); err != nil {
			return nil, fmt.Errorf("template %q foreground: %w", t.ID, err)
		}
	}

	return f.Templates, nil
}
