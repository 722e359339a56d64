package customize

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/qrninja/internal/client/templates"
	"github.com/iudanet/qrninja/internal/models"
	"github.com/iudanet/qrninja/internal/validation"
)

// Editor holds the customization being edited. Numeric dimension input is
// committed after the debounce window; everything else commits immediately.
type Editor struct {
	debounce  *Debouncer
	onCommit  func(models.Customization)
	state     models.Customization
	dimsInput string
	mu        sync.Mutex
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithWindow sets the settle window for dimension input.
func WithWindow(window time.Duration) EditorOption {
	return func(e *Editor) { e.debounce = NewDebouncer(window) }
}

// WithOnCommit registers a callback invoked after every committed change.
func WithOnCommit(fn func(models.Customization)) EditorOption {
	return func(e *Editor) { e.onCommit = fn }
}

// NewEditor starts editing from initial, with unset fields defaulted.
func NewEditor(initial models.Customization, opts ...EditorOption) (*Editor, error) {
	state, err := validation.NormalizeCustomization(initial)
	if err != nil {
		return nil, err
	}

	e := &Editor{
		debounce:  NewDebouncer(DefaultWindow),
		state:     state,
		dimsInput: strconv.Itoa(state.Style.Dimensions),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Customization returns a snapshot of the committed state.
func (e *Editor) Customization() models.Customization {
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneCustomization(e.state)
}

// DimensionsInput returns the raw text currently in the dimensions field.
func (e *Editor) DimensionsInput() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dimsInput
}

// DimensionsPending reports whether dimension input is waiting to be committed.
func (e *Editor) DimensionsPending() bool {
	return e.debounce.Pending()
}

// SetDimensionsInput records raw input and commits the clamped value once
// the input settles. Typing "2" on the way to "256" never commits 128.
func (e *Editor) SetDimensionsInput(raw string) {
	e.mu.Lock()
	e.dimsInput = raw
	e.mu.Unlock()

	e.debounce.Trigger(e.commitDimensions)
}

// Blur commits the dimensions field immediately, clamped.
func (e *Editor) Blur() {
	if !e.debounce.Flush() {
		e.commitDimensions()
	}
}

func (e *Editor) commitDimensions() {
	e.mu.Lock()
	dims := validation.ParseDimensions(e.dimsInput, e.state.Style.Dimensions)
	e.state.Style.Dimensions = dims
	e.dimsInput = strconv.Itoa(dims)
	e.mu.Unlock()

	e.committed()
}

// ApplyTemplate sets background and foreground from a template.
func (e *Editor) ApplyTemplate(t templates.Template) error {
	return e.SetColors(t.Background, t.Foreground)
}

// SetColors sets background and foreground; empty keeps the current color.
func (e *Editor) SetColors(background, foreground string) error {
	for _, c := range []string{background, foreground} {
		if c == "" {
			continue
		}
		if _, err := validation.ParseHexColor(c); err != nil {
			return err
		}
	}

	return e.update(func(c *models.Customization) error {
		if background != "" {
			c.Style.BackgroundColor = background
		}
		if foreground != "" {
			c.Style.ForegroundColor = foreground
		}
		return nil
	})
}

// SetErrorCorrection sets the error correction level (L, M, Q or H).
func (e *Editor) SetErrorCorrection(level string) error {
	lvl := models.ErrorCorrection(strings.ToUpper(strings.TrimSpace(level)))
	switch lvl {
	case models.ErrorCorrectionLow, models.ErrorCorrectionMedium,
		models.ErrorCorrectionQuartile, models.ErrorCorrectionHigh:
	default:
		return fmt.Errorf("%w: error correction level %q (use L, M, Q or H)", validation.ErrInvalidInput, level)
	}

	return e.update(func(c *models.Customization) error {
		c.Style.ErrorCorrection = lvl
		return nil
	})
}

// SetMargin sets the quiet zone in modules, clamped to [0, 10].
func (e *Editor) SetMargin(modules int) error {
	return e.update(func(c *models.Customization) error {
		c.Style.Margin = models.Modules(validation.ClampMargin(modules))
		return nil
	})
}

// SetLogo replaces the logo; nil removes it.
func (e *Editor) SetLogo(logo *models.Logo) error {
	normalized, err := validation.NormalizeLogo(logo)
	if err != nil {
		return err
	}
	return e.update(func(c *models.Customization) error {
		c.Logo = normalized
		return nil
	})
}

// SetFrame replaces the frame; nil removes it.
func (e *Editor) SetFrame(frame *models.Frame) error {
	normalized, err := validation.NormalizeFrame(frame)
	if err != nil {
		return err
	}
	return e.update(func(c *models.Customization) error {
		c.Frame = normalized
		return nil
	})
}

// Close cancels a pending dimension commit.
func (e *Editor) Close() {
	e.debounce.Stop()
}

func (e *Editor) update(fn func(*models.Customization) error) error {
	e.mu.Lock()
	if err := fn(&e.state); err != nil {
		e.mu.Unlock()
		return err
	}
	e.mu.Unlock()

	e.committed()
	return nil
}

func (e *Editor) committed() {
	if e.onCommit != nil {
		e.onCommit(e.Customization())
	}
}

func cloneCustomization(c models.Customization) models.Customization {
	out := c
	if c.Style.Margin != nil {
		out.Style.Margin = models.Modules(*c.Style.Margin)
	}
	if c.Logo != nil {
		logo := *c.Logo
		out.Logo = &logo
	}
	if c.Frame != nil {
		frame := *c.Frame
		out.Frame = &frame
	}
	return out
}
