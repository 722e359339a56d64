package validation

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/iudanet/qrninja/internal/models"
)

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampDimensions snaps a pixel size into [128, 2048].
func ClampDimensions(px int) int {
	return clamp(px, models.MinDimensions, models.MaxDimensions)
}

// ClampLogoSize snaps a logo size percentage into [10, 35].
func ClampLogoSize(percent int) int {
	return clamp(percent, models.MinLogoSize, models.MaxLogoSize)
}

// ClampMargin snaps a quiet zone into [0, 10] modules.
func ClampMargin(modules int) int {
	return clamp(modules, 0, models.MaxMargin)
}

// ClampLogoPadding snaps logo padding into [0, 10] pixels.
func ClampLogoPadding(px int) int {
	return clamp(px, 0, models.MaxLogoPadding)
}

// ParseDimensions parses raw numeric input and clamps it.
// Пустой или нечисловой ввод возвращает fallback без ошибки, как поле ввода
// в браузере, которое просто не меняет значение. Число вне диапазона int
// прижимается к ближайшей границе.
func ParseDimensions(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if errors.Is(err, strconv.ErrRange) {
		// при переполнении Atoi возвращает ближайшее к вводу значение int
		return ClampDimensions(n)
	}
	if err != nil {
		return ClampDimensions(fallback)
	}
	return ClampDimensions(n)
}

// ParseHexColor parses #RGB or #RRGGBB.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("%w: color %q must start with #", ErrInvalidInput, s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: color %q must be #RGB or #RRGGBB", ErrInvalidInput, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: color %q is not hexadecimal", ErrInvalidInput, s)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

// NormalizeStyle fills defaults, clamps numeric fields and validates colors
// and the error correction level.
func NormalizeStyle(s models.Style) (models.Style, error) {
	def := models.DefaultStyle()

	if s.BackgroundColor == "" {
		s.BackgroundColor = def.BackgroundColor
	}
	if s.ForegroundColor == "" {
		s.ForegroundColor = def.ForegroundColor
	}
	for _, c := range []string{s.BackgroundColor, s.ForegroundColor} {
		if _, err := ParseHexColor(c); err != nil {
			return s, err
		}
	}

	s.ErrorCorrection = models.ErrorCorrection(strings.ToUpper(string(s.ErrorCorrection)))
	switch s.ErrorCorrection {
	case "":
		s.ErrorCorrection = def.ErrorCorrection
	case models.ErrorCorrectionLow, models.ErrorCorrectionMedium,
		models.ErrorCorrectionQuartile, models.ErrorCorrectionHigh:
	default:
		return s, fmt.Errorf("%w: error correction level %q (use L, M, Q or H)", ErrInvalidInput, s.ErrorCorrection)
	}

	if s.Dimensions == 0 {
		s.Dimensions = def.Dimensions
	}
	s.Dimensions = ClampDimensions(s.Dimensions)
	s.Margin = models.Modules(ClampMargin(s.QuietZone()))

	return s, nil
}

// NormalizeLogo clamps size and padding and defaults the position.
// A logo without image data is dropped.
func NormalizeLogo(l *models.Logo) (*models.Logo, error) {
	if l == nil || l.ImageData == "" {
		return nil, nil
	}

	out := *l
	if out.SizePercent == 0 {
		out.SizePercent = models.DefaultLogoSize
	}
	out.SizePercent = ClampLogoSize(out.SizePercent)
	out.PaddingPixels = ClampLogoPadding(out.PaddingPixels)

	switch out.Position {
	case "":
		out.Position = models.LogoCenter
	case models.LogoCenter, models.LogoCorner:
	default:
		return nil, fmt.Errorf("%w: logo position %q (use center or corner)", ErrInvalidInput, out.Position)
	}

	return &out, nil
}

// NormalizeFrame validates style, color and caption position.
// A "none" frame without caption is dropped.
func NormalizeFrame(f *models.Frame) (*models.Frame, error) {
	if f == nil {
		return nil, nil
	}

	out := *f
	switch out.Style {
	case "":
		out.Style = models.FrameNone
	case models.FrameNone, models.FrameSimple, models.FrameRounded, models.FrameShadow:
	default:
		return nil, fmt.Errorf("%w: frame style %q (use none, simple, rounded or shadow)", ErrInvalidInput, out.Style)
	}

	if out.Color != "" {
		if _, err := ParseHexColor(out.Color); err != nil {
			return nil, err
		}
	}

	switch out.CaptionPosition {
	case "":
		out.CaptionPosition = models.CaptionBottom
	case models.CaptionTop, models.CaptionBottom:
	default:
		return nil, fmt.Errorf("%w: caption position %q (use top or bottom)", ErrInvalidInput, out.CaptionPosition)
	}

	if out.Style == models.FrameNone && out.CaptionText == "" {
		return nil, nil
	}

	return &out, nil
}

// NormalizeCustomization normalizes every part of c.
func NormalizeCustomization(c models.Customization) (models.Customization, error) {
	style, err := NormalizeStyle(c.Style)
	if err != nil {
		return c, err
	}
	logo, err := NormalizeLogo(c.Logo)
	if err != nil {
		return c, err
	}
	frame, err := NormalizeFrame(c.Frame)
	if err != nil {
		return c, err
	}

	return models.Customization{Style: style, Logo: logo, Frame: frame}, nil
}
