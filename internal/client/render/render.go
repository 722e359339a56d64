// Package render draws QR records into raster images.
package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"

	"github.com/iudanet/qrninja/internal/models"
	"github.com/iudanet/qrninja/internal/validation"
)

// ErrInvalidLogo is returned when the logo image cannot be decoded
var ErrInvalidLogo = errors.New("invalid logo image")

// Spec is everything needed to draw one QR code.
type Spec struct {
	Logo    *models.Logo
	Frame   *models.Frame
	Payload string
	Style   models.Style
}

// SpecFor builds a render spec from a stored record.
func SpecFor(rec *models.Record) Spec {
	return Spec{
		Payload: rec.Payload,
		Style:   rec.Style,
		Logo:    rec.Logo,
		Frame:   rec.Frame,
	}
}

// Renderer draws a spec into an image.
type Renderer interface {
	Render(ctx context.Context, spec Spec) (image.Image, error)
}

// Ensure, that QRRenderer does implement Renderer.
var _ Renderer = (*QRRenderer)(nil)

// QRRenderer computes the module matrix with go-qrcode and draws it with the
// configured colors, quiet zone, logo and frame. Without a frame the output
// is exactly Style.Dimensions pixels square.
type QRRenderer struct{}

// NewQRRenderer creates a renderer.
func NewQRRenderer() *QRRenderer {
	return &QRRenderer{}
}

// Render draws spec. The payload is encoded as is.
func (r *QRRenderer) Render(ctx context.Context, spec Spec) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	style, err := validation.NormalizeStyle(spec.Style)
	if err != nil {
		return nil, err
	}
	bg, _ := validation.ParseHexColor(style.BackgroundColor)
	fg, _ := validation.ParseHexColor(style.ForegroundColor)

	bitmap, err := Matrix(spec.Payload, style.ErrorCorrection)
	if err != nil {
		return nil, err
	}

	margin := style.QuietZone()
	img := drawSymbol(bitmap, margin, style.Dimensions, bg, fg)

	logo, err := validation.NormalizeLogo(spec.Logo)
	if err != nil {
		return nil, err
	}
	if logo != nil {
		quiet := margin * style.Dimensions / (len(bitmap) + 2*margin)
		if err := overlayLogo(img, logo, quiet, bg); err != nil {
			return nil, err
		}
	}

	frame, err := validation.NormalizeFrame(spec.Frame)
	if err != nil {
		return nil, err
	}
	if frame == nil {
		return img, nil
	}

	frameColor := fg
	if frame.Color != "" {
		frameColor, _ = validation.ParseHexColor(frame.Color)
	}

	return drawFrame(img, frame, bg, fg, frameColor), nil
}

// Matrix returns the module matrix without quiet zone.
func Matrix(payload string, level models.ErrorCorrection) ([][]bool, error) {
	q, err := qrcode.New(payload, recoveryLevel(level))
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr matrix: %w", err)
	}
	q.DisableBorder = true
	return q.Bitmap(), nil
}

// Text renders the payload as a compact block-character QR code for terminals.
func Text(payload string, level models.ErrorCorrection) (string, error) {
	q, err := qrcode.New(payload, recoveryLevel(level))
	if err != nil {
		return "", fmt.Errorf("failed to encode qr matrix: %w", err)
	}
	return q.ToSmallString(false), nil
}

func recoveryLevel(level models.ErrorCorrection) qrcode.RecoveryLevel {
	switch level {
	case models.ErrorCorrectionLow:
		return qrcode.Low
	case models.ErrorCorrectionQuartile:
		return qrcode.High
	case models.ErrorCorrectionHigh:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// drawSymbol maps every module (and the quiet zone) onto a size×size canvas.
// Границы модулей считаются целочисленно, чтобы модули покрывали холст без зазоров.
func drawSymbol(bitmap [][]bool, margin, size int, bg, fg color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	total := len(bitmap) + 2*margin
	if total == 0 {
		return img
	}

	ink := image.NewUniform(fg)
	for y, row := range bitmap {
		y0 := (y + margin) * size / total
		y1 := (y + margin + 1) * size / total
		for x, dark := range row {
			if !dark {
				continue
			}
			x0 := (x + margin) * size / total
			x1 := (x + margin + 1) * size / total
			draw.Draw(img, image.Rect(x0, y0, x1, y1), ink, image.Point{}, draw.Src)
		}
	}

	return img
}
