package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // GIF logos
	_ "image/jpeg" // JPEG logos
	_ "image/png"  // PNG logos
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP logos

	"github.com/iudanet/qrninja/internal/models"
)

// DecodeLogo decodes a base64 data URL or bare base64 image.
func DecodeLogo(data string) (image.Image, error) {
	raw := strings.TrimSpace(data)
	if strings.HasPrefix(raw, "data:") {
		comma := strings.IndexByte(raw, ',')
		if comma < 0 {
			return nil, fmt.Errorf("%w: malformed data URL", ErrInvalidLogo)
		}
		if !strings.HasSuffix(raw[:comma], ";base64") {
			return nil, fmt.Errorf("%w: only base64 data URLs are supported", ErrInvalidLogo)
		}
		raw = raw[comma+1:]
	}

	b, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLogo, err)
	}

	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLogo, err)
	}

	return img, nil
}

// EncodeLogo builds the data URL stored in models.Logo from raw image bytes.
func EncodeLogo(mimeType string, b []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(b)
}

// overlayLogo scales the logo into a square box of SizePercent of the symbol,
// keeping aspect ratio, over a padded backdrop in the background color.
// quiet is the quiet zone width in pixels, kept clear in the corner position.
func overlayLogo(img *image.RGBA, logo *models.Logo, quiet int, bg color.RGBA) error {
	src, err := DecodeLogo(logo.ImageData)
	if err != nil {
		return err
	}

	size := img.Bounds().Dx()
	box := size * logo.SizePercent / 100
	sb := src.Bounds()
	if box <= 0 || sb.Empty() {
		return nil
	}

	w, h := box, box
	if sb.Dx() > sb.Dy() {
		h = max(1, box*sb.Dy()/sb.Dx())
	} else if sb.Dy() > sb.Dx() {
		w = max(1, box*sb.Dx()/sb.Dy())
	}

	pad := logo.PaddingPixels
	var x0, y0 int
	switch logo.Position {
	case models.LogoCorner:
		x0 = max(pad, size-quiet-pad-w)
		y0 = max(pad, size-quiet-pad-h)
	default:
		x0 = (size - w) / 2
		y0 = (size - h) / 2
	}

	dst := image.Rect(x0, y0, x0+w, y0+h)
	if pad > 0 {
		draw.Draw(img, dst.Inset(-pad), image.NewUniform(bg), image.Point{}, draw.Src)
	}
	draw.CatmullRom.Scale(img, dst, src, sb, draw.Over, nil)

	return nil
}
