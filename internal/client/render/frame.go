package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/iudanet/qrninja/internal/models"
)

var shadowColor = color.RGBA{A: 0x40}

// drawFrame wraps the symbol in a border of thickness size/32 (at least 4px)
// and an optional caption band. Outside a rounded frame the canvas stays
// transparent.
func drawFrame(symbol *image.RGBA, f *models.Frame, bg, fg, frameColor color.RGBA) *image.RGBA {
	size := symbol.Bounds().Dx()
	t := max(size/32, 4)

	border := t
	if f.Style == models.FrameNone {
		border = 0
	}

	var caption *image.Alpha
	band := 0
	if f.CaptionText != "" {
		caption = textMask(f.CaptionText, max(1, size/256), size)
		band = caption.Bounds().Dy() + 2*t
	}

	shadow := 0
	if f.Style == models.FrameShadow {
		shadow = t
	}

	radius := 0
	if f.Style == models.FrameRounded {
		radius = 3 * t
	}

	body := image.Rect(0, 0, size+2*border, size+2*border+band)
	out := image.NewRGBA(image.Rect(0, 0, body.Dx()+shadow, body.Dy()+shadow))

	if shadow > 0 {
		fill(out, body.Add(image.Pt(shadow, shadow)), shadowColor, radius)
	}

	bodyColor, textColor := frameColor, bg
	if border == 0 {
		bodyColor, textColor = bg, fg
	}
	fill(out, body, bodyColor, radius)

	symbolTop := border
	bandTop := border + size
	if f.CaptionPosition == models.CaptionTop {
		symbolTop = border + band
		bandTop = border
	}
	draw.Draw(out, image.Rect(border, symbolTop, border+size, symbolTop+size), symbol, image.Point{}, draw.Src)

	if caption != nil {
		cb := caption.Bounds()
		x := border + (size-cb.Dx())/2
		y := bandTop + (band-cb.Dy())/2
		draw.DrawMask(out, image.Rect(x, y, x+cb.Dx(), y+cb.Dy()), image.NewUniform(textColor), image.Point{}, caption, image.Point{}, draw.Over)
	}

	return out
}

// textMask renders text with the 7x13 bitmap font, scaled up by an integer
// factor, and never wider than maxWidth.
func textMask(text string, scale, maxWidth int) *image.Alpha {
	face := basicfont.Face7x13
	m := face.Metrics()

	d := &font.Drawer{Face: face, Src: image.Opaque}
	width := d.MeasureString(text).Ceil()
	for scale > 1 && width*scale > maxWidth {
		scale--
	}

	small := image.NewAlpha(image.Rect(0, 0, max(1, width), m.Height.Ceil()))
	d.Dst = small
	d.Dot = fixed.P(0, m.Ascent.Ceil())
	d.DrawString(text)

	if scale == 1 && width <= maxWidth {
		return small
	}

	w := min(width*scale, maxWidth)
	big := image.NewAlpha(image.Rect(0, 0, max(1, w), small.Bounds().Dy()*scale))
	draw.NearestNeighbor.Scale(big, big.Bounds(), small, small.Bounds(), draw.Src, nil)
	return big
}

func fill(dst *image.RGBA, r image.Rectangle, c color.RGBA, radius int) {
	src := image.NewUniform(c)
	if radius <= 0 {
		draw.Draw(dst, r, src, image.Point{}, draw.Over)
		return
	}
	draw.DrawMask(dst, r, src, image.Point{}, roundedMask{r: r, radius: radius}, r.Min, draw.Over)
}

// roundedMask is opaque inside a rectangle with rounded corners.
type roundedMask struct {
	r      image.Rectangle
	radius int
}

func (m roundedMask) ColorModel() color.Model { return color.AlphaModel }

func (m roundedMask) Bounds() image.Rectangle { return m.r }

func (m roundedMask) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(m.r)) {
		return color.Transparent
	}

	cx, cy := x, y
	switch {
	case x < m.r.Min.X+m.radius:
		cx = m.r.Min.X + m.radius
	case x >= m.r.Max.X-m.radius:
		cx = m.r.Max.X - m.radius - 1
	}
	switch {
	case y < m.r.Min.Y+m.radius:
		cy = m.r.Min.Y + m.radius
	case y >= m.r.Max.Y-m.radius:
		cy = m.r.Max.Y - m.radius - 1
	}

	dx, dy := x-cx, y-cy
	if dx*dx+dy*dy > m.radius*m.radius {
		return color.Transparent
	}
	return color.Opaque
}
