package models

// Границы и значения по умолчанию для настроек внешнего вида
const (
	MinDimensions     = 128
	MaxDimensions     = 2048
	DefaultDimensions = 512

	MinLogoSize     = 10
	MaxLogoSize     = 35
	DefaultLogoSize = 20

	MaxMargin      = 10
	DefaultMargin  = 4
	MaxLogoPadding = 10

	MaxBatchItems = 50

	DefaultBackground = "#FFFFFF"
	DefaultForeground = "#000000"
)

// ErrorCorrection уровень коррекции ошибок QR кода
type ErrorCorrection string

const (
	ErrorCorrectionLow      ErrorCorrection = "L" // ~7%
	ErrorCorrectionMedium   ErrorCorrection = "M" // ~15%
	ErrorCorrectionQuartile ErrorCorrection = "Q" // ~25%, good for logos
	ErrorCorrectionHigh     ErrorCorrection = "H" // ~30%
)

// LogoPosition размещение логотипа поверх QR кода
type LogoPosition string

const (
	LogoCenter LogoPosition = "center"
	LogoCorner LogoPosition = "corner"
)

// FrameStyle стиль рамки вокруг QR кода
type FrameStyle string

const (
	FrameNone    FrameStyle = "none"
	FrameSimple  FrameStyle = "simple"
	FrameRounded FrameStyle = "rounded"
	FrameShadow  FrameStyle = "shadow"
)

// CaptionPosition положение подписи относительно QR кода
type CaptionPosition string

const (
	CaptionTop    CaptionPosition = "top"
	CaptionBottom CaptionPosition = "bottom"
)

// Style базовые параметры отрисовки QR кода
type Style struct {
	BackgroundColor string          `json:"backgroundColor"`
	ForegroundColor string          `json:"foregroundColor"`
	ErrorCorrection ErrorCorrection `json:"errorCorrectionLevel"`
	Dimensions      int             `json:"dimensions"` // Dimensions размер в пикселях, [128, 2048]
	Margin          *int            `json:"margin,omitempty"` // Margin тихая зона в модулях, nil означает DefaultMargin
}

// QuietZone returns the margin in modules, DefaultMargin when it is unset.
func (s Style) QuietZone() int {
	if s.Margin == nil {
		return DefaultMargin
	}
	return *s.Margin
}

// Modules returns a margin value for Style.Margin.
func Modules(n int) *int {
	return &n
}

// DefaultStyle returns the style used when nothing was customized.
func DefaultStyle() Style {
	return Style{
		BackgroundColor: DefaultBackground,
		ForegroundColor: DefaultForeground,
		ErrorCorrection: ErrorCorrectionMedium,
		Dimensions:      DefaultDimensions,
		Margin:          Modules(DefaultMargin),
	}
}

// DefaultCustomization returns the default style without logo and frame.
func DefaultCustomization() Customization {
	return Customization{Style: DefaultStyle()}
}

// Logo наложение логотипа
type Logo struct {
	ImageData     string       `json:"imageData"` // ImageData data URL или base64 изображения
	Position      LogoPosition `json:"position"`
	SizePercent   int          `json:"sizePercent"` // SizePercent размер в процентах от QR, [10, 35]
	PaddingPixels int          `json:"paddingPixels"`
}

// Frame рамка и подпись
type Frame struct {
	Style           FrameStyle      `json:"style"`
	Color           string          `json:"color,omitempty"` // Color если пусто, используется цвет переднего плана
	CaptionText     string          `json:"captionText,omitempty"`
	CaptionPosition CaptionPosition `json:"captionPosition,omitempty"`
}
