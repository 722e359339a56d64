package validation

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/qrninja/internal/models"
)

func TestValidateForm(t *testing.T) {
	tests := []struct {
		name    string
		form    models.Form
		wantErr bool
		errMsg  string
	}{
		{name: "url ok", form: models.URLForm{URL: "https://example.com"}},
		{name: "url empty", form: models.URLForm{URL: "  "}, wantErr: true, errMsg: "url is required"},
		{name: "wifi ok", form: models.WiFiForm{SSID: "Home"}},
		{name: "wifi no ssid", form: models.WiFiForm{Password: "x"}, wantErr: true, errMsg: "ssid is required"},
		{name: "wifi bad encryption", form: models.WiFiForm{SSID: "Home", Encryption: "WPA3"}, wantErr: true, errMsg: "unknown encryption"},
		{name: "vcard ok", form: models.VCardForm{FirstName: "Jane"}},
		{name: "vcard no first name", form: models.VCardForm{LastName: "Doe"}, wantErr: true, errMsg: "firstName is required"},
		{name: "email ok", form: models.EmailForm{Email: "a@b.c"}},
		{name: "email missing", form: models.EmailForm{Subject: "hi"}, wantErr: true, errMsg: "email is required"},
		{name: "phone ok", form: models.PhoneForm{Phone: "123"}},
		{name: "phone missing", form: models.PhoneForm{}, wantErr: true, errMsg: "phone is required"},
		{name: "sms missing phone", form: models.SMSForm{Message: "hi"}, wantErr: true, errMsg: "phone is required"},
		{name: "event ok", form: models.EventForm{Title: "Standup", StartDate: "2024-01-01T09:00"}},
		{name: "event no title", form: models.EventForm{StartDate: "2024-01-01"}, wantErr: true, errMsg: "title is required"},
		{name: "event no start", form: models.EventForm{Title: "x"}, wantErr: true, errMsg: "startDate is required"},
		{name: "event bad start", form: models.EventForm{Title: "x", StartDate: "tomorrow"}, wantErr: true, errMsg: "not a valid date"},
		{name: "event bad end", form: models.EventForm{Title: "x", StartDate: "2024-01-01", EndDate: "later"}, wantErr: true, errMsg: "endDate"},
		{name: "nil form", form: nil, wantErr: true, errMsg: "form is missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateForm(tt.form, time.UTC)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.True(t, IsValidation(err))
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClamps(t *testing.T) {
	assert.Equal(t, 128, ClampDimensions(50))
	assert.Equal(t, 2048, ClampDimensions(5000))
	assert.Equal(t, 640, ClampDimensions(640))

	assert.Equal(t, 10, ClampLogoSize(1))
	assert.Equal(t, 35, ClampLogoSize(99))

	assert.Equal(t, 0, ClampMargin(-3))
	assert.Equal(t, 10, ClampMargin(11))

	assert.Equal(t, 0, ClampLogoPadding(-1))
	assert.Equal(t, 10, ClampLogoPadding(20))
}

func TestParseDimensions(t *testing.T) {
	assert.Equal(t, 128, ParseDimensions("50", 512))
	assert.Equal(t, 2048, ParseDimensions("5000", 512))
	assert.Equal(t, 1024, ParseDimensions(" 1024 ", 512))
	assert.Equal(t, 512, ParseDimensions("", 512))
	assert.Equal(t, 512, ParseDimensions("abc", 512))
	assert.Equal(t, 2048, ParseDimensions("99999999999999999999", 512))
	assert.Equal(t, 128, ParseDimensions("-99999999999999999999", 512))
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#FF6B35")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0x6B, B: 0x35, A: 0xFF}, c)

	c, err = ParseHexColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, c)

	for _, bad := range []string{"FFFFFF", "#12", "#GGGGGG", "#1234567"} {
		_, err := ParseHexColor(bad)
		assert.ErrorIs(t, err, ErrInvalidInput, bad)
	}
}

func TestNormalizeStyle(t *testing.T) {
	got, err := NormalizeStyle(models.Style{})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultStyle(), got)

	got, err = NormalizeStyle(models.Style{
		BackgroundColor: "#000000",
		ForegroundColor: "#39FF14",
		ErrorCorrection: "h",
		Dimensions:      10000,
		Margin:          models.Modules(42),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ErrorCorrectionHigh, got.ErrorCorrection)
	assert.Equal(t, models.MaxDimensions, got.Dimensions)
	assert.Equal(t, models.MaxMargin, got.QuietZone())

	// явный ноль сохраняется, отсутствующий отступ получает значение по умолчанию
	got, err = NormalizeStyle(models.Style{Margin: models.Modules(0)})
	require.NoError(t, err)
	require.NotNil(t, got.Margin)
	assert.Equal(t, 0, *got.Margin)

	got, err = NormalizeStyle(models.Style{Dimensions: 256})
	require.NoError(t, err)
	require.NotNil(t, got.Margin)
	assert.Equal(t, models.DefaultMargin, *got.Margin)

	_, err = NormalizeStyle(models.Style{ErrorCorrection: "X"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NormalizeStyle(models.Style{ForegroundColor: "red"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNormalizeLogo(t *testing.T) {
	got, err := NormalizeLogo(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = NormalizeLogo(&models.Logo{Position: models.LogoCorner})
	require.NoError(t, err)
	assert.Nil(t, got, "logo without image is dropped")

	in := &models.Logo{ImageData: "data:image/png;base64,AA==", SizePercent: 80, PaddingPixels: 50}
	got, err = NormalizeLogo(in)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.MaxLogoSize, got.SizePercent)
	assert.Equal(t, models.MaxLogoPadding, got.PaddingPixels)
	assert.Equal(t, models.LogoCenter, got.Position)
	assert.Equal(t, 80, in.SizePercent, "input must not be mutated")

	_, err = NormalizeLogo(&models.Logo{ImageData: "x", Position: "left"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNormalizeFrame(t *testing.T) {
	got, err := NormalizeFrame(&models.Frame{Style: models.FrameNone})
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = NormalizeFrame(&models.Frame{Style: models.FrameRounded, CaptionText: "Scan me"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.CaptionBottom, got.CaptionPosition)

	_, err = NormalizeFrame(&models.Frame{Style: "zigzag"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NormalizeFrame(&models.Frame{Style: models.FrameSimple, Color: "blue"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NormalizeFrame(&models.Frame{Style: models.FrameSimple, CaptionPosition: "left"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNormalizeCustomization(t *testing.T) {
	got, err := NormalizeCustomization(models.Customization{
		Style: models.Style{Dimensions: 64},
		Logo:  &models.Logo{ImageData: "x", SizePercent: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, models.MinDimensions, got.Style.Dimensions)
	assert.Equal(t, models.MinLogoSize, got.Logo.SizePercent)
	assert.Nil(t, got.Frame)
}

func TestSplitBatch(t *testing.T) {
	items, dropped, err := SplitBatch("a\n\n  \r\nb\r\n c \n")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", " c "}, items)
	assert.Zero(t, dropped)

	_, _, err = SplitBatch(" \n\t\n")
	assert.ErrorIs(t, err, ErrEmptyBatch)
	assert.ErrorIs(t, err, ErrInvalidInput)

	lines := make([]string, 60)
	for i := range lines {
		lines[i] = "https://example.com/" + strings.Repeat("x", i+1)
	}
	items, dropped, err = SplitBatch(strings.Join(lines, "\n"))
	require.NoError(t, err)
	assert.Len(t, items, models.MaxBatchItems)
	assert.Equal(t, 10, dropped)
	assert.Equal(t, lines[0], items[0])
	assert.Equal(t, lines[49], items[49])
}
