package services

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func TestBuildPreviewPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(40, 20)))

	preview, err := BuildPreview(&buf, 600)
	require.NoError(t, err)
	assert.Equal(t, "png", preview.Format)
	assert.Equal(t, 40, preview.Width)
	assert.Equal(t, 20, preview.Height)
	assert.True(t, strings.HasPrefix(preview.DataURI, "data:image/png;base64,"))
}

func TestBuildPreviewResizesJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, testImage(200, 100), nil))

	preview, err := BuildPreview(&buf, 50)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", preview.Format)
	assert.Equal(t, 50, preview.Width)
	assert.Equal(t, 25, preview.Height)
	assert.True(t, strings.HasPrefix(preview.DataURI, "data:image/jpeg;base64,"))
}

func TestBuildPreviewGIFBecomesPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, testImage(10, 10), nil))

	preview, err := BuildPreview(&buf, 600)
	require.NoError(t, err)
	assert.Equal(t, "gif", preview.Format)
	assert.True(t, strings.HasPrefix(preview.DataURI, "data:image/png;base64,"))
}

func TestBuildPreviewRejects(t *testing.T) {
	_, err := BuildPreview(strings.NewReader("просто текст, а не картинка"), 600)
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = BuildPreview(bytes.NewReader(nil), 600)
	assert.ErrorIs(t, err, ErrEmptyImage)

	// Сигнатура PNG без данных: тип определяется, но декодировать нечего.
	_, err = BuildPreview(bytes.NewReader([]byte("\x89PNG\r\n\x1a\n")), 600)
	assert.Error(t, err)
}

func TestGenerateSecureToken(t *testing.T) {
	a, err := GenerateSecureToken(16)
	require.NoError(t, err)
	b, err := GenerateSecureToken(16)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Len(t, a, 22) // 16 байт в base64 без '='
	assert.NotContains(t, a, "=")
	assert.NotContains(t, a, "+")
	assert.NotContains(t, a, "/")
}
