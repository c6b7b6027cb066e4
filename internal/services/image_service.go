package services

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // регистрирует декодер GIF для image.Decode
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"

	"golang.org/x/image/draw"
)

// MaxUploadSize - максимальный размер загружаемого файла.
const MaxUploadSize = 10 << 20 // 10 МБ

// previewQuality - качество JPEG для превью.
const previewQuality = 85

// AllowedImageTypes - разрешенные MIME-типы изображений.
var AllowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

var (
	ErrUnsupportedImage = errors.New("недопустимый тип файла")
	ErrEmptyImage       = errors.New("файл пустой")
	ErrImageTooLarge    = errors.New("файл слишком большой")
)

// Preview - уменьшенная копия загруженного изображения, встроенная в data URI.
// На диск ничего не записывается.
type Preview struct {
	DataURI string // data:image/...;base64,...
	Format  string // Формат исходного файла по данным декодера
	Width   int
	Height  int
}

// BuildPreviewFromHeader открывает файл из multipart-формы и строит превью.
func BuildPreviewFromHeader(fileHeader *multipart.FileHeader, maxWidth int) (*Preview, error) {
	if fileHeader.Size == 0 {
		return nil, ErrEmptyImage
	}
	if fileHeader.Size > MaxUploadSize {
		return nil, fmt.Errorf("%w: %d байт", ErrImageTooLarge, fileHeader.Size)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть загруженный файл: %w", err)
	}
	defer file.Close()
	return BuildPreview(file, maxWidth)
}

// BuildPreview проверяет реальный тип файла по содержимому, декодирует изображение
// (метаданные при этом отбрасываются), уменьшает его до maxWidth по ширине
// и кодирует обратно: JPEG остается JPEG, PNG и GIF становятся PNG.
func BuildPreview(r io.Reader, maxWidth int) (*Preview, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	if len(data) > MaxUploadSize {
		return nil, ErrImageTooLarge
	}

	// DetectContentType смотрит только на первые 512 байт
	contentType := http.DetectContentType(data)
	if !AllowedImageTypes[contentType] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, contentType)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("не удалось декодировать изображение: %w", err)
	}

	img = fitWidth(img, maxWidth)

	var buf bytes.Buffer
	mimeType := "image/png"
	switch format {
	case "jpeg":
		mimeType = "image/jpeg"
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: previewQuality})
	case "png", "gif":
		err = png.Encode(&buf, img)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, format)
	}
	if err != nil {
		return nil, fmt.Errorf("не удалось закодировать превью: %w", err)
	}

	bounds := img.Bounds()
	return &Preview{
		DataURI: "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		Format:  format,
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
	}, nil
}

// fitWidth уменьшает изображение до maxWidth с сохранением пропорций.
// Изображения меньше maxWidth возвращаются без изменений.
func fitWidth(img image.Image, maxWidth int) image.Image {
	bounds := img.Bounds()
	if maxWidth <= 0 || bounds.Dx() <= maxWidth {
		return img
	}
	height := max(bounds.Dy()*maxWidth/bounds.Dx(), 1)
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
