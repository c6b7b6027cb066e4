package config

import (
	// Стандартные библиотеки
	_ "embed"    // Для встраивания данных галереи по умолчанию
	"errors"     // Для проверки отсутствия .env файла
	"fmt"        // Для оборачивания ошибок
	"io/fs"      // fs.ErrNotExist
	"log/slog"   // Логирование значений по умолчанию
	"os"         // Переменные окружения и чтение файла данных
	"strconv"    // Разбор числовых переменных окружения

	// Внутренние пакеты
	"kekstagram/internal/models"

	// Сторонние библиотеки
	"github.com/go-playground/validator/v10" // Проверка загруженной конфигурации
	"github.com/joho/godotenv"               // Загрузка .env
	"gopkg.in/yaml.v3"                       // Разбор файла данных галереи
)

//go:embed gallery.yaml
var defaultContent []byte

// Range - включительный диапазон целых чисел.
type Range struct {
	Min int `yaml:"min" validate:"gte=0"`
	Max int `yaml:"max" validate:"gtefield=Min"`
}

// GallerySettings - размеры генерируемой галереи.
type GallerySettings struct {
	PictureCount int   `yaml:"picture_count" validate:"gt=0"`
	AvatarCount  int   `yaml:"avatar_count" validate:"gt=0"`
	Likes        Range `yaml:"likes"`
	Comments     Range `yaml:"comments"`
}

// Content - статические данные: наборы текстов, диапазоны и эффекты.
// Загружаются один раз при старте и дальше не меняются.
type Content struct {
	Gallery      GallerySettings `yaml:"gallery"`
	Descriptions []string        `yaml:"descriptions" validate:"required,min=1,dive,required"`
	Messages     []string        `yaml:"messages" validate:"required,min=1,dive,required"`
	Names        []string        `yaml:"names" validate:"required,min=1,dive,required"`
	Effects      []models.Effect `yaml:"effects" validate:"required,min=1,dive"`
}

// Config - конфигурация приложения.
type Config struct {
	Env             string // development или production
	ListenPort      string // Порт HTTP-сервера
	CookieSecret    string // Секрет для cookie-сессий; пустой - будет сгенерирован при старте
	StaticPath      string // Папка со статикой (photos/, img/)
	GalleryFile     string // Путь к YAML с данными галереи; пустой - встроенные данные
	PreviewMaxWidth int    // Максимальная ширина превью загруженного изображения

	Content Content
}

// Load читает .env (если есть), переменные окружения и данные галереи.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("ошибка чтения .env: %w", err)
	}

	previewWidth, err := strconv.Atoi(getEnv("PREVIEW_MAX_WIDTH", "600"))
	if err != nil || previewWidth <= 0 {
		return nil, fmt.Errorf("некорректное значение PREVIEW_MAX_WIDTH: %q", os.Getenv("PREVIEW_MAX_WIDTH"))
	}

	cfg := &Config{
		Env:             getEnv("APP_ENV", "development"),
		ListenPort:      getEnv("LISTEN_PORT", "8080"),
		CookieSecret:    os.Getenv("COOKIE_SECRET"),
		StaticPath:      getEnv("STATIC_PATH", "./web/static"),
		GalleryFile:     os.Getenv("GALLERY_FILE"),
		PreviewMaxWidth: previewWidth,
	}

	data := defaultContent
	if cfg.GalleryFile != "" {
		data, err = os.ReadFile(cfg.GalleryFile)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения %s: %w", cfg.GalleryFile, err)
		}
	}

	content, err := ParseContent(data)
	if err != nil {
		return nil, err
	}
	cfg.Content = *content
	return cfg, nil
}

// DefaultContent возвращает встроенные данные галереи.
func DefaultContent() (*Content, error) {
	return ParseContent(defaultContent)
}

// ParseContent разбирает YAML с данными галереи и проверяет его.
func ParseContent(data []byte) (*Content, error) {
	var content Content
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("ошибка разбора данных галереи: %w", err)
	}
	if err := content.Validate(); err != nil {
		return nil, err
	}
	return &content, nil
}

// Validate проверяет теги validate и то, что первый эффект - пустой фильтр "none".
func (c *Content) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("некорректные данные галереи: %w", err)
	}
	if c.Effects[0].Style != "none" {
		return fmt.Errorf("первый эффект должен быть без фильтра (style: none), получен %q", c.Effects[0].Style)
	}
	return nil
}

// getEnv получает значение переменной окружения по ключу.
// Если переменная не установлена, возвращает fallback.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	slog.Debug("Переменная окружения не установлена, используется значение по умолчанию", "key", key, "value", fallback)
	return fallback
}
