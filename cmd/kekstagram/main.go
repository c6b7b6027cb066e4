package main

import (
	// Импорт стандартных библиотек
	"context"      // Контекст для загрузки галереи в базу
	"math/rand/v2" // Источник случайных чисел для генератора галереи
	"os"           // Для проверки папки со статикой

	// Импорт внутренних пакетов проекта
	"kekstagram/internal/config"   // Конфигурация из окружения и данных галереи
	"kekstagram/internal/database" // Хранилище галереи в памяти
	"kekstagram/internal/logger"   // Структурное логирование
	"kekstagram/internal/routes"   // Сборка gin engine и маршрутов
	"kekstagram/internal/services" // Генерация галереи и токенов

	// Импорт сторонних библиотек
	"github.com/gin-gonic/gin" // Основной веб-фреймворк Gin
)

// checkStaticDir проверяет папку со статикой (photos/, img/).
// Отсутствие папки не критично: страницы работают, но изображения не загрузятся.
func checkStaticDir(dirPath string) {
	info, err := os.Stat(dirPath)
	switch {
	case os.IsNotExist(err):
		logger.Warn("Папка со статикой не найдена, фотографии и аватары не будут отдаваться", "path", dirPath)
	case err != nil:
		logger.Warn("Ошибка при проверке папки со статикой", "path", dirPath, "error", err)
	case !info.IsDir():
		logger.Warn("Путь к статике существует, но не является директорией", "path", dirPath)
	default:
		logger.Info("Папка со статикой найдена", "path", dirPath)
	}
}

// main - точка входа: конфигурация, генерация галереи, запуск HTTP-сервера.
func main() {
	// --- 1. Конфигурация ---
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Ошибка загрузки конфигурации", "error", err)
	}
	logger.Init(cfg.Env)

	if cfg.CookieSecret == "" {
		// Без заданного секрета cookie перестают читаться после перезапуска, для этого сервиса это допустимо.
		cfg.CookieSecret, err = services.GenerateSecureToken(32)
		if err != nil {
			logger.Fatal("Не удалось сгенерировать секрет сессии", "error", err)
		}
		logger.Warn("COOKIE_SECRET не задан, используется случайный секрет до перезапуска")
	}
	checkStaticDir(cfg.StaticPath)

	// --- 2. Галерея ---
	// Генерируется один раз при старте и дальше только читается.
	store, err := database.Open()
	if err != nil {
		logger.Fatal("Ошибка инициализации базы данных", "error", err)
	}
	defer store.Close()

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	pictures := services.GenerateGallery(rng, services.OptionsFromContent(cfg.Content))
	if err := store.Seed(context.Background(), pictures); err != nil {
		logger.Fatal("Ошибка загрузки галереи в базу", "error", err)
	}

	// --- 3. HTTP ---
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := routes.SetupRouter(cfg, store)
	if err != nil {
		logger.Fatal("Ошибка настройки маршрутов", "error", err)
	}

	listenAddr := ":" + cfg.ListenPort
	logger.Info("Сервер запускается", "addr", listenAddr, "env", cfg.Env, "pictures", len(pictures))

	// router.Run блокирует выполнение до завершения работы сервера или ошибки.
	if err := router.Run(listenAddr); err != nil {
		logger.Fatal("Не удалось запустить сервер", "error", err)
	}
}
