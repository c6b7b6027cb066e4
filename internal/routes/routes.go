package routes

import (
	// Стандартные библиотеки
	"fmt"
	"net/http"
	"path/filepath"

	// Внутренние пакеты
	"kekstagram/internal/auth"
	"kekstagram/internal/config"
	"kekstagram/internal/handlers"
	"kekstagram/internal/middleware"
	"kekstagram/internal/services"
	"kekstagram/internal/validation"
	"kekstagram/web"

	// Сторонние библиотеки
	"github.com/gin-contrib/sessions"        // Middleware для управления сессиями в Gin
	"github.com/gin-contrib/sessions/cookie" // Хранилище сессий на основе Cookie
	"github.com/gin-gonic/gin"
)

// SessionName - имя cookie сессии.
const SessionName = "kekstagram"

// SetupRouter собирает gin engine: middleware, сессии, шаблоны, статику и маршруты.
func SetupRouter(cfg *config.Config, store handlers.GalleryStore) (*gin.Engine, error) {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.RequestLogger(), gin.Recovery())

	// nil - не доверяем заголовкам X-Forwarded-* ни от кого.
	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("ошибка установки доверенных прокси: %w", err)
	}

	// Размер multipart-формы, хранимой в памяти (остальное во временные файлы).
	router.MaxMultipartMemory = services.MaxUploadSize

	// --- Сессии ---
	keys, err := auth.DeriveSessionKeys(cfg.CookieSecret)
	if err != nil {
		return nil, fmt.Errorf("ошибка подготовки ключей сессии: %w", err)
	}
	sessionStore := cookie.NewStore(keys.Auth, keys.Encryption)
	sessionStore.Options(sessions.Options{
		Path: "/",
		// MaxAge 0 - cookie живет до закрытия браузера, состояние формы между сеансами не сохраняется.
		MaxAge:   0,
		HttpOnly: true,
		Secure:   cfg.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(SessionName, sessionStore))

	// --- Валидация и шаблоны ---
	if err := validation.RegisterBindings(); err != nil {
		return nil, err
	}
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки шаблонов: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	// --- Статика ---
	router.StaticFS("/static", web.StaticFS())
	router.Static("/photos", filepath.Join(cfg.StaticPath, "photos"))
	router.Static("/img", filepath.Join(cfg.StaticPath, "img"))

	// --- Маршруты ---
	h := handlers.New(store, cfg.PreviewMaxWidth)
	editorState := middleware.EditorState(cfg.Content.Effects)

	router.GET("/health", h.Health)
	router.GET("/", h.ShowGallery)
	router.GET("/pictures/:id", h.ShowPicture)

	upload := router.Group("/upload")
	upload.Use(editorState)
	{
		upload.GET("", h.ShowUploadForm)
		upload.POST("", h.HandleUpload)
		upload.POST("/cancel", h.HandleCancel)
	}

	api := router.Group("/api")
	{
		api.GET("/pictures", h.APIListPictures)
		api.GET("/pictures/:id", h.APIGetPicture)
		api.POST("/validate", h.APIValidate)

		editor := api.Group("/editor")
		editor.Use(editorState)
		{
			editor.GET("", h.APIGetEditor)
			editor.DELETE("", h.APIResetEditor)
			editor.POST("/effect", h.APIChooseEffect)
			editor.POST("/level", h.APISetLevel)
			editor.POST("/scale", h.APIZoom)
		}
	}

	return router, nil
}
