package middleware

import (
	// Стандартные библиотеки
	"fmt"
	"time"

	// Внутренние пакеты
	"kekstagram/internal/logger"
	"kekstagram/internal/models"
	"kekstagram/internal/services"

	// Сторонние библиотеки
	"github.com/gin-contrib/sessions" // Для работы с сессиями
	"github.com/gin-gonic/gin"        // Основной фреймворк
	"github.com/google/uuid"          // Идентификаторы запросов
)

// Ключи сессии для состояния формы загрузки.
const (
	sessionEffectKey = "effect"
	sessionLevelKey  = "level"
	sessionScaleKey  = "scale"
)

// Ключи контекста gin.
const (
	EditorKey    = "editor"
	RequestIDKey = "requestID"
)

// RequestIDHeader - заголовок с идентификатором запроса.
const RequestIDHeader = "X-Request-ID"

// RequestID берет идентификатор запроса из заголовка X-Request-ID или создает новый
// и кладет его в контекст запроса, чтобы logger.FromContext добавлял его в записи.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}

// RequestLogger пишет одну запись в лог на каждый запрос.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := logger.FromContext(c.Request.Context())
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			log.Warn("HTTP запрос завершился с ошибками", append(args, "errors", c.Errors.String())...)
			return
		}
		log.Info("HTTP запрос", args...)
	}
}

// EditorState восстанавливает состояние формы загрузки из сессии
// и кладет *services.Editor в контекст gin (c.Get(EditorKey)).
// Сохранять изменения нужно через SaveEditor до записи ответа.
func EditorState(effects []models.Effect) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		editor := services.NewEditor(effects)

		if raw := session.Get(sessionEffectKey); raw != nil {
			snap, ok := readSnapshot(session)
			if !ok {
				// Данные сессии повреждены или записаны старой версией - очищаем их.
				logger.FromContext(c.Request.Context()).Warn("Некорректные данные редактора в сессии, сессия будет очищена",
					"effect_type", fmt.Sprintf("%T", raw))
				clearSnapshot(session)
				if err := session.Save(); err != nil {
					logger.FromContext(c.Request.Context()).Error("Ошибка сохранения сессии при очистке", "error", err)
				}
			} else {
				editor.Restore(snap)
			}
		}

		c.Set(EditorKey, editor)
		c.Next()
	}
}

// GetEditor возвращает редактор, положенный в контекст EditorState.
// Если middleware не подключен, возвращает редактор в исходном состоянии.
func GetEditor(c *gin.Context) *services.Editor {
	if v, ok := c.Get(EditorKey); ok {
		if editor, ok := v.(*services.Editor); ok {
			return editor
		}
	}
	return services.NewEditor(nil)
}

// SaveEditor записывает состояние редактора в сессию.
func SaveEditor(c *gin.Context, editor *services.Editor) error {
	session := sessions.Default(c)
	snap := editor.Snapshot()
	session.Set(sessionEffectKey, snap.Effect)
	session.Set(sessionLevelKey, snap.Level)
	session.Set(sessionScaleKey, snap.Scale)
	if err := session.Save(); err != nil {
		return fmt.Errorf("ошибка сохранения состояния редактора в сессии: %w", err)
	}
	return nil
}

func readSnapshot(session sessions.Session) (services.EditorSnapshot, bool) {
	effect, ok1 := session.Get(sessionEffectKey).(string)
	level, ok2 := session.Get(sessionLevelKey).(float64)
	scale, ok3 := session.Get(sessionScaleKey).(int)
	if !ok1 || !ok2 || !ok3 {
		return services.EditorSnapshot{}, false
	}
	return services.EditorSnapshot{Effect: effect, Level: level, Scale: scale}, true
}

func clearSnapshot(session sessions.Session) {
	session.Delete(sessionEffectKey)
	session.Delete(sessionLevelKey)
	session.Delete(sessionScaleKey)
}
