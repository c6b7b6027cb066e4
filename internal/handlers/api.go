package handlers

import (
	// Стандартные библиотеки
	"net/http"
	"strconv"

	// Внутренние пакеты
	"kekstagram/internal/logger"
	"kekstagram/internal/middleware"
	"kekstagram/internal/services"
	"kekstagram/internal/validation"

	// Сторонние библиотеки
	"github.com/gin-gonic/gin"
)

type effectRequest struct {
	Name string `json:"name" binding:"required"`
}

type levelRequest struct {
	Value *float64 `json:"value" binding:"required"`
}

type zoomRequest struct {
	Direction string `json:"direction" binding:"required,oneof=smaller bigger"`
}

type validateRequest struct {
	Hashtags    string `json:"hashtags" binding:"hashtags"`
	Description string `json:"description" binding:"description"`
}

// Health сообщает о готовности сервиса и размере галереи.
func (h *Handler) Health(c *gin.Context) {
	n, err := h.store.CountPictures(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "error": "хранилище галереи недоступно"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "pictures": n})
}

// APIListPictures возвращает всю галерею.
func (h *Handler) APIListPictures(c *gin.Context) {
	pictures, err := h.store.ListPictures(c.Request.Context())
	if err != nil {
		logger.FromContext(c.Request.Context()).Error("Ошибка получения галереи", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось загрузить галерею"})
		return
	}
	c.JSON(http.StatusOK, pictures)
}

// APIGetPicture возвращает одну фотографию с комментариями.
func (h *Handler) APIGetPicture(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный номер фотографии"})
		return
	}
	picture, err := h.store.GetPicture(c.Request.Context(), id)
	if err != nil {
		logger.FromContext(c.Request.Context()).Error("Ошибка получения фотографии", "picture_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось загрузить фотографию"})
		return
	}
	if picture == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "фотография не найдена"})
		return
	}
	c.JSON(http.StatusOK, picture)
}

// APIGetEditor возвращает состояние слайдера и масштаба вместе со списком эффектов.
func (h *Handler) APIGetEditor(c *gin.Context) {
	editor := middleware.GetEditor(c)
	c.JSON(http.StatusOK, gin.H{"editor": editor.View(), "effects": editor.Effects()})
}

// APIChooseEffect выбирает эффект; уровень становится максимальным для эффекта.
func (h *Handler) APIChooseEffect(c *gin.Context) {
	var req effectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "укажите имя эффекта"})
		return
	}
	editor := middleware.GetEditor(c)
	if err := editor.ChooseEffect(req.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondEditor(c, editor)
}

// APISetLevel меняет уровень выбранного эффекта (событие update слайдера).
func (h *Handler) APISetLevel(c *gin.Context) {
	var req levelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "укажите числовое значение value"})
		return
	}
	editor := middleware.GetEditor(c)
	editor.SetLevel(*req.Value)
	h.respondEditor(c, editor)
}

// APIZoom уменьшает или увеличивает масштаб превью.
func (h *Handler) APIZoom(c *gin.Context) {
	var req zoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction должен быть smaller или bigger"})
		return
	}
	editor := middleware.GetEditor(c)
	if err := editor.Zoom(req.Direction); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondEditor(c, editor)
}

// APIResetEditor возвращает форму в исходное состояние.
func (h *Handler) APIResetEditor(c *gin.Context) {
	editor := middleware.GetEditor(c)
	editor.Reset()
	h.respondEditor(c, editor)
}

// APIValidate проверяет хэш-теги и описание без загрузки файла.
func (h *Handler) APIValidate(c *gin.Context) {
	var req validateRequest
	err := c.ShouldBindJSON(&req)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"valid": true, "errors": validation.FieldErrors{}})
		return
	}
	msgs := validation.Messages(err)
	if msgs == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный JSON"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": false, "errors": msgs})
}

// respondEditor сохраняет состояние в сессии и возвращает его клиенту.
func (h *Handler) respondEditor(c *gin.Context, editor *services.Editor) {
	if err := middleware.SaveEditor(c, editor); err != nil {
		logger.FromContext(c.Request.Context()).Error("Не удалось сохранить состояние формы", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "не удалось сохранить состояние формы"})
		return
	}
	c.JSON(http.StatusOK, editor.View())
}
