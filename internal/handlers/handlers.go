package handlers

import (
	// Стандартные библиотеки
	"context"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	// Внутренние пакеты
	"kekstagram/internal/logger"
	"kekstagram/internal/middleware"
	"kekstagram/internal/models"
	"kekstagram/internal/services"
	"kekstagram/internal/validation"

	// Сторонние библиотеки
	"github.com/gin-gonic/gin"
)

// maxRequestSize - общий лимит тела запроса загрузки: файл плюс текстовые поля.
const maxRequestSize = services.MaxUploadSize + 1<<20

// GalleryStore - хранилище галереи, из которого читают обработчики.
type GalleryStore interface {
	ListPictures(ctx context.Context) ([]models.Picture, error)
	GetPicture(ctx context.Context, id int) (*models.Picture, error)
	CountPictures(ctx context.Context) (int, error)
}

// Handler содержит зависимости HTTP-обработчиков.
type Handler struct {
	store           GalleryStore
	previewMaxWidth int
}

// New создает обработчики поверх хранилища галереи.
func New(store GalleryStore, previewMaxWidth int) *Handler {
	return &Handler{store: store, previewMaxWidth: previewMaxWidth}
}

// UploadForm - текстовые поля формы загрузки. Файл читается отдельно через c.FormFile.
// Правила description и hashtags регистрируются в validation.RegisterBindings.
type UploadForm struct {
	Hashtags    string `form:"hashtags" json:"hashtags" binding:"hashtags"`
	Description string `form:"description" json:"description" binding:"description"`
	Effect      string `form:"effect" json:"effect"`
	EffectLevel string `form:"effect-level" json:"effect_level"`
	Scale       string `form:"scale" json:"scale"`
}

// renderError отображает страницу ошибки с указанным статусом.
func renderError(c *gin.Context, status int, title, message string) {
	c.HTML(status, "error.html", gin.H{"title": title, "message": message})
}

// ShowGallery отображает миниатюры всех фотографий.
func (h *Handler) ShowGallery(c *gin.Context) {
	pictures, err := h.store.ListPictures(c.Request.Context())
	if err != nil {
		logger.FromContext(c.Request.Context()).Error("Ошибка получения галереи", "error", err)
		renderError(c, http.StatusInternalServerError, "Ошибка сервера", "Не удалось загрузить галерею.")
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":    "Кекстаграм",
		"pictures": pictures,
	})
}

// ShowPicture отображает полноразмерную фотографию с описанием и комментариями.
func (h *Handler) ShowPicture(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		renderError(c, http.StatusBadRequest, "Ошибка запроса", "Некорректный номер фотографии.")
		return
	}

	picture, err := h.store.GetPicture(c.Request.Context(), id)
	if err != nil {
		logger.FromContext(c.Request.Context()).Error("Ошибка получения фотографии", "picture_id", id, "error", err)
		renderError(c, http.StatusInternalServerError, "Ошибка сервера", "Не удалось загрузить фотографию.")
		return
	}
	if picture == nil {
		renderError(c, http.StatusNotFound, "Не найдено", "Такой фотографии нет в галерее.")
		return
	}

	c.HTML(http.StatusOK, "picture.html", gin.H{
		"title":   picture.Description,
		"picture": picture,
	})
}

// ShowUploadForm отображает форму загрузки с текущим эффектом и масштабом из сессии.
func (h *Handler) ShowUploadForm(c *gin.Context) {
	editor := middleware.GetEditor(c)
	c.HTML(http.StatusOK, "upload.html", uploadPage(editor, UploadForm{}, nil))
}

// HandleUpload проверяет форму загрузки и показывает превью с примененным эффектом.
// При ошибках форма отображается снова с сообщениями и введенными значениями.
func (h *Handler) HandleUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestSize)
	log := logger.FromContext(c.Request.Context())
	editor := middleware.GetEditor(c)

	var form UploadForm
	fieldErrors := validation.FieldErrors{}

	if err := c.ShouldBind(&form); err != nil {
		msgs := validation.Messages(err)
		if msgs == nil {
			log.Warn("Ошибка разбора формы загрузки", "error", err)
			errorMsg := "Ошибка обработки запроса при загрузке файла."
			if strings.Contains(err.Error(), "request body too large") {
				errorMsg = "Файл слишком большой. Максимум 10 МБ."
			}
			c.HTML(http.StatusBadRequest, "upload.html", uploadPage(editor, form, validation.FieldErrors{"filename": errorMsg}))
			return
		}
		for field, msg := range msgs {
			fieldErrors[field] = msg
		}
	}

	applyEditorFields(editor, form, fieldErrors)

	fileHeader, err := c.FormFile("filename")
	if err != nil {
		fieldErrors["filename"] = "Выберите файл изображения."
	}

	if err := middleware.SaveEditor(c, editor); err != nil {
		log.Error("Не удалось сохранить состояние формы", "error", err)
	}

	if len(fieldErrors) > 0 {
		log.Info("Форма загрузки не прошла проверку", "fields", len(fieldErrors))
		c.HTML(http.StatusBadRequest, "upload.html", uploadPage(editor, form, fieldErrors))
		return
	}

	preview, err := services.BuildPreviewFromHeader(fileHeader, h.previewMaxWidth)
	if err != nil {
		log.Warn("Ошибка обработки загруженного файла", "filename", fileHeader.Filename, "error", err)
		c.HTML(http.StatusBadRequest, "upload.html", uploadPage(editor, form, validation.FieldErrors{
			"filename": previewErrorMessage(err),
		}))
		return
	}

	log.Info("Превью построено",
		"filename", fileHeader.Filename,
		"format", preview.Format,
		"effect", editor.Effect().Name,
		"scale", editor.Scale())

	page := uploadPage(editor, form, nil)
	page["title"] = "Предварительный просмотр"
	page["preview"] = template.URL(preview.DataURI)
	page["tags"] = validation.NormalizeTags(form.Hashtags)
	c.HTML(http.StatusOK, "upload.html", page)
}

// HandleCancel закрывает форму: эффект и масштаб возвращаются к исходным.
func (h *Handler) HandleCancel(c *gin.Context) {
	editor := middleware.GetEditor(c)
	editor.Reset()
	if err := middleware.SaveEditor(c, editor); err != nil {
		logger.FromContext(c.Request.Context()).Error("Не удалось сбросить состояние формы", "error", err)
	}
	c.Redirect(http.StatusFound, "/")
}

// applyEditorFields переносит эффект, уровень и масштаб из формы в редактор.
// Пустые поля оставляют значения из сессии.
// Уровень из формы учитывается только для эффекта, который уже был выбран:
// при смене эффекта слайдер еще хранит значение прежнего, а уровень
// нового эффекта ставится на максимум.
func applyEditorFields(editor *services.Editor, form UploadForm, fieldErrors validation.FieldErrors) {
	current := editor.Effect().Name
	if form.Effect != "" {
		if err := editor.ChooseEffect(form.Effect); err != nil {
			fieldErrors["effect"] = "Выберите эффект из списка."
		}
	}
	if form.EffectLevel != "" && (form.Effect == "" || form.Effect == current) {
		level, err := strconv.ParseFloat(form.EffectLevel, 64)
		if err != nil {
			fieldErrors["effect-level"] = "Уровень эффекта должен быть числом."
		} else {
			editor.SetLevel(level)
		}
	}
	if form.Scale != "" {
		if scale, ok := services.ParseScale(form.Scale); ok {
			editor.SetScale(scale)
		} else {
			fieldErrors["scale"] = "Масштаб указывается в процентах, например 75%."
		}
	}
}

// previewErrorMessage переводит ошибку обработки изображения в сообщение для пользователя.
func previewErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrUnsupportedImage):
		return "Недопустимый тип файла (разрешены JPEG, PNG, GIF)."
	case errors.Is(err, services.ErrEmptyImage):
		return "Файл пустой."
	case errors.Is(err, services.ErrImageTooLarge):
		return "Файл слишком большой. Максимум 10 МБ."
	default:
		return "Не удалось распознать формат файла или файл поврежден."
	}
}

// uploadPage собирает данные шаблона upload.html.
func uploadPage(editor *services.Editor, form UploadForm, fieldErrors validation.FieldErrors) gin.H {
	return gin.H{
		"title":     "Загрузка фотографии",
		"editor":    editor.View(),
		"effects":   editor.Effects(),
		"filter":    template.CSS(editor.FilterStyle()),
		"transform": template.CSS(editor.TransformStyle()),
		"form":      form,
		"errors":    fieldErrors,
	}
}
