package models

import (
	// Стандартные библиотеки
	"strconv" // Для форматирования значения уровня эффекта без лишних нулей
)

// Picture представляет одну фотографию галереи.
// Поля соответствуют столбцам таблицы 'pictures' базы данных.
// Теги `json:"..."` используются для JSON API.
type Picture struct {
	ID          int       `json:"id"`          // Порядковый номер фотографии, начиная с 1
	URL         string    `json:"url"`         // Адрес изображения, вычисляется из ID ("photos/{id}.jpg")
	Description string    `json:"description"` // Подпись к фотографии
	Likes       int       `json:"likes"`       // Количество лайков
	Comments    []Comment `json:"comments"`    // Комментарии в порядке их номеров
}

// CommentsCount возвращает количество комментариев под фотографией.
func (p Picture) CommentsCount() int {
	return len(p.Comments)
}

// Comment представляет комментарий к фотографии.
// Комментарий принадлежит ровно одной фотографии, его ID уникален только внутри неё.
type Comment struct {
	ID      int    `json:"id"`      // Номер комментария внутри фотографии, начиная с 1
	Avatar  string `json:"avatar"`  // Адрес аватара автора ("img/avatar-{n}.svg")
	Message string `json:"message"` // Текст комментария
	Name    string `json:"name"`    // Имя автора
}

// Effect описывает фильтр для превью загружаемого изображения.
// Min, Max и Step задают диапазон слайдера интенсивности,
// Style - имя CSS-функции фильтра, Unit - единица измерения значения.
type Effect struct {
	Name  string  `json:"name" yaml:"name" validate:"required"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max" validate:"gtefield=Min"`
	Step  float64 `json:"step" yaml:"step" validate:"gt=0"`
	Unit  string  `json:"unit" yaml:"unit"`
	Style string  `json:"style" yaml:"style" validate:"required"`
}

// Filter формирует значение CSS-свойства filter для указанного уровня,
// например "grayscale(0.3)" или "blur(1.5px)".
func (e Effect) Filter(level float64) string {
	return e.Style + "(" + FormatLevel(level) + e.Unit + ")"
}

// FormatLevel печатает уровень эффекта в кратчайшем виде: 1, 0.3, 2.5.
func FormatLevel(level float64) string {
	return strconv.FormatFloat(level, 'f', -1, 64)
}
