package services

import (
	"errors"
	"fmt"
	"math"

	"kekstagram/internal/models"
	"kekstagram/internal/validation"
)

// Параметры масштаба превью, в процентах.
const (
	DefaultScale = 100
	MinScale     = 25
	MaxScale     = 100
	ScaleStep    = 25
)

// Направления кнопок масштаба.
const (
	ZoomSmaller = "smaller"
	ZoomBigger  = "bigger"
)

var (
	ErrUnknownEffect    = errors.New("неизвестный эффект")
	ErrUnknownDirection = errors.New("неизвестное направление масштабирования")
)

// Editor - состояние формы загрузки: выбранный эффект, его уровень и масштаб превью.
// Первый эффект набора считается эффектом по умолчанию (без фильтра).
// Editor не потокобезопасен: один экземпляр обслуживает один запрос одного пользователя.
type Editor struct {
	effects []models.Effect
	effect  models.Effect
	level   float64
	scale   int
}

// EditorSnapshot - состояние Editor в виде простых значений для хранения в сессии.
type EditorSnapshot struct {
	Effect string
	Level  float64
	Scale  int
}

// EditorView - данные для отрисовки слайдера и превью.
type EditorView struct {
	Effect        string  `json:"effect"`
	Level         float64 `json:"level"`
	LevelText     string  `json:"level_text"`
	Min           float64 `json:"min"`
	Max           float64 `json:"max"`
	Step          float64 `json:"step"`
	SliderVisible bool    `json:"slider_visible"`
	Filter        string  `json:"filter"`
	Scale         int     `json:"scale"`
	ScaleLabel    string  `json:"scale_label"`
	Transform     string  `json:"transform"`
}

// NewEditor создает редактор в исходном состоянии.
func NewEditor(effects []models.Effect) *Editor {
	if len(effects) == 0 {
		effects = []models.Effect{{Name: "none", Min: 0, Max: 100, Step: 1, Style: "none"}}
	}
	e := &Editor{effects: effects}
	e.Reset()
	return e
}

// Effects возвращает набор доступных эффектов.
func (e *Editor) Effects() []models.Effect { return e.effects }

// Effect возвращает выбранный эффект.
func (e *Editor) Effect() models.Effect { return e.effect }

// Level возвращает текущий уровень эффекта.
func (e *Editor) Level() float64 { return e.level }

// Scale возвращает текущий масштаб в процентах.
func (e *Editor) Scale() int { return e.scale }

// IsDefault сообщает, выбран ли эффект по умолчанию.
func (e *Editor) IsDefault() bool {
	return e.effect.Name == e.effects[0].Name
}

// SliderVisible - слайдер показывается только для эффектов с фильтром.
func (e *Editor) SliderVisible() bool {
	return !e.IsDefault()
}

// ChooseEffect выбирает эффект по имени и ставит уровень на максимум,
// как при переключении радиокнопки эффекта.
func (e *Editor) ChooseEffect(name string) error {
	for _, effect := range e.effects {
		if effect.Name == name {
			e.effect = effect
			e.level = effect.Max
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownEffect, name)
}

// SetLevel устанавливает уровень эффекта, ограничивая его диапазоном
// и округляя до шага слайдера.
func (e *Editor) SetLevel(v float64) {
	if math.IsNaN(v) {
		return
	}
	eff := e.effect
	v = math.Min(math.Max(v, eff.Min), eff.Max)
	if eff.Step > 0 {
		v = eff.Min + math.Round((v-eff.Min)/eff.Step)*eff.Step
		// убираем хвосты вида 0.30000000000000004
		v = math.Round(v*1e6) / 1e6
		v = math.Min(v, eff.Max)
	}
	e.level = v
}

// Zoom уменьшает или увеличивает масштаб на ScaleStep в пределах [MinScale, MaxScale].
func (e *Editor) Zoom(direction string) error {
	switch direction {
	case ZoomSmaller:
		if e.scale > MinScale {
			e.scale -= ScaleStep
		}
	case ZoomBigger:
		if e.scale < MaxScale {
			e.scale += ScaleStep
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}
	return nil
}

// SetScale устанавливает масштаб, ограничивая его диапазоном и округляя до шага.
func (e *Editor) SetScale(v int) {
	v = min(max(v, MinScale), MaxScale)
	e.scale = MinScale + int(math.Round(float64(v-MinScale)/ScaleStep))*ScaleStep
}

// Reset возвращает эффект по умолчанию и исходный масштаб (закрытие формы).
func (e *Editor) Reset() {
	e.effect = e.effects[0]
	e.level = e.effect.Max
	e.scale = DefaultScale
}

// FilterStyle - значение CSS filter для превью.
func (e *Editor) FilterStyle() string {
	if e.IsDefault() {
		return e.effects[0].Style
	}
	return e.effect.Filter(e.level)
}

// TransformStyle - значение CSS transform для превью, например "scale(0.75)".
func (e *Editor) TransformStyle() string {
	return "scale(" + models.FormatLevel(float64(e.scale)/100) + ")"
}

// ScaleLabel - значение поля масштаба, например "75%".
func (e *Editor) ScaleLabel() string {
	return fmt.Sprintf("%d%%", e.scale)
}

// Snapshot сохраняет состояние в простые значения.
func (e *Editor) Snapshot() EditorSnapshot {
	return EditorSnapshot{Effect: e.effect.Name, Level: e.level, Scale: e.scale}
}

// Restore восстанавливает состояние из снимка.
// Неизвестный эффект заменяется эффектом по умолчанию.
func (e *Editor) Restore(s EditorSnapshot) {
	if err := e.ChooseEffect(s.Effect); err != nil {
		e.Reset()
	}
	e.SetLevel(s.Level)
	if s.Scale != 0 {
		e.SetScale(s.Scale)
	}
}

// View собирает данные для шаблона и JSON API.
func (e *Editor) View() EditorView {
	return EditorView{
		Effect:        e.effect.Name,
		Level:         e.level,
		LevelText:     models.FormatLevel(e.level),
		Min:           e.effect.Min,
		Max:           e.effect.Max,
		Step:          e.effect.Step,
		SliderVisible: e.SliderVisible(),
		Filter:        e.FilterStyle(),
		Scale:         e.scale,
		ScaleLabel:    e.ScaleLabel(),
		Transform:     e.TransformStyle(),
	}
}

// ParseScale разбирает значение поля масштаба ("75%") в число процентов.
func ParseScale(s string) (int, bool) {
	n := validation.ExtractDigits(s)
	if math.IsNaN(n) {
		return 0, false
	}
	return int(math.Min(n, math.MaxInt32)), true
}
