package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Имена правил, доступные в тегах `binding:"..."`.
const (
	RuleDescription = "description"
	RuleHashtags    = "hashtags"
)

// ruleMessages сопоставляет правило с текстом ошибки для пользователя.
var ruleMessages = map[string]string{
	RuleDescription: DescriptionErrorText,
	RuleHashtags:    TagsErrorText,
}

// FieldErrors - ошибки валидации формы в виде "поле" -> "сообщение".
type FieldErrors map[string]string

// Error реализует интерфейс error.
func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for field, msg := range e {
		msgs = append(msgs, fmt.Sprintf("поле '%s': %s", field, msg))
	}
	return "ошибка валидации: " + strings.Join(msgs, "; ")
}

// RegisterRules добавляет правила description и hashtags в экземпляр валидатора
// и настраивает имена полей по тегам form/json, чтобы сообщения ссылались на имена из формы.
func RegisterRules(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	if err := v.RegisterValidation(RuleDescription, func(fl validator.FieldLevel) bool {
		return IsDescriptionValid(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("не удалось зарегистрировать правило %s: %w", RuleDescription, err)
	}
	if err := v.RegisterValidation(RuleHashtags, func(fl validator.FieldLevel) bool {
		return IsTagsValid(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("не удалось зарегистрировать правило %s: %w", RuleHashtags, err)
	}
	return nil
}

// RegisterBindings регистрирует правила в валидаторе, который gin использует
// при ShouldBind. Повторный вызов просто перезаписывает правила.
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("движок валидации gin не является go-playground/validator")
	}
	return RegisterRules(v)
}

// Messages преобразует ошибку валидации в FieldErrors.
// Возвращает nil, если err не является ошибкой валидации полей.
func Messages(err error) FieldErrors {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	result := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		msg, ok := ruleMessages[fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("значение не прошло проверку '%s'", fe.Tag())
		}
		result[fe.Field()] = msg
	}
	return result
}
