// Package validation содержит проверки полей формы загрузки
// (описание, хэш-теги) и небольшие строковые утилиты.
// Все функции чистые: не меняют состояние и не возвращают ошибок,
// результат проверки выражается значением true/false.
package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Ограничения полей формы загрузки.
const (
	MaxDescriptionLength = 140
	MaxTagsCount         = 5
)

// Тексты ошибок, показываемые под полями формы.
const (
	DescriptionErrorText = "Комментарий не обязателен. Максимальная длина комментария 140 символов"
	TagsErrorText        = "Хэш-теги необязательны! Пример хэш-тега: #ХэшТег " +
		"(длина 1го хэш-тега не более 20 символов, не более 5 хэш-тегов под фотографией)."
)

// tagPattern - решётка и от 1 до 19 латинских/кириллических букв или цифр.
// Тег сравнивается после upperTag, поэтому шаблон записан в верхнем регистре.
var tagPattern = regexp.MustCompile(`^#[A-ZА-ЯЁ0-9]{1,19}$`)

// upperTag переводит тег в верхний регистр. Не-ASCII символ, который
// становится ASCII-буквой (ſ -> S), остается как есть: "#ſ" не должен
// сойти за "#S". Знак кельвина (U+212A) уже заглавный и тоже не меняется.
func upperTag(tag string) string {
	return strings.Map(func(r rune) rune {
		upper := unicode.ToUpper(r)
		if r >= utf8.RuneSelf && upper < utf8.RuneSelf {
			return r
		}
		return upper
	}, tag)
}

// IsDescriptionValid проверяет длину описания фотографии (в символах, не в байтах).
func IsDescriptionValid(description string) bool {
	return IsLengthValid(description, MaxDescriptionLength)
}

// NormalizeTags обрезает пробелы по краям, делит строку по одиночным пробелам
// и отбрасывает пустые токены. Сами токены не обрезаются:
// "#a\t" останется как есть и не пройдёт проверку символов.
func NormalizeTags(tags string) []string {
	parts := strings.Split(strings.TrimSpace(tags), " ")
	result := make([]string, 0, len(parts))
	for _, tag := range parts {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		result = append(result, tag)
	}
	return result
}

// IsSymbolsValid проверяет, что каждый тег соответствует шаблону хэш-тега.
// Пустой список считается корректным.
func IsSymbolsValid(tags []string) bool {
	for _, tag := range tags {
		if !tagPattern.MatchString(upperTag(tag)) {
			return false
		}
	}
	return true
}

// IsTagsCountValid проверяет, что тегов не больше MaxTagsCount.
func IsTagsCountValid(tags []string) bool {
	return len(tags) <= MaxTagsCount
}

// IsTagsUnique проверяет отсутствие повторов без учёта регистра.
func IsTagsUnique(tags []string) bool {
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}

// IsTagsValid нормализует строку с хэш-тегами и применяет все три проверки.
func IsTagsValid(tags string) bool {
	normalized := NormalizeTags(tags)
	return IsSymbolsValid(normalized) && IsTagsCountValid(normalized) && IsTagsUnique(normalized)
}

// IsLengthValid сравнивает количество символов строки с maxLength.
func IsLengthValid(s string, maxLength int) bool {
	return utf8.RuneCountInString(s) <= maxLength
}
