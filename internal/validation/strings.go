package validation

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var digitRuns = regexp.MustCompile(`\d+`)

// IsPalindrome убирает пробелы, приводит строку к верхнему регистру
// и сравнивает символы с двух концов.
// Сравнение идёт по рунам: знаки препинания и комбинируемые диакритики не учитываются.
func IsPalindrome(s string) bool {
	normalized := []rune(strings.ToUpper(strings.ReplaceAll(s, " ", "")))
	for i, j := 0, len(normalized)-1; i < j; i, j = i+1, j-1 {
		if normalized[i] != normalized[j] {
			return false
		}
	}
	return true
}

// ExtractDigits склеивает все группы цифр в порядке появления и возвращает число.
// Если цифр нет, возвращается NaN (проверяйте через math.IsNaN).
// "v1 and v2" даёт 12, а не 3. Больше 308 цифр подряд дают +Inf.
func ExtractDigits(s string) float64 {
	runs := digitRuns.FindAllString(s, -1)
	if len(runs) == 0 {
		return math.NaN()
	}
	n, err := strconv.ParseFloat(strings.Join(runs, ""), 64)
	if err != nil {
		// Слишком длинное число дает +Inf вместе с ErrRange.
		if errors.Is(err, strconv.ErrRange) {
			return n
		}
		return math.NaN()
	}
	return n
}

// PadStart дополняет строку слева символами pad до длины minLength.
// Сначала идёт неполный кусок pad, затем целые повторы, затем исходная строка.
// Строка не меняется, если она уже достаточно длинная или pad пуст.
func PadStart(s string, minLength int, pad string) string {
	runes := []rune(s)
	padRunes := []rune(pad)
	if minLength <= len(runes) || len(padRunes) == 0 {
		return s
	}

	padLength := minLength - len(runes)
	repeat := padLength / len(padRunes)
	free := padLength - repeat*len(padRunes)

	return string(padRunes[:free]) + strings.Repeat(pad, repeat) + s
}
