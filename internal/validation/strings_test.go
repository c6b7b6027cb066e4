package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPalindrome(t *testing.T) {
	assert.True(t, IsPalindrome("A man a man A"))
	assert.True(t, IsPalindrome("Лёша на полке клопа нашёл "))
	assert.True(t, IsPalindrome("топот"))
	assert.True(t, IsPalindrome(""))
	assert.False(t, IsPalindrome("hello"))
	// Пунктуация не отбрасывается.
	assert.False(t, IsPalindrome("abba!"))
}

func TestExtractDigits(t *testing.T) {
	assert.Equal(t, 2022.0, ExtractDigits("ECMAScript 2022"))
	assert.Equal(t, 12.0, ExtractDigits("v1 and v2"))
	assert.Equal(t, 7.0, ExtractDigits("007"))
	assert.Equal(t, 75.0, ExtractDigits("75%"))
	assert.True(t, math.IsNaN(ExtractDigits("no digits")))
	assert.True(t, math.IsNaN(ExtractDigits("")))
	assert.True(t, math.IsInf(ExtractDigits("id "+strings.Repeat("9", 400)), 1))
}

func TestPadStart(t *testing.T) {
	tests := []struct {
		s      string
		min    int
		pad    string
		expect string
	}{
		{"1", 5, "23", "23231"},
		{"1", 2, "0", "01"},
		{"1", 4, "0", "0001"},
		{"q", 4, "werty", "werq"},
		{"q", 4, "we", "wweq"},
		{"qwerty", 4, "0", "qwerty"},
		{"1", 20, "2345", "2342345234523452345" + "1"},
		{"abc", 5, "", "abc"},
		{"я", 3, "ю", "ююя"},
	}
	for _, tt := range tests {
		got := PadStart(tt.s, tt.min, tt.pad)
		assert.Equal(t, tt.expect, got, "PadStart(%q, %d, %q)", tt.s, tt.min, tt.pad)
	}
}
