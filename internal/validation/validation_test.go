package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDescriptionValid(t *testing.T) {
	assert.True(t, IsDescriptionValid(""))
	assert.True(t, IsDescriptionValid(strings.Repeat("a", 140)))
	assert.False(t, IsDescriptionValid(strings.Repeat("a", 141)))

	// Длина считается в символах: 140 кириллических букв занимают 280 байт.
	assert.True(t, IsDescriptionValid(strings.Repeat("ж", 140)))
	assert.False(t, IsDescriptionValid(strings.Repeat("ж", 141)))
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"only spaces", "    ", []string{}},
		{"single", "#cat", []string{"#cat"}},
		{"trim and double spaces", "  #cat   #dog ", []string{"#cat", "#dog"}},
		{"tab kept inside token", "#cat\t #dog", []string{"#cat\t", "#dog"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTags(tt.in))
		})
	}
}

func TestNormalizeTagsIdempotent(t *testing.T) {
	for _, in := range []string{"", " #a  #b ", "#Кот #кот   #dog"} {
		once := NormalizeTags(in)
		twice := NormalizeTags(strings.Join(once, " "))
		assert.Equal(t, once, twice, in)
	}
}

func TestIsSymbolsValid(t *testing.T) {
	assert.True(t, IsSymbolsValid(nil))
	assert.True(t, IsSymbolsValid([]string{"#tag1", "#ХэшТег", "#ёжик", "#ЁЖИК"}))
	assert.False(t, IsSymbolsValid([]string{"#a_b"}))
	assert.False(t, IsSymbolsValid([]string{"#"}))
	assert.False(t, IsSymbolsValid([]string{"tag"}))
	assert.False(t, IsSymbolsValid([]string{"#a#b"}))
	assert.False(t, IsSymbolsValid([]string{"#ok", "#not-ok"}))
	// Символы, которые только при свертке регистра похожи на латиницу.
	assert.False(t, IsSymbolsValid([]string{"#\u212A"}))
	assert.False(t, IsSymbolsValid([]string{"#ſ"}))
	assert.False(t, IsSymbolsValid([]string{"#ſun"}))
	assert.True(t, IsSymbolsValid([]string{"#Kelvin", "#sun"}))
}

func TestIsTagsValid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"no tags", "", true},
		{"two distinct", "#tag1 #tag2", true},
		{"duplicate", "#tag1 #tag1", false},
		{"duplicate ignoring case", "#Tag1 #tAG1", false},
		{"five tags", "#a #b #c #d #e", true},
		{"six tags", "#a #b #c #d #e #f", false},
		{"underscore", "#a_b", false},
		{"twenty chars", "#" + strings.Repeat("x", 19), true},
		{"twenty one chars", "#" + strings.Repeat("x", 20), false},
		{"cyrillic twenty chars", "#" + strings.Repeat("я", 19), true},
		{"no hash", "tag", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTagsValid(tt.in))
		})
	}
}

func TestIsTagsCountAndUnique(t *testing.T) {
	assert.True(t, IsTagsCountValid(make([]string, 5)))
	assert.False(t, IsTagsCountValid(make([]string, 6)))
	assert.True(t, IsTagsUnique(nil))
	assert.True(t, IsTagsUnique([]string{"#a", "#b"}))
	assert.False(t, IsTagsUnique([]string{"#Кот", "#кОТ"}))
}

func TestIsLengthValid(t *testing.T) {
	assert.True(t, IsLengthValid("проверяемая строка", 20))
	assert.True(t, IsLengthValid("проверяемая строка", 18))
	assert.False(t, IsLengthValid("проверяемая строка", 10))
}
