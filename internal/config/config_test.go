package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContent(t *testing.T) {
	content, err := DefaultContent()
	require.NoError(t, err)

	assert.Equal(t, 25, content.Gallery.PictureCount)
	assert.Equal(t, 6, content.Gallery.AvatarCount)
	assert.Equal(t, Range{Min: 15, Max: 200}, content.Gallery.Likes)
	assert.Equal(t, Range{Min: 0, Max: 30}, content.Gallery.Comments)
	assert.NotEmpty(t, content.Descriptions)
	assert.NotEmpty(t, content.Messages)
	assert.NotEmpty(t, content.Names)

	require.Len(t, content.Effects, 6)
	assert.Equal(t, "none", content.Effects[0].Name)
	assert.Equal(t, "blur", content.Effects[4].Style)
	assert.Equal(t, "px", content.Effects[4].Unit)
}

func TestParseContentRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"empty names": `
gallery: {picture_count: 1, avatar_count: 1, likes: {min: 1, max: 2}, comments: {min: 0, max: 1}}
descriptions: [a]
messages: [b]
names: []
effects: [{name: none, min: 0, max: 100, step: 1, style: none}]
`,
		"inverted likes": `
gallery: {picture_count: 1, avatar_count: 1, likes: {min: 5, max: 2}, comments: {min: 0, max: 1}}
descriptions: [a]
messages: [b]
names: [c]
effects: [{name: none, min: 0, max: 100, step: 1, style: none}]
`,
		"first effect not none": `
gallery: {picture_count: 1, avatar_count: 1, likes: {min: 1, max: 2}, comments: {min: 0, max: 1}}
descriptions: [a]
messages: [b]
names: [c]
effects: [{name: chrome, min: 0, max: 1, step: 0.1, style: grayscale}]
`,
		"zero step": `
gallery: {picture_count: 1, avatar_count: 1, likes: {min: 1, max: 2}, comments: {min: 0, max: 1}}
descriptions: [a]
messages: [b]
names: [c]
effects: [{name: none, min: 0, max: 100, step: 0, style: none}]
`,
		"broken yaml": "gallery: [",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseContent([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	galleryFile := filepath.Join(dir, "gallery.yaml")
	require.NoError(t, os.WriteFile(galleryFile, []byte(`
gallery: {picture_count: 3, avatar_count: 2, likes: {min: 1, max: 2}, comments: {min: 0, max: 1}}
descriptions: [a]
messages: [b]
names: [c]
effects: [{name: none, min: 0, max: 100, step: 1, style: none}]
`), 0o644))

	t.Setenv("APP_ENV", "production")
	t.Setenv("LISTEN_PORT", "9090")
	t.Setenv("COOKIE_SECRET", "secret")
	t.Setenv("GALLERY_FILE", galleryFile)
	t.Setenv("PREVIEW_MAX_WIDTH", "320")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "9090", cfg.ListenPort)
	assert.Equal(t, "secret", cfg.CookieSecret)
	assert.Equal(t, 320, cfg.PreviewMaxWidth)
	assert.Equal(t, 3, cfg.Content.Gallery.PictureCount)
}

func TestLoadRejectsBadPreviewWidth(t *testing.T) {
	t.Setenv("PREVIEW_MAX_WIDTH", "wide")
	_, err := Load()
	assert.Error(t, err)
}
