package services

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateSecureToken возвращает length случайных байт в виде URL-safe base64 без '='.
// Используется для имени базы в памяти и для секрета cookie, если он не задан.
func GenerateSecureToken(length int) (string, error) {
	b := make([]byte, length)
	// Читаем случайные байты из криптографического источника ОС
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("не удалось сгенерировать случайные байты: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
