package auth

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Длины ключей cookie-хранилища сессий: 64 байта для HMAC-SHA256 подписи
// и 32 байта для шифрования AES-256.
const (
	AuthKeyLength       = 64
	EncryptionKeyLength = 32
)

// salt фиксирован: ключи должны совпадать между перезапусками при одном и том же секрете.
var salt = []byte("kekstagram-session-v1")

// SessionKeys - пара ключей для cookie.NewStore.
type SessionKeys struct {
	Auth       []byte
	Encryption []byte
}

// DeriveSessionKeys получает из секрета ключи подписи и шифрования cookie с помощью HKDF-SHA256.
// Один секрет из конфигурации дает два независимых ключа нужной длины.
func DeriveSessionKeys(secret string) (SessionKeys, error) {
	if secret == "" {
		return SessionKeys{}, errors.New("секрет сессии не может быть пустым")
	}

	authKey, err := derive(secret, "auth", AuthKeyLength)
	if err != nil {
		return SessionKeys{}, err
	}
	encKey, err := derive(secret, "encryption", EncryptionKeyLength)
	if err != nil {
		return SessionKeys{}, err
	}
	return SessionKeys{Auth: authKey, Encryption: encKey}, nil
}

func derive(secret, info string, length int) ([]byte, error) {
	key := make([]byte, length)
	r := hkdf.New(sha256.New, []byte(secret), salt, []byte(info))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("ошибка вычисления ключа %s: %w", info, err)
	}
	return key, nil
}
