package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveSessionKeys(t *testing.T) {
	keys, err := DeriveSessionKeys("secret")
	require.NoError(t, err)
	assert.Len(t, keys.Auth, AuthKeyLength)
	assert.Len(t, keys.Encryption, EncryptionKeyLength)
	assert.NotEqual(t, keys.Auth[:EncryptionKeyLength], keys.Encryption)

	again, err := DeriveSessionKeys("secret")
	require.NoError(t, err)
	assert.Equal(t, keys, again)

	other, err := DeriveSessionKeys("another secret")
	require.NoError(t, err)
	assert.NotEqual(t, keys.Auth, other.Auth)
}

func TestDeriveSessionKeysEmptySecret(t *testing.T) {
	_, err := DeriveSessionKeys("")
	assert.Error(t, err)
}
