package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	hash, err := HashPassword("123456")
	assert.NoError(t, err)
	assert.NotEqual(t, "123456", hash)
	assert.True(t, VerifyPassword(hash, "123456"))
	assert.False(t, VerifyPassword(hash, "654321"))
}
