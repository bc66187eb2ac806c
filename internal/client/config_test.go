package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeal(t *testing.T) {
	cfg := Config{
		Endpoint:  "http://localhost:5000/",
		Username:  "alice",
		SessionID: "S1",
	}

	ciphertext, err := seal(cfg, []byte("passphrase"))
	require.NoError(t, err)
	assert.NotContains(t, string(ciphertext), "alice")

	other, err := seal(cfg, []byte("passphrase"))
	require.NoError(t, err)
	assert.NotEqual(t, ciphertext, other, "salt and nonce must be random")

	v, err := unseal(ciphertext, []byte("passphrase"))
	require.NoError(t, err)
	assert.Equal(t, cfg, v)
	assert.True(t, v.Authenticated())

	_, err = unseal(ciphertext, []byte("wrong"))
	assert.EqualError(t, err, "could not decrypt credentials file: chacha20poly1305: message authentication failed")

	_, err = unseal(ciphertext[:20], []byte("passphrase"))
	assert.EqualError(t, err, "credentials file is truncated")
}

func TestConfig_Authenticated(t *testing.T) {
	assert.False(t, Config{}.Authenticated())
	assert.False(t, Config{Endpoint: "http://localhost", Username: "alice"}.Authenticated())
	assert.True(t, Config{Username: "alice", SessionID: "S1"}.Authenticated())
}
