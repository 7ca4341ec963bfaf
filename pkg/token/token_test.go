package token_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rh-admin-api/pkg/token"
)

func TestNew_LongitudFijaHex(t *testing.T) {
	tok, err := token.New()
	require.NoError(t, err)

	assert.Len(t, tok, token.Length, "el token siempre tiene la misma longitud")
	_, err = hex.DecodeString(tok)
	assert.NoError(t, err, "el token es hex válido")
}

func TestNew_NoSeRepite(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := token.New()
		require.NoError(t, err)
		assert.False(t, seen[tok], "dos tokens no deben coincidir")
		seen[tok] = true
	}
}
