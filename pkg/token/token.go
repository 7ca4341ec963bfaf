// Package token genera el token de sesión opaco que devuelve el login.
// El token no se persiste ni se valida en ningún otro punto del sistema
// (pendiente: validación real de sesión, decisión del dueño del sistema).
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Bytes de entropía por token; hex-encoded produce Length caracteres.
const (
	rawBytes = 64
	Length   = rawBytes * 2
)

// New genera un token opaco criptográficamente aleatorio de Length caracteres hex.
func New() (string, error) {
	b := make([]byte, rawBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generar token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
