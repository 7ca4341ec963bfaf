// Package hash aísla el esquema de digest de contraseñas detrás de una
// interfaz. El esquema "legacy" reproduce el MD5 sin salt del sistema
// heredado (necesario para verificar los digests ya almacenados); "bcrypt"
// es la variante fuerte para instalaciones nuevas.
package hash

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch la contraseña no corresponde al digest almacenado.
var ErrMismatch = errors.New("la contraseña no coincide con el digest")

// PasswordHasher digiere contraseñas y verifica digests almacenados.
type PasswordHasher interface {
	// Hash devuelve el digest a persistir para una contraseña en texto plano.
	Hash(password string) (string, error)
	// Verify compara la contraseña contra el digest almacenado.
	// Devuelve ErrMismatch si no corresponde.
	Verify(digest, password string) error
}

// ForScheme devuelve el hasher para el esquema configurado ("legacy" o "bcrypt").
func ForScheme(scheme string) (PasswordHasher, error) {
	switch scheme {
	case "legacy":
		return LegacyMD5{}, nil
	case "bcrypt":
		return Bcrypt{}, nil
	default:
		return nil, errors.New("esquema de hash desconocido: " + scheme)
	}
}

// LegacyMD5 digest MD5 hex sin salt, byte a byte compatible con los registros
// existentes. Criptográficamente débil: se mantiene solo por compatibilidad.
type LegacyMD5 struct{}

// Hash devuelve el MD5 de la contraseña en hex minúscula (32 caracteres).
func (LegacyMD5) Hash(password string) (string, error) {
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

// Verify recalcula el digest y compara en tiempo constante.
func (LegacyMD5) Verify(digest, password string) error {
	computed, _ := LegacyMD5{}.Hash(password)
	if subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) != 1 {
		return ErrMismatch
	}
	return nil
}

// Bcrypt variante fuerte sobre golang.org/x/crypto/bcrypt.
type Bcrypt struct{}

// Hash genera un digest bcrypt con el costo por defecto.
func (Bcrypt) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify delega en bcrypt.CompareHashAndPassword.
func (Bcrypt) Verify(digest, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)); err != nil {
		return ErrMismatch
	}
	return nil
}
