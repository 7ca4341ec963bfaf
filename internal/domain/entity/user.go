package entity

// User administrador del panel. El digest nunca sale del dominio hacia las
// respuestas HTTP; los DTOs lo omiten.
type User struct {
	ID             int64
	Name           string
	LastName       string
	Email          string // único
	PasswordDigest string // MD5 hex legacy o bcrypt, según esquema configurado
	Agency         string
}
