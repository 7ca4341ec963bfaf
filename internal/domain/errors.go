package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmployeeNotFound   = errors.New("empleado no encontrado")
	ErrEmailAlreadyExists = errors.New("ya existe un usuario con este correo electrónico")
	ErrInvalidCredentials = errors.New("credenciales incorrectas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUserHasEmployees   = errors.New("el usuario tiene empleados asociados")
)
