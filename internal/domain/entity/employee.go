package entity

import "time"

// Employee empleado administrado por un User (FK id_user, requerida).
// Las fechas se guardan como DATE nativas; el formato dd/mm/yyyy se aplica
// solo en la capa de DTOs.
type Employee struct {
	ID          int64
	Name        string
	LastName    string
	Agency      string
	DateOfBirth time.Time
	HighDate    time.Time  // fecha de alta
	Status      string
	LowDate     *time.Time // fecha de baja, nil si sigue activo
	Photo       string     // referencia opaca (URL o data URI), opcional
	UserID      int64

	// UserEmail proyección del JOIN con Users en las lecturas; no se persiste.
	UserEmail string
}
