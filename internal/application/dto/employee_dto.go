package dto

// EmployeeRequest entrada para crear o actualizar un empleado (el update es un
// full replace: mismo conjunto requerido que el create).
// Fechas de entrada siempre en yyyy-mm-dd; photo y low_date opcionales.
type EmployeeRequest struct {
	Name        string `json:"name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Agency      string `json:"agency" validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	HighDate    string `json:"high_date" validate:"required,datetime=2006-01-02"`
	Status      string `json:"status" validate:"required"`
	LowDate     string `json:"low_date" validate:"omitempty,datetime=2006-01-02"`
	Photo       string `json:"photo" validate:"omitempty"`
	UserID      int64  `json:"id_user" validate:"required"`
}

// EmployeeResponse salida de un empleado. Fechas siempre en dd/mm/yyyy;
// low_date es null mientras el empleado siga de alta.
type EmployeeResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	LastName    string  `json:"last_name"`
	Agency      string  `json:"agency"`
	DateOfBirth string  `json:"date_of_birth"`
	HighDate    string  `json:"high_date"`
	Status      string  `json:"status"`
	LowDate     *string `json:"low_date"`
	Photo       string  `json:"photo"`
	UserID      int64   `json:"id_user"`
	UserEmail   string  `json:"user_email"`
}

// CreateEmployeeResponse salida de la creación de un empleado.
type CreateEmployeeResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	EmployeeID int64  `json:"employeeId"`
}
