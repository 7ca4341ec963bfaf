package dto

// CreateUserRequest entrada para crear un usuario (password en texto, se digiere en el use case).
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	LastName string `json:"last_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Agency   string `json:"agency" validate:"required"`
}

// UpdateUserRequest entrada para actualizar un usuario. Password en blanco
// conserva el digest almacenado; el resto de campos se sobreescribe siempre.
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	LastName string `json:"last_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty"`
	Agency   string `json:"agency" validate:"required"`
}

// UserResponse salida de un usuario. El digest nunca se serializa.
type UserResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
	Agency   string `json:"agency"`
}

// CreateUserResponse salida de la creación de un usuario.
type CreateUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}
