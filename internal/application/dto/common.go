package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse cuerpo de éxito para mutaciones sin payload (update/delete).
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
