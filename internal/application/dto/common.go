package dto

// ErrorResponse cuerpo de error JSON (checkout y rutas API).
type ErrorResponse struct {
	Error string `json:"error"`
}
