package dto

// ErrorResponse cuerpo de error HTTP (uniforme para 400/404/500).
type ErrorResponse struct {
	Error string `json:"error"`
}
