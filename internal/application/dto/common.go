package dto

// Códigos de error estables para clientes.
const (
	CodeInvalidBody      = "INVALID_BODY"
	CodeValidation       = "VALIDATION"
	CodeInvalidCategory  = "INVALID_CATEGORY"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeNotFound         = "NOT_FOUND"
	CodeInternal         = "INTERNAL"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse respuesta genérica de éxito.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
