package dto

// LoginRequest credenciales del administrador.
type LoginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LoginResponse salida del login. Token es el mismo valor de la cookie de sesión,
// para clientes que no manejan cookies (Authorization: Bearer).
type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}
