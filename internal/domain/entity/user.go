package entity

// User representa una cuenta de administrador. Se crea fuera de la API (cmd/seed)
// y la API nunca la modifica ni la elimina.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt hash, nunca la contraseña en texto plano
}
