package entity

// Category agrupa ítems del menú. Solo lectura para la API.
type Category struct {
	ID   int64
	Name string
}
