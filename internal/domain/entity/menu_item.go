package entity

import "github.com/shopspring/decimal"

// MenuItem es la unidad vendible del menú.
// CategoryID debe referenciar una Category existente (lo garantiza la FK, no la API).
type MenuItem struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  int64
	ImageURL    *string // nil = sin imagen
	IsAvailable bool

	// CategoryName viene del JOIN con categories; vacío en escrituras.
	CategoryName string
}
