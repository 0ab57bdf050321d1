// Package export arma la vista pública del menú (solo ítems disponibles, agrupados por categoría)
// y la entrega a los generadores de PDF y XML.
package export

import (
	"time"

	"github.com/shopspring/decimal"
)

// PrintableMenu carta lista para renderizar. Las secciones siguen el orden por nombre de categoría.
type PrintableMenu struct {
	Title       string
	Currency    string // código ISO 4217
	GeneratedAt time.Time
	Sections    []MenuSection
	ItemCount   int
}

// MenuSection ítems disponibles de una categoría, ordenados por nombre.
type MenuSection struct {
	CategoryID int64
	Category   string
	Items      []PrintableItem
}

// PrintableItem ítem con el precio ya formateado en la moneda del menú.
type PrintableItem struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	PriceLabel  string // ej: "AU$15.50"
	ImageURL    string // vacío si no tiene imagen
}
