// Package money formatea precios del menú según la moneda configurada.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Formatter convierte montos a texto con símbolo y la escala estándar de la moneda (ISO 4217).
type Formatter struct {
	unit   currency.Unit
	symbol string
	scale  int32
}

// NewFormatter valida el código ISO y toma la cantidad de decimales estándar de la moneda.
// Si symbol está vacío se usa el código ISO seguido de un espacio.
func NewFormatter(code, symbol string) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("money: moneda inválida %q: %w", code, err)
	}
	scale, _ := currency.Standard.Rounding(unit)
	if symbol == "" {
		symbol = unit.String() + " "
	}
	return &Formatter{unit: unit, symbol: symbol, scale: int32(scale)}, nil
}

// MustFormatter igual que NewFormatter pero hace panic si el código es inválido.
func MustFormatter(code, symbol string) *Formatter {
	f, err := NewFormatter(code, symbol)
	if err != nil {
		panic(err)
	}
	return f
}

// Format devuelve el monto redondeado a la escala de la moneda, ej: "AU$15.50".
func (f *Formatter) Format(amount decimal.Decimal) string {
	return f.symbol + amount.StringFixed(f.scale)
}

// Code devuelve el código ISO de la moneda.
func (f *Formatter) Code() string {
	return f.unit.String()
}
