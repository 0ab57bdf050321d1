// Package pdf genera la carta imprimible del restaurante.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título de la carta  │  Fecha + moneda               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIÓN: nombre de categoría                                │
//	│    Ítem ........................................ Precio     │
//	│    descripción                                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: cantidad de platos + leyenda                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/menu-api/internal/application/export"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 140, Green: 45, Blue: 25}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ export.MenuPDFGenerator = (*MarotoMenuGenerator)(nil)

// MarotoMenuGenerator implementa export.MenuPDFGenerator usando Maroto v2.
type MarotoMenuGenerator struct{}

// NewMarotoMenuGenerator construye el generador.
func NewMarotoMenuGenerator() *MarotoMenuGenerator { return &MarotoMenuGenerator{} }

// GenerateMenuPDF genera el PDF y devuelve sus bytes.
func (g *MarotoMenuGenerator) GenerateMenuPDF(_ context.Context, menu *export.PrintableMenu) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(menu.Title, true).
		WithAuthor(menu.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(menu))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(menu.Sections) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("No hay platos disponibles por el momento.", props.Text{
				Size: 10, Align: align.Center, Top: 4, Color: colorGray,
			}),
		)))
	}
	for _, s := range menu.Sections {
		m.AddRows(sectionRows(s)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(menu))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de emisión + moneda (der).
func headerRow(menu *export.PrintableMenu) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(menu.Title, props.Text{
				Style: fontstyle.Bold, Size: 18, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(menu.GeneratedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New("Precios en "+menu.Currency, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// sectionRows: título de la categoría y una fila por ítem (nombre + precio, descripción debajo).
func sectionRows(s export.MenuSection) []core.Row {
	rows := []core.Row{
		row.New(12).Add(col.New(12).Add(
			text.New(s.Category, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 5,
			}),
		)),
	}
	for _, it := range s.Items {
		h := 7.0
		if it.Description != "" {
			h = 12
		}
		left := col.New(9).Add(text.New(it.Name, props.Text{
			Style: fontstyle.Bold, Size: 10, Top: 1, Left: 2,
		}))
		if it.Description != "" {
			left.Add(text.New(it.Description, props.Text{
				Size: 8, Top: 6, Left: 2, Color: colorGray,
			}))
		}
		rows = append(rows, row.New(h).Add(
			left,
			col.New(3).Add(text.New(it.PriceLabel, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return rows
}

// footerRow: total de platos y leyenda.
func footerRow(menu *export.PrintableMenu) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%d platos disponibles. Precios sujetos a cambio sin previo aviso.", menu.ItemCount), props.Text{
			Size: 7, Align: align.Center, Top: 2, Color: colorGray,
		}),
	))
}
