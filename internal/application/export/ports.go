package export

import "context"

// MenuPDFGenerator genera la carta imprimible. Implementado en infrastructure/pdf.
type MenuPDFGenerator interface {
	GenerateMenuPDF(ctx context.Context, menu *PrintableMenu) ([]byte, error)
}

// MenuFeedBuilder genera el feed XML canónico para terceros. Implementado en infrastructure/feed.
type MenuFeedBuilder interface {
	BuildMenuFeed(ctx context.Context, menu *PrintableMenu) ([]byte, error)
}
