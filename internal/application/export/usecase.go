package export

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
	"github.com/jhoicas/menu-api/pkg/money"
)

// UseCase exportaciones públicas del menú.
type UseCase struct {
	items     repository.MenuItemRepository
	formatter *money.Formatter
	title     string
	pdf       MenuPDFGenerator
	feed      MenuFeedBuilder
	now       func() time.Time
}

// NewUseCase construye el caso de uso inyectando repositorio, formateador y generadores.
func NewUseCase(
	items repository.MenuItemRepository,
	formatter *money.Formatter,
	title string,
	pdf MenuPDFGenerator,
	feed MenuFeedBuilder,
) *UseCase {
	return &UseCase{
		items:     items,
		formatter: formatter,
		title:     title,
		pdf:       pdf,
		feed:      feed,
		now:       time.Now,
	}
}

// BuildMenu lee todos los ítems, descarta los no disponibles y agrupa por categoría
// respetando el orden del repositorio (categoría, nombre).
func (uc *UseCase) BuildMenu(ctx context.Context) (*PrintableMenu, error) {
	list, err := uc.items.List(ctx, repository.MenuItemFilter{})
	if err != nil {
		return nil, err
	}
	available := lo.Filter(list, func(it *entity.MenuItem, _ int) bool { return it.IsAvailable })
	byCategory := lo.GroupBy(available, func(it *entity.MenuItem) int64 { return it.CategoryID })
	order := lo.Uniq(lo.Map(available, func(it *entity.MenuItem, _ int) int64 { return it.CategoryID }))

	sections := lo.Map(order, func(categoryID int64, _ int) MenuSection {
		items := byCategory[categoryID]
		return MenuSection{
			CategoryID: categoryID,
			Category:   items[0].CategoryName,
			Items:      lo.Map(items, func(it *entity.MenuItem, _ int) PrintableItem { return uc.toPrintable(it) }),
		}
	})

	return &PrintableMenu{
		Title:       uc.title,
		Currency:    uc.formatter.Code(),
		GeneratedAt: uc.now().UTC(),
		Sections:    sections,
		ItemCount:   len(available),
	}, nil
}

// PDF genera la carta imprimible. Devuelve bytes y nombre de archivo sugerido.
func (uc *UseCase) PDF(ctx context.Context) ([]byte, string, error) {
	menu, err := uc.BuildMenu(ctx)
	if err != nil {
		return nil, "", err
	}
	body, err := uc.pdf.GenerateMenuPDF(ctx, menu)
	if err != nil {
		return nil, "", fmt.Errorf("export: generar pdf: %w", err)
	}
	return body, "menu.pdf", nil
}

// Feed genera el XML canónico y su digest SHA-256 en hex (cabecera X-Content-SHA256).
func (uc *UseCase) Feed(ctx context.Context) ([]byte, string, error) {
	menu, err := uc.BuildMenu(ctx)
	if err != nil {
		return nil, "", err
	}
	body, err := uc.feed.BuildMenuFeed(ctx, menu)
	if err != nil {
		return nil, "", fmt.Errorf("export: generar feed: %w", err)
	}
	sum := sha256.Sum256(body)
	return body, hex.EncodeToString(sum[:]), nil
}

func (uc *UseCase) toPrintable(it *entity.MenuItem) PrintableItem {
	return PrintableItem{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		PriceLabel:  uc.formatter.Format(it.Price),
		ImageURL:    lo.FromPtr(it.ImageURL),
	}
}
