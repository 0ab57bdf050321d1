// Package seed carga fuera de banda los datos que la API no crea: administradores y categorías.
package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
)

// Result nombres creados y omitidos (ya existían o repetidos en la entrada).
type Result struct {
	Created []string
	Skipped []string
}

// NormalizeName recorta espacios internos y aplica title case, ej: "  thai   curries " -> "Thai Curries".
func NormalizeName(name string) string {
	return cases.Title(language.English).String(strings.Join(strings.Fields(name), " "))
}

// Categories inserta las categorías que no existan (comparación sin distinguir mayúsculas),
// todas dentro de una transacción.
func Categories(ctx context.Context, tx repository.TxRunner, names []string) (*Result, error) {
	normalized := lo.Filter(lo.Map(names, func(n string, _ int) string { return NormalizeName(n) }),
		func(n string, _ int) bool { return n != "" })
	if len(normalized) == 0 {
		return nil, domain.ErrInvalidInput
	}

	res := &Result{}
	err := tx.Run(ctx, func(_ repository.UserRepository, categories repository.CategoryRepository) error {
		existing, err := categories.List(ctx)
		if err != nil {
			return err
		}
		seen := lo.SliceToMap(existing, func(c *entity.Category) (string, struct{}) {
			return strings.ToLower(c.Name), struct{}{}
		})
		for _, name := range normalized {
			key := strings.ToLower(name)
			if _, ok := seen[key]; ok {
				res.Skipped = append(res.Skipped, name)
				continue
			}
			if err := categories.Create(ctx, &entity.Category{Name: name}); err != nil {
				return fmt.Errorf("crear categoría %q: %w", name, err)
			}
			seen[key] = struct{}{}
			res.Created = append(res.Created, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
