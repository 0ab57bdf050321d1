package usecase_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
)

// memMenuRepo implementación en memoria de MenuItemRepository para tests de casos de uso.
type memMenuRepo struct {
	mu         sync.Mutex
	nextID     int64
	items      map[int64]*entity.MenuItem
	categories map[int64]string
	failWith   error
}

func newMemMenuRepo(categories map[int64]string) *memMenuRepo {
	return &memMenuRepo{items: map[int64]*entity.MenuItem{}, categories: categories}
}

var _ repository.MenuItemRepository = (*memMenuRepo)(nil)

func (r *memMenuRepo) List(_ context.Context, f repository.MenuItemFilter) ([]*entity.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []*entity.MenuItem
	for _, it := range r.items {
		if f.CategoryID != nil && it.CategoryID != *f.CategoryID {
			continue
		}
		cp := *it
		cp.CategoryName = r.categories[it.CategoryID]
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CategoryName != out[j].CategoryName {
			return out[i].CategoryName < out[j].CategoryName
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *memMenuRepo) Create(_ context.Context, item *entity.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.categories[item.CategoryID]; !ok {
		return domain.ErrInvalidCategory
	}
	r.nextID++
	item.ID = r.nextID
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memMenuRepo) Update(_ context.Context, item *entity.MenuItem) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return 0, r.failWith
	}
	if _, ok := r.items[item.ID]; !ok {
		return 0, nil
	}
	cp := *item
	r.items[item.ID] = &cp
	return 1, nil
}

func (r *memMenuRepo) Delete(_ context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return 0, r.failWith
	}
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

var errDB = errors.New("connection refused")

func ptr[T any](v T) *T { return &v }
