package repository

import (
	"context"
	"fmt"

	"gtm_portal/models"
)

// CatalogProvider 只读的条目数据源
type CatalogProvider interface {
	ListItems(ctx context.Context, kind models.Kind) ([]models.CatalogItem, error)
}

// FindItem 在某个类型下按ID查找条目
func FindItem(ctx context.Context, p CatalogProvider, kind models.Kind, id string) (models.CatalogItem, error) {
	items, err := p.ListItems(ctx, kind)
	if err != nil {
		return models.CatalogItem{}, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.CatalogItem{}, fmt.Errorf("%w: %s/%s", models.ErrItemNotFound, kind, id)
}

// MemoryProvider 进程内的静态数据
type MemoryProvider struct {
	items map[models.Kind][]models.CatalogItem
}

// NewMemoryProvider 使用给定数据创建，传nil时使用内置样例数据
func NewMemoryProvider(items map[models.Kind][]models.CatalogItem) *MemoryProvider {
	if items == nil {
		items = SeedItems()
	}
	return &MemoryProvider{items: items}
}

func (m *MemoryProvider) ListItems(_ context.Context, kind models.Kind) ([]models.CatalogItem, error) {
	if _, err := models.ParseKind(string(kind)); err != nil {
		return nil, err
	}
	items := m.items[kind]
	out := make([]models.CatalogItem, len(items))
	copy(out, items)
	return out, nil
}
