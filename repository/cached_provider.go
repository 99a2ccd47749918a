package repository

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"gtm_portal/logger"
	"gtm_portal/models"
)

// CachedProvider 按类型缓存下游数据源的结果，由调度器定期Purge
type CachedProvider struct {
	next  CatalogProvider
	cache *lru.Cache[models.Kind, []models.CatalogItem]
}

func NewCachedProvider(next CatalogProvider, size int) (*CachedProvider, error) {
	if size <= 0 {
		size = len(models.AllKinds)
	}
	cache, err := lru.New[models.Kind, []models.CatalogItem](size)
	if err != nil {
		return nil, err
	}
	return &CachedProvider{next: next, cache: cache}, nil
}

func (c *CachedProvider) ListItems(ctx context.Context, kind models.Kind) ([]models.CatalogItem, error) {
	if items, ok := c.cache.Get(kind); ok {
		return cloneItems(items), nil
	}

	items, err := c.next.ListItems(ctx, kind)
	if err != nil {
		return nil, err
	}
	c.cache.Add(kind, items)
	return cloneItems(items), nil
}

// Purge 清空缓存，下次读取时回源
func (c *CachedProvider) Purge() {
	n := c.cache.Len()
	c.cache.Purge()
	logger.Info("类目缓存已清空", "entries", n)
}

func cloneItems(items []models.CatalogItem) []models.CatalogItem {
	out := make([]models.CatalogItem, len(items))
	copy(out, items)
	return out
}
