package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/patrickmn/go-cache"
)

// CachedContentCatalog keeps a TTL snapshot of each content type's visible
// catalog in front of a ContentRepo. Writes go straight through and flush
// the snapshot. Callers always receive their own copy of the slice.
// A one-shot CLI run reads at most once; repeat hits need a caller that
// keeps the service alive across sessions.
type CachedContentCatalog struct {
	next  ContentRepo
	cache *cache.Cache
}

func NewCachedContentCatalog(next ContentRepo, ttl time.Duration) *CachedContentCatalog {
	return &CachedContentCatalog{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *CachedContentCatalog) ListVisible(ctx context.Context, contentType domain.ContentType) ([]domain.ContentItem, error) {
	key := "visible:" + string(contentType)
	if x, found := c.cache.Get(key); found {
		return cloneItems(x.([]domain.ContentItem)), nil
	}

	items, err := c.next.ListVisible(ctx, contentType)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, cloneItems(items), cache.DefaultExpiration)
	return items, nil
}

func (c *CachedContentCatalog) Create(ctx context.Context, item *domain.ContentItem) error {
	if err := c.next.Create(ctx, item); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

func (c *CachedContentCatalog) GetByID(ctx context.Context, id string) (*domain.ContentItem, error) {
	return c.next.GetByID(ctx, id)
}

func (c *CachedContentCatalog) List(ctx context.Context, includeHidden bool) ([]domain.ContentItem, error) {
	return c.next.List(ctx, includeHidden)
}

// Invalidate drops every cached snapshot.
func (c *CachedContentCatalog) Invalidate() {
	c.cache.Flush()
}

func cloneItems(items []domain.ContentItem) []domain.ContentItem {
	if items == nil {
		return nil
	}
	out := make([]domain.ContentItem, len(items))
	copy(out, items)
	return out
}

var _ ContentRepo = (*CachedContentCatalog)(nil)
