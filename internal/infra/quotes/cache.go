package quotes

import (
	"context"
	"sync"
	"time"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
)

// DefaultCacheTTL keeps provider call volume down; entries expire by
// timestamp only, the map itself is unbounded.
const DefaultCacheTTL = 5 * time.Minute

type cacheEntry struct {
	quote     *models.Quote
	fetchedAt time.Time
}

// CachedProvider wraps a provider with an in-memory TTL cache keyed by
// symbol.
type CachedProvider struct {
	provider usecase.QuoteProvider
	ttl      time.Duration

	mutex   sync.Mutex
	entries map[string]cacheEntry

	now func() time.Time
}

func NewCachedProvider(provider usecase.QuoteProvider, ttl time.Duration) *CachedProvider {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedProvider{
		provider: provider,
		ttl:      ttl,
		entries:  map[string]cacheEntry{},
		now:      time.Now,
	}
}

func (c *CachedProvider) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	c.mutex.Lock()
	entry, ok := c.entries[symbol]
	c.mutex.Unlock()

	if ok && c.now().Sub(entry.fetchedAt) < c.ttl {
		return entry.quote, nil
	}

	quote, err := c.provider.GetQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	c.mutex.Lock()
	c.entries[symbol] = cacheEntry{quote: quote, fetchedAt: c.now()}
	c.mutex.Unlock()

	return quote, nil
}
