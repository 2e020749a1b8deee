package news

import "context"

// DefaultQuery is used when the caller supplies no search terms.
const DefaultQuery = "latest"

// Searcher is the provider-side contract the service composes over.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Article, error)
}

// Service fronts the provider with the cache. The cache is consulted first;
// on a miss the provider is called and the result stored.
type Service struct {
	provider Searcher
	cache    *Cache
}

// NewService wires a provider client and an optional (possibly nil) cache.
func NewService(provider Searcher, cache *Cache) *Service {
	return &Service{provider: provider, cache: cache}
}

// Search resolves query (empty means DefaultQuery) against cache then provider.
func (s *Service) Search(ctx context.Context, query string) ([]Article, error) {
	if query == "" {
		query = DefaultQuery
	}

	if articles, ok := s.cache.Get(ctx, query); ok {
		return articles, nil
	}

	articles, err := s.provider.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, query, articles)
	return articles, nil
}
