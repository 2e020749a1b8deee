package news

import (
	"context"
	"errors"
	"testing"
)

type fakeSearcher struct {
	calls     int
	lastQuery string
	articles  []Article
	err       error
}

func (f *fakeSearcher) Search(ctx context.Context, query string) ([]Article, error) {
	f.calls++
	f.lastQuery = query
	if f.err != nil {
		return nil, f.err
	}
	return f.articles, nil
}

func TestService_DefaultsEmptyQuery(t *testing.T) {
	f := &fakeSearcher{articles: []Article{}}
	s := NewService(f, nil)

	if _, err := s.Search(context.Background(), ""); err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if f.calls != 1 {
		t.Fatalf("provider not called")
	}
	if f.lastQuery != DefaultQuery {
		t.Fatalf("provider got query %q, want %q", f.lastQuery, DefaultQuery)
	}
}

func TestService_PropagatesProviderError(t *testing.T) {
	boom := errors.New("boom")
	s := NewService(&fakeSearcher{err: boom}, nil)

	if _, err := s.Search(context.Background(), "q"); !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
}

func TestService_NilCacheIsNoop(t *testing.T) {
	f := &fakeSearcher{articles: []Article{{Title: "t"}}}
	s := NewService(f, nil)

	for i := 0; i < 2; i++ {
		articles, err := s.Search(context.Background(), "q")
		if err != nil {
			t.Fatalf("Search error: %v", err)
		}
		if len(articles) != 1 {
			t.Fatalf("expected passthrough result")
		}
	}
	// Without a cache every call reaches the provider.
	if f.calls != 2 {
		t.Fatalf("expected 2 provider calls, got %d", f.calls)
	}
}
