package catalog

import (
	"context"
	"strings"
)

// Index answers free-text queries over the repository. It is purely derived:
// every query reads through the repository, so the index carries no state of
// its own.
type Index struct {
	repo *Repository
}

// NewIndex builds a search index over repo.
func NewIndex(repo *Repository) *Index {
	return &Index{repo: repo}
}

// Search matches query case-insensitively as a substring of each article's
// title or summary. Hits come back in catalog order; there is no scoring,
// tokenization, or stemming. A blank query resolves to an empty result
// immediately, without touching the repository.
func (ix *Index) Search(ctx context.Context, query string) ([]Article, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	articles, err := ix.repo.Articles(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	var out []Article
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.Title), q) || strings.Contains(strings.ToLower(a.Summary), q) {
			out = append(out, a)
		}
	}
	return out, nil
}
