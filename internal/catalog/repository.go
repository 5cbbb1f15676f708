package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidArgument reports malformed input to a repository operation, such
// as a blank identifier. An unknown id is never an error; absence is reported
// through the bool result instead.
var ErrInvalidArgument = errors.New("catalog: invalid argument")

// DefaultLatency is the simulated network round-trip applied to every
// repository operation, matching the remote service the catalog stands in for.
const DefaultLatency = 500 * time.Millisecond

// Repository serves the fixed catalog from behind a simulated network
// boundary. Operations wait the configured latency (honoring context
// cancellation) and return defensive copies.
type Repository struct {
	latency    time.Duration
	categories []Category
	articles   []Article
}

// Option configures a Repository.
type Option func(*Repository)

// WithLatency overrides the simulated latency. Tests pass zero.
func WithLatency(d time.Duration) Option {
	return func(r *Repository) { r.latency = d }
}

// WithCatalog replaces the seed data. The slices are not copied; callers own
// them until the repository is constructed.
func WithCatalog(categories []Category, articles []Article) Option {
	return func(r *Repository) {
		r.categories = categories
		r.articles = articles
	}
}

// NewRepository builds a repository over the embedded seed catalog.
func NewRepository(opts ...Option) *Repository {
	r := &Repository{
		latency:    DefaultLatency,
		categories: seedCategories,
		articles:   seedArticles,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repository) wait(ctx context.Context) error {
	if r.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(r.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func validID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: blank id", ErrInvalidArgument)
	}
	return nil
}

// Categories returns the full category catalog in stable order.
func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return append([]Category(nil), r.categories...), nil
}

// CategoryByID looks up one category. The bool reports presence.
func (r *Repository) CategoryByID(ctx context.Context, id string) (*Category, bool, error) {
	if err := validID(id); err != nil {
		return nil, false, err
	}
	if err := r.wait(ctx); err != nil {
		return nil, false, err
	}
	for _, c := range r.categories {
		if c.ID == id {
			out := c
			return &out, true, nil
		}
	}
	return nil, false, nil
}

// Articles returns every article in catalog order.
func (r *Repository) Articles(ctx context.Context) ([]Article, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]Article, len(r.articles))
	for i, a := range r.articles {
		out[i] = cloneArticle(a)
	}
	return out, nil
}

// ArticleByID looks up one article. The bool reports presence.
func (r *Repository) ArticleByID(ctx context.Context, id string) (*Article, bool, error) {
	if err := validID(id); err != nil {
		return nil, false, err
	}
	if err := r.wait(ctx); err != nil {
		return nil, false, err
	}
	for _, a := range r.articles {
		if a.ID == id {
			out := cloneArticle(a)
			return &out, true, nil
		}
	}
	return nil, false, nil
}

// ArticlesByIDs returns the subset of existing articles matching ids, in
// catalog order rather than input order. Unknown ids are silently omitted;
// related-article lists may be stale and this is how they are resolved.
func (r *Repository) ArticlesByIDs(ctx context.Context, ids []string) ([]Article, error) {
	for _, id := range ids {
		if err := validID(id); err != nil {
			return nil, err
		}
	}
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []Article
	for _, a := range r.articles {
		if _, ok := want[a.ID]; ok {
			out = append(out, cloneArticle(a))
		}
	}
	return out, nil
}

// ArticlesByCategory returns the articles belonging to one category, in
// catalog order. An unknown category yields an empty result.
func (r *Repository) ArticlesByCategory(ctx context.Context, categoryID string) ([]Article, error) {
	if err := validID(categoryID); err != nil {
		return nil, err
	}
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	var out []Article
	for _, a := range r.articles {
		if a.CategoryID == categoryID {
			out = append(out, cloneArticle(a))
		}
	}
	return out, nil
}
