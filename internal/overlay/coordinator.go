// Package overlay coordinates the search box: it debounces raw input,
// queries the search index only once the value has stabilized, and marks
// query occurrences in result text for visual emphasis.
package overlay

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"cosmos/internal/catalog"
)

// DefaultDelay is how long input must stay unchanged before a query fires.
const DefaultDelay = 300 * time.Millisecond

// Searcher is the slice of the search index the coordinator needs.
type Searcher interface {
	Search(ctx context.Context, query string) ([]catalog.Article, error)
}

// Coordinator debounces query input. The debounce timer is the single
// cancellation point: every keystroke stops the pending timer and arms a new
// one, so only the value that survives the full delay reaches the index.
type Coordinator struct {
	index     Searcher
	delay     time.Duration
	log       *zap.Logger
	ctx       context.Context
	ctxCancel context.CancelFunc

	mu        sync.Mutex
	timer     *time.Timer
	seq       uint64 // bumped per keystroke; stale timers and results check it
	query     string
	loading   bool
	results   []catalog.Article
	onResults func(query string, results []catalog.Article)
}

// New builds a coordinator over the given index. A non-positive delay falls
// back to DefaultDelay.
func New(index Searcher, delay time.Duration, log *zap.Logger) *Coordinator {
	if delay <= 0 {
		delay = DefaultDelay
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		index:     index,
		delay:     delay,
		log:       log,
		ctx:       ctx,
		ctxCancel: cancel,
	}
}

// OnResults registers a callback invoked after each completed query, outside
// the coordinator's lock. The presentation layer renders from it.
func (c *Coordinator) OnResults(fn func(query string, results []catalog.Article)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onResults = fn
}

// SetQuery feeds one keystroke's worth of input, resetting the debounce
// timer. Clearing the input cancels the pending timer, clears prior results,
// and leaves the loading flag unset.
func (c *Coordinator) SetQuery(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = q
	c.seq++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if strings.TrimSpace(q) == "" {
		c.loading = false
		c.results = nil
		return
	}
	seq := c.seq
	c.timer = time.AfterFunc(c.delay, func() { c.run(seq, q) })
}

func (c *Coordinator) run(seq uint64, q string) {
	c.mu.Lock()
	if seq != c.seq {
		c.mu.Unlock()
		return
	}
	c.loading = true
	c.mu.Unlock()

	results, err := c.index.Search(c.ctx, q)

	c.mu.Lock()
	if seq != c.seq {
		// A newer keystroke superseded this query while it was in flight.
		c.mu.Unlock()
		return
	}
	c.loading = false
	if err != nil {
		c.log.Warn("search failed", zap.String("query", q), zap.Error(err))
		results = nil
	}
	c.results = results
	fn := c.onResults
	c.mu.Unlock()

	if fn != nil {
		fn(q, results)
	}
}

// Query returns the raw input value.
func (c *Coordinator) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Loading reports whether a query is currently in flight. It is false before
// any query has ever been issued and immediately after the input is cleared.
func (c *Coordinator) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Results returns the results of the last completed query.
func (c *Coordinator) Results() []catalog.Article {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]catalog.Article(nil), c.results...)
}

// Close cancels any pending timer and in-flight query.
func (c *Coordinator) Close() {
	c.mu.Lock()
	c.seq++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
	c.ctxCancel()
}
