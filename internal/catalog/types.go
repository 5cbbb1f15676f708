// Package catalog holds the fixed knowledge base of categories and articles
// and exposes asynchronous read and query operations over it. The catalog is
// immutable after load; every operation hands out defensive copies so callers
// can never corrupt the stored data.
package catalog

import (
	"strings"
	"time"
)

// Category is a top-level subject grouping for articles.
type Category struct {
	ID          string
	Name        string
	Icon        string
	Description string
	Gradient    string
}

// BlockKind discriminates the content block variants.
type BlockKind string

const (
	BlockParagraph BlockKind = "paragraph"
	BlockQuote     BlockKind = "quote"
	BlockImage     BlockKind = "image"
)

// ContentBlock is one unit of an article body: a paragraph (Text), a quote
// (Text plus optional Author), or an image (Source plus optional Caption).
// Order within an article is significant and preserved.
type ContentBlock struct {
	Kind    BlockKind
	Text    string
	Author  string
	Source  string
	Caption string
}

// Article is a single content entry. Stored articles are immutable; a
// tone-rewritten view of the content belongs to the viewing session, never to
// the article itself. Related may name articles that no longer exist;
// resolution silently drops unknown ids.
type Article struct {
	ID         string
	CategoryID string
	Title      string
	Summary    string
	Thumbnail  string
	ColorTheme string
	Content    []ContentBlock
	Related    []string
	Views      int
	CreatedAt  time.Time
}

// SpokenText concatenates the text of paragraph and quote blocks in order,
// separated by blank lines. Image blocks contribute nothing. This is the
// exact text handed to narration and tone rewriting.
func SpokenText(blocks []ContentBlock) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b.Kind == BlockParagraph || b.Kind == BlockQuote {
			parts = append(parts, b.Text)
		}
	}
	return strings.Join(parts, "\n\n")
}

func cloneBlocks(blocks []ContentBlock) []ContentBlock {
	if blocks == nil {
		return nil
	}
	return append([]ContentBlock(nil), blocks...)
}

// CloneBlocks returns an independent copy of a block sequence.
func CloneBlocks(blocks []ContentBlock) []ContentBlock {
	return cloneBlocks(blocks)
}

func cloneArticle(a Article) Article {
	a.Content = cloneBlocks(a.Content)
	a.Related = append([]string(nil), a.Related...)
	return a
}
