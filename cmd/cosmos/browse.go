package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"cosmos/internal/audio"
	"cosmos/internal/catalog"
	"cosmos/internal/narration"
	"cosmos/internal/overlay"
	"cosmos/internal/tone"
)

func init() {
	articlesCmd.Flags().StringVar(&articlesCategory, "category", "", "filter by category id")
	searchCmd.Flags().BoolVar(&searchLive, "live", false, "read queries line by line from stdin, searching once input stabilizes")
	readCmd.Flags().StringVar(&readTone, "tone", "", "rewrite the article in this tone (e.g. poetic, scientific, mythic)")
	readCmd.Flags().BoolVar(&readNarrate, "narrate", false, "read the article aloud")
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the category catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cats, err := sys.repo.Categories(cmd.Context())
		if err != nil {
			return err
		}
		for _, c := range cats {
			fmt.Printf("%-12s %s — %s\n", c.ID, c.Name, c.Description)
		}
		return nil
	},
}

var articlesCategory string

var articlesCmd = &cobra.Command{
	Use:   "articles",
	Short: "List articles, optionally for one category",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		var (
			list []catalog.Article
			err  error
		)
		if articlesCategory != "" {
			list, err = sys.repo.ArticlesByCategory(ctx, articlesCategory)
		} else {
			list, err = sys.repo.Articles(ctx)
		}
		if err != nil {
			return err
		}
		for _, a := range list {
			fmt.Printf("%-24s [%s] %s\n", a.ID, a.CategoryID, a.Title)
		}
		return nil
	},
}

var searchLive bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search article titles and summaries",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if searchLive {
			return liveSearch()
		}
		if len(args) != 1 {
			return fmt.Errorf("a query argument is required unless --live is set")
		}
		results, err := sys.index.Search(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printResults(args[0], results)
		return nil
	},
}

func printResults(query string, results []catalog.Article) {
	if len(results) == 0 {
		fmt.Printf("No constellations found for %q.\n", query)
		return
	}
	for _, a := range results {
		fmt.Printf("%-24s %s\n", a.ID, emphasize(a.Title, query))
		fmt.Printf("%-24s %s\n", "", emphasize(a.Summary, query))
	}
}

// liveSearch feeds stdin lines through the debounce coordinator, so queries
// fire only once the input has stabilized, the way the search overlay drives
// the index.
func liveSearch() error {
	c := overlay.New(sys.index, sys.cfg.SearchDebounce.Std(), sys.log)
	defer c.Close()
	c.OnResults(func(query string, results []catalog.Article) {
		printResults(query, results)
	})

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		c.SetQuery(scanner.Text())
	}
	// Let a trailing query settle and resolve before tearing down.
	time.Sleep(sys.cfg.SearchDebounce.Std() + sys.cfg.CatalogLatency.Std() + 100*time.Millisecond)
	return scanner.Err()
}

// emphasize renders highlight segments with terminal inverse video.
func emphasize(text, query string) string {
	var b strings.Builder
	for _, seg := range overlay.Highlight(text, query) {
		if seg.Match {
			b.WriteString("\x1b[7m")
			b.WriteString(seg.Text)
			b.WriteString("\x1b[0m")
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

var (
	readTone    string
	readNarrate bool
)

var readCmd = &cobra.Command{
	Use:   "read <article-id>",
	Short: "Read one article, with optional tone rewrite and narration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		article, ok, err := sys.repo.ArticleByID(ctx, args[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("article %q not found", args[0])
		}

		// Category and related articles resolve concurrently, the way the
		// article page issues them.
		var (
			category *catalog.Category
			related  []catalog.Article
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			c, ok, err := sys.repo.CategoryByID(gctx, article.CategoryID)
			if err != nil {
				return err
			}
			if ok {
				category = c
			}
			return nil
		})
		g.Go(func() error {
			var err error
			related, err = sys.repo.ArticlesByIDs(gctx, article.Related)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		if category != nil {
			fmt.Printf("%s / %s\n\n", category.Name, article.Title)
		} else {
			fmt.Printf("%s\n\n", article.Title)
		}
		fmt.Printf("%s\n\n", article.Summary)

		view := tone.NewSession(sys.ai, article.Content, sys.log)
		if readTone != "" {
			if err := view.Rewrite(ctx, readTone); err != nil {
				return err
			}
		}
		printBlocks(view.Blocks())

		if len(related) > 0 {
			fmt.Println("\nRelated:")
			for _, r := range related {
				fmt.Printf("  %-24s %s\n", r.ID, r.Title)
			}
		}

		if readNarrate {
			return narrate(ctx, view.Blocks())
		}
		return nil
	},
}

func printBlocks(blocks []catalog.ContentBlock) {
	for _, b := range blocks {
		switch b.Kind {
		case catalog.BlockParagraph:
			fmt.Println(b.Text)
		case catalog.BlockQuote:
			fmt.Printf("  “%s”", b.Text)
			if b.Author != "" {
				fmt.Printf(" — %s", b.Author)
			}
			fmt.Println()
		case catalog.BlockImage:
			if b.Caption != "" {
				fmt.Printf("  [image: %s]\n", b.Caption)
			}
		}
		fmt.Println()
	}
}

// narrate plays the article aloud and blocks until end-of-audio or Ctrl-C.
func narrate(ctx context.Context, blocks []catalog.ContentBlock) error {
	ctrl := narration.New(sys.ai, audio.RealtimePlayer{}, sys.cfg.Voice, sys.log)

	fmt.Println("Preparing narration...")
	ctrl.Narrate(ctx, blocks)
	if ctrl.State() != narration.StatePlaying {
		fmt.Println("Narration unavailable.")
		return nil
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	fmt.Println("Playing. Press Ctrl-C to stop.")
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for ctrl.State() == narration.StatePlaying {
		select {
		case <-interrupt:
			ctrl.Stop()
			return nil
		case <-ctx.Done():
			ctrl.Stop()
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
