package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cosmos/internal/catalog"
	"cosmos/internal/guide"
)

var chatArticle string

func init() {
	chatCmd.Flags().StringVar(&chatArticle, "article", "", "contextualize the guide with this article id")
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to Cosmic, the library's guide",
	Long: `Opens a conversation with the AI guide. With --article, the guide is
contextualized by that article and greets you with it; otherwise it recalls
the last article you visited. Type "exit" to close the conversation — the
transcript does not survive.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var current *catalog.Article
		if chatArticle != "" {
			a, ok, err := sys.repo.ArticleByID(ctx, chatArticle)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("article %q not found", chatArticle)
			}
			current = a
		}

		g := guide.New(sys.ai, sys.prefs, sys.log)
		session := g.Open(ctx, current)
		defer session.Close()

		fmt.Printf("cosmic> %s\n\n", session.Messages()[0].Text)

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("you> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "exit" || line == "quit" {
				return nil
			}

			stream, err := session.Send(ctx, line, current)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}

			fmt.Print("cosmic> ")
			var got strings.Builder
			for chunk := range stream {
				got.WriteString(chunk)
				fmt.Print(chunk)
			}
			// A failed turn ends with the apology on the transcript, not
			// on the increment channel.
			msgs := session.Messages()
			if last := msgs[len(msgs)-1]; last.Role == guide.RoleAssistant && last.Text != got.String() {
				if got.Len() > 0 {
					fmt.Println()
				}
				fmt.Print(last.Text)
			}
			fmt.Print("\n\n")
		}
	},
}
