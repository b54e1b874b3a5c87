package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/views"
)

var (
	limitFlag  int
	localeFlag string
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List blog posts from the content store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := folio.ConfigFromEnv()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if cfg.Sanity.ProjectID == "" {
			return fmt.Errorf("SANITY_PROJECT_ID is not set")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		client := content.NewClient(cfg.Sanity)
		posts, err := client.Posts(ctx, content.PostQuery{Limit: limitFlag, Locale: localeFlag})
		if err != nil {
			return fmt.Errorf("fetch: %w", err)
		}

		if len(posts) == 0 {
			fmt.Println("No blog posts found.")
			return nil
		}

		for i, p := range posts {
			date := views.FormatDate(p.PublishedAt, "en")
			if date == "" {
				date = "No date"
			}
			fmt.Printf("%d. %s (%s)\n", i+1, p.Title, date)
			fmt.Printf("   /blog/%s by %s\n", p.Slug, views.AuthorName(p, "Unknown Author"))
			if p.Excerpt != "" {
				excerpt := []rune(p.Excerpt)
				if len(excerpt) > 120 {
					excerpt = append(excerpt[:117], []rune("...")...)
				}
				fmt.Printf("   %s\n", string(excerpt))
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	postsCmd.Flags().IntVar(&limitFlag, "limit", 0, "maximum number of posts (0 for all)")
	postsCmd.Flags().StringVar(&localeFlag, "locale", "", "only posts in this language")
	rootCmd.AddCommand(postsCmd)
}
