package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lectio-app/lectio/internal/service"
	"github.com/lectio-app/lectio/internal/verse"
)

var (
	searchLimit  int
	searchOffset int
)

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 25, "maximum results per page")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "result offset for pagination")
}

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Full-text search within a translation",
	Long: `Search runs a full-text query against the content API and prints
matching verses with the chapter each one deep-links into.

Example:
  lectio search beginning created
  lectio search "still small voice" --limit 10`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	result, err := current.search.Search(cmd.Context(), translationID(), query, searchLimit, searchOffset)
	if err != nil {
		return err
	}

	if result.Total == 0 {
		fmt.Println("No matches.")
		return nil
	}

	for _, hit := range result.Hits {
		ref, number := service.ResolveHit(hit)
		location := ref.ChapterID
		if number > 0 {
			location = fmt.Sprintf("%s --verse %d", ref.ChapterID, number)
		}
		fmt.Printf("%s\n  %s\n  read with: lectio read %s\n", hit.Reference, verse.StripTags(hit.Content), location)
	}

	shown := result.Offset + len(result.Hits)
	if shown < result.Total {
		fmt.Printf("\nShowing %d of %d matches; continue with --offset %d\n", shown, result.Total, shown)
	}
	return nil
}
