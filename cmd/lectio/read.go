package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lectio-app/lectio/internal/domain"
	"github.com/lectio-app/lectio/internal/verse"
)

var highlightVerse int

func init() {
	readCmd.Flags().IntVar(&highlightVerse, "verse", 0, "verse number to highlight")
}

var readCmd = &cobra.Command{
	Use:   "read <chapterID>",
	Short: "Read a chapter",
	Long: `Read fetches a chapter body, online when possible and from the
offline cache otherwise, and prints its verses.

Example:
  lectio read GEN.1
  lectio read JHN.3 --verse 16`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func runRead(cmd *cobra.Command, args []string) error {
	ref := domain.ChapterReference{
		TranslationID: translationID(),
		ChapterID:     args[0],
	}

	ch, err := current.content.FetchChapter(cmd.Context(), ref)
	if err != nil {
		return err
	}

	parsed := verse.ParseChapter(*ch)

	fmt.Printf("%s (%s)\n\n", parsed.Reference, parsed.TranslationID)
	if len(parsed.Verses) == 0 {
		fmt.Println("No content available.")
		return nil
	}

	for _, v := range parsed.Verses {
		marker := " "
		if highlightVerse > 0 && v.Number == highlightVerse {
			marker = ">"
		}
		fmt.Printf("%s %3d  %s\n", marker, v.Number, v.Text)
	}

	if parsed.Copyright != "" {
		fmt.Printf("\n%s\n", parsed.Copyright)
	}
	return nil
}

var preloadCmd = &cobra.Command{
	Use:   "preload <chapterID>...",
	Short: "Download chapters for offline reading",
	Long: `Preload fetches chapters and pins them in the offline cache,
regardless of whether they were viewed before. Preloading requires
connectivity.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPreload,
}

func runPreload(cmd *cobra.Command, args []string) error {
	for _, chapterID := range args {
		ref := domain.ChapterReference{
			TranslationID: translationID(),
			ChapterID:     chapterID,
		}

		ch, err := current.content.Preload(cmd.Context(), ref)
		if err != nil {
			return fmt.Errorf("failed to preload %s: %w", chapterID, err)
		}
		fmt.Printf("Saved %s for offline reading\n", ch.Reference)
	}
	return nil
}
