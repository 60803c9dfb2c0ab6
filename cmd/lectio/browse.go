package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lectio-app/lectio/internal/verse"
)

var translationsCmd = &cobra.Command{
	Use:   "translations",
	Short: "List available translations",
	RunE: func(cmd *cobra.Command, args []string) error {
		translations, err := current.content.ListTranslations(cmd.Context())
		if err != nil {
			return err
		}
		for _, t := range translations {
			fmt.Printf("%-24s %-8s %s (%s)\n", t.ID, t.Abbreviation, t.Name, t.Language)
		}
		return nil
	},
}

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "List books of a translation",
	RunE: func(cmd *cobra.Command, args []string) error {
		books, err := current.content.ListBooks(cmd.Context(), translationID())
		if err != nil {
			return err
		}
		for _, b := range books {
			fmt.Printf("%-8s %s\n", b.ID, b.Name)
		}
		return nil
	},
}

var chaptersCmd = &cobra.Command{
	Use:   "chapters <bookID>",
	Short: "List chapters of a book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chapters, err := current.content.ListChapters(cmd.Context(), translationID(), args[0])
		if err != nil {
			return err
		}
		for _, c := range chapters {
			fmt.Printf("%-12s %s\n", c.ID, c.Reference)
		}
		return nil
	},
}

var versesCmd = &cobra.Command{
	Use:   "verses <chapterID>",
	Short: "List verses of a chapter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verses, err := current.content.ListVerses(cmd.Context(), translationID(), args[0])
		if err != nil {
			return err
		}
		for _, v := range verses {
			fmt.Printf("%-12s %s\n", v.ID, v.Reference)
		}
		return nil
	},
}

var verseCmd = &cobra.Command{
	Use:   "verse <verseID>",
	Short: "Show a single verse",
	Long: `Verse fetches one verse by its identifier (e.g. GEN.1.1) and
prints it with markup stripped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		passage, err := current.content.GetVerse(cmd.Context(), translationID(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s\n%s\n", passage.Reference, verse.StripTags(passage.Content))
		return nil
	},
}
