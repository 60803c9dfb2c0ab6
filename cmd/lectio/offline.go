package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/lectio-app/lectio/internal/domain"
)

var offlineCmd = &cobra.Command{
	Use:   "offline",
	Short: "Manage chapters saved for offline reading",
}

func init() {
	offlineCmd.AddCommand(offlineListCmd)
	offlineCmd.AddCommand(offlineRemoveCmd)
	offlineCmd.AddCommand(offlineClearCmd)
}

var offlineListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached chapters for the current translation",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := current.content.ListOffline(cmd.Context(), translationID())
		if len(entries) == 0 {
			fmt.Println("No chapters saved offline.")
			return nil
		}

		chapterIDs := make([]string, 0, len(entries))
		for id := range entries {
			chapterIDs = append(chapterIDs, id)
		}
		sort.Strings(chapterIDs)

		for _, id := range chapterIDs {
			entry := entries[id]
			cachedAt := time.UnixMilli(entry.CachedAt).Format("2006-01-02 15:04")
			fmt.Printf("%-12s %-24s saved %s\n", id, entry.Reference, cachedAt)
		}
		return nil
	},
}

var offlineRemoveCmd = &cobra.Command{
	Use:   "remove <chapterID>...",
	Short: "Remove cached chapters",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, chapterID := range args {
			ref := domain.ChapterReference{
				TranslationID: translationID(),
				ChapterID:     chapterID,
			}
			current.content.RemoveOffline(cmd.Context(), ref)
			fmt.Printf("Removed %s\n", chapterID)
		}
		return nil
	},
}

var offlineClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached chapters across translations",
	RunE: func(cmd *cobra.Command, args []string) error {
		current.content.ClearOffline(cmd.Context())
		fmt.Println("All offline chapters cleared.")
		return nil
	},
}
