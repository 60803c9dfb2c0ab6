// Package main provides the lectio CLI, an offline-first scripture reader.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lectio-app/lectio/internal/adapter"
	"github.com/lectio-app/lectio/internal/domain"
	"github.com/lectio-app/lectio/internal/scripture"
	"github.com/lectio-app/lectio/internal/service"
	"github.com/lectio-app/lectio/internal/storage"
	"github.com/lectio-app/lectio/internal/store"
)

// Version is set at build time via -ldflags
var Version = "dev"

// app holds the wired services shared by all commands.
type app struct {
	cfg     *adapter.Config
	logger  *slog.Logger
	kv      domain.KeyValue
	content *service.ContentService
	search  *service.SearchService
}

var (
	current *app

	// translationFlag overrides the configured default translation
	translationFlag string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lectio",
	Short: "Lectio is an offline-first scripture reader",
	Long: `Lectio reads scripture from a remote content API, parses chapter
markup into addressable verses, and keeps previously viewed chapters in a
local cache so they stay readable offline.`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeApp()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&translationFlag, "translation", "", "translation ID (default from config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(translationsCmd)
	rootCmd.AddCommand(booksCmd)
	rootCmd.AddCommand(chaptersCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(versesCmd)
	rootCmd.AddCommand(verseCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(preloadCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(offlineCmd)
}

func initApp(cmd *cobra.Command, args []string) error {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to a silent logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting lectio", "version", Version)

	var kv domain.KeyValue
	if cfg.Cache.Dir == "" {
		kv = storage.NewMemoryKV()
	} else {
		boltKV, err := storage.NewBoltKV(cfg.Cache.Dir, cfg.API.URL)
		if err != nil {
			logger.Warn("failed to open cache database, running without persistence", "error", err)
			kv = storage.NewMemoryKV()
		} else {
			kv = boltKV
		}
	}

	client := scripture.NewClient(cfg.API.URL, cfg.API.Key, logger)
	offlineStore := store.NewOfflineStore(kv, logger)
	probe := adapter.NewHTTPProbe(cfg.Probe.URL, cfg.Probe.Timeout, logger)

	current = &app{
		cfg:     cfg,
		logger:  logger,
		kv:      kv,
		content: service.NewContentService(client, offlineStore, probe, logger),
		search:  service.NewSearchService(client, logger),
	}
	return nil
}

func closeApp() error {
	if current == nil {
		return nil
	}
	return current.kv.Close()
}

// translationID resolves the translation for a command invocation.
func translationID() string {
	if translationFlag != "" {
		return translationFlag
	}
	return current.cfg.API.Translation
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lectio %s\n", Version)
	},
}
