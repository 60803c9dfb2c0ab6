package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lectio-app/lectio/internal/adapter"
)

var (
	setAPIKey      string
	setTranslation string
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)

	configSetCmd.Flags().StringVar(&setAPIKey, "key", "", "content API key")
	configSetCmd.Flags().StringVar(&setTranslation, "translation", "", "default translation ID")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := current.cfg

		key := "(not set)"
		if cfg.API.Key != "" {
			key = "(set)"
		}

		fmt.Printf("api.url          %s\n", cfg.API.URL)
		fmt.Printf("api.key          %s\n", key)
		fmt.Printf("api.translation  %s\n", cfg.API.Translation)
		fmt.Printf("cache.dir        %s\n", cfg.Cache.Dir)
		fmt.Printf("probe.url        %s\n", cfg.Probe.URL)
		fmt.Printf("probe.timeout    %s\n", cfg.Probe.Timeout)
		fmt.Printf("logging.file     %s\n", cfg.Logging.File)
		fmt.Printf("logging.level    %s\n", cfg.Logging.Level)

		if !cfg.IsConfigured() {
			fmt.Println("\nNo API key configured; set one with: lectio config set --key <key>")
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update configuration values and save them",
	RunE: func(cmd *cobra.Command, args []string) error {
		if setAPIKey == "" && setTranslation == "" {
			return fmt.Errorf("nothing to set; use --key and/or --translation")
		}

		cfg := current.cfg
		if setAPIKey != "" {
			cfg.API.Key = setAPIKey
		}
		if setTranslation != "" {
			cfg.API.Translation = setTranslation
		}

		if err := adapter.SaveConfig(cfg); err != nil {
			return err
		}
		fmt.Println("Configuration saved.")
		return nil
	},
}
