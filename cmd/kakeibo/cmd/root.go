// Package cmd provides CLI commands for the kakeibo client.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/kakeibo-client/pkg/config"
	"github.com/shunichi-ikebuchi/kakeibo-client/pkg/kakeibo"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "kakeibo",
	Short: "Command line client for the iikanji kakeibo API",
	Long: `kakeibo is a CLI for the iikanji kakeibo bookkeeping service.

It supports:
- Creating, listing and deleting journal entries
- Uploading receipt images for AI analysis
- Inspecting and confirming AI drafts
- Skipping duplicate uploads with a local SQLite history

Example:
  kakeibo journal create --date 2026-02-15 --description 食材購入 --debit 食費:3000 --credit 現金:3000
  kakeibo analyze receipt.jpg --comment スーパー
  kakeibo draft list`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Setup logging
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(statsCmd)
}

// Helper function to get config file path.
func getConfigFile() string {
	if cfgFile != "" {
		return cfgFile
	}
	return "" // Will use default .env loading
}

// loadClient loads configuration and builds an API client from it.
func loadClient() (*kakeibo.Client, *config.Config, error) {
	cfg, err := config.Load(getConfigFile())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate("apiUrl", "apiKey"); err != nil {
		return nil, nil, err
	}

	client := kakeibo.NewClient(kakeibo.ClientConfig{
		BaseURL: cfg.Kakeibo.APIURL,
		APIKey:  cfg.Kakeibo.APIKey,
		Timeout: cfg.Kakeibo.Timeout,
	})
	return client, cfg, nil
}

// Helper function to handle errors and exit.
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
