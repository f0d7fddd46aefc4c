package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/kakeibo-client/pkg/config"
	"github.com/shunichi-ikebuchi/kakeibo-client/pkg/db"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display local upload history statistics",
	Long: `Display statistics about the local upload history.

Shows:
- Total number of uploaded receipt images
- Total number of confirmed drafts
- Last upload timestamp

Example:
  kakeibo stats`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	slog.Debug("opening history database", "path", cfg.History.DBPath)
	conn, err := db.Open(cfg.History.DBPath)
	exitOnError(err, "failed to open history database")
	defer conn.Close()

	stats, err := db.NewHistory(conn).GetStats()
	exitOnError(err, "failed to get statistics")

	fmt.Println("\n=== Upload History ===")
	fmt.Printf("Total uploads:       %d\n", stats.TotalUploads)
	fmt.Printf("Total confirmations: %d\n", stats.TotalConfirmations)

	if stats.LastUpload.Valid {
		fmt.Printf("Last upload:         %s\n", stats.LastUpload.String)
	} else {
		fmt.Printf("Last upload:         (never)\n")
	}

	fmt.Println()
}
