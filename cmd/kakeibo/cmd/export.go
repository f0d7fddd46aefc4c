package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/kakeibo-client/pkg/kakeibo"
	"github.com/shunichi-ikebuchi/kakeibo-client/pkg/ledger"
)

var (
	exportMonth string
	exportOut   string
)

var journalExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export journal entries to Beancount files",
	Long: `Export confirmed journal entries into monthly Beancount files under
the ledger root (KAKEIBO_LEDGER_ROOT, or --out). Entries already present
in the target file are skipped, so the command is safe to re-run.

Example:
  kakeibo journal export --month 2026-08 --out ~/accounting/ledger`,
	Run: runJournalExport,
}

func init() {
	journalExportCmd.Flags().StringVar(&exportMonth, "month", "", "month to export (YYYY-MM) (required)")
	journalExportCmd.Flags().StringVar(&exportOut, "out", "", "ledger root directory (overrides config)")
	journalExportCmd.MarkFlagRequired("month")

	journalCmd.AddCommand(journalExportCmd)
}

func runJournalExport(cmd *cobra.Command, args []string) {
	client, cfg, err := loadClient()
	exitOnError(err, "failed to initialize client")
	defer client.Close()

	mapper, err := loadMapper(cfg)
	exitOnError(err, "failed to load account mapping")

	root := exportOut
	if root == "" {
		root = cfg.Ledger.Root
	}

	exporter := ledger.NewExporter(
		ledger.NewConverter(mapper, cfg.Ledger.Currency),
		ledger.NewFileSystemRepository(ledger.NewPathResolver(root)),
	)

	if len(exportMonth) != 7 {
		exitOnError(fmt.Errorf("invalid month %q: want YYYY-MM", exportMonth), "invalid --month flag")
	}

	var written, skipped int
	for page := 1; ; page++ {
		result, err := client.ListJournals(kakeibo.ListJournalsOptions{
			DateFrom: exportMonth + "-01",
			DateTo:   exportMonth + "-31",
			Page:     page,
			PerPage:  100,
		})
		exitOnError(err, "failed to list journals")

		for _, journal := range result.Journals {
			ok, err := exporter.Export(journal)
			exitOnError(err, fmt.Sprintf("failed to export journal %d", journal.ID))
			if ok {
				written++
			} else {
				skipped++
			}
		}

		if len(result.Journals) == 0 || written+skipped >= result.Total {
			break
		}
	}

	slog.Debug("export finished", "month", exportMonth, "written", written, "skipped", skipped)
	fmt.Printf("Exported %d entries to %s (%d already present)\n", written, root, skipped)
}
