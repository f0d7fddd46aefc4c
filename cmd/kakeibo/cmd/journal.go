package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/kakeibo-client/pkg/accounts"
	"github.com/shunichi-ikebuchi/kakeibo-client/pkg/config"
	"github.com/shunichi-ikebuchi/kakeibo-client/pkg/db"
	"github.com/shunichi-ikebuchi/kakeibo-client/pkg/kakeibo"
)

var (
	journalDate        string
	journalDescription string
	journalSource      string
	journalDraftID     int64
	debitFlags         []string
	creditFlags        []string

	listDateFrom string
	listDateTo   string
	listPage     int
	listPerPage  int
)

// journalCmd represents the journal command group.
var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Manage journal entries",
}

var journalCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a journal entry",
	Long: `Create a journal entry from debit and credit lines.

Lines are given as NAME:AMOUNT or NAME:AMOUNT:DESCRIPTION, where NAME is
either an account name from the accounts mapping file or a raw account ID.

Example:
  kakeibo journal create --date 2026-02-15 --description 食材購入 \
    --debit 食費:3000 --credit 現金:3000
  kakeibo journal create --date 2026-02-19 --description レシート --draft 10 \
    --debit 12:3000 --credit 1:3000`,
	Run: runJournalCreate,
}

var journalGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a journal entry",
	Args:  cobra.ExactArgs(1),
	Run:   runJournalGet,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries",
	Run:   runJournalList,
}

var journalDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a journal entry",
	Args:  cobra.ExactArgs(1),
	Run:   runJournalDelete,
}

func init() {
	journalCreateCmd.Flags().StringVar(&journalDate, "date", "", "date (YYYY-MM-DD) (required)")
	journalCreateCmd.Flags().StringVar(&journalDescription, "description", "", "journal description (required)")
	journalCreateCmd.Flags().StringVar(&journalSource, "source", "", `source tag (default "api")`)
	journalCreateCmd.Flags().Int64Var(&journalDraftID, "draft", 0, "draft ID to confirm")
	journalCreateCmd.Flags().StringArrayVar(&debitFlags, "debit", nil, "debit line NAME:AMOUNT[:DESCRIPTION] (repeatable)")
	journalCreateCmd.Flags().StringArrayVar(&creditFlags, "credit", nil, "credit line NAME:AMOUNT[:DESCRIPTION] (repeatable)")
	journalCreateCmd.MarkFlagRequired("date")
	journalCreateCmd.MarkFlagRequired("description")

	journalListCmd.Flags().StringVar(&listDateFrom, "from", "", "start date (YYYY-MM-DD)")
	journalListCmd.Flags().StringVar(&listDateTo, "to", "", "end date (YYYY-MM-DD)")
	journalListCmd.Flags().IntVar(&listPage, "page", 0, "page number")
	journalListCmd.Flags().IntVar(&listPerPage, "per-page", 0, "entries per page")

	journalCmd.AddCommand(journalCreateCmd)
	journalCmd.AddCommand(journalGetCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalDeleteCmd)
}

// loadMapper loads the account mapping, or an empty one when no file is
// configured (raw account IDs still resolve).
func loadMapper(cfg *config.Config) (*accounts.Mapper, error) {
	if cfg.History.AccountsFile == "" {
		return accounts.NewMapperFromYAML([]byte("accounts: []"))
	}
	return accounts.NewMapper(cfg.History.AccountsFile)
}

// parseLineFlag parses a NAME:AMOUNT[:DESCRIPTION] flag value.
func parseLineFlag(mapper *accounts.Mapper, value string, debit bool) (kakeibo.JournalLine, error) {
	parts := strings.SplitN(value, ":", 3)
	if len(parts) < 2 {
		return kakeibo.JournalLine{}, fmt.Errorf("invalid line %q: want NAME:AMOUNT[:DESCRIPTION]", value)
	}

	accountID, err := mapper.Resolve(parts[0])
	if err != nil {
		return kakeibo.JournalLine{}, err
	}
	amount, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return kakeibo.JournalLine{}, fmt.Errorf("invalid amount in line %q: %w", value, err)
	}

	line := kakeibo.JournalLine{AccountID: accountID}
	if len(parts) == 3 {
		line.Description = parts[2]
	}
	if debit {
		line.Debit = amount
	} else {
		line.Credit = amount
	}
	return line, nil
}

func runJournalCreate(cmd *cobra.Command, args []string) {
	client, cfg, err := loadClient()
	exitOnError(err, "failed to initialize client")
	defer client.Close()

	mapper, err := loadMapper(cfg)
	exitOnError(err, "failed to load account mapping")

	var lines []kakeibo.JournalLine
	for _, value := range debitFlags {
		line, err := parseLineFlag(mapper, value, true)
		exitOnError(err, "invalid --debit flag")
		lines = append(lines, line)
	}
	for _, value := range creditFlags {
		line, err := parseLineFlag(mapper, value, false)
		exitOnError(err, "invalid --credit flag")
		lines = append(lines, line)
	}

	req := kakeibo.JournalCreateRequest{
		Date:        kakeibo.DateString(journalDate),
		Description: journalDescription,
		Lines:       lines,
		Source:      journalSource,
	}
	if journalDraftID != 0 {
		req.DraftID = &journalDraftID
	}

	slog.Debug("creating journal", "date", journalDate, "lines", len(lines))
	result, err := client.CreateJournal(req)
	exitOnError(err, "failed to create journal")

	fmt.Printf("Created journal %d (entry number %d)\n", result.ID, result.EntryNumber)

	if journalDraftID != 0 {
		recordConfirmation(cfg, journalDraftID, result)
	}
}

// recordConfirmation remembers a draft promotion in the local history.
// Failures are logged, not fatal; the journal already exists server-side.
func recordConfirmation(cfg *config.Config, draftID int64, result *kakeibo.JournalCreateResponse) {
	conn, err := db.Open(cfg.History.DBPath)
	if err != nil {
		slog.Warn("failed to open history database", "error", err)
		return
	}
	defer conn.Close()

	err = db.NewHistory(conn).RecordConfirmation(db.ConfirmationRecord{
		DraftID:     draftID,
		JournalID:   result.ID,
		EntryNumber: result.EntryNumber,
	})
	if err != nil {
		slog.Warn("failed to record confirmation", "error", err)
	}
}

func runJournalGet(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	exitOnError(err, "invalid journal ID")

	client, _, err := loadClient()
	exitOnError(err, "failed to initialize client")
	defer client.Close()

	journal, err := client.GetJournal(id)
	exitOnError(err, "failed to get journal")

	fmt.Printf("Journal %d (entry number %d)\n", journal.ID, journal.EntryNumber)
	fmt.Printf("  Date:        %s\n", journal.Date)
	fmt.Printf("  Description: %s\n", journal.Description)
	fmt.Printf("  Source:      %s\n", journal.Source)
	for _, line := range journal.Lines {
		side := "debit "
		amount := line.Debit
		if line.Credit != 0 {
			side = "credit"
			amount = line.Credit
		}
		fmt.Printf("  %s  account %d  %d", side, line.AccountID, amount)
		if line.Description != "" {
			fmt.Printf("  (%s)", line.Description)
		}
		fmt.Println()
	}
}

func runJournalList(cmd *cobra.Command, args []string) {
	client, _, err := loadClient()
	exitOnError(err, "failed to initialize client")
	defer client.Close()

	result, err := client.ListJournals(kakeibo.ListJournalsOptions{
		DateFrom: listDateFrom,
		DateTo:   listDateTo,
		Page:     listPage,
		PerPage:  listPerPage,
	})
	exitOnError(err, "failed to list journals")

	fmt.Printf("Journals (page %d, %d total)\n", result.Page, result.Total)
	for _, journal := range result.Journals {
		fmt.Printf("  %6d  %s  #%d  %s\n", journal.ID, journal.Date, journal.EntryNumber, journal.Description)
	}
}

func runJournalDelete(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	exitOnError(err, "invalid journal ID")

	client, _, err := loadClient()
	exitOnError(err, "failed to initialize client")
	defer client.Close()

	exitOnError(client.DeleteJournal(id), "failed to delete journal")
	fmt.Printf("Deleted journal %d\n", id)
}
