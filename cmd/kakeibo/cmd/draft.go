package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/kakeibo-client/pkg/kakeibo"
)

var (
	draftStatus  string
	draftPage    int
	draftPerPage int
)

// draftCmd represents the draft command group.
var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Manage AI analysis drafts",
}

var draftListCmd = &cobra.Command{
	Use:   "list",
	Short: "List AI drafts",
	Run:   runDraftList,
}

var draftGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show an AI draft with its suggestions",
	Run:   runDraftGet,
	Args:  cobra.ExactArgs(1),
}

var draftDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an AI draft",
	Run:   runDraftDelete,
	Args:  cobra.ExactArgs(1),
}

func init() {
	draftListCmd.Flags().StringVar(&draftStatus, "status", "", `draft status filter (default "analyzed"; use "all" for every draft)`)
	draftListCmd.Flags().IntVar(&draftPage, "page", 0, "page number")
	draftListCmd.Flags().IntVar(&draftPerPage, "per-page", 0, "drafts per page")

	draftCmd.AddCommand(draftListCmd)
	draftCmd.AddCommand(draftGetCmd)
	draftCmd.AddCommand(draftDeleteCmd)
}

func runDraftList(cmd *cobra.Command, args []string) {
	client, _, err := loadClient()
	exitOnError(err, "failed to initialize client")
	defer client.Close()

	result, err := client.ListDrafts(kakeibo.ListDraftsOptions{
		Status:  draftStatus,
		Page:    draftPage,
		PerPage: draftPerPage,
	})
	exitOnError(err, "failed to list drafts")

	fmt.Printf("Drafts (page %d, %d total)\n", result.Page, result.Total)
	for _, draft := range result.Drafts {
		fmt.Printf("  %6d  %-9s  %s", draft.ID, draft.Status, draft.CreatedAt)
		if draft.Summary != nil {
			fmt.Printf("  %s %d円", draft.Summary.Title, draft.Summary.Amount)
		}
		fmt.Println()
	}
}

// suggestionView is the loose shape used for displaying suggestions.
// The client treats suggestions as opaque; only the CLI peeks inside.
type suggestionView struct {
	Title            string `json:"title"`
	Date             string `json:"date"`
	EntryDescription string `json:"entry_description"`
	Lines            []struct {
		AccountID    int64  `json:"account_id"`
		AccountName  string `json:"account_name"`
		DebitAmount  int64  `json:"debit_amount"`
		CreditAmount int64  `json:"credit_amount"`
	} `json:"lines"`
}

func runDraftGet(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	exitOnError(err, "invalid draft ID")

	client, _, err := loadClient()
	exitOnError(err, "failed to initialize client")
	defer client.Close()

	draft, err := client.GetDraft(id)
	exitOnError(err, "failed to get draft")

	fmt.Printf("Draft %d (%s)\n", draft.ID, draft.Status)
	fmt.Printf("  Created: %s\n", draft.CreatedAt)
	if draft.Comment != "" {
		fmt.Printf("  Comment: %s\n", draft.Comment)
	}
	if draft.Summary != nil {
		fmt.Printf("  Summary: %s %d円 (%s)\n", draft.Summary.Title, draft.Summary.Amount, draft.Summary.Date)
	}

	for i, raw := range draft.Suggestions {
		var suggestion suggestionView
		if err := json.Unmarshal(raw, &suggestion); err != nil {
			fmt.Printf("  Suggestion %d: (unreadable)\n", i+1)
			continue
		}
		fmt.Printf("  Suggestion %d: %s (%s) %s\n", i+1, suggestion.Title, suggestion.Date, suggestion.EntryDescription)
		for _, line := range suggestion.Lines {
			side := "debit "
			amount := line.DebitAmount
			if line.CreditAmount != 0 {
				side = "credit"
				amount = line.CreditAmount
			}
			fmt.Printf("    %s  %s (%d)  %d\n", side, line.AccountName, line.AccountID, amount)
		}
	}

	fmt.Printf("Confirm with: kakeibo journal create --draft %d ...\n", draft.ID)
}

func runDraftDelete(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	exitOnError(err, "invalid draft ID")

	client, _, err := loadClient()
	exitOnError(err, "failed to initialize client")
	defer client.Close()

	exitOnError(client.DeleteDraft(id), "failed to delete draft")
	fmt.Printf("Deleted draft %d\n", id)
}
