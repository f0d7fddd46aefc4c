// Package models defines the data shapes served by the kakeibo emulator.
package models

// JournalLine represents a single debit/credit line in a journal entry.
type JournalLine struct {
	AccountID   int64  `json:"account_id"`
	Debit       int64  `json:"debit"`
	Credit      int64  `json:"credit"`
	Description string `json:"description"`
}

// Journal represents a confirmed journal entry.
type Journal struct {
	ID          int64         `json:"id"`
	Date        string        `json:"date"` // YYYY-MM-DD
	EntryNumber int64         `json:"entry_number"`
	Description string        `json:"description"`
	Source      string        `json:"source"`
	Lines       []JournalLine `json:"lines"`
}

// CreateJournalRequest represents the request to create a journal entry.
type CreateJournalRequest struct {
	Date        string        `json:"date"`
	Description string        `json:"description"`
	Lines       []JournalLine `json:"lines"`
	Source      string        `json:"source"`
	DraftID     *int64        `json:"draft_id"`
}

// SuggestionLine represents one line of an AI-proposed journal shape.
type SuggestionLine struct {
	AccountID    int64  `json:"account_id"`
	AccountName  string `json:"account_name"`
	DebitAmount  int64  `json:"debit_amount"`
	CreditAmount int64  `json:"credit_amount"`
}

// Suggestion represents one AI-proposed journal shape for a draft.
type Suggestion struct {
	Title            string           `json:"title"`
	Date             string           `json:"date"`
	Description      string           `json:"description"`
	EntryDescription string           `json:"entry_description"`
	Lines            []SuggestionLine `json:"lines"`
}

// DraftSummary is the condensed view attached to an analyzed draft.
type DraftSummary struct {
	Title           string `json:"title"`
	Date            string `json:"date"`
	Description     string `json:"description"`
	Amount          int64  `json:"amount"`
	SuggestionCount int    `json:"suggestion_count"`
}

// Draft represents an AI analysis draft.
// List responses serve a condensed view without suggestions; see the drafts handler.
type Draft struct {
	ID          int64         `json:"id"`
	Status      string        `json:"status"` // analyzed or done
	Comment     string        `json:"comment"`
	CreatedAt   string        `json:"created_at"`
	Summary     *DraftSummary `json:"summary,omitempty"`
	Suggestions []Suggestion  `json:"suggestions"`
}
