// Package kakeibo provides a client for the iikanji kakeibo API.
// It covers journal entry CRUD and the AI receipt-to-journal workflow
// (image analysis, draft inspection, draft promotion).
package kakeibo

import "encoding/json"

// JournalLine is one debit-or-credit component of a journal entry.
// Zero debit/credit amounts and empty descriptions are omitted on the wire.
type JournalLine struct {
	AccountID   int64  `json:"account_id"`
	Debit       int64  `json:"debit,omitempty"`
	Credit      int64  `json:"credit,omitempty"`
	Description string `json:"description,omitempty"`
}

// JournalCreateRequest describes a journal entry to be created.
type JournalCreateRequest struct {
	Date        Date
	Description string
	Lines       []JournalLine
	// Source tags the journal's origin. Defaults to "api" when empty.
	Source string
	// DraftID, when set, marks the referenced AI draft as consumed.
	DraftID *int64
}

// JournalCreateResponse carries the server-assigned identifiers of a
// newly created journal entry.
type JournalCreateResponse struct {
	ID          int64
	EntryNumber int64
}

// JournalDetail is a confirmed journal entry as reported by the server.
type JournalDetail struct {
	ID          int64
	Date        string
	EntryNumber int64
	Description string
	Source      string
	Lines       []JournalLine
}

// JournalListResponse is one page of journal entries.
type JournalListResponse struct {
	Journals []JournalDetail
	Total    int
	Page     int
	PerPage  int
}

// Suggestion is one AI-proposed journal shape attached to a draft.
// Its internal structure is server-defined and passed through undecoded.
type Suggestion = json.RawMessage

// DraftSummary is the optional condensed view the server attaches to a draft.
type DraftSummary struct {
	Title           string
	Date            string
	Description     string
	Amount          int64
	SuggestionCount int
}

// DraftListItem is an AI draft as it appears in a draft listing.
// Summary is nil when the server has not attached one.
type DraftListItem struct {
	ID        int64
	Status    string
	Comment   string
	CreatedAt string
	Summary   *DraftSummary
}

// DraftListResponse is one page of AI drafts.
type DraftListResponse struct {
	Drafts  []DraftListItem
	Total   int
	Page    int
	PerPage int
}

// DraftDetail is a single AI draft including its suggestions.
type DraftDetail struct {
	ID          int64
	Status      string
	Comment     string
	CreatedAt   string
	Summary     *DraftSummary
	Suggestions []Suggestion
}

// AnalyzeResponse is the result of uploading a receipt image for AI analysis.
type AnalyzeResponse struct {
	DraftID     int64
	Suggestions []Suggestion
}
