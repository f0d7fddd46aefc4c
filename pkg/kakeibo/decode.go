package kakeibo

import (
	"encoding/json"
	"fmt"
)

// Wire shapes use pointer fields for keys the server must always send and
// plain fields for optional keys that default when absent. Each decode
// validates its required keys once, in declaration order, before any
// domain record is built.

type fieldCheck struct {
	key     string
	present bool
}

func checkRequired(checks []fieldCheck) error {
	for _, c := range checks {
		if !c.present {
			return &DecodeError{Field: c.key}
		}
	}
	return nil
}

func unmarshalBody(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

type journalLineWire struct {
	AccountID   *int64 `json:"account_id"`
	Debit       int64  `json:"debit"`
	Credit      int64  `json:"credit"`
	Description string `json:"description"`
}

func (w *journalLineWire) toLine() (JournalLine, error) {
	if err := checkRequired([]fieldCheck{
		{"account_id", w.AccountID != nil},
	}); err != nil {
		return JournalLine{}, err
	}
	return JournalLine{
		AccountID:   *w.AccountID,
		Debit:       w.Debit,
		Credit:      w.Credit,
		Description: w.Description,
	}, nil
}

type journalDetailWire struct {
	ID          *int64             `json:"id"`
	Date        *string            `json:"date"`
	EntryNumber *int64             `json:"entry_number"`
	Description *string            `json:"description"`
	Source      *string            `json:"source"`
	Lines       *[]journalLineWire `json:"lines"`
}

func (w *journalDetailWire) toDetail() (JournalDetail, error) {
	if err := checkRequired([]fieldCheck{
		{"id", w.ID != nil},
		{"date", w.Date != nil},
		{"entry_number", w.EntryNumber != nil},
		{"description", w.Description != nil},
		{"source", w.Source != nil},
		{"lines", w.Lines != nil},
	}); err != nil {
		return JournalDetail{}, err
	}

	lines := make([]JournalLine, 0, len(*w.Lines))
	for i := range *w.Lines {
		line, err := (*w.Lines)[i].toLine()
		if err != nil {
			return JournalDetail{}, err
		}
		lines = append(lines, line)
	}

	return JournalDetail{
		ID:          *w.ID,
		Date:        *w.Date,
		EntryNumber: *w.EntryNumber,
		Description: *w.Description,
		Source:      *w.Source,
		Lines:       lines,
	}, nil
}

func decodeJournalCreate(data []byte) (*JournalCreateResponse, error) {
	var wire struct {
		ID          *int64 `json:"id"`
		EntryNumber *int64 `json:"entry_number"`
	}
	if err := unmarshalBody(data, &wire); err != nil {
		return nil, err
	}
	if err := checkRequired([]fieldCheck{
		{"id", wire.ID != nil},
		{"entry_number", wire.EntryNumber != nil},
	}); err != nil {
		return nil, err
	}
	return &JournalCreateResponse{ID: *wire.ID, EntryNumber: *wire.EntryNumber}, nil
}

func decodeJournalDetail(data []byte) (*JournalDetail, error) {
	var wire struct {
		Journal *journalDetailWire `json:"journal"`
	}
	if err := unmarshalBody(data, &wire); err != nil {
		return nil, err
	}
	if err := checkRequired([]fieldCheck{
		{"journal", wire.Journal != nil},
	}); err != nil {
		return nil, err
	}
	detail, err := wire.Journal.toDetail()
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func decodeJournalList(data []byte) (*JournalListResponse, error) {
	var wire struct {
		Journals *[]journalDetailWire `json:"journals"`
		Total    int                  `json:"total"`
		Page     int                  `json:"page"`
		PerPage  int                  `json:"per_page"`
	}
	if err := unmarshalBody(data, &wire); err != nil {
		return nil, err
	}
	if err := checkRequired([]fieldCheck{
		{"journals", wire.Journals != nil},
	}); err != nil {
		return nil, err
	}

	journals := make([]JournalDetail, 0, len(*wire.Journals))
	for i := range *wire.Journals {
		detail, err := (*wire.Journals)[i].toDetail()
		if err != nil {
			return nil, err
		}
		journals = append(journals, detail)
	}

	return &JournalListResponse{
		Journals: journals,
		Total:    wire.Total,
		Page:     wire.Page,
		PerPage:  wire.PerPage,
	}, nil
}

type draftSummaryWire struct {
	Title           string `json:"title"`
	Date            string `json:"date"`
	Description     string `json:"description"`
	Amount          int64  `json:"amount"`
	SuggestionCount int    `json:"suggestion_count"`
}

type draftWire struct {
	ID          *int64            `json:"id"`
	Status      *string           `json:"status"`
	Comment     string            `json:"comment"`
	CreatedAt   *string           `json:"created_at"`
	Summary     *draftSummaryWire `json:"summary"`
	Suggestions *[]Suggestion     `json:"suggestions"`
}

func (w *draftWire) check() error {
	return checkRequired([]fieldCheck{
		{"id", w.ID != nil},
		{"status", w.Status != nil},
		{"created_at", w.CreatedAt != nil},
	})
}

func (w *draftWire) summary() *DraftSummary {
	if w.Summary == nil {
		return nil
	}
	return &DraftSummary{
		Title:           w.Summary.Title,
		Date:            w.Summary.Date,
		Description:     w.Summary.Description,
		Amount:          w.Summary.Amount,
		SuggestionCount: w.Summary.SuggestionCount,
	}
}

func (w *draftWire) toListItem() (DraftListItem, error) {
	if err := w.check(); err != nil {
		return DraftListItem{}, err
	}
	return DraftListItem{
		ID:        *w.ID,
		Status:    *w.Status,
		Comment:   w.Comment,
		CreatedAt: *w.CreatedAt,
		Summary:   w.summary(),
	}, nil
}

func (w *draftWire) toDetail() (DraftDetail, error) {
	if err := w.check(); err != nil {
		return DraftDetail{}, err
	}
	if err := checkRequired([]fieldCheck{
		{"suggestions", w.Suggestions != nil},
	}); err != nil {
		return DraftDetail{}, err
	}
	return DraftDetail{
		ID:          *w.ID,
		Status:      *w.Status,
		Comment:     w.Comment,
		CreatedAt:   *w.CreatedAt,
		Summary:     w.summary(),
		Suggestions: *w.Suggestions,
	}, nil
}

func decodeDraftList(data []byte) (*DraftListResponse, error) {
	var wire struct {
		Drafts  *[]draftWire `json:"drafts"`
		Total   int          `json:"total"`
		Page    int          `json:"page"`
		PerPage int          `json:"per_page"`
	}
	if err := unmarshalBody(data, &wire); err != nil {
		return nil, err
	}
	if err := checkRequired([]fieldCheck{
		{"drafts", wire.Drafts != nil},
	}); err != nil {
		return nil, err
	}

	drafts := make([]DraftListItem, 0, len(*wire.Drafts))
	for i := range *wire.Drafts {
		item, err := (*wire.Drafts)[i].toListItem()
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, item)
	}

	return &DraftListResponse{
		Drafts:  drafts,
		Total:   wire.Total,
		Page:    wire.Page,
		PerPage: wire.PerPage,
	}, nil
}

func decodeDraftDetail(data []byte) (*DraftDetail, error) {
	var wire struct {
		Draft *draftWire `json:"draft"`
	}
	if err := unmarshalBody(data, &wire); err != nil {
		return nil, err
	}
	if err := checkRequired([]fieldCheck{
		{"draft", wire.Draft != nil},
	}); err != nil {
		return nil, err
	}
	detail, err := wire.Draft.toDetail()
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func decodeAnalyze(data []byte) (*AnalyzeResponse, error) {
	var wire struct {
		DraftID     *int64        `json:"draft_id"`
		Suggestions *[]Suggestion `json:"suggestions"`
	}
	if err := unmarshalBody(data, &wire); err != nil {
		return nil, err
	}
	if err := checkRequired([]fieldCheck{
		{"draft_id", wire.DraftID != nil},
		{"suggestions", wire.Suggestions != nil},
	}); err != nil {
		return nil, err
	}
	return &AnalyzeResponse{DraftID: *wire.DraftID, Suggestions: *wire.Suggestions}, nil
}
