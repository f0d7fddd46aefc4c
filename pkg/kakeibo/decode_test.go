package kakeibo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJournalBody = `{
	"ok": true,
	"journal": {
		"id": 42,
		"date": "2026-02-15",
		"entry_number": 7,
		"description": "テスト仕訳",
		"source": "api",
		"lines": [
			{"account_id": 12, "debit": 1000, "credit": 0, "description": ""},
			{"account_id": 1, "debit": 0, "credit": 1000, "description": "メモ"}
		]
	}
}`

func TestDecodeJournalDetail(t *testing.T) {
	detail, err := decodeJournalDetail([]byte(sampleJournalBody))
	require.NoError(t, err)

	assert.Equal(t, int64(42), detail.ID)
	assert.Equal(t, "2026-02-15", detail.Date)
	assert.Equal(t, int64(7), detail.EntryNumber)
	assert.Equal(t, "テスト仕訳", detail.Description)
	assert.Equal(t, "api", detail.Source)
	require.Len(t, detail.Lines, 2)
	assert.Equal(t, JournalLine{AccountID: 12, Debit: 1000}, detail.Lines[0])
	assert.Equal(t, JournalLine{AccountID: 1, Credit: 1000, Description: "メモ"}, detail.Lines[1])
}

func TestDecodeJournalDetailLineDefaults(t *testing.T) {
	body := `{"journal": {
		"id": 1, "date": "2026-01-01", "entry_number": 1,
		"description": "", "source": "api",
		"lines": [{"account_id": 3}]
	}}`

	detail, err := decodeJournalDetail([]byte(body))
	require.NoError(t, err)
	require.Len(t, detail.Lines, 1)
	assert.Equal(t, JournalLine{AccountID: 3}, detail.Lines[0])
}

func TestDecodeJournalDetailMissingRequired(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"missing envelope", `{"ok": true}`, "journal"},
		{"missing id", `{"journal": {"date": "2026-01-01", "entry_number": 1, "description": "", "source": "api", "lines": []}}`, "id"},
		{"missing date", `{"journal": {"id": 1, "entry_number": 1, "description": "", "source": "api", "lines": []}}`, "date"},
		{"missing entry_number", `{"journal": {"id": 1, "date": "2026-01-01", "description": "", "source": "api", "lines": []}}`, "entry_number"},
		{"missing lines", `{"journal": {"id": 1, "date": "2026-01-01", "entry_number": 1, "description": "", "source": "api"}}`, "lines"},
		{"line missing account_id", `{"journal": {"id": 1, "date": "2026-01-01", "entry_number": 1, "description": "", "source": "api", "lines": [{"debit": 100}]}}`, "account_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeJournalDetail([]byte(tt.body))

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, tt.wantField, decodeErr.Field)
		})
	}
}

func TestDecodeJournalCreate(t *testing.T) {
	resp, err := decodeJournalCreate([]byte(`{"ok": true, "id": 42, "entry_number": 7}`))
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(7), resp.EntryNumber)

	_, err = decodeJournalCreate([]byte(`{"ok": true, "id": 42}`))
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "entry_number", decodeErr.Field)
}

func TestDecodeJournalList(t *testing.T) {
	body := `{
		"ok": true,
		"journals": [{
			"id": 42, "date": "2026-02-15", "entry_number": 7,
			"description": "テスト仕訳", "source": "api", "lines": []
		}],
		"total": 1, "page": 1, "per_page": 20
	}`

	list, err := decodeJournalList([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 20, list.PerPage)
	require.Len(t, list.Journals, 1)
	assert.Equal(t, int64(42), list.Journals[0].ID)
}

const sampleDraftBody = `{
	"id": 10,
	"status": "analyzed",
	"comment": "テスト",
	"created_at": "2026-02-19T12:00:00",
	"summary": {
		"title": "食費",
		"date": "2026-02-19",
		"description": "スーパーで食材購入",
		"amount": 3000,
		"suggestion_count": 1
	}
}`

func TestDecodeDraftList(t *testing.T) {
	list, err := decodeDraftList([]byte(`{"ok": true, "drafts": [` + sampleDraftBody + `]}`))
	require.NoError(t, err)
	require.Len(t, list.Drafts, 1)

	draft := list.Drafts[0]
	assert.Equal(t, int64(10), draft.ID)
	assert.Equal(t, "analyzed", draft.Status)
	assert.Equal(t, "テスト", draft.Comment)
	assert.Equal(t, "2026-02-19T12:00:00", draft.CreatedAt)
	require.NotNil(t, draft.Summary)
	assert.Equal(t, "食費", draft.Summary.Title)
	assert.Equal(t, int64(3000), draft.Summary.Amount)
	assert.Equal(t, 1, draft.Summary.SuggestionCount)
}

func TestDecodeDraftListNoSummary(t *testing.T) {
	body := `{"drafts": [
		{"id": 11, "status": "done", "created_at": "2026-02-20T09:00:00"},
		{"id": 12, "status": "analyzed", "created_at": "2026-02-21T09:00:00", "summary": null}
	]}`

	list, err := decodeDraftList([]byte(body))
	require.NoError(t, err)
	require.Len(t, list.Drafts, 2)

	// Absent and null summaries both decode to nil, not a zero-valued summary.
	assert.Nil(t, list.Drafts[0].Summary)
	assert.Nil(t, list.Drafts[1].Summary)
	assert.Equal(t, "", list.Drafts[0].Comment)
}

func TestDecodeDraftDetail(t *testing.T) {
	body := `{"draft": {
		"id": 10, "status": "analyzed", "comment": "テスト",
		"created_at": "2026-02-19T12:00:00",
		"suggestions": [{"title": "食費"}, {"title": "雑費"}]
	}}`

	detail, err := decodeDraftDetail([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, int64(10), detail.ID)
	assert.Nil(t, detail.Summary)
	require.Len(t, detail.Suggestions, 2)
	assert.JSONEq(t, `{"title": "食費"}`, string(detail.Suggestions[0]))
}

func TestDecodeDraftDetailMissingRequired(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"missing envelope", `{"ok": true}`, "draft"},
		{"missing status", `{"draft": {"id": 10, "created_at": "2026-02-19T12:00:00", "suggestions": []}}`, "status"},
		{"missing created_at", `{"draft": {"id": 10, "status": "analyzed", "suggestions": []}}`, "created_at"},
		{"missing suggestions", `{"draft": {"id": 10, "status": "analyzed", "created_at": "2026-02-19T12:00:00"}}`, "suggestions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeDraftDetail([]byte(tt.body))

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, tt.wantField, decodeErr.Field)
		})
	}
}

func TestDecodeAnalyze(t *testing.T) {
	body := `{"ok": true, "draft_id": 10, "suggestions": [{"title": "食費"}]}`

	resp, err := decodeAnalyze([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.DraftID)
	assert.Len(t, resp.Suggestions, 1)

	_, err = decodeAnalyze([]byte(`{"ok": true, "suggestions": []}`))
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "draft_id", decodeErr.Field)
}

func TestDecodeMalformedJSON(t *testing.T) {
	_, err := decodeJournalDetail([]byte(`not json`))
	require.Error(t, err)

	// Malformed bodies are transport-level failures, not contract mismatches.
	var decodeErr *DecodeError
	assert.False(t, errors.As(err, &decodeErr))
}
