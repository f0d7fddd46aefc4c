package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shunichi-ikebuchi/kakeibo-client/emulator/models"
	"github.com/shunichi-ikebuchi/kakeibo-client/emulator/store"
)

// maxUploadSize limits analyze uploads to 10 MB.
const maxUploadSize = 10 << 20

// DraftsHandler handles the AI analysis endpoints.
type DraftsHandler struct {
	store *store.Store
}

// NewDraftsHandler creates a new DraftsHandler.
func NewDraftsHandler(s *store.Store) *DraftsHandler {
	return &DraftsHandler{store: s}
}

// draftListItem is the condensed draft view served in listings.
type draftListItem struct {
	ID        int64                `json:"id"`
	Status    string               `json:"status"`
	Comment   string               `json:"comment"`
	CreatedAt string               `json:"created_at"`
	Summary   *models.DraftSummary `json:"summary,omitempty"`
}

// Analyze handles POST /api/v1/ai/analyze.
// The emulator has no AI behind it; it returns a canned suggestion
// derived from the upload.
func (h *DraftsHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "マルチパートフォームを解析できません。")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "画像ファイルが必要です。")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil || len(image) == 0 {
		writeError(w, http.StatusBadRequest, "画像ファイルを読み込めません。")
		return
	}

	today := time.Now().Format("2006-01-02")
	suggestions := []models.Suggestion{
		{
			Title:            "食費",
			Date:             today,
			Description:      header.Filename,
			EntryDescription: "スーパーで食材購入",
			Lines: []models.SuggestionLine{
				{AccountID: 12, AccountName: "食費", DebitAmount: 3000},
				{AccountID: 1, AccountName: "現金", CreditAmount: 3000},
			},
		},
	}

	draft := &models.Draft{
		Status:    "analyzed",
		Comment:   r.FormValue("comment"),
		CreatedAt: time.Now().Format("2006-01-02T15:04:05"),
		Summary: &models.DraftSummary{
			Title:           suggestions[0].Title,
			Date:            suggestions[0].Date,
			Description:     suggestions[0].EntryDescription,
			Amount:          3000,
			SuggestionCount: len(suggestions),
		},
		Suggestions: suggestions,
	}

	draft, err = h.store.CreateDraft(draft)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "下書きの作成に失敗しました。")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"ok":          true,
		"draft_id":    draft.ID,
		"suggestions": draft.Suggestions,
	})
}

// List handles GET /api/v1/ai/drafts.
func (h *DraftsHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = "analyzed"
	}

	drafts, err := h.store.ListDrafts(status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "下書きの一覧取得に失敗しました。")
		return
	}

	page, perPage := pageParams(r, 50)
	start, end := paginate(len(drafts), page, perPage)

	items := make([]draftListItem, 0, end-start)
	for _, draft := range drafts[start:end] {
		items = append(items, draftListItem{
			ID:        draft.ID,
			Status:    draft.Status,
			Comment:   draft.Comment,
			CreatedAt: draft.CreatedAt,
			Summary:   draft.Summary,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":       true,
		"drafts":   items,
		"total":    len(drafts),
		"page":     page,
		"per_page": perPage,
	})
}

// Get handles GET /api/v1/ai/drafts/{id}.
func (h *DraftsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "不正な下書き ID です。")
		return
	}

	draft, err := h.store.GetDraft(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "下書きが見つかりません。")
			return
		}
		writeError(w, http.StatusInternalServerError, "下書きの取得に失敗しました。")
		return
	}

	if draft.Suggestions == nil {
		draft.Suggestions = []models.Suggestion{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"draft": draft,
	})
}

// Delete handles DELETE /api/v1/ai/drafts/{id}.
func (h *DraftsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "不正な下書き ID です。")
		return
	}

	if err := h.store.DeleteDraft(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "下書きが見つかりません。")
			return
		}
		writeError(w, http.StatusInternalServerError, "下書きの削除に失敗しました。")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
}
