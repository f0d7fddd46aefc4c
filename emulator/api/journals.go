package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shunichi-ikebuchi/kakeibo-client/emulator/models"
	"github.com/shunichi-ikebuchi/kakeibo-client/emulator/store"
)

// JournalsHandler handles journal-related API endpoints.
type JournalsHandler struct {
	store *store.Store

	// lockedBefore is a YYYY-MM-DD bound; journals dated strictly before
	// it belong to a closed period and cannot be created or deleted.
	lockedBefore string
}

// NewJournalsHandler creates a new JournalsHandler.
func NewJournalsHandler(s *store.Store, lockedBefore string) *JournalsHandler {
	return &JournalsHandler{store: s, lockedBefore: lockedBefore}
}

func (h *JournalsHandler) isLocked(date string) bool {
	return h.lockedBefore != "" && date < h.lockedBefore
}

// Create handles POST /api/v1/journals.
func (h *JournalsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateJournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "リクエストボディを解析できません。")
		return
	}

	if req.Date == "" {
		writeError(w, http.StatusBadRequest, "日付は必須です。")
		return
	}
	if len(req.Lines) == 0 {
		writeError(w, http.StatusBadRequest, "仕訳明細行は必須です。")
		return
	}
	if h.isLocked(req.Date) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%s は確定済みのため変更できません。", req.Date))
		return
	}

	var debitTotal, creditTotal int64
	for _, line := range req.Lines {
		debitTotal += line.Debit
		creditTotal += line.Credit
	}
	if debitTotal != creditTotal {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("貸借が一致しません（借方: %d, 貸方: %d）", debitTotal, creditTotal))
		return
	}

	if req.DraftID != nil {
		if err := h.store.MarkDraftConsumed(*req.DraftID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusNotFound, "下書きが見つかりません。")
				return
			}
			writeError(w, http.StatusInternalServerError, "下書きの更新に失敗しました。")
			return
		}
	}

	journal, err := h.store.CreateJournal(&req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "仕訳の作成に失敗しました。")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"ok":           true,
		"id":           journal.ID,
		"entry_number": journal.EntryNumber,
	})
}

// Get handles GET /api/v1/journals/{id}.
func (h *JournalsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "不正な仕訳 ID です。")
		return
	}

	journal, err := h.store.GetJournal(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "仕訳が見つかりません。")
			return
		}
		writeError(w, http.StatusInternalServerError, "仕訳の取得に失敗しました。")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"journal": journal,
	})
}

// List handles GET /api/v1/journals.
func (h *JournalsHandler) List(w http.ResponseWriter, r *http.Request) {
	journals, err := h.store.ListJournals(
		r.URL.Query().Get("date_from"),
		r.URL.Query().Get("date_to"),
	)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "仕訳の一覧取得に失敗しました。")
		return
	}

	page, perPage := pageParams(r, 20)
	start, end := paginate(len(journals), page, perPage)

	paged := journals[start:end]
	if paged == nil {
		paged = []*models.Journal{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":       true,
		"journals": paged,
		"total":    len(journals),
		"page":     page,
		"per_page": perPage,
	})
}

// Delete handles DELETE /api/v1/journals/{id}.
func (h *JournalsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "不正な仕訳 ID です。")
		return
	}

	journal, err := h.store.GetJournal(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "仕訳が見つかりません。")
			return
		}
		writeError(w, http.StatusInternalServerError, "仕訳の取得に失敗しました。")
		return
	}

	if h.isLocked(journal.Date) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("%s は確定済みのため変更できません。", journal.Date))
		return
	}

	if err := h.store.DeleteJournal(id); err != nil {
		writeError(w, http.StatusInternalServerError, "仕訳の削除に失敗しました。")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
}
