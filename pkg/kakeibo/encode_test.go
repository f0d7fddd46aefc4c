package kakeibo

import (
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeToMap(t *testing.T, req JournalCreateRequest) map[string]any {
	t.Helper()

	data, err := encodeJournalCreate(req)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	return decoded
}

func TestEncodeJournalCreate(t *testing.T) {
	req := JournalCreateRequest{
		Date:        DateString("2026-01-10"),
		Description: "食材",
		Lines: []JournalLine{
			{AccountID: 5, Debit: 500, Description: "メモ"},
			{AccountID: 1, Credit: 500},
		},
		Source: "custom",
	}

	decoded := encodeToMap(t, req)

	assert.Equal(t, "2026-01-10", decoded["date"])
	assert.Equal(t, "食材", decoded["description"])
	assert.Equal(t, "custom", decoded["source"])

	lines, ok := decoded["lines"].([]any)
	require.True(t, ok)
	require.Len(t, lines, 2)
	assert.Equal(t, map[string]any{"account_id": float64(5), "debit": float64(500), "description": "メモ"}, lines[0])
	assert.Equal(t, map[string]any{"account_id": float64(1), "credit": float64(500)}, lines[1])
}

func TestEncodeJournalCreateLineOmission(t *testing.T) {
	decoded := encodeToMap(t, JournalCreateRequest{
		Date:        DateString("2026-01-10"),
		Description: "省略確認",
		Lines:       []JournalLine{{AccountID: 3}},
	})

	lines := decoded["lines"].([]any)
	line := lines[0].(map[string]any)
	assert.NotContains(t, line, "debit")
	assert.NotContains(t, line, "credit")
	assert.NotContains(t, line, "description")
}

func TestEncodeJournalCreateSourceDefault(t *testing.T) {
	decoded := encodeToMap(t, JournalCreateRequest{
		Date:        DateString("2026-01-10"),
		Description: "通常の仕訳",
		Lines:       []JournalLine{{AccountID: 1, Debit: 100}},
	})

	assert.Equal(t, "api", decoded["source"])
}

func TestEncodeJournalCreateDraftID(t *testing.T) {
	draftID := int64(10)

	withDraft := encodeToMap(t, JournalCreateRequest{
		Date:        DateString("2026-01-10"),
		Description: "下書きから確定",
		Lines:       []JournalLine{{AccountID: 1, Debit: 100}},
		DraftID:     &draftID,
	})
	assert.Equal(t, float64(10), withDraft["draft_id"])

	withoutDraft := encodeToMap(t, JournalCreateRequest{
		Date:        DateString("2026-01-10"),
		Description: "通常の仕訳",
		Lines:       []JournalLine{{AccountID: 1, Debit: 100}},
	})
	assert.NotContains(t, withoutDraft, "draft_id")
}

func TestEncodeJournalCreateNilLines(t *testing.T) {
	decoded := encodeToMap(t, JournalCreateRequest{
		Date:        DateString("2026-01-10"),
		Description: "明細なし",
	})

	lines, ok := decoded["lines"].([]any)
	require.True(t, ok, "lines should encode as an array, not null")
	assert.Empty(t, lines)
}

func parseMultipart(t *testing.T, body *strings.Reader, contentType string) map[string][]byte {
	t.Helper()

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	parts := map[string][]byte{}
	reader := multipart.NewReader(body, params["boundary"])
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		parts[part.FormName()] = data
	}
	return parts
}

func TestEncodeAnalyzeUpload(t *testing.T) {
	body, contentType, err := encodeAnalyzeUpload(imageUpload{
		data:    []byte{0xff, 0xd8, 0xff, 0xe0},
		comment: "テストメモ",
		notify:  true,
	})
	require.NoError(t, err)

	parts := parseMultipart(t, strings.NewReader(body.String()), contentType)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff, 0xe0}, parts["image"])
	assert.Equal(t, "テストメモ", string(parts["comment"]))
	assert.Equal(t, "1", string(parts["notify"]))
}

func TestEncodeAnalyzeUploadOmitsEmptyFields(t *testing.T) {
	body, contentType, err := encodeAnalyzeUpload(imageUpload{data: []byte{0xff, 0xd8}})
	require.NoError(t, err)

	parts := parseMultipart(t, strings.NewReader(body.String()), contentType)
	assert.Contains(t, parts, "image")
	assert.NotContains(t, parts, "comment")
	assert.NotContains(t, parts, "notify")
}

func TestEncodeAnalyzeUploadDefaults(t *testing.T) {
	body, contentType, err := encodeAnalyzeUpload(imageUpload{data: []byte{0xff, 0xd8}})
	require.NoError(t, err)

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)

	reader := multipart.NewReader(strings.NewReader(body.String()), params["boundary"])
	part, err := reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "image.jpg", part.FileName())
	assert.Equal(t, "image/jpeg", part.Header.Get("Content-Type"))
}

func TestEncodeAnalyzeUploadCustomImagePart(t *testing.T) {
	body, contentType, err := encodeAnalyzeUpload(imageUpload{
		data:        []byte("fake png"),
		filename:    "receipt.png",
		contentType: "image/png",
	})
	require.NoError(t, err)

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)

	reader := multipart.NewReader(strings.NewReader(body.String()), params["boundary"])
	part, err := reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "receipt.png", part.FileName())
	assert.Equal(t, "image/png", part.Header.Get("Content-Type"))
}

func TestTruncateComment(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		wantLen int
	}{
		{"short comment unchanged", "短いメモ", 4},
		{"exactly at limit", strings.Repeat("a", 500), 500},
		{"over limit truncated", strings.Repeat("a", 501), 500},
		{"multibyte counted as characters", strings.Repeat("あ", 600), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateComment(tt.comment)
			assert.Len(t, []rune(got), tt.wantLen)
		})
	}
}
