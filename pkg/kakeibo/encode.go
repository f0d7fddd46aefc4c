package kakeibo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// maxCommentLength is the server-side limit on analyze comments.
// Longer comments are truncated, not rejected.
const maxCommentLength = 500

// journalCreateBody is the wire form of a journal creation request.
type journalCreateBody struct {
	Date        string        `json:"date"`
	Description string        `json:"description"`
	Lines       []JournalLine `json:"lines"`
	Source      string        `json:"source"`
	DraftID     *int64        `json:"draft_id,omitempty"`
}

// encodeJournalCreate builds the JSON body for POST /api/v1/journals.
func encodeJournalCreate(req JournalCreateRequest) ([]byte, error) {
	source := req.Source
	if source == "" {
		source = "api"
	}

	lines := req.Lines
	if lines == nil {
		lines = []JournalLine{}
	}

	body := journalCreateBody{
		Date:        req.Date.String(),
		Description: req.Description,
		Lines:       lines,
		Source:      source,
		DraftID:     req.DraftID,
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	return data, nil
}

// imageUpload is the payload for the analyze endpoint.
type imageUpload struct {
	data        []byte
	filename    string
	contentType string
	comment     string
	notify      bool
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeAnalyzeUpload builds the multipart body for POST /api/v1/ai/analyze.
// It returns the encoded body and the Content-Type header value carrying
// the multipart boundary.
func encodeAnalyzeUpload(u imageUpload) (*bytes.Buffer, string, error) {
	filename := u.filename
	if filename == "" {
		filename = "image.jpg"
	}
	partType := u.contentType
	if partType == "" {
		partType = "image/jpeg"
	}

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="image"; filename="%s"`, quoteEscaper.Replace(filename)))
	header.Set("Content-Type", partType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create image part: %w", err)
	}
	if _, err := part.Write(u.data); err != nil {
		return nil, "", fmt.Errorf("failed to write image part: %w", err)
	}

	if u.comment != "" {
		if err := w.WriteField("comment", truncateComment(u.comment)); err != nil {
			return nil, "", fmt.Errorf("failed to write comment field: %w", err)
		}
	}
	if u.notify {
		if err := w.WriteField("notify", "1"); err != nil {
			return nil, "", fmt.Errorf("failed to write notify field: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}

// truncateComment caps a comment at maxCommentLength characters.
func truncateComment(comment string) string {
	runes := []rune(comment)
	if len(runes) <= maxCommentLength {
		return comment
	}
	return string(runes[:maxCommentLength])
}
