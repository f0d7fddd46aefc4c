package kakeibo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ClientConfig represents the configuration for the kakeibo API client.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration // Default: 30 seconds

	// HTTPClient, when set, is used for all requests. The client never
	// closes a supplied HTTPClient; its lifecycle belongs to the caller.
	HTTPClient *http.Client
}

// Client is a kakeibo API client.
//
// Operations are plain blocking round trips bounded by the configured
// timeout. The client holds no state across calls beyond its configuration,
// so concurrent use is as safe as the underlying http.Client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	ownsClient bool
	closeOnce  sync.Once
}

// NewClient creates a new kakeibo API client.
func NewClient(config ClientConfig) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	httpClient := config.HTTPClient
	owns := false
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
		owns = true
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(config.BaseURL, "/"),
		apiKey:     config.APIKey,
		ownsClient: owns,
	}
}

// Close releases the client's connections. It is safe to call multiple
// times. A supplied http.Client is left untouched.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		if c.ownsClient {
			c.httpClient.CloseIdleConnections()
		}
	})
}

// CreateJournal creates a journal entry and returns its server-assigned
// id and entry number. When req.DraftID is set, the referenced AI draft
// is marked as consumed.
func (c *Client) CreateJournal(req JournalCreateRequest) (*JournalCreateResponse, error) {
	payload, err := encodeJournalCreate(req)
	if err != nil {
		return nil, err
	}

	body, err := c.doRequest("POST", "/api/v1/journals", nil, bytes.NewReader(payload), "application/json", http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return decodeJournalCreate(body)
}

// GetJournal fetches a single journal entry by id.
func (c *Client) GetJournal(id int64) (*JournalDetail, error) {
	body, err := c.doRequest("GET", fmt.Sprintf("/api/v1/journals/%d", id), nil, nil, "", http.StatusOK)
	if err != nil {
		return nil, err
	}
	return decodeJournalDetail(body)
}

// ListJournalsOptions are the query parameters for ListJournals.
// Date bounds are sent only when non-empty.
type ListJournalsOptions struct {
	DateFrom string
	DateTo   string
	Page     int // Default: 1
	PerPage  int // Default: 20
}

// ListJournals fetches one page of journal entries.
func (c *Client) ListJournals(opts ListJournalsOptions) (*JournalListResponse, error) {
	page := opts.Page
	if page == 0 {
		page = 1
	}
	perPage := opts.PerPage
	if perPage == 0 {
		perPage = 20
	}

	query := url.Values{}
	if opts.DateFrom != "" {
		query.Set("date_from", opts.DateFrom)
	}
	if opts.DateTo != "" {
		query.Set("date_to", opts.DateTo)
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	body, err := c.doRequest("GET", "/api/v1/journals", query, nil, "", http.StatusOK)
	if err != nil {
		return nil, err
	}
	return decodeJournalList(body)
}

// DeleteJournal deletes a journal entry by id.
func (c *Client) DeleteJournal(id int64) error {
	_, err := c.doRequest("DELETE", fmt.Sprintf("/api/v1/journals/%d", id), nil, nil, "", http.StatusOK)
	return err
}

// AnalyzeOptions are the optional parameters for image analysis.
type AnalyzeOptions struct {
	// Comment is attached to the upload. Truncated to 500 characters.
	Comment string
	// Notify asks the server to send a notification when analysis finishes.
	Notify bool
	// Filename overrides the name reported for the image part.
	// Defaults to "image.jpg", or the path's base name for AnalyzeFile.
	Filename string
	// ContentType overrides the image part's content type. Default: image/jpeg.
	ContentType string
}

// Analyze uploads a receipt image for AI analysis and returns the
// created draft id with its suggested journal shapes.
func (c *Client) Analyze(image []byte, opts AnalyzeOptions) (*AnalyzeResponse, error) {
	payload, contentType, err := encodeAnalyzeUpload(imageUpload{
		data:        image,
		filename:    opts.Filename,
		contentType: opts.ContentType,
		comment:     opts.Comment,
		notify:      opts.Notify,
	})
	if err != nil {
		return nil, err
	}

	body, err := c.doRequest("POST", "/api/v1/ai/analyze", nil, payload, contentType, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return decodeAnalyze(body)
}

// AnalyzeFile reads an image from disk and uploads it for AI analysis.
// The part's filename defaults to the path's base name.
func (c *Client) AnalyzeFile(path string, opts AnalyzeOptions) (*AnalyzeResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	if opts.Filename == "" {
		opts.Filename = filepath.Base(path)
	}
	return c.Analyze(data, opts)
}

// ListDraftsOptions are the query parameters for ListDrafts.
type ListDraftsOptions struct {
	Status  string // Default: "analyzed"
	Page    int    // Default: 1
	PerPage int    // Default: 50
}

// ListDrafts fetches one page of AI drafts.
func (c *Client) ListDrafts(opts ListDraftsOptions) (*DraftListResponse, error) {
	status := opts.Status
	if status == "" {
		status = "analyzed"
	}
	page := opts.Page
	if page == 0 {
		page = 1
	}
	perPage := opts.PerPage
	if perPage == 0 {
		perPage = 50
	}

	query := url.Values{}
	query.Set("status", status)
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	body, err := c.doRequest("GET", "/api/v1/ai/drafts", query, nil, "", http.StatusOK)
	if err != nil {
		return nil, err
	}
	return decodeDraftList(body)
}

// GetDraft fetches a single AI draft including its suggestions.
func (c *Client) GetDraft(id int64) (*DraftDetail, error) {
	body, err := c.doRequest("GET", fmt.Sprintf("/api/v1/ai/drafts/%d", id), nil, nil, "", http.StatusOK)
	if err != nil {
		return nil, err
	}
	return decodeDraftDetail(body)
}

// DeleteDraft deletes an AI draft by id.
func (c *Client) DeleteDraft(id int64) error {
	_, err := c.doRequest("DELETE", fmt.Sprintf("/api/v1/ai/drafts/%d", id), nil, nil, "", http.StatusOK)
	return err
}

// doRequest performs one API round trip. It returns the response body on
// the expected status and a classified error otherwise.
func (c *Client) doRequest(method, path string, query url.Values, body io.Reader, contentType string, wantStatus int) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequest(method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != wantStatus {
		return nil, classifyError(resp.StatusCode, respBody)
	}
	return respBody, nil
}

// classifyError maps a non-success response to the error taxonomy:
// 401 becomes an AuthenticationError, anything else an APIError. A body
// that is not valid JSON is reported as-is, unclassified.
func classifyError(status int, body []byte) error {
	var wire struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return fmt.Errorf("kakeibo API error (status %d): %s", status, string(body))
	}

	message := wire.Error
	if message == "" {
		message = "unknown error"
	}

	if status == http.StatusUnauthorized {
		return newAuthenticationError(message)
	}
	return &APIError{StatusCode: status, Message: message}
}
