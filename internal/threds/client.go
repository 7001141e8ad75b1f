package threds

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Client talks to the Threds HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	requestID func() string
}

const (
	defaultAPIURL    = "http://127.0.0.1:3000"
	defaultUserAgent = "threds/0.1"
	maxErrorBody     = 512
)

// ErrImageUpload wraps every failure of UploadImage.
var ErrImageUpload = errors.New("image upload failed")

// APIError reports a non-success HTTP status.
type APIError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("api %s %s returned status %d", e.Method, e.Path, e.Status)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// NewClient builds a Client for the API rooted at apiURL. A bare host:port is
// treated as http. Any path on apiURL is kept as a prefix.
func NewClient(apiURL string) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
		requestID: uuid.NewString,
	}, nil
}

// SetUserAgent replaces the User-Agent sent with every request.
func (c *Client) SetUserAgent(agent string) {
	if agent = strings.TrimSpace(agent); agent != "" {
		c.userAgent = agent
	}
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// FetchThreds lists the threads of a board.
func (c *Client) FetchThreds(ctx context.Context, board BoardID) ([]Thread, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Thread
	if err := c.do(ctx, http.MethodGet, c.endpoint("boards", string(board), "threds"), nil, "", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchThread retrieves a single thread with its posts.
func (c *Client) FetchThread(ctx context.Context, id ID) (*Thread, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(string(id)) == "" {
		return nil, fmt.Errorf("thread id required")
	}
	var payload Thread
	if err := c.do(ctx, http.MethodGet, c.endpoint("threds", string(id)), nil, "", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// CreateThread opens a new thread on board.
func (c *Client) CreateThread(ctx context.Context, board BoardID, payload NewThread) (*Thread, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	var created Thread
	if err := c.do(ctx, http.MethodPost, c.endpoint("boards", string(board), "threds"), bytes.NewReader(body), "application/json", &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreatePost adds a reply to a thread.
func (c *Client) CreatePost(ctx context.Context, threadID ID, payload NewPost) (*Post, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(string(threadID)) == "" {
		return nil, fmt.Errorf("thread id required")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	var created Post
	if err := c.do(ctx, http.MethodPost, c.endpoint("threds", string(threadID), "posts"), bytes.NewReader(body), "application/json", &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UploadImage sends data as a multipart "file" field and returns the hosted
// image URL.
func (c *Client) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrImageUpload)
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(filename)))
	header.Set("Content-Type", mimetype.Detect(data).String())
	part, err := form.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageUpload, err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageUpload, err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageUpload, err)
	}

	var payload UploadResponse
	if err := c.do(ctx, http.MethodPost, c.endpoint("upload"), &buf, form.FormDataContentType(), &payload); err != nil {
		return "", fmt.Errorf("%w: %w", ErrImageUpload, err)
	}
	if strings.TrimSpace(payload.ImageURL) == "" {
		return "", fmt.Errorf("%w: response has no imageUrl", ErrImageUpload)
	}
	return payload.ImageURL, nil
}

// CheckStatus probes /up. Any failure reports offline; it never errors.
func (c *Client) CheckStatus(ctx context.Context) bool {
	return c.Ping(ctx) == nil
}

// Ping probes /up and returns the reason it failed, for logging.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodGet, c.endpoint("up"), nil, "", nil)
}

func (c *Client) endpoint(elem ...string) *url.URL {
	return c.baseURL.JoinPath(elem...)
}

func (c *Client) do(ctx context.Context, method string, target *url.URL, body io.Reader, contentType string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.requestID != nil {
		req.Header.Set("X-Request-ID", c.requestID())
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			Method: method,
			Path:   target.Path,
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(snippet)),
		}
	}
	if dest == nil {
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	return decodeNormalized(raw, dest)
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		trimmed = defaultAPIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", apiURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", apiURL)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	if u.Path == "" {
		u.Path = "/"
	}
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
