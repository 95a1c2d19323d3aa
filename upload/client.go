package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/pixl-sh/pixl-nodes/config"
	"github.com/pixl-sh/pixl-nodes/internal/httpx"
	"github.com/pixl-sh/pixl-nodes/internal/util"
	"github.com/pixl-sh/pixl-nodes/logging"
)

const (
	uploadPath     = "/api/graph/upload"
	defaultTimeout = 60 * time.Second
	maxTitleLength = 200
)

// Request carries one image upload to the platform.
type Request struct {
	APIKey      string
	Filename    string
	Data        []byte
	ContentType string
	Title       string
	Tags        []string
}

// Result is the platform response for a successful upload.
type Result struct {
	UploadID string `json:"uploadId"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

// Options configures the Client.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     logging.Logger
}

// Client uploads images to the Pixl platform.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

// NewClient creates a platform upload client.
func NewClient(optFns ...func(o *Options)) *Client {
	opts := Options{
		BaseURL:    config.DefaultAPIURL,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
		Logger:     logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Client{
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
	}
}

// Upload validates the request, posts the image as multipart form data and
// returns the platform response. Rate limits, timeouts and connection
// failures are retried through the shared httpx policy.
func (c *Client) Upload(ctx context.Context, req Request) (Result, error) {
	if err := util.ValidateAPIKey(req.APIKey); err != nil {
		return Result{}, err
	}
	title, err := util.ValidateTitle(req.Title, maxTitleLength)
	if err != nil {
		return Result{}, err
	}
	if len(req.Data) == 0 {
		return Result{}, fmt.Errorf("image data is empty")
	}
	if req.ContentType == "" {
		req.ContentType = "image/png"
	}

	body, contentType, err := buildForm(req, title)
	if err != nil {
		return Result{}, fmt.Errorf("build upload form: %w", err)
	}
	formData := body.Bytes()

	start := time.Now()
	respBody, err := httpx.Do(ctx, c.httpClient, c.logger, func(ctx context.Context) (*http.Request, error) {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+uploadPath, bytes.NewReader(formData))
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		httpReq.Header.Set("Authorization", "Bearer "+req.APIKey)
		httpReq.Header.Set("Content-Type", contentType)
		return httpReq, nil
	})
	if err != nil {
		err = shapeUploadError(err, c.baseURL)
		c.logger.Error("upload.failed", "target", c.baseURL, "bytes", len(req.Data), "duration", time.Since(start).String(), "error", err.Error())
		return Result{}, err
	}

	var result Result
	if err := json.Unmarshal(respBody, &result); err != nil {
		return Result{}, fmt.Errorf("decode upload response: %w", err)
	}

	c.logger.Info("upload.done", "target", c.baseURL, "bytes", len(req.Data), "duration", time.Since(start).String())
	return result, nil
}

func buildForm(req Request, title string) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, req.Filename))
	header.Set("Content-Type", req.ContentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(req.Data); err != nil {
		return nil, "", err
	}

	if err := writer.WriteField("title", title); err != nil {
		return nil, "", err
	}
	if err := writer.WriteField("isAiGenerated", "true"); err != nil {
		return nil, "", err
	}

	tags := make([]string, 0, len(req.Tags))
	for _, tag := range req.Tags {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) > 0 {
		encoded, err := json.Marshal(tags)
		if err != nil {
			return nil, "", err
		}
		if err := writer.WriteField("tags", string(encoded)); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}

// ParseTags splits a comma separated tag string, dropping empty entries.
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// shapeUploadError maps httpx status errors onto platform specific messages.
// Transport errors surviving the retry policy name the endpoint.
func shapeUploadError(err error, baseURL string) error {
	var statusErr *httpx.StatusError
	if !errors.As(err, &statusErr) {
		return fmt.Errorf("failed to connect to the Pixl API at %s: %w", baseURL, err)
	}
	switch statusErr.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("authentication failed: invalid or revoked API key")
	case http.StatusForbidden:
		return fmt.Errorf("storage limit exceeded")
	case http.StatusTooManyRequests:
		return fmt.Errorf("rate limit exceeded, wait before uploading again")
	default:
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(statusErr.Body, &payload); err == nil && payload.Message != "" {
			return fmt.Errorf("upload failed: %s", payload.Message)
		}
		return fmt.Errorf("upload failed: HTTP %d", statusErr.StatusCode)
	}
}
