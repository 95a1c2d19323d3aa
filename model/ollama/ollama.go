// Package ollama provides a model.Generator backed by a local Ollama
// instance over its raw HTTP API.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pixl-sh/pixl-nodes/internal/httpx"
	"github.com/pixl-sh/pixl-nodes/logging"
	"github.com/pixl-sh/pixl-nodes/model"
)

// DefaultBaseURL is the standard local Ollama endpoint.
const DefaultBaseURL = "http://localhost:11434"

// DefaultModels is the static fallback list offered when the local instance
// cannot be reached for a model listing.
var DefaultModels = []string{"llama3", "mistral", "llama2", "clip", "llava"}

// Options configures the Ollama client.
type Options struct {
	BaseURL    string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     logging.Logger
}

// Client talks to the Ollama HTTP API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	opts       Options
}

// NewClient constructs a Client for the configured base URL.
func NewClient(optFns ...func(o *Options)) *Client {
	opts := Options{
		BaseURL: DefaultBaseURL,
		Model:   "llama3",
		Timeout: 30 * time.Second,
		Logger:  logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		opts:       opts,
	}
}

// Ollama API request structure
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// Generate implements model.Generator. The system prompt is prepended to the
// prompt since /api/generate has no separate system turn in this flow. The
// returned text is cleaned for single-line use: quotes stripped, newlines
// flattened.
func (c *Client) Generate(ctx context.Context, req model.Request) (model.Response, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return model.Response{}, fmt.Errorf("input text is empty")
	}

	modelID := req.Model
	if modelID == "" {
		modelID = c.opts.Model
	}

	prompt := req.Prompt
	if strings.TrimSpace(req.SystemPrompt) != "" {
		prompt = req.SystemPrompt + "\n\n" + req.Prompt
	}

	payload, err := json.Marshal(generateRequest{
		Model:  modelID,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return model.Response{}, fmt.Errorf("marshal request: %w", err)
	}

	body, err := httpx.Do(ctx, c.httpClient, c.opts.Logger, func(ctx context.Context) (*http.Request, error) {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Content-Type", "application/json")
		return httpReq, nil
	})
	if err != nil {
		return model.Response{}, err
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return model.Response{}, fmt.Errorf("decode response: %w", err)
	}

	text := CleanText(out.Response)
	if text == "" {
		return model.Response{}, fmt.Errorf("ollama returned empty response")
	}

	return model.Response{Text: text}, nil
}

// Info returns metadata describing this Ollama client.
func (c *Client) Info() model.Info {
	return model.Info{
		Name:     c.opts.Model,
		Provider: "ollama",
	}
}

// ListModels fetches the installed model names from /api/tags. Connection
// failures or an empty listing fall back to DefaultModels so the node's
// model menu always has entries.
func (c *Client) ListModels(ctx context.Context) []string {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return DefaultModels
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return DefaultModels
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return DefaultModels
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return DefaultModels
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	if len(names) == 0 {
		return DefaultModels
	}
	return names
}

// CleanText flattens generated text for single-line consumers: surrounding
// whitespace trimmed, quotes removed, newlines replaced with spaces.
func CleanText(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, `"`, "")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
