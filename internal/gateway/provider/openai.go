package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultTimeout = 60 * time.Second
)

// OpenAIChatClient calls an OpenAI-compatible /v1/chat/completions
// endpoint (Groq, OpenAI, and friends) with vision content parts.
// No retries: provider throttling and outages surface to the caller.
// One instance serves all requests, so no field is written after
// construction.
type OpenAIChatClient struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	Logger      *zerolog.Logger
	// Client handles every outbound request; NewOpenAIChatClient sets
	// it up front.
	Client *http.Client
}

// NewOpenAIChatClient builds a provider client with its http.Client
// constructed eagerly.
func NewOpenAIChatClient(baseURL, apiKey, model string, temperature float64, timeout time.Duration, logger *zerolog.Logger) *OpenAIChatClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &OpenAIChatClient{
		BaseURL:     baseURL,
		APIKey:      apiKey,
		Model:       model,
		Temperature: temperature,
		Logger:      logger,
		Client:      &http.Client{Timeout: timeout},
	}
}

// Ensure the client implements the VisionProvider interface.
var _ VisionProvider = (*OpenAIChatClient)(nil)

type chatContentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *chatImageURL `json:"image_url,omitempty"`
}

type chatImageURL struct {
	URL string `json:"url"`
}

type chatMessage struct {
	Role    string            `json:"role"`
	Content []chatContentPart `json:"content"`
}

// Analyze performs a single synchronous chat completion with one user
// turn holding a text part and an image_url part.
func (c *OpenAIChatClient) Analyze(ctx context.Context, req VisionRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = c.Model
	}
	temperature := c.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	payload := map[string]any{
		"model": model,
		"messages": []chatMessage{{
			Role: "user",
			Content: []chatContentPart{
				{Type: "text", Text: req.Prompt},
				{Type: "image_url", ImageURL: &chatImageURL{URL: req.ImageDataURL}},
			},
		}},
		"temperature": temperature,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding chat completion request: %w", err)
	}

	url := c.endpoint()
	if c.Logger != nil {
		c.Logger.Debug().Str("url", url).Str("model", model).
			Str("authorization", maskSecret(c.APIKey)).
			Msg("chat completion request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating chat completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.client().Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("calling chat completion endpoint: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading chat completion response: %w", err)
	}

	if resp.StatusCode/100 != 2 {
		msg := strings.TrimSpace(gjson.GetBytes(raw, "error.message").String())
		if msg == "" {
			msg = resp.Status
		}
		return "", fmt.Errorf("chat completion status=%d: %s", resp.StatusCode, msg)
	}

	content := gjson.GetBytes(raw, "choices.0.message.content")
	if !content.Exists() {
		return "", fmt.Errorf("chat completion response missing choices")
	}
	return content.String(), nil
}

// endpoint normalizes the base URL so a configured value already ending
// in /chat/completions does not produce a doubled path.
func (c *OpenAIChatClient) endpoint() string {
	url := c.BaseURL
	if url == "" {
		url = defaultBaseURL
	}
	url = strings.TrimRight(url, "/")
	url = strings.TrimSuffix(url, "/chat/completions")
	return url + "/chat/completions"
}

func (c *OpenAIChatClient) client() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return &http.Client{Timeout: defaultTimeout}
}

// maskSecret keeps only the last four characters of a credential for
// debug logging.
func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}
