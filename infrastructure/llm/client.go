package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	pkgerrors "rootline-backend/pkg/errors"
)

// ChatClient implements Provider against an OpenAI-compatible
// chat-completions endpoint.
type ChatClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

// ChatConfig holds configuration for the chat client.
type ChatConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultChatConfig returns sensible defaults around the given key.
func DefaultChatConfig(apiKey string) ChatConfig {
	return ChatConfig{
		APIKey:  apiKey,
		BaseURL: "https://api.openai.com/v1",
		Model:   "gpt-4o-mini",
		Timeout: 60 * time.Second,
	}
}

// NewChatClient creates a chat client with the given config. Zero-valued
// fields fall back to DefaultChatConfig.
func NewChatClient(config ChatConfig, logger *zap.Logger) *ChatClient {
	defaults := DefaultChatConfig(config.APIKey)
	if config.BaseURL == "" {
		config.BaseURL = defaults.BaseURL
	}
	if config.Model == "" {
		config.Model = defaults.Model
	}
	if config.Timeout == 0 {
		config.Timeout = defaults.Timeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ChatClient{
		apiKey:  config.APIKey,
		baseURL: config.BaseURL,
		model:   config.Model,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger,
	}
}

// chatRequest represents the API request structure.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

// chatMessage represents a message in the conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse represents the API response structure.
type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

// Generate sends one prompt and returns the completion text.
func (c *ChatClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", pkgerrors.NewExternalError("model provider", fmt.Errorf("API key not configured"))
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens:   2048,
		Temperature: 0.7,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", pkgerrors.NewInternalError("failed to encode provider request").WithCause(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", pkgerrors.NewInternalError("failed to build provider request").WithCause(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", pkgerrors.NewNetworkError("model provider request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", pkgerrors.NewNetworkError("failed to read provider response", err)
	}

	c.logger.Debug("Provider call completed",
		zap.String("model", c.model),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		return "", pkgerrors.NewExternalError("model provider",
			fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(body), 500)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", pkgerrors.NewExternalError("model provider", fmt.Errorf("invalid response body: %w", err))
	}
	if parsed.Error != nil {
		return "", pkgerrors.NewExternalError("model provider", fmt.Errorf("%s: %s", parsed.Error.Type, parsed.Error.Message))
	}
	if len(parsed.Choices) == 0 {
		return "", pkgerrors.NewExternalError("model provider", fmt.Errorf("empty choices in response"))
	}

	return parsed.Choices[0].Message.Content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
