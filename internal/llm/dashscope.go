package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultDashScopeURL = "https://dashscope.aliyuncs.com/api/v1/services/aigc/text-generation/generation"

// DashScopeProvider speaks the native DashScope text-generation envelope
type DashScopeProvider struct {
	httpClient *http.Client
	config     *ProviderConfig
	url        string
}

// NewDashScopeProvider creates a provider for the native DashScope API
func NewDashScopeProvider(cfg *ProviderConfig) (*DashScopeProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w for DashScope provider", ErrMissingAPIKey)
	}

	url := cfg.BaseURL
	if url == "" {
		url = defaultDashScopeURL
	}

	return &DashScopeProvider{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		config:     cfg,
		url:        url,
	}, nil
}

type dashScopeRequest struct {
	Model      string              `json:"model"`
	Input      dashScopeInput      `json:"input"`
	Parameters dashScopeParameters `json:"parameters"`
}

type dashScopeInput struct {
	Messages []Message `json:"messages"`
}

type dashScopeParameters struct {
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	Stream      bool    `json:"stream"`
}

// dashScopeResponse covers both envelopes the API has shipped:
// output.text (legacy) and output.choices[0].message.content
type dashScopeResponse struct {
	Output *struct {
		Text    *string `json:"text"`
		Choices []struct {
			Message *struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	} `json:"output"`
}

// Complete posts the request and normalizes the response into plain text
func (p *DashScopeProvider) Complete(ctx context.Context, req *CompletionRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = p.config.Model
	}

	body, err := json.Marshal(&dashScopeRequest{
		Model: model,
		Input: dashScopeInput{Messages: req.Messages},
		Parameters: dashScopeParameters{
			Temperature: req.Temperature,
			MaxTokens:   req.MaxTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal DashScope request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build DashScope request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.config.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("DashScope request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read DashScope response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("DashScope returned status %d: %s", resp.StatusCode, string(raw))
	}

	return normalizeDashScope(raw)
}

func normalizeDashScope(raw []byte) (string, error) {
	var parsed dashScopeResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}

	if parsed.Output == nil {
		return "", ErrUnexpectedResponse
	}

	if parsed.Output.Text != nil {
		return *parsed.Output.Text, nil
	}

	if len(parsed.Output.Choices) > 0 && parsed.Output.Choices[0].Message != nil {
		return parsed.Output.Choices[0].Message.Content, nil
	}

	return "", ErrUnexpectedResponse
}
