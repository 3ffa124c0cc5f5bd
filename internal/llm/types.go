// Package llm is the gateway to the remote text generation capability
package llm

import "time"

// Roles used in chat messages
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one chat turn sent to the model
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Category groups prompts that share a cache lifetime
type Category string

const (
	// CategoryGame covers description, voting and elimination prompts
	CategoryGame Category = "game"

	// CategoryWords covers word pair generation
	CategoryWords Category = "words"

	// CategoryDefault covers everything else
	CategoryDefault Category = "default"
)

// GenerateInput contains the prompt to send
type GenerateInput struct {
	Messages []Message

	// Model overrides the configured model when set
	Model string

	// SkipCache forces a remote call; the fresh text replaces any cached entry
	SkipCache bool
}

// GenerateOutput contains the normalized model text
type GenerateOutput struct {
	Text     string
	Category Category

	// Cached is set when the text was served without a network call
	Cached bool
}

// CompletionRequest is what a Provider receives
type CompletionRequest struct {
	Messages    []Message
	Model       string
	Temperature float64
	MaxTokens   int
}

// ProviderConfig holds connection settings for a provider
type ProviderConfig struct {
	// Name is openai or dashscope
	Name    string
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}
