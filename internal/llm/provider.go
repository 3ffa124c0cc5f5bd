package llm

import (
	"context"
	"fmt"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_provider.go github.com/KirkDiggler/undercover/internal/llm Provider

// Provider performs one remote completion call
type Provider interface {
	Complete(ctx context.Context, req *CompletionRequest) (string, error)
}

// NewProvider builds the provider named in cfg
func NewProvider(cfg *ProviderConfig) (Provider, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	switch cfg.Name {
	case "", "openai":
		return NewOpenAIProvider(cfg)
	case "dashscope":
		return NewDashScopeProvider(cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Name)
	}
}
