package llm

import (
	"context"
	"fmt"
)

type Provider string

const (
	ProviderOpenRouter Provider = "openrouter"
	ProviderLangChain  Provider = "langchain" // openai / groq / other OpenAI-compatible APIs
	ProviderGemini     Provider = "gemini"
)

type Config struct {
	Provider Provider
	Model    string
	BaseURL  string
	APIKey   string
}

func New(ctx context.Context, cfg Config) (Client, error) {
	switch cfg.Provider {
	case ProviderOpenRouter:
		return NewOpenRouterClient(OpenRouterConfig{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
	case ProviderLangChain:
		return NewLangChainClient(LangChainConfig{
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			APIKey:  cfg.APIKey,
		})
	case ProviderGemini:
		return NewGeminiClient(ctx, GeminiConfig{
			APIKey:  cfg.APIKey,
			ModelID: cfg.Model,
		})
	default:
		return nil, fmt.Errorf("unknown provider %s", cfg.Provider)
	}
}
