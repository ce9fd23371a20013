package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterClient talks to OpenRouter's OpenAI-compatible chat completions
// endpoint.
type OpenRouterClient struct {
	http    *resty.Client
	apiKey  string
	model   string
	baseURL string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string // optional, defaults to the hosted OpenRouter API
}

func NewOpenRouterClient(cfg OpenRouterConfig) (*OpenRouterClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter api key is not set")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("openrouter model is not set")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	return &OpenRouterClient{
		http:    resty.New(),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: baseURL,
	}, nil
}

func (c *OpenRouterClient) Chat(ctx context.Context, systemMessage string, messages []Message) (string, error) {
	payload := []map[string]string{}
	if systemMessage != "" {
		payload = append(payload, map[string]string{"role": RoleSystem, "content": systemMessage})
	}
	for _, m := range messages {
		payload = append(payload, map[string]string{"role": m.Role, "content": m.Content})
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model":    c.model,
			"messages": payload,
		}).
		Post(c.baseURL + "/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openrouter request: %w", err)
	}
	if resp.StatusCode() >= 400 {
		return "", fmt.Errorf("openrouter returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("decode openrouter response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("openrouter returned no choices")
	}

	return result.Choices[0].Message.Content, nil
}
