package factory

import (
	"fmt"

	"github.com/kangsm1989-hue/ai-counsel-web/pkg/llm"
	"github.com/kangsm1989-hue/ai-counsel-web/pkg/llm/gemini"
	"github.com/kangsm1989-hue/ai-counsel-web/pkg/llm/ollama"
)

type ProviderConfig struct {
	Type      string
	ModelName string
	BaseURL   string
	APIKey    string
}

func NewLLMProvider(cfg ProviderConfig) (llm.LLMProvider, error) {
	switch cfg.Type {
	case "ollama":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, cfg.ModelName), nil
	case "gemini":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		return gemini.NewGeminiProvider(cfg.APIKey, cfg.ModelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Type)
	}
}
