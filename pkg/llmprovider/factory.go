package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"study-assistant/config"
	"study-assistant/pkg/gemini"
	"study-assistant/pkg/openai"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers
// filtered out. A provider whose credential is absent is still registered,
// but not ready: the condition is reported per call instead of crashing
// startup. Providers that fail to initialize for other reasons are skipped.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			return nil, fmt.Errorf("provider %s (model %s): %w", p.Name, p.Model, err)
		}
		providers = append(providers, provider)
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	httpClient := httpClientFor(cfg.Timeout)

	switch cfg.Name {
	case "gemini":
		if cfg.APIKey == "" {
			return NewGeminiAdapter(nil, cfg.Model), nil
		}
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client, cfg.Model), nil

	case "openai":
		if cfg.APIKey == "" {
			return NewOpenAIAdapter(nil, cfg.Model), nil
		}
		client, err := openai.New(openai.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return NewOpenAIAdapter(client, cfg.Model), nil

	case "mentor":
		// Agent-style backend over an OpenAI-compatible endpoint.
		if cfg.APIKey == "" {
			return NewMentorProvider(NewOpenAIAdapter(nil, cfg.Model)), nil
		}
		client, err := openai.New(openai.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return NewMentorProvider(NewOpenAIAdapter(client, cfg.Model)), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func httpClientFor(timeout string) *http.Client {
	if timeout == "" {
		return nil
	}
	d, err := time.ParseDuration(timeout)
	if err != nil || d <= 0 {
		return nil
	}
	return &http.Client{Timeout: d}
}
