package factory

import (
	"fmt"
	"sync"

	"github.com/teatime-labs/moodgate/pkg/config"
	"github.com/teatime-labs/moodgate/pkg/infra/providers"
	"github.com/teatime-labs/moodgate/pkg/infra/providers/anthropic"
	"github.com/teatime-labs/moodgate/pkg/infra/providers/azure"
	"github.com/teatime-labs/moodgate/pkg/infra/providers/bedrock"
	"github.com/teatime-labs/moodgate/pkg/infra/providers/gemini"
	"github.com/teatime-labs/moodgate/pkg/infra/providers/openai"
)

type ProviderLocator interface {
	Get(provider string) (providers.Client, error)
}

type providerLocator struct {
	mu      sync.Mutex
	clients map[string]providers.Client
}

func NewProviderLocator() ProviderLocator {
	return &providerLocator{clients: make(map[string]providers.Client)}
}

func (f *providerLocator) Get(provider string) (providers.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cli, ok := f.clients[provider]; ok {
		return cli, nil
	}
	var cli providers.Client
	switch provider {
	case config.ProviderOpenAI:
		cli = openai.NewOpenaiClient()
	case config.ProviderGemini:
		cli = gemini.NewGeminiClient()
	case config.ProviderAnthropic:
		cli = anthropic.NewAnthropicClient()
	case config.ProviderAzure:
		cli = azure.NewAzureClient()
	case config.ProviderBedrock:
		cli = bedrock.NewBedrockClient()
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
	f.clients[provider] = cli
	return cli, nil
}

// NewProviderConfig maps the classifier section onto a provider request
// config.
func NewProviderConfig(cfg config.ClassifierConfig) *providers.Config {
	out := &providers.Config{
		Credentials: providers.Credentials{ApiKey: cfg.APIKey},
		Model:       cfg.Model,
		BaseURL:     cfg.BaseURL,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		Options:     cfg.Options,
	}
	if cfg.Provider == config.ProviderAzure {
		out.Credentials.Azure = &providers.AzureCredentials{
			Endpoint:    cfg.Azure.Endpoint,
			ApiVersion:  cfg.Azure.APIVersion,
			UseIdentity: cfg.Azure.UseIdentity,
		}
	}
	if cfg.Provider == config.ProviderBedrock {
		out.Credentials.Bedrock = &providers.BedrockCredentials{
			Region:          cfg.Bedrock.Region,
			AccessKey:       cfg.Bedrock.AccessKey,
			SecretKey:       cfg.Bedrock.SecretKey,
			SessionToken:    cfg.Bedrock.SessionToken,
			RoleARN:         cfg.Bedrock.RoleARN,
			RoleSessionName: cfg.Bedrock.RoleSessionName,
		}
	}
	return out
}
