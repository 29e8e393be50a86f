package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/teatime-labs/moodgate/pkg/domain/emotion"
	"github.com/teatime-labs/moodgate/pkg/infra/providers"
	"golang.org/x/sync/singleflight"
	"google.golang.org/genai"
)

const (
	providerName = "gemini"
	defaultModel = "gemini-2.0-flash"
)

type client struct {
	clientPool *sync.Map
	sf         singleflight.Group
}

func NewGeminiClient() providers.Client {
	return &client{
		clientPool: &sync.Map{},
	}
}

func (c *client) Classify(
	ctx context.Context,
	config *providers.Config,
	text string,
) (*providers.FunctionCall, error) {
	if config.Credentials.ApiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	model := config.Model
	if model == "" {
		model = defaultModel
	}

	genaiClient, err := c.getOrCreateClient(ctx, config.Credentials.ApiKey, config.BaseURL)
	if err != nil {
		return nil, providers.NewUpstreamError(providerName, 0, err)
	}

	result, err := genaiClient.Models.GenerateContent(ctx, model, genai.Text(text), generateConfig(config))
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return nil, providers.NewUpstreamError(providerName, apiErr.Code, err)
		}
		return nil, providers.NewUpstreamError(providerName, 0, err)
	}

	for _, call := range result.FunctionCalls() {
		if call.Name != providers.ClassifyFunctionName {
			continue
		}
		args, err := json.Marshal(call.Args)
		if err != nil {
			return nil, fmt.Errorf("failed to encode function arguments: %w", err)
		}
		return &providers.FunctionCall{Name: call.Name, Arguments: string(args)}, nil
	}
	return nil, nil
}

func generateConfig(config *providers.Config) *genai.GenerateContentConfig {
	systemPrompt := config.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = providers.DefaultSystemPrompt()
	}
	out := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
		Tools: []*genai.Tool{{
			FunctionDeclarations: []*genai.FunctionDeclaration{classifyDeclaration()},
		}},
		ToolConfig: &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode:                 genai.FunctionCallingConfigModeAny,
				AllowedFunctionNames: []string{providers.ClassifyFunctionName},
			},
		},
	}
	if config.Temperature > 0 {
		out.Temperature = genai.Ptr(float32(config.Temperature))
	}
	if config.MaxTokens > 0 {
		out.MaxOutputTokens = int32(config.MaxTokens)
	}
	return out
}

func classifyDeclaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        providers.ClassifyFunctionName,
		Description: providers.ClassifyFunctionDescription,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"emotion":    {Type: genai.TypeString, Enum: emotion.Names()},
				"emoji":      {Type: genai.TypeString},
				"confidence": {Type: genai.TypeNumber},
				"toxic":      {Type: genai.TypeBoolean},
				"riskLevel":  {Type: genai.TypeString, Enum: emotion.RiskLevelNames()},
				"cognitiveDistortions": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"supportMessage": {Type: genai.TypeString},
			},
			Required: providers.ClassifyRequired,
		},
	}
}

func (c *client) getOrCreateClient(ctx context.Context, apiKey, baseURL string) (*genai.Client, error) {
	key := apiKey + "|" + baseURL
	if v, ok := c.clientPool.Load(key); ok {
		if cli, ok := v.(*genai.Client); ok {
			return cli, nil
		}
	}
	v, err, _ := c.sf.Do(key, func() (any, error) {
		if v2, ok := c.clientPool.Load(key); ok {
			return v2, nil
		}
		cfg := &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		}
		if baseURL != "" {
			cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
		}
		cli, err := genai.NewClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		c.clientPool.Store(key, cli)
		return cli, nil
	})
	if err != nil {
		return nil, err
	}
	cli, ok := v.(*genai.Client)
	if !ok {
		return nil, fmt.Errorf("unexpected client type %T", v)
	}
	return cli, nil
}
