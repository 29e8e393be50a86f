package anthropic

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/teatime-labs/moodgate/pkg/infra/providers"
)

const (
	providerName     = "anthropic"
	defaultMaxTokens = 1024
)

type client struct {
	clientPool *sync.Map
}

func NewAnthropicClient() providers.Client {
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

	anthropicClient := c.getOrCreateClient(config.Credentials.ApiKey, config.BaseURL)

	model := anthropic.ModelClaudeHaiku4_5
	if config.Model != "" {
		model = anthropic.Model(config.Model)
	}
	maxTokens := int64(defaultMaxTokens)
	if config.MaxTokens > 0 {
		maxTokens = int64(config.MaxTokens)
	}
	systemPrompt := config.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = providers.DefaultSystemPrompt()
	}

	params := anthropic.MessageNewParams{
		Model:     model,
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt, Type: "text"},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
		Tools: []anthropic.ToolUnionParam{
			{OfTool: &anthropic.ToolParam{
				Name:        providers.ClassifyFunctionName,
				Description: anthropic.String(providers.ClassifyFunctionDescription),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: providers.ClassifyParameters()["properties"],
				},
			}},
		},
		ToolChoice: anthropic.ToolChoiceUnionParam{
			OfTool: &anthropic.ToolChoiceToolParam{Name: providers.ClassifyFunctionName},
		},
	}
	if config.Temperature > 0 {
		params.Temperature = anthropic.Float(config.Temperature)
	}

	message, err := anthropicClient.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return nil, providers.NewUpstreamError(providerName, apiErr.StatusCode, err)
		}
		return nil, providers.NewUpstreamError(providerName, 0, err)
	}

	for _, block := range message.Content {
		if block.Type == "tool_use" && block.Name == providers.ClassifyFunctionName {
			return &providers.FunctionCall{
				Name:      block.Name,
				Arguments: string(block.Input),
			}, nil
		}
	}
	return nil, nil
}

func (c *client) getOrCreateClient(apiKey, baseURL string) anthropic.Client {
	key := apiKey + "|" + baseURL
	if clientVal, ok := c.clientPool.Load(key); ok {
		if cli, ok := clientVal.(anthropic.Client); ok {
			return cli
		}
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	newClient := anthropic.NewClient(opts...)
	c.clientPool.Store(key, newClient)
	return newClient
}
