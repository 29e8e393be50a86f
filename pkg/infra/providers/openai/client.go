package openai

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mitchellh/mapstructure"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/teatime-labs/moodgate/pkg/infra/providers"
	"golang.org/x/sync/singleflight"
)

const providerName = "openai"

type openaiOptions struct {
	Seed int64   `mapstructure:"seed"`
	TopP float64 `mapstructure:"top_p"`
}

type client struct {
	clientPool *sync.Map
	sf         singleflight.Group
}

func NewOpenaiClient() providers.Client {
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
	if config.Model == "" {
		return nil, fmt.Errorf("model is required")
	}
	openaiClient := c.getOrCreateClient(config.Credentials.ApiKey, config.BaseURL)
	return Complete(ctx, providerName, openaiClient, config, text)
}

// Complete runs one chat completion that forces the classification function
// and returns its arguments. It is shared with the Azure provider.
func Complete(
	ctx context.Context,
	provider string,
	openaiClient *openai.Client,
	config *providers.Config,
	text string,
) (*providers.FunctionCall, error) {
	resp, err := openaiClient.Chat.Completions.New(ctx, BuildParams(config, text))
	if err != nil {
		return nil, wrapError(provider, err)
	}
	if len(resp.Choices) == 0 {
		return nil, nil
	}
	for _, call := range resp.Choices[0].Message.ToolCalls {
		if call.Function.Name == providers.ClassifyFunctionName {
			return &providers.FunctionCall{
				Name:      call.Function.Name,
				Arguments: call.Function.Arguments,
			}, nil
		}
	}
	return nil, nil
}

func BuildParams(config *providers.Config, text string) openai.ChatCompletionNewParams {
	systemPrompt := config.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = providers.DefaultSystemPrompt()
	}

	params := openai.ChatCompletionNewParams{
		Model: config.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(text),
		},
		Tools: []openai.ChatCompletionToolUnionParam{
			openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
				Name:        providers.ClassifyFunctionName,
				Description: openai.String(providers.ClassifyFunctionDescription),
				Parameters:  openai.FunctionParameters(providers.ClassifyParameters()),
			}),
		},
		ToolChoice: openai.ChatCompletionToolChoiceOptionUnionParam{
			OfFunctionToolChoice: &openai.ChatCompletionNamedToolChoiceParam{
				Function: openai.ChatCompletionNamedToolChoiceFunctionParam{
					Name: providers.ClassifyFunctionName,
				},
			},
		},
	}

	if config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(config.MaxTokens))
	}
	if config.Temperature > 0 {
		params.Temperature = openai.Float(config.Temperature)
	}

	if len(config.Options) > 0 {
		var options openaiOptions
		if err := mapstructure.Decode(config.Options, &options); err == nil {
			if options.Seed != 0 {
				params.Seed = openai.Int(options.Seed)
			}
			if options.TopP > 0 {
				params.TopP = openai.Float(options.TopP)
			}
		}
	}
	return params
}

func wrapError(provider string, err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return providers.NewUpstreamError(provider, apiErr.StatusCode, err)
	}
	return providers.NewUpstreamError(provider, 0, err)
}

func (c *client) getOrCreateClient(apiKey, baseURL string) *openai.Client {
	key := apiKey + "|" + baseURL
	if v, ok := c.clientPool.Load(key); ok {
		if cli, ok := v.(*openai.Client); ok {
			return cli
		}
	}
	v, _, _ := c.sf.Do(key, func() (any, error) {
		if v2, ok := c.clientPool.Load(key); ok {
			return v2, nil
		}
		cli := newClient(apiKey, baseURL)
		c.clientPool.Store(key, cli)
		return cli, nil
	})
	if cli, ok := v.(*openai.Client); ok {
		return cli
	}
	return newClient(apiKey, baseURL)
}

// The gateway never retries upstream calls itself; rate limits and quota
// errors go straight back to the caller.
func newClient(apiKey, baseURL string) *openai.Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	cli := openai.NewClient(opts...)
	return &cli
}
