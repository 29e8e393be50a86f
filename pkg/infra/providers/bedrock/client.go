package bedrock

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/document"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/teatime-labs/moodgate/pkg/infra/providers"
)

const (
	providerName       = "bedrock"
	defaultModel       = "anthropic.claude-3-haiku-20240307-v1:0"
	defaultMaxTokens   = 1024
	defaultSessionName = "moodgate-classifier"
)

type converseAPI interface {
	Converse(
		ctx context.Context,
		params *bedrockruntime.ConverseInput,
		optFns ...func(*bedrockruntime.Options),
	) (*bedrockruntime.ConverseOutput, error)
}

type client struct {
	mu         sync.Mutex
	clientPool map[string]converseAPI
	build      func(ctx context.Context, creds *providers.BedrockCredentials) (converseAPI, error)
}

func NewBedrockClient() providers.Client {
	return &client{
		clientPool: make(map[string]converseAPI),
		build:      buildRuntimeClient,
	}
}

// Classify uses the Converse API with the classification tool forced.
func (c *client) Classify(
	ctx context.Context,
	config *providers.Config,
	text string,
) (*providers.FunctionCall, error) {
	creds := config.Credentials.Bedrock
	if creds == nil || creds.Region == "" {
		return nil, fmt.Errorf("bedrock region is required")
	}

	runtime, err := c.getOrCreateClient(ctx, creds)
	if err != nil {
		return nil, providers.NewUpstreamError(providerName, 0, err)
	}

	out, err := runtime.Converse(ctx, buildInput(config, text))
	if err != nil {
		return nil, providers.NewUpstreamError(providerName, statusOf(err), err)
	}

	msg, ok := out.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return nil, nil
	}
	for _, block := range msg.Value.Content {
		toolUse, ok := block.(*types.ContentBlockMemberToolUse)
		if !ok || aws.ToString(toolUse.Value.Name) != providers.ClassifyFunctionName {
			continue
		}
		if toolUse.Value.Input == nil {
			return nil, nil
		}
		raw, err := toolUse.Value.Input.MarshalSmithyDocument()
		if err != nil {
			return nil, fmt.Errorf("failed to read tool input: %w", err)
		}
		return &providers.FunctionCall{
			Name:      providers.ClassifyFunctionName,
			Arguments: string(raw),
		}, nil
	}
	return nil, nil
}

func buildInput(config *providers.Config, text string) *bedrockruntime.ConverseInput {
	model := config.Model
	if model == "" {
		model = defaultModel
	}
	maxTokens := int32(defaultMaxTokens)
	if config.MaxTokens > 0 {
		maxTokens = int32(config.MaxTokens)
	}
	systemPrompt := config.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = providers.DefaultSystemPrompt()
	}

	inference := &types.InferenceConfiguration{MaxTokens: aws.Int32(maxTokens)}
	if config.Temperature > 0 {
		inference.Temperature = aws.Float32(float32(config.Temperature))
	}

	return &bedrockruntime.ConverseInput{
		ModelId: aws.String(model),
		System: []types.SystemContentBlock{
			&types.SystemContentBlockMemberText{Value: systemPrompt},
		},
		Messages: []types.Message{{
			Role:    types.ConversationRoleUser,
			Content: []types.ContentBlock{&types.ContentBlockMemberText{Value: text}},
		}},
		InferenceConfig: inference,
		ToolConfig: &types.ToolConfiguration{
			Tools: []types.Tool{
				&types.ToolMemberToolSpec{Value: types.ToolSpecification{
					Name:        aws.String(providers.ClassifyFunctionName),
					Description: aws.String(providers.ClassifyFunctionDescription),
					InputSchema: &types.ToolInputSchemaMemberJson{
						Value: document.NewLazyDocument(providers.ClassifyParameters()),
					},
				}},
			},
			ToolChoice: &types.ToolChoiceMemberTool{
				Value: types.SpecificToolChoice{Name: aws.String(providers.ClassifyFunctionName)},
			},
		},
	}
}

// statusOf maps SDK failures onto the HTTP statuses the classifier reacts
// to. Throttling is a rate limit and an exceeded service quota is treated
// like exhausted credits.
func statusOf(err error) int {
	var throttling *types.ThrottlingException
	if errors.As(err, &throttling) {
		return http.StatusTooManyRequests
	}
	var quota *types.ServiceQuotaExceededException
	if errors.As(err, &quota) {
		return http.StatusPaymentRequired
	}
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		return respErr.HTTPStatusCode()
	}
	return 0
}

func (c *client) getOrCreateClient(ctx context.Context, creds *providers.BedrockCredentials) (converseAPI, error) {
	key := creds.Region + "|" + creds.AccessKey + "|" + creds.RoleARN
	c.mu.Lock()
	defer c.mu.Unlock()
	if cli, ok := c.clientPool[key]; ok {
		return cli, nil
	}
	cli, err := c.build(ctx, creds)
	if err != nil {
		return nil, err
	}
	c.clientPool[key] = cli
	return cli, nil
}

func buildRuntimeClient(ctx context.Context, creds *providers.BedrockCredentials) (converseAPI, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(creds.Region),
	}
	if creds.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(aws.CredentialsProviderFunc(
			func(ctx context.Context) (aws.Credentials, error) {
				return aws.Credentials{
					AccessKeyID:     creds.AccessKey,
					SecretAccessKey: creds.SecretKey,
					SessionToken:    creds.SessionToken,
				}, nil
			},
		)))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if creds.RoleARN != "" {
		sessionName := creds.RoleSessionName
		if sessionName == "" {
			sessionName = defaultSessionName
		}
		provider := stscreds.NewAssumeRoleProvider(sts.NewFromConfig(awsCfg), creds.RoleARN,
			func(o *stscreds.AssumeRoleOptions) {
				o.RoleSessionName = sessionName
			},
		)
		awsCfg.Credentials = aws.NewCredentialsCache(provider)
	}

	return bedrockruntime.NewFromConfig(awsCfg, func(o *bedrockruntime.Options) {
		o.RetryMaxAttempts = 1
	}), nil
}
