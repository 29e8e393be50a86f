package bedrock

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/document"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teatime-labs/moodgate/pkg/infra/providers"
)

type fakeRuntime struct {
	input *bedrockruntime.ConverseInput
	out   *bedrockruntime.ConverseOutput
	err   error
}

func (f *fakeRuntime) Converse(
	_ context.Context,
	params *bedrockruntime.ConverseInput,
	_ ...func(*bedrockruntime.Options),
) (*bedrockruntime.ConverseOutput, error) {
	f.input = params
	return f.out, f.err
}

func newTestClient(runtime converseAPI) (*client, *int) {
	builds := 0
	return &client{
		clientPool: make(map[string]converseAPI),
		build: func(context.Context, *providers.BedrockCredentials) (converseAPI, error) {
			builds++
			return runtime, nil
		},
	}, &builds
}

func testConfig() *providers.Config {
	return &providers.Config{
		Credentials: providers.Credentials{Bedrock: &providers.BedrockCredentials{Region: "us-east-1"}},
	}
}

func toolUseOutput(input map[string]any) *bedrockruntime.ConverseOutput {
	return &bedrockruntime.ConverseOutput{
		Output: &types.ConverseOutputMemberMessage{Value: types.Message{
			Role: types.ConversationRoleAssistant,
			Content: []types.ContentBlock{
				&types.ContentBlockMemberText{Value: "classifying"},
				&types.ContentBlockMemberToolUse{Value: types.ToolUseBlock{
					ToolUseId: aws.String("tooluse_1"),
					Name:      aws.String(providers.ClassifyFunctionName),
					Input:     document.NewLazyDocument(input),
				}},
			},
		}},
	}
}

func TestClassify_MissingRegion(t *testing.T) {
	_, err := NewBedrockClient().Classify(context.Background(), &providers.Config{}, "hi")
	assert.ErrorContains(t, err, "bedrock region is required")
}

func TestClassify_ReturnsToolInput(t *testing.T) {
	runtime := &fakeRuntime{out: toolUseOutput(map[string]any{"emotion": "Sad", "riskLevel": "high"})}
	c, _ := newTestClient(runtime)

	call, err := c.Classify(context.Background(), testConfig(), "nothing helps")

	require.NoError(t, err)
	require.NotNil(t, call)
	assert.Equal(t, providers.ClassifyFunctionName, call.Name)
	assert.JSONEq(t, `{"emotion":"Sad","riskLevel":"high"}`, call.Arguments)

	require.NotNil(t, runtime.input)
	assert.Equal(t, defaultModel, aws.ToString(runtime.input.ModelId))
	choice, ok := runtime.input.ToolConfig.ToolChoice.(*types.ToolChoiceMemberTool)
	require.True(t, ok)
	assert.Equal(t, providers.ClassifyFunctionName, aws.ToString(choice.Value.Name))
	assert.Equal(t, int32(defaultMaxTokens), aws.ToInt32(runtime.input.InferenceConfig.MaxTokens))
}

func TestClassify_NoToolCall(t *testing.T) {
	runtime := &fakeRuntime{out: &bedrockruntime.ConverseOutput{
		Output: &types.ConverseOutputMemberMessage{Value: types.Message{
			Content: []types.ContentBlock{&types.ContentBlockMemberText{Value: "I feel you"}},
		}},
	}}
	c, _ := newTestClient(runtime)

	call, err := c.Classify(context.Background(), testConfig(), "hello")

	require.NoError(t, err)
	assert.Nil(t, call)
}

func TestClassify_MapsThrottling(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "throttled", err: &types.ThrottlingException{Message: aws.String("slow down")}, wantStatus: http.StatusTooManyRequests},
		{name: "quota", err: &types.ServiceQuotaExceededException{Message: aws.String("quota")}, wantStatus: http.StatusPaymentRequired},
		{name: "network", err: errors.New("dial tcp: timeout"), wantStatus: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(&fakeRuntime{err: tt.err})

			_, err := c.Classify(context.Background(), testConfig(), "hello")

			upstreamErr, ok := providers.AsUpstreamError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantStatus, upstreamErr.StatusCode)
		})
	}
}

func TestClassify_ReusesRuntimeClient(t *testing.T) {
	runtime := &fakeRuntime{out: toolUseOutput(map[string]any{"emotion": "Happy", "riskLevel": "low"})}
	c, builds := newTestClient(runtime)

	for i := 0; i < 3; i++ {
		_, err := c.Classify(context.Background(), testConfig(), "good day")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, *builds)

	other := testConfig()
	other.Credentials.Bedrock.Region = "eu-west-1"
	_, err := c.Classify(context.Background(), other, "good day")
	require.NoError(t, err)
	assert.Equal(t, 2, *builds)
}
