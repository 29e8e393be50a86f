package classification_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/teatime-labs/moodgate/pkg/app/classification"
	"github.com/teatime-labs/moodgate/pkg/config"
	"github.com/teatime-labs/moodgate/pkg/domain/emotion"
	"github.com/teatime-labs/moodgate/pkg/infra/crisis"
	"github.com/teatime-labs/moodgate/pkg/infra/providers"
	providerMocks "github.com/teatime-labs/moodgate/pkg/infra/providers/mocks"
)

const sadArgs = `{"emotion":"Sad","emoji":"😢","confidence":81,"toxic":false,"riskLevel":"low",` +
	`"cognitiveDistortions":["self-blame"],"supportMessage":"One exam does not define you."}`

func setupClassifier(t *testing.T, degrade bool) (classification.Classifier, *providerMocks.Client) {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	detector, err := crisis.NewKeywordDetector(config.DefaultCrisisKeywords)
	require.NoError(t, err)

	provider := providerMocks.NewClient(t)
	c := classification.NewClassifier(logger, provider, &providers.Config{Model: "m"}, detector, classification.Options{
		ProviderName:           "openai",
		CrisisMessage:          config.DefaultCrisisMessage,
		DegradeOnUpstreamError: degrade,
	})
	return c, provider
}

func TestClassify_EmptyText(t *testing.T) {
	c, _ := setupClassifier(t, true)

	for _, text := range []string{"", "   \n\t"} {
		result, err := c.Classify(context.Background(), text)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, emotion.ErrInvalidInput)
	}
}

func TestClassify_UsesModelResult(t *testing.T) {
	c, provider := setupClassifier(t, true)
	provider.On("Classify", mock.Anything, mock.Anything, "I failed my exam").
		Return(&providers.FunctionCall{Name: providers.ClassifyFunctionName, Arguments: sadArgs}, nil)

	result, err := c.Classify(context.Background(), "I failed my exam")

	require.NoError(t, err)
	assert.Equal(t, emotion.Sad, result.Emotion)
	assert.Equal(t, 81, result.Confidence)
	assert.Equal(t, emotion.RiskLow, result.RiskLevel)
	assert.Equal(t, []string{"self-blame"}, result.CognitiveDistortions)
	assert.Equal(t, "One exam does not define you.", result.SupportMessage)
}

func TestClassify_CrisisKeywordOverridesModel(t *testing.T) {
	c, provider := setupClassifier(t, true)
	text := "I don't want to live anymore"
	provider.On("Classify", mock.Anything, mock.Anything, text).
		Return(&providers.FunctionCall{Name: providers.ClassifyFunctionName, Arguments: sadArgs}, nil)

	result, err := c.Classify(context.Background(), text)

	require.NoError(t, err)
	assert.Equal(t, emotion.RiskCritical, result.RiskLevel)
	assert.Equal(t, config.DefaultCrisisMessage, result.SupportMessage)
	assert.Equal(t, emotion.Sad, result.Emotion, "other fields keep the model's values")
	assert.Equal(t, []string{"self-blame"}, result.CognitiveDistortions)
}

func TestClassify_CrisisKeywordWithMalformedArguments(t *testing.T) {
	c, provider := setupClassifier(t, true)
	provider.On("Classify", mock.Anything, mock.Anything, mock.Anything).
		Return(&providers.FunctionCall{Name: providers.ClassifyFunctionName, Arguments: "not json"}, nil)

	result, err := c.Classify(context.Background(), "i want to die")

	require.NoError(t, err)
	assert.Equal(t, emotion.Neutral, result.Emotion)
	assert.Equal(t, "😐", result.Emoji)
	assert.Equal(t, 50, result.Confidence)
	assert.Equal(t, emotion.RiskCritical, result.RiskLevel)
	assert.Equal(t, config.DefaultCrisisMessage, result.SupportMessage)
}

func TestClassify_NoFunctionCallFallsBack(t *testing.T) {
	c, provider := setupClassifier(t, true)
	provider.On("Classify", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	result, err := c.Classify(context.Background(), "just a normal day")

	require.NoError(t, err)
	assert.Equal(t, emotion.Fallback(), *result)
}

func TestClassify_ModelHighRiskWithoutKeyword(t *testing.T) {
	c, provider := setupClassifier(t, true)
	provider.On("Classify", mock.Anything, mock.Anything, mock.Anything).
		Return(&providers.FunctionCall{Arguments: `{"emotion":"Hopeless","riskLevel":"high","supportMessage":"you matter"}`}, nil)

	result, err := c.Classify(context.Background(), "nothing ever gets better")

	require.NoError(t, err)
	assert.Equal(t, emotion.RiskHigh, result.RiskLevel)
	assert.Equal(t, "you matter", result.SupportMessage)
}

func TestClassify_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		degrade bool
		wantErr error
	}{
		{name: "rate limited", status: 429, degrade: true, wantErr: emotion.ErrUpstreamRateLimited},
		{name: "quota exhausted", status: 402, degrade: true, wantErr: emotion.ErrUpstreamQuotaExhausted},
		{name: "server error without degrade", status: 500, degrade: false, wantErr: emotion.ErrUpstreamUnavailable},
		{name: "server error with degrade", status: 500, degrade: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, provider := setupClassifier(t, tt.degrade)
			provider.On("Classify", mock.Anything, mock.Anything, mock.Anything).
				Return(nil, providers.NewUpstreamError("openai", tt.status, errors.New("boom")))

			result, err := c.Classify(context.Background(), "a long week")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, emotion.Fallback(), *result)
		})
	}
}

func TestClassify_CrisisKeywordSurvivesRateLimit(t *testing.T) {
	c, provider := setupClassifier(t, false)
	provider.On("Classify", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, providers.NewUpstreamError("openai", 429, errors.New("slow down")))

	result, err := c.Classify(context.Background(), "I want to kill myself")

	require.NoError(t, err)
	assert.Equal(t, emotion.RiskCritical, result.RiskLevel)
	assert.Equal(t, config.DefaultCrisisMessage, result.SupportMessage)
}

func TestClassify_IsIdempotentForSameModelOutput(t *testing.T) {
	c, provider := setupClassifier(t, true)
	provider.On("Classify", mock.Anything, mock.Anything, mock.Anything).
		Return(&providers.FunctionCall{Arguments: sadArgs}, nil)

	first, err := c.Classify(context.Background(), "suicide crossed my mind")
	require.NoError(t, err)
	second, err := c.Classify(context.Background(), "suicide crossed my mind")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
