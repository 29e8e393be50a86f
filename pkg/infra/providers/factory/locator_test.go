package factory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teatime-labs/moodgate/pkg/config"
	"github.com/teatime-labs/moodgate/pkg/infra/providers/factory"
)

func TestProviderLocator_Get(t *testing.T) {
	locator := factory.NewProviderLocator()
	for _, name := range []string{"openai", "azure", "anthropic", "gemini", "bedrock"} {
		cli, err := locator.Get(name)
		require.NoError(t, err, name)
		assert.NotNil(t, cli)

		again, err := locator.Get(name)
		require.NoError(t, err)
		assert.Same(t, cli, again)
	}

	_, err := locator.Get("cohere")
	assert.ErrorContains(t, err, "unsupported provider")
}

func TestNewProviderConfig(t *testing.T) {
	cfg := factory.NewProviderConfig(config.ClassifierConfig{
		Provider: "azure",
		Model:    "gpt-4o-mini",
		APIKey:   "k",
		Azure:    config.AzureConfig{Endpoint: "https://x.openai.azure.com", APIVersion: "2024-10-21"},
	})

	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	require.NotNil(t, cfg.Credentials.Azure)
	assert.Equal(t, "https://x.openai.azure.com", cfg.Credentials.Azure.Endpoint)

	cfg = factory.NewProviderConfig(config.ClassifierConfig{Provider: "openai", BaseURL: "https://ai.gateway.lovable.dev/v1/"})
	assert.Nil(t, cfg.Credentials.Azure)
	assert.Equal(t, "https://ai.gateway.lovable.dev/v1/", cfg.BaseURL)
	assert.Nil(t, cfg.Credentials.Bedrock)

	cfg = factory.NewProviderConfig(config.ClassifierConfig{
		Provider: "bedrock",
		Model:    "anthropic.claude-3-haiku-20240307-v1:0",
		Bedrock:  config.BedrockConfig{Region: "eu-west-1", RoleARN: "arn:aws:iam::123456789012:role/classifier"},
	})
	require.NotNil(t, cfg.Credentials.Bedrock)
	assert.Equal(t, "eu-west-1", cfg.Credentials.Bedrock.Region)
	assert.Equal(t, "arn:aws:iam::123456789012:role/classifier", cfg.Credentials.Bedrock.RoleARN)
}
