package azure

import (
	"context"
	"errors"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/stretchr/testify/assert"
	"github.com/teatime-labs/moodgate/pkg/infra/providers"
)

func TestClassify_RequiresEndpoint(t *testing.T) {
	c := NewAzureClient()
	_, err := c.Classify(context.Background(), &providers.Config{Model: "gpt-4o"}, "hi")
	assert.ErrorContains(t, err, "azure endpoint is required")
}

func TestClassify_RequiresKeyWithoutIdentity(t *testing.T) {
	c := NewAzureClient()
	cfg := &providers.Config{
		Model: "gpt-4o",
		Credentials: providers.Credentials{
			Azure: &providers.AzureCredentials{Endpoint: "https://example.openai.azure.com"},
		},
	}
	_, err := c.Classify(context.Background(), cfg, "hi")
	assert.ErrorContains(t, err, "API key is required")
}

func TestClassify_CredentialFailureIsUpstreamError(t *testing.T) {
	c := &client{
		clientPool: NewAzureClient().(*client).clientPool,
		credential: func() (azcore.TokenCredential, error) {
			return nil, errors.New("no identity")
		},
	}
	cfg := &providers.Config{
		Model: "gpt-4o",
		Credentials: providers.Credentials{
			Azure: &providers.AzureCredentials{Endpoint: "https://example.openai.azure.com", UseIdentity: true},
		},
	}
	_, err := c.Classify(context.Background(), cfg, "hi")

	upstreamErr, ok := providers.AsUpstreamError(err)
	assert.True(t, ok)
	assert.Equal(t, 0, upstreamErr.StatusCode)
	assert.ErrorContains(t, err, "no identity")
}
