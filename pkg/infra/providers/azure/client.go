package azure

import (
	"context"
	"fmt"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	openaisdk "github.com/openai/openai-go/v2"
	openaiazure "github.com/openai/openai-go/v2/azure"
	"github.com/openai/openai-go/v2/option"
	"github.com/teatime-labs/moodgate/pkg/infra/providers"
	"github.com/teatime-labs/moodgate/pkg/infra/providers/openai"
	"golang.org/x/sync/singleflight"
)

const (
	providerName      = "azure"
	defaultAPIVersion = "2024-10-21"
)

type client struct {
	clientPool *sync.Map
	sf         singleflight.Group
	credential func() (azcore.TokenCredential, error)
}

func NewAzureClient() providers.Client {
	return &client{
		clientPool: &sync.Map{},
		credential: defaultCredential,
	}
}

// Classify calls an Azure OpenAI deployment. config.Model is the deployment
// name. Authentication uses the API key unless UseIdentity is set, in which
// case the default Azure credential chain is used.
func (c *client) Classify(
	ctx context.Context,
	config *providers.Config,
	text string,
) (*providers.FunctionCall, error) {
	azureCfg := config.Credentials.Azure
	if azureCfg == nil || azureCfg.Endpoint == "" {
		return nil, fmt.Errorf("azure endpoint is required")
	}
	if config.Model == "" {
		return nil, fmt.Errorf("model (deployment ID) is required")
	}
	if !azureCfg.UseIdentity && config.Credentials.ApiKey == "" {
		return nil, fmt.Errorf("API key is required when not using Azure identity")
	}

	azureClient, err := c.getOrCreateClient(azureCfg, config.Credentials.ApiKey)
	if err != nil {
		return nil, providers.NewUpstreamError(providerName, 0, err)
	}
	return openai.Complete(ctx, providerName, azureClient, config, text)
}

func (c *client) getOrCreateClient(cfg *providers.AzureCredentials, apiKey string) (*openaisdk.Client, error) {
	key := fmt.Sprintf("%s|%s|%t|%s", cfg.Endpoint, cfg.ApiVersion, cfg.UseIdentity, apiKey)
	if v, ok := c.clientPool.Load(key); ok {
		if cli, ok := v.(*openaisdk.Client); ok {
			return cli, nil
		}
	}
	v, err, _ := c.sf.Do(key, func() (any, error) {
		if v2, ok := c.clientPool.Load(key); ok {
			return v2, nil
		}
		cli, err := c.newClient(cfg, apiKey)
		if err != nil {
			return nil, err
		}
		c.clientPool.Store(key, cli)
		return cli, nil
	})
	if err != nil {
		return nil, err
	}
	cli, ok := v.(*openaisdk.Client)
	if !ok {
		return nil, fmt.Errorf("unexpected client type %T", v)
	}
	return cli, nil
}

func (c *client) newClient(cfg *providers.AzureCredentials, apiKey string) (*openaisdk.Client, error) {
	apiVersion := cfg.ApiVersion
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}
	opts := []option.RequestOption{
		openaiazure.WithEndpoint(cfg.Endpoint, apiVersion),
		option.WithMaxRetries(0),
	}
	if cfg.UseIdentity {
		cred, err := c.credential()
		if err != nil {
			return nil, fmt.Errorf("failed to create credential: %w", err)
		}
		opts = append(opts, openaiazure.WithTokenCredential(cred))
	} else {
		opts = append(opts, openaiazure.WithAPIKey(apiKey))
	}
	cli := openaisdk.NewClient(opts...)
	return &cli, nil
}

func defaultCredential() (azcore.TokenCredential, error) {
	return azidentity.NewDefaultAzureCredential(nil)
}
