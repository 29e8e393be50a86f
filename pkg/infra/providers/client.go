package providers

import (
	"context"
)

type Config struct {
	Credentials  Credentials    `json:"credentials"`
	Model        string         `json:"model"`
	BaseURL      string         `json:"base_url,omitempty"`
	MaxTokens    int            `json:"max_tokens,omitempty"`
	Temperature  float64        `json:"temperature,omitempty"`
	SystemPrompt string         `json:"system_prompt,omitempty"`
	Options      map[string]any `json:"options,omitempty"`
}

type Credentials struct {
	ApiKey  string              `json:"api_key,omitempty"`
	Azure   *AzureCredentials   `json:"azure,omitempty"`
	Bedrock *BedrockCredentials `json:"bedrock,omitempty"`
}

type BedrockCredentials struct {
	Region          string `json:"region"`
	AccessKey       string `json:"access_key,omitempty"`
	SecretKey       string `json:"secret_key,omitempty"`
	SessionToken    string `json:"session_token,omitempty"`
	RoleARN         string `json:"role_arn,omitempty"`
	RoleSessionName string `json:"role_session_name,omitempty"`
}

type AzureCredentials struct {
	Endpoint    string `json:"endpoint"`
	ApiVersion  string `json:"api_version,omitempty"`
	UseIdentity bool   `json:"use_identity"`
}

// FunctionCall carries the raw JSON arguments the model produced for the
// forced classification function.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore

// Client returns a nil call and a nil error when the model answered without
// calling the function.
type Client interface {
	Classify(ctx context.Context, config *Config, text string) (*FunctionCall, error)
}
