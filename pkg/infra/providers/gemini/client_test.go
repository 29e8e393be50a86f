package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teatime-labs/moodgate/pkg/infra/providers"
	"google.golang.org/genai"
)

func TestClassify_MissingAPIKey(t *testing.T) {
	_, err := NewGeminiClient().Classify(context.Background(), &providers.Config{}, "hi")
	assert.ErrorContains(t, err, "API key is required")
}

func TestGenerateConfig_ForcesClassifyFunction(t *testing.T) {
	cfg := generateConfig(&providers.Config{Temperature: 0.2, MaxTokens: 256})

	require.Len(t, cfg.Tools, 1)
	require.Len(t, cfg.Tools[0].FunctionDeclarations, 1)
	decl := cfg.Tools[0].FunctionDeclarations[0]
	assert.Equal(t, providers.ClassifyFunctionName, decl.Name)
	assert.Len(t, decl.Parameters.Properties["emotion"].Enum, 14)
	assert.Equal(t, genai.TypeArray, decl.Parameters.Properties["cognitiveDistortions"].Type)

	assert.Equal(t, genai.FunctionCallingConfigModeAny, cfg.ToolConfig.FunctionCallingConfig.Mode)
	assert.Equal(t, []string{providers.ClassifyFunctionName}, cfg.ToolConfig.FunctionCallingConfig.AllowedFunctionNames)
	assert.InDelta(t, 0.2, float64(*cfg.Temperature), 0.0001)
	assert.Equal(t, int32(256), cfg.MaxOutputTokens)
	assert.Contains(t, cfg.SystemInstruction.Parts[0].Text, "Reflective")
}
