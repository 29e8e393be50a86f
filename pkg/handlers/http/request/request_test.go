package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teatime-labs/moodgate/pkg/domain/emotion"
	"github.com/teatime-labs/moodgate/pkg/domain/post"
)

func ptr[T any](v T) *T { return &v }

func TestAnalyzeEmotionRequest_Validate(t *testing.T) {
	assert.NoError(t, (&AnalyzeEmotionRequest{Text: "hello"}).Validate())

	err := (&AnalyzeEmotionRequest{}).Validate()
	require.Error(t, err)
	assert.Equal(t, "text is required", err.Error())
}

func TestDraftRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     DraftRequest
		wantErr string
	}{
		{name: "empty edit", req: DraftRequest{}},
		{name: "full", req: DraftRequest{
			Content:     ptr("exam stress"),
			Emotion:     ptr("Stressed"),
			Category:    ptr("College"),
			IsAnonymous: ptr(true),
		}},
		{name: "blank content allowed while composing", req: DraftRequest{Content: ptr("")}},
		{name: "unknown emotion", req: DraftRequest{Emotion: ptr("Bored")}, wantErr: "emotion must be one of"},
		{name: "lowercase emotion", req: DraftRequest{Emotion: ptr("happy")}, wantErr: "emotion must be one of"},
		{name: "unknown category", req: DraftRequest{Category: ptr("Gaming")}, wantErr: `invalid category "Gaming"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDraftRequest_ToInput(t *testing.T) {
	in := (&DraftRequest{
		Content:  ptr("new city"),
		Emotion:  ptr("Excited"),
		Category: ptr("Work"),
	}).ToInput()

	assert.Equal(t, "new city", *in.Content)
	assert.Equal(t, emotion.Excited, *in.Emotion)
	assert.Equal(t, post.CategoryWork, *in.Category)
	assert.Nil(t, in.IsAnonymous)
}
