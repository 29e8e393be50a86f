package post_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/teatime-labs/moodgate/pkg/domain/emotion"
	"github.com/teatime-labs/moodgate/pkg/domain/post"
)

func TestBeforeCreate_Defaults(t *testing.T) {
	p := &post.Post{Content: "hello", Emotion: emotion.Happy}
	assert.NoError(t, p.BeforeCreate(nil))

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, emotion.RiskLow, p.RiskLevel)
	assert.NotNil(t, p.CognitiveDistortions)
	assert.Empty(t, p.CognitiveDistortions)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, "posts", p.TableName())
}

func TestRandomAnonymousName(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.Contains(t, post.AnonymousNames(emotion.Sad), post.RandomAnonymousName(emotion.Sad))
	}
	assert.Equal(t, post.AnonymousNames(emotion.Neutral), post.AnonymousNames(emotion.Emotion("Bored")))
}

func TestParseCategory(t *testing.T) {
	c, ok := post.ParseCategory("Work")
	assert.True(t, ok)
	assert.Equal(t, post.CategoryWork, c)

	_, ok = post.ParseCategory("work")
	assert.False(t, ok)
	assert.Equal(t, post.CategoryPersonal, post.DefaultCategory)
}
