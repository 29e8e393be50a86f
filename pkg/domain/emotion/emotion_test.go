package emotion_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teatime-labs/moodgate/pkg/domain/emotion"
)

func TestParse(t *testing.T) {
	for _, e := range emotion.All() {
		parsed, ok := emotion.Parse(string(e))
		assert.True(t, ok, e)
		assert.Equal(t, e, parsed)
	}

	_, ok := emotion.Parse("happy")
	assert.False(t, ok)
	_, ok = emotion.Parse("Joyful")
	assert.False(t, ok)
}

func TestParseFold(t *testing.T) {
	e, ok := emotion.ParseFold("  overwhelmed ")
	require.True(t, ok)
	assert.Equal(t, emotion.Overwhelmed, e)
}

func TestAll_HasFourteenDistinctLabels(t *testing.T) {
	seen := map[emotion.Emotion]bool{}
	for _, e := range emotion.All() {
		seen[e] = true
	}
	assert.Len(t, seen, 14)
	assert.Len(t, emotion.Names(), 14)
}

func TestEmoji(t *testing.T) {
	assert.Equal(t, "😊", emotion.Happy.Emoji())
	assert.Equal(t, "🪞", emotion.Reflective.Emoji())
	assert.Equal(t, "🫣", emotion.Insecure.Emoji())
	assert.Equal(t, "😐", emotion.Emotion("Bored").Emoji())
}

func TestOrNeutral(t *testing.T) {
	assert.Equal(t, emotion.Sad, emotion.OrNeutral("Sad"))
	assert.Equal(t, emotion.Neutral, emotion.OrNeutral("Bored"))
}

func TestRiskLevel(t *testing.T) {
	assert.False(t, emotion.RiskLow.Escalated())
	assert.True(t, emotion.RiskHigh.Escalated())
	assert.True(t, emotion.RiskCritical.Escalated())

	assert.Equal(t, emotion.RiskCritical, emotion.RiskCritical.Max(emotion.RiskHigh))
	assert.Equal(t, emotion.RiskHigh, emotion.RiskLow.Max(emotion.RiskHigh))

	_, ok := emotion.ParseRiskLevel("medium")
	assert.False(t, ok)
}

func TestResult_JSON(t *testing.T) {
	raw, err := json.Marshal(emotion.Fallback())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"emotion": "Neutral",
		"emoji": "😐",
		"confidence": 50,
		"toxic": false,
		"riskLevel": "low",
		"cognitiveDistortions": [],
		"supportMessage": ""
	}`, string(raw))

	var out emotion.Result
	err = json.Unmarshal([]byte(`{"emotion":"Sad","riskLevel":"extreme"}`), &out)
	assert.ErrorIs(t, err, emotion.ErrInvalidValue)
}

func TestWithCrisisOverride(t *testing.T) {
	in := emotion.Result{
		Emotion:        emotion.Sad,
		Emoji:          "😢",
		Confidence:     80,
		RiskLevel:      emotion.RiskLow,
		SupportMessage: "hang in there",
	}
	out := in.WithCrisisOverride("reach out")

	assert.Equal(t, emotion.RiskCritical, out.RiskLevel)
	assert.Equal(t, "reach out", out.SupportMessage)
	assert.Equal(t, emotion.Sad, out.Emotion)
	assert.Equal(t, 80, out.Confidence)
	assert.NotNil(t, out.CognitiveDistortions)
	assert.Equal(t, out, out.WithCrisisOverride("reach out"))
}
