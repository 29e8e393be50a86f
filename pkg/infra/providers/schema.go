package providers

import (
	"strings"

	"github.com/teatime-labs/moodgate/pkg/domain/emotion"
	"github.com/teatime-labs/moodgate/pkg/domain/support"
)

const (
	ClassifyFunctionName        = "classify_emotion"
	ClassifyFunctionDescription = "Classify the emotion of the given text"
)

var ClassifyRequired = []string{"emotion", "emoji", "confidence", "toxic", "riskLevel", "supportMessage"}

// ClassifyParameters is the JSON schema of the classification function.
func ClassifyParameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"emotion": map[string]any{
				"type": "string",
				"enum": emotion.Names(),
			},
			"emoji": map[string]any{
				"type":        "string",
				"description": "A single emoji that matches the emotion",
			},
			"confidence": map[string]any{
				"type":        "number",
				"description": "Confidence from 0 to 100",
			},
			"toxic": map[string]any{
				"type":        "boolean",
				"description": "Whether the text is harmful or toxic towards others",
			},
			"riskLevel": map[string]any{
				"type": "string",
				"enum": emotion.RiskLevelNames(),
			},
			"cognitiveDistortions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"supportMessage": map[string]any{
				"type":        "string",
				"description": "A short, warm message for the writer",
			},
		},
		"required":             ClassifyRequired,
		"additionalProperties": false,
	}
}

// DefaultSystemPrompt instructs the model on labels, risk levels and the
// distortion vocabulary.
func DefaultSystemPrompt() string {
	var b strings.Builder
	b.WriteString("You are an empathetic emotion classifier for a student mental health journaling app. ")
	b.WriteString("Classify the emotion of the user's text into exactly one of: ")
	b.WriteString(strings.Join(emotion.Names(), ", "))
	b.WriteString(".\n")
	b.WriteString("Also return a matching emoji, a confidence from 0 to 100, and whether the text is toxic towards others.\n")
	b.WriteString("Assess self-harm risk as riskLevel: \"low\" for everyday stress or sadness, ")
	b.WriteString("\"high\" for intense distress or hopelessness, ")
	b.WriteString("\"critical\" for any mention of suicide, self-harm or not wanting to live.\n")
	b.WriteString("List any cognitive distortions you notice using these labels: ")
	b.WriteString(strings.Join(support.KnownDistortions(), ", "))
	b.WriteString(".\n")
	b.WriteString("Write a short supportive message (1-2 sentences) in a warm, non-clinical tone.")
	return b.String()
}
