package support

import "github.com/teatime-labs/moodgate/pkg/domain/emotion"

type Reframe struct {
	Label      string `json:"label"`
	Validation string `json:"validation"`
	Distortion string `json:"distortion"`
	Reframe    string `json:"reframe"`
	Question   string `json:"question"`
}

type WellnessOption struct {
	Kind     string   `json:"kind"`
	Emoji    string   `json:"emoji"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Steps    []string `json:"steps"`
}

// Card is the support block shown under a post.
// Reframe and Message are mutually exclusive.
type Card struct {
	Reframe  *Reframe         `json:"reframe,omitempty"`
	Message  string           `json:"message,omitempty"`
	Wellness []WellnessOption `json:"wellness"`
	Prompt   string           `json:"prompt"`
}

const wellnessPrompt = "Would you like a quick 1-minute reset?"

func BuildCard(e emotion.Emotion, supportMessage string, distortions []string) Card {
	card := Card{
		Wellness: WellnessFor(e),
		Prompt:   wellnessPrompt,
	}
	if len(distortions) > 0 && distortions[0] != "" {
		name := distortions[0]
		r := reframeFor(name)
		r.Label = DistortionLabel(name)
		card.Reframe = &r
		return card
	}
	card.Message = supportMessage
	return card
}

var reframes = map[string]Reframe{
	SelfBlame: {
		Validation: "It sounds incredibly tough to put on a brave face while feeling so lost and disappointed, especially after working so hard.",
		Distortion: "This feeling that 'maybe I'm not good enough' often stems from self-blame, connecting your worth to a single outcome.",
		Reframe:    "💡 One exam result doesn't define your intelligence or effort. Your dedication to studying shows you are good enough, and learning often involves setbacks.",
		Question:   "🤔 What might you say to a friend who felt the same way about themselves after failing an exam?",
	},
	Catastrophizing: {
		Validation: "It's understandable to feel like everything is falling apart when something important goes wrong.",
		Distortion: "When we catastrophize, we imagine the worst possible outcome and treat it as certain.",
		Reframe:    "💡 This is a difficult moment, not a permanent state. Many challenging situations turn out better than our worst fears.",
		Question:   "🤔 Can you think of a past situation that felt catastrophic but turned out okay?",
	},
	AllOrNothing: {
		Validation: "It makes sense to feel frustrated when things don't go perfectly.",
		Distortion: "All-or-nothing thinking makes us see things in extremes: complete success or total failure, with nothing in between.",
		Reframe:    "💡 Most of life exists in the middle ground. Partial progress is still progress, and imperfect results still have value.",
		Question:   "🤔 What parts of this situation actually went well, even if the overall result wasn't perfect?",
	},
}

var defaultReframe = Reframe{
	Validation: "It's completely valid to feel this way. Your emotions are trying to tell you something important.",
	Distortion: "Sometimes our thoughts can amplify difficult feelings beyond what the situation calls for.",
	Reframe:    "💡 Try to separate the feeling from the facts. You are more resilient than this moment suggests.",
	Question:   "🤔 What would you tell someone you care about if they were in your shoes?",
}

func reframeFor(name string) Reframe {
	if r, ok := reframes[name]; ok {
		return r
	}
	return defaultReframe
}
