package support

import "strings"

const (
	SelfBlame          = "self-blame"
	Catastrophizing    = "catastrophizing"
	AllOrNothing       = "all-or-nothing"
	Overgeneralization = "overgeneralization"
	MindReading        = "mind-reading"
	FortuneTelling     = "fortune-telling"
	EmotionalReasoning = "emotional-reasoning"
	Labeling           = "labeling"
)

var distortionLabels = map[string]string{
	SelfBlame:          "Self-blame pattern detected",
	Catastrophizing:    "Catastrophizing pattern detected",
	AllOrNothing:       "All-or-nothing thinking detected",
	Overgeneralization: "Overgeneralization detected",
	MindReading:        "Mind-reading pattern detected",
	FortuneTelling:     "Fortune-telling pattern detected",
	EmotionalReasoning: "Emotional reasoning detected",
	Labeling:           "Labeling pattern detected",
}

// KnownDistortions lists the vocabulary the model is prompted with.
// Other labels are accepted and shown with a generic heading.
func KnownDistortions() []string {
	return []string{
		SelfBlame, Catastrophizing, AllOrNothing, Overgeneralization,
		MindReading, FortuneTelling, EmotionalReasoning, Labeling,
	}
}

func DistortionLabel(name string) string {
	if label, ok := distortionLabels[name]; ok {
		return label
	}
	return "Thinking pattern detected"
}

// NormalizeDistortion turns "All or Nothing " into "all-or-nothing".
func NormalizeDistortion(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-' || r == '\t'
	}), "-")
}
