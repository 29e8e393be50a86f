package emotion

import (
	"fmt"
	"strings"
)

// Emotion is one of the fourteen labels a journal entry can carry.
type Emotion string

const (
	Happy       Emotion = "Happy"
	Sad         Emotion = "Sad"
	Frustrated  Emotion = "Frustrated"
	Excited     Emotion = "Excited"
	Anxious     Emotion = "Anxious"
	Angry       Emotion = "Angry"
	Hopeless    Emotion = "Hopeless"
	Stressed    Emotion = "Stressed"
	Hopeful     Emotion = "Hopeful"
	Confused    Emotion = "Confused"
	Reflective  Emotion = "Reflective"
	Neutral     Emotion = "Neutral"
	Overwhelmed Emotion = "Overwhelmed"
	Insecure    Emotion = "Insecure"
)

var all = []Emotion{
	Happy, Sad, Frustrated, Excited, Anxious, Angry, Hopeless,
	Stressed, Hopeful, Confused, Reflective, Neutral, Overwhelmed, Insecure,
}

// All returns the closed set in catalogue order.
func All() []Emotion {
	out := make([]Emotion, len(all))
	copy(out, all)
	return out
}

// Names returns the labels as plain strings, as used in model tool schemas.
func Names() []string {
	out := make([]string, len(all))
	for i, e := range all {
		out[i] = string(e)
	}
	return out
}

// Parse matches a label exactly.
func Parse(value string) (Emotion, bool) {
	for _, e := range all {
		if string(e) == value {
			return e, true
		}
	}
	return "", false
}

// ParseFold is like Parse but tolerates surrounding space and case.
func ParseFold(value string) (Emotion, bool) {
	value = strings.TrimSpace(value)
	for _, e := range all {
		if strings.EqualFold(string(e), value) {
			return e, true
		}
	}
	return "", false
}

// OrNeutral resolves unknown labels to Neutral.
func OrNeutral(value string) Emotion {
	if e, ok := Parse(value); ok {
		return e
	}
	return Neutral
}

func (e Emotion) Valid() bool {
	_, ok := Parse(string(e))
	return ok
}

func (e Emotion) Emoji() string {
	switch e {
	case Happy:
		return "😊"
	case Sad:
		return "😢"
	case Frustrated:
		return "😤"
	case Excited:
		return "🎉"
	case Anxious:
		return "😰"
	case Angry:
		return "😡"
	case Hopeless:
		return "😞"
	case Stressed:
		return "😫"
	case Hopeful:
		return "🌟"
	case Confused:
		return "🤔"
	case Reflective:
		return "🪞"
	case Overwhelmed:
		return "🤯"
	case Insecure:
		return "🫣"
	default:
		return "😐"
	}
}

func (e Emotion) String() string {
	return string(e)
}

func (e Emotion) MarshalText() ([]byte, error) {
	return []byte(e), nil
}

func (e *Emotion) UnmarshalText(text []byte) error {
	parsed, ok := Parse(string(text))
	if !ok {
		return fmt.Errorf("%w: unknown emotion %q", ErrInvalidValue, string(text))
	}
	*e = parsed
	return nil
}
