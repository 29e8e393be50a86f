package emergency

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/teatime-labs/moodgate/pkg/config"
	"github.com/teatime-labs/moodgate/pkg/domain/emotion"
)

type ContactKind string

const (
	ContactEmergency    ContactKind = "emergency"
	ContactHelpline     ContactKind = "helpline"
	ContactPsychiatrist ContactKind = "psychiatrist"
)

type Contact struct {
	Kind  ContactKind `json:"kind"`
	Label string      `json:"label"`
	URI   string      `json:"uri"`
}

// Prompt is the emergency interface shown for an escalated draft.
type Prompt struct {
	Level        emotion.RiskLevel `json:"level"`
	Title        string            `json:"title"`
	Message      string            `json:"message"`
	Contacts     []Contact         `json:"contacts"`
	DismissLabel string            `json:"dismiss_label"`
}

type Directory struct {
	region    string
	emergency Contact
	helpline  Contact
	finder    Contact
}

func NewDirectory(cfg config.EmergencyConfig) *Directory {
	return &Directory{
		region: cfg.Region,
		emergency: Contact{
			Kind:  ContactEmergency,
			Label: fmt.Sprintf("Call Emergency (%s)", cfg.EmergencyNumber),
			URI:   "tel:" + cfg.EmergencyNumber,
		},
		helpline: Contact{
			Kind:  ContactHelpline,
			Label: "Call Mental Health Helpline",
			URI:   "tel:" + cfg.HelplineNumber,
		},
		finder: Contact{
			Kind:  ContactPsychiatrist,
			Label: "Find a Psychiatrist",
			URI:   cfg.PsychiatristURL,
		},
	}
}

func (d *Directory) Region() string {
	return d.region
}

// PromptFor returns nil when nothing should be shown: no escalation, or a
// level below high.
func (d *Directory) PromptFor(level *emotion.RiskLevel) *Prompt {
	if level == nil {
		return nil
	}
	switch *level {
	case emotion.RiskHigh:
		return &Prompt{
			Level:        emotion.RiskHigh,
			Title:        "You deserve support",
			Message:      "It seems you're going through intense distress. Please consider reaching out to someone right now.",
			Contacts:     []Contact{d.helpline},
			DismissLabel: "Stay in App",
		}
	case emotion.RiskCritical:
		return &Prompt{
			Level:   emotion.RiskCritical,
			Title:   "Immediate Action Recommended",
			Message: "We've noticed signs of severe distress. Please contact emergency services or a mental health professional.",
			Contacts: lo.Filter([]Contact{d.emergency, d.helpline, d.finder}, func(c Contact, _ int) bool {
				return c.URI != "" && c.URI != "tel:"
			}),
			DismissLabel: "Continue",
		}
	default:
		return nil
	}
}
