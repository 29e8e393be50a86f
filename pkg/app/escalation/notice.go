package escalation

import (
	"fmt"

	"github.com/teatime-labs/moodgate/pkg/domain/emotion"
)

type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a transient message for the writer, rendered as a toast by
// clients.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

const (
	msgToxic       = "This content may be harmful. Please consider rephrasing."
	msgUnavailable = "AI detection unavailable"
	msgShared      = "Story shared! 🍵"
)

func detectedNotice(r *emotion.Result) Notice {
	return Notice{Level: NoticeInfo, Message: fmt.Sprintf("AI detected: %s %s", r.Emotion, r.Emoji)}
}
