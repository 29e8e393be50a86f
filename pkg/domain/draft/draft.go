package draft

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/teatime-labs/moodgate/pkg/domain/emotion"
	"github.com/teatime-labs/moodgate/pkg/domain/post"
)

var (
	ErrEmptyDraft          = errors.New("draft has no text to classify")
	ErrIncompleteDraft     = errors.New("please write something and select an emotion")
	ErrDetectionInProgress = errors.New("emotion detection already in progress")
)

// Draft is a post being composed. Escalation is nil until a classification
// comes back high or critical, and goes back to nil when the user dismisses
// the emergency interface.
type Draft struct {
	ID                   uuid.UUID          `json:"id"`
	UserID               uuid.UUID          `json:"user_id"`
	Content              string             `json:"content"`
	Emotion              *emotion.Emotion   `json:"emotion"`
	Category             post.Category      `json:"category"`
	IsAnonymous          bool               `json:"is_anonymous"`
	AIEmotion            *emotion.Emotion   `json:"ai_emotion"`
	SupportMessage       string             `json:"support_message"`
	CognitiveDistortions []string           `json:"cognitive_distortions"`
	Escalation           *emotion.RiskLevel `json:"escalation"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

func New(userID uuid.UUID) *Draft {
	now := time.Now().UTC()
	return &Draft{
		ID:                   uuid.New(),
		UserID:               userID,
		Category:             post.DefaultCategory,
		CognitiveDistortions: []string{},
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

func (d *Draft) HasText() bool {
	return strings.TrimSpace(d.Content) != ""
}

// ApplyResult folds a classification into the draft. A user-chosen emotion
// is never overwritten.
func (d *Draft) ApplyResult(r emotion.Result) {
	aiEmotion := r.Emotion
	d.AIEmotion = &aiEmotion
	if d.Emotion == nil {
		chosen := r.Emotion
		d.Emotion = &chosen
	}
	if r.SupportMessage != "" {
		d.SupportMessage = r.SupportMessage
	}
	if r.CognitiveDistortions != nil {
		d.CognitiveDistortions = append([]string{}, r.CognitiveDistortions...)
	}
	d.Escalate(r.RiskLevel)
	d.touch()
}

// Escalate moves the escalation state forward. Low never changes it and a
// critical state is not lowered to high.
func (d *Draft) Escalate(level emotion.RiskLevel) bool {
	if !level.Escalated() {
		return false
	}
	if d.Escalation != nil && d.Escalation.Rank() >= level.Rank() {
		return false
	}
	d.Escalation = &level
	return true
}

func (d *Draft) DismissEmergency() {
	d.Escalation = nil
	d.touch()
}

// RiskLevel is the value persisted with the post.
func (d *Draft) RiskLevel() emotion.RiskLevel {
	if d.Escalation != nil && d.Escalation.Escalated() {
		return *d.Escalation
	}
	return emotion.RiskLow
}

func (d *Draft) Validate() error {
	if !d.HasText() || d.Emotion == nil {
		return ErrIncompleteDraft
	}
	return nil
}

// ToPost builds the post to persist. anonymousName is only used when the
// draft is anonymous.
func (d *Draft) ToPost(anonymousName string) *post.Post {
	p := &post.Post{
		UserID:               d.UserID,
		Content:              strings.TrimSpace(d.Content),
		Emotion:              *d.Emotion,
		AIEmotion:            d.AIEmotion,
		Category:             d.Category,
		IsAnonymous:          d.IsAnonymous,
		RiskLevel:            d.RiskLevel(),
		CognitiveDistortions: append([]string{}, d.CognitiveDistortions...),
	}
	if p.Category == "" {
		p.Category = post.DefaultCategory
	}
	if d.IsAnonymous {
		p.AnonymousName = &anonymousName
	}
	if d.SupportMessage != "" {
		msg := d.SupportMessage
		p.SupportMessage = &msg
	}
	return p
}

func (d *Draft) touch() {
	d.UpdatedAt = time.Now().UTC()
}

func (d *Draft) Touch() {
	d.touch()
}
