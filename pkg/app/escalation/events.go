package escalation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/teatime-labs/moodgate/pkg/domain/emotion"
)

const EventPostFlagged = "post.flagged"

// FlaggedEvent announces a published post whose risk level was high or
// critical at submit time.
type FlaggedEvent struct {
	Type       string            `json:"type"`
	PostID     uuid.UUID         `json:"post_id"`
	UserID     uuid.UUID         `json:"user_id"`
	Emotion    emotion.Emotion   `json:"emotion"`
	RiskLevel  emotion.RiskLevel `json:"risk_level"`
	OccurredAt time.Time         `json:"occurred_at"`
}

//go:generate mockery --name=EventPublisher --dir=. --output=./mocks --filename=event_publisher_mock.go --case=underscore
type EventPublisher interface {
	Publish(ctx context.Context, evt FlaggedEvent) error
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, FlaggedEvent) error { return nil }

type ComposerOption func(*composer)

func WithEventPublisher(p EventPublisher) ComposerOption {
	return func(c *composer) {
		if p != nil {
			c.publisher = p
		}
	}
}
