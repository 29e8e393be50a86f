package post

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/teatime-labs/moodgate/pkg/domain/emotion"
	"gorm.io/gorm"
)

// Post is a published journal entry.
type Post struct {
	ID                   uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID               uuid.UUID         `json:"user_id" gorm:"type:uuid;not null;index"`
	Content              string            `json:"content" gorm:"type:text;not null"`
	Emotion              emotion.Emotion   `json:"emotion" gorm:"type:text;not null"`
	AIEmotion            *emotion.Emotion  `json:"ai_emotion" gorm:"type:text"`
	Category             Category          `json:"category" gorm:"type:text;not null"`
	IsAnonymous          bool              `json:"is_anonymous" gorm:"not null;default:false"`
	AnonymousName        *string           `json:"anonymous_name" gorm:"type:text"`
	RiskLevel            emotion.RiskLevel `json:"risk_level" gorm:"type:text;not null;default:'low'"`
	SupportMessage       *string           `json:"support_message" gorm:"type:text"`
	CognitiveDistortions pq.StringArray    `json:"cognitive_distortions" gorm:"type:text[];not null;default:'{}'"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.RiskLevel == "" {
		p.RiskLevel = emotion.RiskLow
	}
	if p.CognitiveDistortions == nil {
		p.CognitiveDistortions = pq.StringArray{}
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	return nil
}

func (p *Post) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}

func (p *Post) TableName() string {
	return "posts"
}
