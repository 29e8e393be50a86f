package request

import (
	"github.com/teatime-labs/moodgate/pkg/app/escalation"
	"github.com/teatime-labs/moodgate/pkg/domain/emotion"
	"github.com/teatime-labs/moodgate/pkg/domain/post"
)

// DraftRequest is shared by draft creation and edits. Absent fields are left
// unchanged.
type DraftRequest struct {
	Content     *string `json:"content" validate:"omitempty,max=5000"`
	Emotion     *string `json:"emotion" validate:"omitempty,emotion"`
	Category    *string `json:"category" validate:"omitempty,category"`
	IsAnonymous *bool   `json:"is_anonymous"`
}

func (r *DraftRequest) Validate() error {
	return validateStruct(r)
}

func (r *DraftRequest) ToInput() escalation.DraftInput {
	in := escalation.DraftInput{
		Content:     r.Content,
		IsAnonymous: r.IsAnonymous,
	}
	if r.Emotion != nil {
		if e, ok := emotion.Parse(*r.Emotion); ok {
			in.Emotion = &e
		}
	}
	if r.Category != nil {
		if c, ok := post.ParseCategory(*r.Category); ok {
			in.Category = &c
		}
	}
	return in
}
