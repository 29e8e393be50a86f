package escalation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/teatime-labs/moodgate/pkg/domain"
	"github.com/teatime-labs/moodgate/pkg/domain/draft"
	"github.com/teatime-labs/moodgate/pkg/domain/emergency"
	"github.com/teatime-labs/moodgate/pkg/domain/emotion"
	"github.com/teatime-labs/moodgate/pkg/domain/post"
	"github.com/teatime-labs/moodgate/pkg/infra/prometheus"
)

//go:generate mockery --name=EmotionDetector --dir=. --output=./mocks --filename=emotion_detector_mock.go --case=underscore
type EmotionDetector interface {
	Detect(ctx context.Context, text string) (*emotion.Result, error)
}

// DraftInput carries optional edits. Nil fields are left untouched.
type DraftInput struct {
	Content     *string
	Emotion     *emotion.Emotion
	Category    *post.Category
	IsAnonymous *bool
}

type DraftView struct {
	*draft.Draft
	Detecting bool              `json:"detecting"`
	Emergency *emergency.Prompt `json:"emergency"`
}

type DetectOutcome struct {
	Draft   *DraftView      `json:"draft"`
	Result  *emotion.Result `json:"result,omitempty"`
	Notices []Notice        `json:"notices"`
}

type SubmitOutcome struct {
	Post    *post.Post `json:"post"`
	Notices []Notice   `json:"notices"`
}

//go:generate mockery --name=Composer --dir=. --output=./mocks --filename=composer_mock.go --case=underscore
type Composer interface {
	Create(ctx context.Context, userID uuid.UUID, in DraftInput) (*DraftView, error)
	Get(ctx context.Context, userID, draftID uuid.UUID) (*DraftView, error)
	Update(ctx context.Context, userID, draftID uuid.UUID, in DraftInput) (*DraftView, error)
	Detect(ctx context.Context, userID, draftID uuid.UUID) (*DetectOutcome, error)
	DismissEmergency(ctx context.Context, userID, draftID uuid.UUID) (*DraftView, error)
	Submit(ctx context.Context, userID, draftID uuid.UUID) (*SubmitOutcome, error)
}

type composer struct {
	logger    *logrus.Logger
	drafts    draft.Repository
	posts     post.Repository
	detector  EmotionDetector
	directory *emergency.Directory
	publisher EventPublisher
	nameFor   func(emotion.Emotion) string
}

func NewComposer(
	logger *logrus.Logger,
	drafts draft.Repository,
	posts post.Repository,
	detector EmotionDetector,
	directory *emergency.Directory,
	opts ...ComposerOption,
) Composer {
	c := &composer{
		logger:    logger,
		drafts:    drafts,
		posts:     posts,
		detector:  detector,
		directory: directory,
		publisher: nopPublisher{},
		nameFor:   post.RandomAnonymousName,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *composer) Create(ctx context.Context, userID uuid.UUID, in DraftInput) (*DraftView, error) {
	d := draft.New(userID)
	applyInput(d, in)
	if err := c.drafts.Save(ctx, d); err != nil {
		c.logger.WithError(err).Error("failed to save draft")
		return nil, err
	}
	return c.view(ctx, d), nil
}

func (c *composer) Get(ctx context.Context, userID, draftID uuid.UUID) (*DraftView, error) {
	d, err := c.load(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	return c.view(ctx, d), nil
}

// Update is allowed while a detection is in flight; the detection result is
// applied to whatever the draft looks like when it arrives.
func (c *composer) Update(ctx context.Context, userID, draftID uuid.UUID, in DraftInput) (*DraftView, error) {
	d, err := c.load(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	applyInput(d, in)
	d.Touch()
	if err := c.drafts.Save(ctx, d); err != nil {
		c.logger.WithError(err).Error("failed to save draft")
		return nil, err
	}
	return c.view(ctx, d), nil
}

func (c *composer) Detect(ctx context.Context, userID, draftID uuid.UUID) (*DetectOutcome, error) {
	d, err := c.load(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	if !d.HasText() {
		return nil, draft.ErrEmptyDraft
	}

	current, result, err := c.detectLocked(ctx, userID, d)
	if err != nil {
		return nil, err
	}

	if result == nil {
		return &DetectOutcome{
			Draft:   c.view(ctx, current),
			Notices: []Notice{{Level: NoticeError, Message: msgUnavailable}},
		}, nil
	}

	notices := make([]Notice, 0, 2)
	if result.Toxic {
		notices = append(notices, Notice{Level: NoticeWarning, Message: msgToxic})
	}
	notices = append(notices, detectedNotice(result))

	return &DetectOutcome{
		Draft:   c.view(ctx, current),
		Result:  result,
		Notices: notices,
	}, nil
}

// detectLocked holds the per-draft detection lock for the duration of the
// gateway call. A nil result with a nil error means the gateway was
// unavailable and the draft was left as it was.
func (c *composer) detectLocked(
	ctx context.Context,
	userID uuid.UUID,
	d *draft.Draft,
) (*draft.Draft, *emotion.Result, error) {
	acquired, err := c.drafts.AcquireDetection(ctx, d.ID)
	if err != nil {
		c.logger.WithError(err).Error("failed to acquire detection lock")
		return nil, nil, err
	}
	if !acquired {
		return nil, nil, draft.ErrDetectionInProgress
	}
	defer func() {
		if err := c.drafts.ReleaseDetection(context.WithoutCancel(ctx), d.ID); err != nil {
			c.logger.WithError(err).Warn("failed to release detection lock")
		}
	}()

	result, detectErr := c.detector.Detect(ctx, d.Content)

	// the writer may have edited the draft while the gateway was working
	current, err := c.load(ctx, userID, d.ID)
	if err != nil {
		return nil, nil, err
	}

	if detectErr != nil {
		prometheus.DetectionFailuresTotal.Inc()
		c.logger.WithError(detectErr).WithField("draft_id", d.ID).Warn("emotion detection unavailable")
		return current, nil, nil
	}

	before := levelOf(current.Escalation)
	current.ApplyResult(*result)
	if after := levelOf(current.Escalation); after != before && after != "" {
		prometheus.EscalationsTotal.WithLabelValues(string(*current.Escalation)).Inc()
		c.logger.WithFields(logrus.Fields{
			"draft_id": d.ID,
			"level":    *current.Escalation,
		}).Info("draft escalated")
	}
	if err := c.drafts.Save(ctx, current); err != nil {
		c.logger.WithError(err).Error("failed to save draft")
		return nil, nil, err
	}
	return current, result, nil
}

func (c *composer) DismissEmergency(ctx context.Context, userID, draftID uuid.UUID) (*DraftView, error) {
	d, err := c.load(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	d.DismissEmergency()
	if err := c.drafts.Save(ctx, d); err != nil {
		c.logger.WithError(err).Error("failed to save draft")
		return nil, err
	}
	return c.view(ctx, d), nil
}

func (c *composer) Submit(ctx context.Context, userID, draftID uuid.UUID) (*SubmitOutcome, error) {
	d, err := c.load(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var anonymousName string
	if d.IsAnonymous {
		anonymousName = c.nameFor(*d.Emotion)
	}
	p := d.ToPost(anonymousName)
	if err := c.posts.Save(ctx, p); err != nil {
		c.logger.WithError(err).Error("failed to save post")
		return nil, err
	}
	if err := c.drafts.Delete(ctx, draftID); err != nil {
		c.logger.WithError(err).WithField("draft_id", draftID).Warn("failed to delete submitted draft")
	}
	if p.RiskLevel.Escalated() {
		c.publishFlagged(ctx, p)
	}

	return &SubmitOutcome{
		Post:    p,
		Notices: []Notice{{Level: NoticeInfo, Message: msgShared}},
	}, nil
}

// publishFlagged never fails the submit: the post is already stored.
func (c *composer) publishFlagged(ctx context.Context, p *post.Post) {
	evt := FlaggedEvent{
		Type:       EventPostFlagged,
		PostID:     p.ID,
		UserID:     p.UserID,
		Emotion:    p.Emotion,
		RiskLevel:  p.RiskLevel,
		OccurredAt: time.Now().UTC(),
	}
	if err := c.publisher.Publish(context.WithoutCancel(ctx), evt); err != nil {
		c.logger.WithError(err).WithField("post_id", p.ID).Error("failed to publish flagged post event")
	}
}

func (c *composer) load(ctx context.Context, userID, draftID uuid.UUID) (*draft.Draft, error) {
	d, err := c.drafts.Get(ctx, draftID)
	if err != nil {
		if !domain.IsNotFoundError(err) {
			c.logger.WithError(err).Error("failed to load draft")
		}
		return nil, err
	}
	if d.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return d, nil
}

func (c *composer) view(ctx context.Context, d *draft.Draft) *DraftView {
	detecting, err := c.drafts.IsDetecting(ctx, d.ID)
	if err != nil && !errors.Is(err, context.Canceled) {
		c.logger.WithError(err).Warn("failed to read detection state")
	}
	return &DraftView{
		Draft:     d,
		Detecting: detecting,
		Emergency: c.directory.PromptFor(d.Escalation),
	}
}

func levelOf(r *emotion.RiskLevel) emotion.RiskLevel {
	if r == nil {
		return ""
	}
	return *r
}

func applyInput(d *draft.Draft, in DraftInput) {
	if in.Content != nil {
		d.Content = *in.Content
	}
	if in.Emotion != nil {
		e := *in.Emotion
		d.Emotion = &e
	}
	if in.Category != nil {
		d.Category = *in.Category
	}
	if in.IsAnonymous != nil {
		d.IsAnonymous = *in.IsAnonymous
	}
}
