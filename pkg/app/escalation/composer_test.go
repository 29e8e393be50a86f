package escalation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/teatime-labs/moodgate/pkg/app/escalation"
	escalationMocks "github.com/teatime-labs/moodgate/pkg/app/escalation/mocks"
	"github.com/teatime-labs/moodgate/pkg/config"
	"github.com/teatime-labs/moodgate/pkg/domain"
	"github.com/teatime-labs/moodgate/pkg/domain/draft"
	draftMocks "github.com/teatime-labs/moodgate/pkg/domain/draft/mocks"
	"github.com/teatime-labs/moodgate/pkg/domain/emergency"
	"github.com/teatime-labs/moodgate/pkg/domain/emotion"
	"github.com/teatime-labs/moodgate/pkg/domain/post"
	postMocks "github.com/teatime-labs/moodgate/pkg/domain/post/mocks"
)

type fixture struct {
	composer  escalation.Composer
	drafts    *draftMocks.Repository
	posts     *postMocks.Repository
	detector  *escalationMocks.EmotionDetector
	publisher *escalationMocks.EventPublisher
	userID    uuid.UUID
}

func setup(t *testing.T) *fixture {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	f := &fixture{
		drafts:    draftMocks.NewRepository(t),
		posts:     postMocks.NewRepository(t),
		detector:  escalationMocks.NewEmotionDetector(t),
		publisher: escalationMocks.NewEventPublisher(t),
		userID:    uuid.New(),
	}
	directory := emergency.NewDirectory(config.EmergencyConfig{
		EmergencyNumber: "112",
		HelplineNumber:  "9152987821",
		PsychiatristURL: "https://www.practo.com/",
	})
	f.composer = escalation.NewComposer(
		logger, f.drafts, f.posts, f.detector, directory,
		escalation.WithEventPublisher(f.publisher),
	)
	f.drafts.On("IsDetecting", mock.Anything, mock.Anything).Return(false, nil).Maybe()
	return f
}

func (f *fixture) stored(content string) *draft.Draft {
	d := draft.New(f.userID)
	d.Content = content
	f.drafts.On("Get", mock.Anything, d.ID).Return(d, nil)
	return d
}

func (f *fixture) expectLock(d *draft.Draft) {
	f.drafts.On("AcquireDetection", mock.Anything, d.ID).Return(true, nil).Once()
	f.drafts.On("ReleaseDetection", mock.Anything, d.ID).Return(nil).Once()
}

func ptr[T any](v T) *T { return &v }

func TestCreate(t *testing.T) {
	f := setup(t)
	f.drafts.On("Save", mock.Anything, mock.AnythingOfType("*draft.Draft")).Return(nil)

	view, err := f.composer.Create(context.Background(), f.userID, escalation.DraftInput{
		Content:  ptr("first day at work"),
		Category: ptr(post.CategoryWork),
	})

	require.NoError(t, err)
	assert.Equal(t, f.userID, view.UserID)
	assert.Equal(t, "first day at work", view.Content)
	assert.Equal(t, post.CategoryWork, view.Category)
	assert.Nil(t, view.Emotion)
	assert.Nil(t, view.Emergency)
}

func TestDetect_AppliesResult(t *testing.T) {
	f := setup(t)
	d := f.stored("I failed my exam")
	f.expectLock(d)
	f.detector.On("Detect", mock.Anything, "I failed my exam").Return(&emotion.Result{
		Emotion:              emotion.Sad,
		Emoji:                "😢",
		Confidence:           84,
		RiskLevel:            emotion.RiskLow,
		CognitiveDistortions: []string{"self-blame"},
		SupportMessage:       "One exam does not define you.",
	}, nil)
	f.drafts.On("Save", mock.Anything, d).Return(nil)

	out, err := f.composer.Detect(context.Background(), f.userID, d.ID)

	require.NoError(t, err)
	require.NotNil(t, out.Result)
	assert.Equal(t, emotion.Sad, *out.Draft.Emotion)
	assert.Equal(t, emotion.Sad, *out.Draft.AIEmotion)
	assert.Equal(t, "One exam does not define you.", out.Draft.SupportMessage)
	assert.Equal(t, []string{"self-blame"}, out.Draft.CognitiveDistortions)
	assert.Nil(t, out.Draft.Escalation)
	assert.Nil(t, out.Draft.Emergency)
	assert.Equal(t, []escalation.Notice{{Level: escalation.NoticeInfo, Message: "AI detected: Sad 😢"}}, out.Notices)
}

func TestDetect_KeepsChosenEmotion(t *testing.T) {
	f := setup(t)
	d := f.stored("new job, new city")
	d.Emotion = ptr(emotion.Excited)
	f.expectLock(d)
	f.detector.On("Detect", mock.Anything, mock.Anything).
		Return(&emotion.Result{Emotion: emotion.Anxious, Emoji: "😰", RiskLevel: emotion.RiskLow}, nil)
	f.drafts.On("Save", mock.Anything, d).Return(nil)

	out, err := f.composer.Detect(context.Background(), f.userID, d.ID)

	require.NoError(t, err)
	assert.Equal(t, emotion.Excited, *out.Draft.Emotion)
	assert.Equal(t, emotion.Anxious, *out.Draft.AIEmotion)
}

func TestDetect_CriticalRaisesEmergency(t *testing.T) {
	f := setup(t)
	d := f.stored("I want to die")
	f.expectLock(d)
	f.detector.On("Detect", mock.Anything, mock.Anything).Return(&emotion.Result{
		Emotion:        emotion.Hopeless,
		Emoji:          "😞",
		RiskLevel:      emotion.RiskCritical,
		SupportMessage: config.DefaultCrisisMessage,
	}, nil)
	f.drafts.On("Save", mock.Anything, d).Return(nil)

	out, err := f.composer.Detect(context.Background(), f.userID, d.ID)

	require.NoError(t, err)
	require.NotNil(t, out.Draft.Escalation)
	assert.Equal(t, emotion.RiskCritical, *out.Draft.Escalation)
	require.NotNil(t, out.Draft.Emergency)
	assert.Equal(t, "Immediate Action Recommended", out.Draft.Emergency.Title)
	assert.Len(t, out.Draft.Emergency.Contacts, 3)
}

func TestDetect_HighOffersHelplineOnly(t *testing.T) {
	f := setup(t)
	d := f.stored("nothing matters lately")
	f.expectLock(d)
	f.detector.On("Detect", mock.Anything, mock.Anything).
		Return(&emotion.Result{Emotion: emotion.Hopeless, Emoji: "😞", RiskLevel: emotion.RiskHigh}, nil)
	f.drafts.On("Save", mock.Anything, d).Return(nil)

	out, err := f.composer.Detect(context.Background(), f.userID, d.ID)

	require.NoError(t, err)
	require.NotNil(t, out.Draft.Emergency)
	require.Len(t, out.Draft.Emergency.Contacts, 1)
	assert.Equal(t, emergency.ContactHelpline, out.Draft.Emergency.Contacts[0].Kind)
}

func TestDetect_ToxicAddsWarning(t *testing.T) {
	f := setup(t)
	d := f.stored("they are all idiots")
	f.expectLock(d)
	f.detector.On("Detect", mock.Anything, mock.Anything).
		Return(&emotion.Result{Emotion: emotion.Angry, Emoji: "😡", Toxic: true, RiskLevel: emotion.RiskLow}, nil)
	f.drafts.On("Save", mock.Anything, d).Return(nil)

	out, err := f.composer.Detect(context.Background(), f.userID, d.ID)

	require.NoError(t, err)
	require.Len(t, out.Notices, 2)
	assert.Equal(t, escalation.NoticeWarning, out.Notices[0].Level)
	assert.Equal(t, "This content may be harmful. Please consider rephrasing.", out.Notices[0].Message)
	assert.Equal(t, "AI detected: Angry 😡", out.Notices[1].Message)
}

func TestDetect_GatewayFailureLeavesDraftUntouched(t *testing.T) {
	f := setup(t)
	d := f.stored("long day")
	f.expectLock(d)
	f.detector.On("Detect", mock.Anything, mock.Anything).Return(nil, errors.New("gateway returned 429"))

	out, err := f.composer.Detect(context.Background(), f.userID, d.ID)

	require.NoError(t, err)
	assert.Nil(t, out.Result)
	assert.Nil(t, out.Draft.Emotion)
	assert.Nil(t, out.Draft.AIEmotion)
	assert.Equal(t, []escalation.Notice{{Level: escalation.NoticeError, Message: "AI detection unavailable"}}, out.Notices)
	f.drafts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDetect_BlankContent(t *testing.T) {
	f := setup(t)
	d := f.stored("   ")

	_, err := f.composer.Detect(context.Background(), f.userID, d.ID)

	assert.ErrorIs(t, err, draft.ErrEmptyDraft)
	f.drafts.AssertNotCalled(t, "AcquireDetection", mock.Anything, mock.Anything)
}

func TestDetect_RejectsConcurrentDetection(t *testing.T) {
	f := setup(t)
	d := f.stored("exam results tomorrow")
	f.drafts.On("AcquireDetection", mock.Anything, d.ID).Return(false, nil)

	_, err := f.composer.Detect(context.Background(), f.userID, d.ID)

	assert.ErrorIs(t, err, draft.ErrDetectionInProgress)
	f.detector.AssertNotCalled(t, "Detect", mock.Anything, mock.Anything)
}

func TestDetect_OtherUsersDraft(t *testing.T) {
	f := setup(t)
	d := f.stored("mine")

	_, err := f.composer.Detect(context.Background(), uuid.New(), d.ID)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDismissEmergency(t *testing.T) {
	f := setup(t)
	d := f.stored("I want to die")
	d.Escalate(emotion.RiskCritical)
	f.drafts.On("Save", mock.Anything, d).Return(nil)

	view, err := f.composer.DismissEmergency(context.Background(), f.userID, d.ID)

	require.NoError(t, err)
	assert.Nil(t, view.Escalation)
	assert.Nil(t, view.Emergency)
	assert.Equal(t, "I want to die", view.Content)
}

func TestSubmit_PersistsEscalatedRisk(t *testing.T) {
	f := setup(t)
	d := f.stored("  everything feels pointless  ")
	d.Emotion = ptr(emotion.Hopeless)
	d.IsAnonymous = true
	d.ApplyResult(emotion.Result{
		Emotion:        emotion.Hopeless,
		RiskLevel:      emotion.RiskHigh,
		SupportMessage: "you matter",
	})

	var saved *post.Post
	f.posts.On("Save", mock.Anything, mock.AnythingOfType("*post.Post")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*post.Post) }).
		Return(nil)
	f.drafts.On("Delete", mock.Anything, d.ID).Return(nil)
	f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(evt escalation.FlaggedEvent) bool {
		return evt.Type == escalation.EventPostFlagged &&
			evt.UserID == f.userID &&
			evt.RiskLevel == emotion.RiskHigh &&
			evt.Emotion == emotion.Hopeless
	})).Return(nil).Once()

	out, err := f.composer.Submit(context.Background(), f.userID, d.ID)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "everything feels pointless", saved.Content)
	assert.Equal(t, emotion.RiskHigh, saved.RiskLevel)
	assert.Equal(t, emotion.Hopeless, *saved.AIEmotion)
	assert.Equal(t, "you matter", *saved.SupportMessage)
	require.NotNil(t, saved.AnonymousName)
	assert.Contains(t, post.AnonymousNames(emotion.Hopeless), *saved.AnonymousName)
	assert.Equal(t, "Story shared! 🍵", out.Notices[0].Message)
}

func TestSubmit_PublishFailureKeepsPost(t *testing.T) {
	f := setup(t)
	d := f.stored("i want to die")
	d.Emotion = ptr(emotion.Hopeless)
	d.Escalate(emotion.RiskCritical)

	f.posts.On("Save", mock.Anything, mock.AnythingOfType("*post.Post")).Return(nil)
	f.drafts.On("Delete", mock.Anything, d.ID).Return(nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	out, err := f.composer.Submit(context.Background(), f.userID, d.ID)

	require.NoError(t, err)
	assert.Equal(t, emotion.RiskCritical, out.Post.RiskLevel)
}

func TestSubmit_AfterDismissStoresLow(t *testing.T) {
	f := setup(t)
	d := f.stored("rough night")
	d.Emotion = ptr(emotion.Sad)
	d.Escalate(emotion.RiskHigh)
	d.DismissEmergency()

	f.posts.On("Save", mock.Anything, mock.MatchedBy(func(p *post.Post) bool {
		return p.RiskLevel == emotion.RiskLow && p.AnonymousName == nil && p.AIEmotion == nil
	})).Return(nil)
	f.drafts.On("Delete", mock.Anything, d.ID).Return(nil)

	_, err := f.composer.Submit(context.Background(), f.userID, d.ID)
	require.NoError(t, err)
}

func TestSubmit_Incomplete(t *testing.T) {
	f := setup(t)
	d := f.stored("no emotion chosen")

	_, err := f.composer.Submit(context.Background(), f.userID, d.ID)

	assert.ErrorIs(t, err, draft.ErrIncompleteDraft)
	f.posts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestGet_NotFound(t *testing.T) {
	f := setup(t)
	id := uuid.New()
	f.drafts.On("Get", mock.Anything, id).Return(nil, domain.NewNotFoundError("draft", id))

	_, err := f.composer.Get(context.Background(), f.userID, id)

	assert.True(t, domain.IsNotFoundError(err))
}
