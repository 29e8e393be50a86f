package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/teatime-labs/moodgate/pkg/domain/post"
	"github.com/teatime-labs/moodgate/pkg/domain/support"
)

type getPostSupportHandler struct {
	logger *logrus.Logger
	repo   post.Repository
}

func NewGetPostSupportHandler(logger *logrus.Logger, repo post.Repository) Handler {
	return &getPostSupportHandler{
		logger: logger,
		repo:   repo,
	}
}

// Handle @Summary Support card for a post
// @Description A reframe for the first cognitive distortion, or the stored support message, plus wellness resets
// @Tags Posts
// @Param Authorization header string true "Bearer access token"
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {object} support.Card
// @Failure 404 {object} map[string]interface{} "Post not found"
// @Router /api/v1/posts/{post_id}/support [get]
func (h *getPostSupportHandler) Handle(c *fiber.Ctx) error {
	postID, err := pathUUID(c, "post_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid post_id"})
	}

	p, err := h.repo.GetByID(c.UserContext(), postID)
	if err != nil {
		return writeError(c, h.logger, err)
	}

	var message string
	if p.SupportMessage != nil {
		message = *p.SupportMessage
	}
	card := support.BuildCard(p.Emotion, message, p.CognitiveDistortions)
	return c.Status(fiber.StatusOK).JSON(card)
}
