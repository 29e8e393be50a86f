package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/teatime-labs/moodgate/pkg/app/escalation"
)

type submitDraftHandler struct {
	logger   *logrus.Logger
	composer escalation.Composer
}

func NewSubmitDraftHandler(logger *logrus.Logger, composer escalation.Composer) Handler {
	return &submitDraftHandler{
		logger:   logger,
		composer: composer,
	}
}

// Handle @Summary Publish a draft
// @Tags Drafts
// @Param Authorization header string true "Bearer access token"
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Success 201 {object} escalation.SubmitOutcome
// @Failure 400 {object} map[string]interface{} "Missing text or emotion"
// @Router /api/v1/drafts/{draft_id}/submit [post]
func (h *submitDraftHandler) Handle(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}
	draftID, err := pathUUID(c, "draft_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid draft_id"})
	}

	outcome, err := h.composer.Submit(c.UserContext(), userID, draftID)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	h.logger.WithFields(logrus.Fields{
		"post_id":    outcome.Post.ID,
		"risk_level": outcome.Post.RiskLevel,
	}).Info("post published")
	return c.Status(fiber.StatusCreated).JSON(outcome)
}
