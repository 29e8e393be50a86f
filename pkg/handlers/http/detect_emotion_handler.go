package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/teatime-labs/moodgate/pkg/app/escalation"
)

type detectEmotionHandler struct {
	logger   *logrus.Logger
	composer escalation.Composer
}

func NewDetectEmotionHandler(logger *logrus.Logger, composer escalation.Composer) Handler {
	return &detectEmotionHandler{
		logger:   logger,
		composer: composer,
	}
}

// Handle @Summary Classify the draft text
// @Description Pre-fills the emotion, stores support data and raises the emergency prompt for high or critical risk.
// @Description A gateway failure still answers 200 with an "AI detection unavailable" notice.
// @Tags Drafts
// @Param Authorization header string true "Bearer access token"
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Success 200 {object} escalation.DetectOutcome
// @Failure 400 {object} map[string]interface{} "Draft has no text"
// @Failure 409 {object} map[string]interface{} "Detection already running"
// @Router /api/v1/drafts/{draft_id}/detect [post]
func (h *detectEmotionHandler) Handle(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}
	draftID, err := pathUUID(c, "draft_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid draft_id"})
	}

	outcome, err := h.composer.Detect(c.UserContext(), userID, draftID)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(outcome)
}
