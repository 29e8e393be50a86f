package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/teatime-labs/moodgate/pkg/app/escalation"
)

type getDraftHandler struct {
	logger   *logrus.Logger
	composer escalation.Composer
}

func NewGetDraftHandler(logger *logrus.Logger, composer escalation.Composer) Handler {
	return &getDraftHandler{
		logger:   logger,
		composer: composer,
	}
}

// Handle @Summary Retrieve a draft
// @Description Includes whether a detection is in flight and the emergency prompt when escalated
// @Tags Drafts
// @Param Authorization header string true "Bearer access token"
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Success 200 {object} escalation.DraftView
// @Failure 404 {object} map[string]interface{} "Draft not found"
// @Router /api/v1/drafts/{draft_id} [get]
func (h *getDraftHandler) Handle(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}
	draftID, err := pathUUID(c, "draft_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid draft_id"})
	}

	view, err := h.composer.Get(c.UserContext(), userID, draftID)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(view)
}
