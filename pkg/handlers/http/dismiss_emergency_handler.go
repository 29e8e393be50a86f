package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/teatime-labs/moodgate/pkg/app/escalation"
)

type dismissEmergencyHandler struct {
	logger   *logrus.Logger
	composer escalation.Composer
}

func NewDismissEmergencyHandler(logger *logrus.Logger, composer escalation.Composer) Handler {
	return &dismissEmergencyHandler{
		logger:   logger,
		composer: composer,
	}
}

// Handle @Summary Dismiss the emergency prompt
// @Tags Drafts
// @Param Authorization header string true "Bearer access token"
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Success 200 {object} escalation.DraftView
// @Router /api/v1/drafts/{draft_id}/emergency/dismiss [post]
func (h *dismissEmergencyHandler) Handle(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}
	draftID, err := pathUUID(c, "draft_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid draft_id"})
	}

	view, err := h.composer.DismissEmergency(c.UserContext(), userID, draftID)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	h.logger.WithField("draft_id", draftID).Info("emergency prompt dismissed")
	return c.Status(fiber.StatusOK).JSON(view)
}
