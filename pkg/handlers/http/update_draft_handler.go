package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/teatime-labs/moodgate/pkg/app/escalation"
	"github.com/teatime-labs/moodgate/pkg/handlers/http/request"
)

type updateDraftHandler struct {
	logger   *logrus.Logger
	composer escalation.Composer
}

func NewUpdateDraftHandler(logger *logrus.Logger, composer escalation.Composer) Handler {
	return &updateDraftHandler{
		logger:   logger,
		composer: composer,
	}
}

// Handle @Summary Edit a draft
// @Description Text, emotion, category and anonymity stay editable while a detection runs
// @Tags Drafts
// @Param Authorization header string true "Bearer access token"
// @Accept json
// @Produce json
// @Param draft_id path string true "Draft ID"
// @Param request body request.DraftRequest true "Fields to change"
// @Success 200 {object} escalation.DraftView
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Draft not found"
// @Router /api/v1/drafts/{draft_id} [patch]
func (h *updateDraftHandler) Handle(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}
	draftID, err := pathUUID(c, "draft_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid draft_id"})
	}

	var req request.DraftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	view, err := h.composer.Update(c.UserContext(), userID, draftID, req.ToInput())
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(view)
}
