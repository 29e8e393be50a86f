package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/teatime-labs/moodgate/pkg/app/escalation"
	"github.com/teatime-labs/moodgate/pkg/handlers/http/request"
)

type createDraftHandler struct {
	logger   *logrus.Logger
	composer escalation.Composer
}

func NewCreateDraftHandler(logger *logrus.Logger, composer escalation.Composer) Handler {
	return &createDraftHandler{
		logger:   logger,
		composer: composer,
	}
}

// Handle @Summary Start a post draft
// @Tags Drafts
// @Param Authorization header string true "Bearer access token"
// @Accept json
// @Produce json
// @Param request body request.DraftRequest false "Initial draft fields"
// @Success 201 {object} escalation.DraftView
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /api/v1/drafts [post]
func (h *createDraftHandler) Handle(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}

	var req request.DraftRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	view, err := h.composer.Create(c.UserContext(), userID, req.ToInput())
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}
