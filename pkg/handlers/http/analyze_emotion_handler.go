package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/teatime-labs/moodgate/pkg/app/classification"
	"github.com/teatime-labs/moodgate/pkg/domain/emotion"
	"github.com/teatime-labs/moodgate/pkg/handlers/http/request"
)

type analyzeEmotionHandler struct {
	logger     *logrus.Logger
	classifier classification.Classifier
}

func NewAnalyzeEmotionHandler(logger *logrus.Logger, classifier classification.Classifier) Handler {
	return &analyzeEmotionHandler{
		logger:     logger,
		classifier: classifier,
	}
}

// Handle @Summary Classify journal text
// @Description Returns emotion, risk level, cognitive distortions and a support message for the text
// @Tags Classification
// @Accept json
// @Produce json
// @Param request body request.AnalyzeEmotionRequest true "Text to classify"
// @Success 200 {object} emotion.Result
// @Failure 400 {object} map[string]interface{} "No text provided"
// @Failure 402 {object} map[string]interface{} "AI credits exhausted"
// @Failure 429 {object} map[string]interface{} "Rate limited"
// @Failure 500 {object} map[string]interface{} "Classification failed"
// @Router /functions/v1/analyze-emotion [post]
func (h *analyzeEmotionHandler) Handle(c *fiber.Ctx) error {
	var req request.AnalyzeEmotionRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Warn("analyze-emotion: invalid request body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msgNoText})
	}
	if err := req.Validate(); err != nil {
		h.logger.WithError(err).Warn("analyze-emotion: invalid request")
		if req.Text == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msgNoText})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.classifier.Classify(c.UserContext(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, emotion.ErrInvalidInput):
			return writeError(c, h.logger, err)
		case errors.Is(err, emotion.ErrUpstreamRateLimited), errors.Is(err, emotion.ErrUpstreamQuotaExhausted):
			h.logger.WithError(err).Error("analyze-emotion error")
			return writeError(c, h.logger, err)
		}
		h.logger.WithError(err).Error("analyze-emotion error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
