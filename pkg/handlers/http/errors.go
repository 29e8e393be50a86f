package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/teatime-labs/moodgate/pkg/common"
	"github.com/teatime-labs/moodgate/pkg/domain"
	"github.com/teatime-labs/moodgate/pkg/domain/draft"
	"github.com/teatime-labs/moodgate/pkg/domain/emotion"
)

const (
	msgNoText        = "No text provided"
	msgRateLimited   = "Rate limited, please try again"
	msgCreditsGone   = "AI credits exhausted"
	msgInternalError = "Internal server error"
)

func currentUser(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(common.UserIDContextKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func pathUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

// writeError maps domain errors onto statuses. Anything unknown is logged
// and reported as a 500 without leaking its message.
func writeError(c *fiber.Ctx, logger *logrus.Logger, err error) error {
	switch {
	case errors.Is(err, emotion.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msgNoText})
	case errors.Is(err, emotion.ErrUpstreamRateLimited):
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": msgRateLimited})
	case errors.Is(err, emotion.ErrUpstreamQuotaExhausted):
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{"error": msgCreditsGone})
	case errors.Is(err, draft.ErrEmptyDraft),
		errors.Is(err, draft.ErrIncompleteDraft):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, draft.ErrDetectionInProgress):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case domain.IsNotFoundError(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		logger.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Error("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgInternalError})
	}
}
