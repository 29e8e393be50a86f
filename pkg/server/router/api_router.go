package router

import (
	"fmt"
	"net/http"
	"reflect"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	handlers "github.com/teatime-labs/moodgate/pkg/handlers/http"
	"github.com/teatime-labs/moodgate/pkg/middleware"
)

const (
	HealthPath         = "/health"
	PingPath           = "/__/ping"
	AnalyzeEmotionPath = "/functions/v1/analyze-emotion"
	DocsPath           = "/docs/*"
	SwaggerSpecPath    = "/swagger.json"
)

type apiRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    handlers.HandlerTransport
}

func NewAPIRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
) ServerRouter {
	return &apiRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	if err := checkTransport(r.handlerTransport); err != nil {
		return err
	}
	if r.middlewareTransport.Auth == nil {
		return fmt.Errorf("%w: auth middleware", ErrMissingHandler)
	}
	h := r.handlerTransport

	router.Get(HealthPath, func(ctx *fiber.Ctx) error {
		return ctx.Status(http.StatusOK).JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	router.Get(PingPath, func(ctx *fiber.Ctx) error {
		return ctx.Status(http.StatusOK).JSON(fiber.Map{
			"message": "pong",
		})
	})

	router.Static(SwaggerSpecPath, "./docs/swagger.json")
	router.Get(DocsPath, swagger.New(swagger.Config{
		URL: SwaggerSpecPath,
	}))

	if mws := r.middlewareTransport.GetMiddlewares(); mws != nil {
		router.Use(mws...)
	}

	router.Post(AnalyzeEmotionPath, h.AnalyzeEmotionHandler.Handle)

	v1 := router.Group("/api/v1")
	{
		v1.Get("/version", h.GetVersionHandler.Handle)

		auth := r.middlewareTransport.Auth.Middleware()

		drafts := v1.Group("/drafts", auth)
		{
			drafts.Post("", h.CreateDraftHandler.Handle)
			drafts.Get("/:draft_id", h.GetDraftHandler.Handle)
			drafts.Patch("/:draft_id", h.UpdateDraftHandler.Handle)
			drafts.Post("/:draft_id/detect", h.DetectEmotionHandler.Handle)
			drafts.Post("/:draft_id/emergency/dismiss", h.DismissEmergencyHandler.Handle)
			drafts.Post("/:draft_id/submit", h.SubmitDraftHandler.Handle)
		}

		posts := v1.Group("/posts", auth)
		{
			posts.Get("/:post_id/support", h.GetPostSupportHandler.Handle)
		}
	}

	return nil
}

func checkTransport(t handlers.HandlerTransport) error {
	v := reflect.ValueOf(t)
	for i := 0; i < v.NumField(); i++ {
		if v.Field(i).IsNil() {
			return fmt.Errorf("%w: %s", ErrMissingHandler, v.Type().Field(i).Name)
		}
	}
	return nil
}
