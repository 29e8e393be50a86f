package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Classification gateway
	AnalyzeEmotionHandler Handler

	// Drafts
	CreateDraftHandler      Handler
	GetDraftHandler         Handler
	UpdateDraftHandler      Handler
	DetectEmotionHandler    Handler
	DismissEmergencyHandler Handler
	SubmitDraftHandler      Handler

	// Posts
	GetPostSupportHandler Handler

	GetVersionHandler Handler
}
