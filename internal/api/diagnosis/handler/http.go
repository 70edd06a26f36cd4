package diagnosisHandler

import (
	diagnosisService "MedicalAssistant/internal/api/diagnosis/service"
	"MedicalAssistant/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type DiagnosisHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	diagnosisService diagnosisService.IDiagnosisService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ds diagnosisService.IDiagnosisService,
) *DiagnosisHandler {
	return &DiagnosisHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		diagnosisService: ds,
	}
}

func (h *DiagnosisHandler) Start(srv fiber.Router) {
	diagnosis := srv.Group("/diagnosis")

	diagnosis.Get("/languages", h.GetLanguages)

	sessions := diagnosis.Group("/sessions", h.middleware.NewRateLimiter)
	sessions.Post("", h.StartSession)
	sessions.Post("/:id/utterances", h.SubmitUtterance)
	sessions.Put("/:id/language", h.SelectLanguage)
	sessions.Post("/:id/reset", h.Reset)
	sessions.Delete("/:id", h.EndSession)

	sessions.Use("/:id/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	sessions.Get("/:id/ws", websocket.New(h.handleChatWebSocket))
}
