package controller

import (
	"strings"

	"immi-assistant-be/internal/dto"
	"immi-assistant-be/internal/pkg/serverutils"
	"immi-assistant-be/internal/service"
	"immi-assistant-be/pkg/metrics"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	Metrics(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
	tracker     *metrics.Tracker
}

func NewChatController(chatService service.IChatService, tracker *metrics.Tracker) IChatController {
	return &chatController{
		chatService: chatService,
		tracker:     tracker,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("ask", c.Ask)
	h.Get("metrics", c.Metrics)
}

func (c *chatController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	req.Question = strings.TrimSpace(req.Question)
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Ask(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) Metrics(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Query metrics", c.tracker.Snapshot()))
}
