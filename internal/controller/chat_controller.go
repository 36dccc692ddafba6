package controller

import (
	"errors"

	"nolij-demo-be/internal/dto"
	"nolij-demo-be/internal/pkg/serverutils"
	"nolij-demo-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	GetState(ctx *fiber.Ctx) error
	SendText(ctx *fiber.Ctx) error
	SendAttachments(ctx *fiber.Ctx) error
	TriggerConversation(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
	SetPersona(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("/session", c.CreateSession)
	h.Get("/session/:id", c.GetState)
	h.Post("/send", c.SendText)
	h.Post("/attachments", c.SendAttachments)
	h.Post("/trigger", c.TriggerConversation)
	h.Post("/reset", c.Reset)
	h.Put("/persona", c.SetPersona)
}

// mapServiceError translates sentinel service errors into HTTP statuses;
// everything else falls through to the error middleware as a 500.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	default:
		return err
	}
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.service.CreateSession(ctx.Context())
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Session created", res))
}

func (c *chatController) GetState(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	res, err := c.service.GetState(ctx.Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Session state", res))
}

func (c *chatController) SendText(ctx *fiber.Ctx) error {
	var req dto.SendTextRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendText(ctx.Context(), &req)
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Message processed", res))
}

func (c *chatController) SendAttachments(ctx *fiber.Ctx) error {
	var req dto.SendAttachmentsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendAttachments(ctx.Context(), &req)
	if err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Attachments processed", res))
}

func (c *chatController) TriggerConversation(ctx *fiber.Ctx) error {
	var req dto.TriggerConversationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.TriggerConversation(ctx.Context(), &req); err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Playback started", nil))
}

func (c *chatController) Reset(ctx *fiber.Ctx) error {
	var req dto.ResetConversationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.ResetConversation(ctx.Context(), &req); err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Conversation reset", nil))
}

func (c *chatController) SetPersona(ctx *fiber.Ctx) error {
	var req dto.SetPersonaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.SetPersona(ctx.Context(), &req); err != nil {
		return mapServiceError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Persona updated", nil))
}
