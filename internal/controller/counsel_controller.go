package controller

import (
	"github.com/kangsm1989-hue/ai-counsel-web/internal/dto"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/pkg/serverutils"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICounselController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type counselController struct {
	counselService service.ICounselService
}

func NewCounselController(counselService service.ICounselService) ICounselController {
	return &counselController{
		counselService: counselService,
	}
}

func (c *counselController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/counsel/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("chat", c.Chat)
}

func (c *counselController) Chat(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CounselChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.counselService.Chat(ctx.Context(), userId, anchorTime(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success counsel chat", res))
}
