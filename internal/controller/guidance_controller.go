package controller

import (
	"github.com/kangsm1989-hue/ai-counsel-web/internal/dto"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/pkg/serverutils"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGuidanceController interface {
	RegisterRoutes(r fiber.Router)
	Daily(ctx *fiber.Ctx) error
	PromptBudget(ctx *fiber.Ctx) error
	InjectPrompt(ctx *fiber.Ctx) error
}

type guidanceController struct {
	guidanceService service.IGuidanceService
}

func NewGuidanceController(guidanceService service.IGuidanceService) IGuidanceController {
	return &guidanceController{
		guidanceService: guidanceService,
	}
}

func (c *guidanceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/guidance/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("daily", c.Daily)
	h.Get("prompt-budget", c.PromptBudget)
	h.Post("prompt", c.InjectPrompt)
}

func (c *guidanceController) Daily(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.guidanceService.Daily(ctx.Context(), userId, anchorTime(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success daily guidance", res))
}

func (c *guidanceController) PromptBudget(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.guidanceService.PromptBudget(ctx.Context(), userId, anchorTime(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success prompt budget", res))
}

func (c *guidanceController) InjectPrompt(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.InjectPromptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.guidanceService.InjectPrompt(ctx.Context(), userId, anchorTime(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success inject prompt", res))
}
