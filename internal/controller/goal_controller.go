package controller

import (
	"github.com/kangsm1989-hue/ai-counsel-web/internal/dto"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/pkg/serverutils"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IGoalController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	WeeklyReport(ctx *fiber.Ctx) error
}

type goalController struct {
	goalService service.IGoalService
}

func NewGoalController(goalService service.IGoalService) IGoalController {
	return &goalController{
		goalService: goalService,
	}
}

func (c *goalController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/goal/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get("weekly", c.WeeklyReport)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *goalController) Create(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateGoalEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.goalService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create goal entry", res))
}

func (c *goalController) Update(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateGoalEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.goalService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update goal entry", res))
}

func (c *goalController) Delete(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.goalService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete goal entry", nil))
}

func (c *goalController) List(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.goalService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list goal entries", res))
}

func (c *goalController) WeeklyReport(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.goalService.WeeklyReport(ctx.Context(), userId, anchorTime(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success weekly goal report", res))
}
