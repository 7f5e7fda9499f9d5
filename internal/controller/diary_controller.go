package controller

import (
	"github.com/kangsm1989-hue/ai-counsel-web/internal/dto"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/pkg/serverutils"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDiaryController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ShowByDate(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type diaryController struct {
	diaryService service.IDiaryService
}

func NewDiaryController(diaryService service.IDiaryService) IDiaryController {
	return &diaryController{
		diaryService: diaryService,
	}
}

func (c *diaryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/diary/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get("date/:date", c.ShowByDate)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func (c *diaryController) Create(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateDiaryEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.diaryService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create diary entry", res))
}

func (c *diaryController) Show(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.diaryService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show diary entry", res))
}

func (c *diaryController) ShowByDate(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.diaryService.ShowByDate(ctx.Context(), userId, ctx.Params("date"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show diary entry", res))
}

func (c *diaryController) Update(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateDiaryEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.diaryService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update diary entry", res))
}

func (c *diaryController) Delete(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.diaryService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete diary entry", nil))
}

func (c *diaryController) List(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	req := dto.ListDiaryEntriesRequest{
		Start: ctx.Query("start"),
		End:   ctx.Query("end"),
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.diaryService.List(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list diary entries", res))
}
