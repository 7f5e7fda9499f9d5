package controller

import (
	"time"

	"github.com/kangsm1989-hue/ai-counsel-web/internal/pkg/serverutils"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IInsightController interface {
	RegisterRoutes(r fiber.Router)
	Weekly(ctx *fiber.Ctx) error
	Monthly(ctx *fiber.Ctx) error
	Range(ctx *fiber.Ctx) error
	Calendar(ctx *fiber.Ctx) error
	Extremes(ctx *fiber.Ctx) error
}

type insightController struct {
	insightService service.IInsightService
}

func NewInsightController(insightService service.IInsightService) IInsightController {
	return &insightController{
		insightService: insightService,
	}
}

func (c *insightController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/insight/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("weekly", c.Weekly)
	h.Get("monthly", c.Monthly)
	h.Get("range", c.Range)
	h.Get("calendar", c.Calendar)
	h.Get("extremes", c.Extremes)
}

// anchorTime reads the optional "today" query override, falling back to the
// wall clock. The override keeps window math reproducible for clients.
func anchorTime(ctx *fiber.Ctx) time.Time {
	if raw := ctx.Query("today"); raw != "" {
		if t, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
			return t
		}
	}
	return time.Now()
}

// yearMonth reads the year/month query pair, defaulting to the anchor month.
func yearMonth(ctx *fiber.Ctx, now time.Time) (int, time.Month) {
	year := ctx.QueryInt("year", now.Year())
	month := ctx.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	return year, time.Month(month)
}

func (c *insightController) Weekly(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.insightService.Weekly(ctx.Context(), userId, anchorTime(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success weekly insight", res))
}

func (c *insightController) Monthly(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	now := anchorTime(ctx)
	year, month := yearMonth(ctx, now)

	res, err := c.insightService.Monthly(ctx.Context(), userId, year, month, now)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success monthly insight", res))
}

func (c *insightController) Range(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	start := ctx.Query("start")
	end := ctx.Query("end")
	if start == "" || end == "" {
		return fiber.NewError(fiber.StatusBadRequest, "start and end query params are required")
	}

	res, err := c.insightService.Range(ctx.Context(), userId, start, end, anchorTime(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success range insight", res))
}

func (c *insightController) Calendar(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	now := anchorTime(ctx)
	year, month := yearMonth(ctx, now)

	res, err := c.insightService.Calendar(ctx.Context(), userId, year, month, now)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success calendar insight", res))
}

func (c *insightController) Extremes(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.insightService.Extremes(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success extremes insight", res))
}
