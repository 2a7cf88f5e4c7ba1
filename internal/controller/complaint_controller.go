package controller

import (
	"campus-assistant-be/internal/pkg/serverutils"
	"campus-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IComplaintController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	ListByUser(ctx *fiber.Ctx) error
}

type complaintController struct {
	complaintService service.IComplaintService
}

func NewComplaintController(complaintService service.IComplaintService) IComplaintController {
	return &complaintController{
		complaintService: complaintService,
	}
}

func (c *complaintController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/complaints")
	h.Get("", c.ListByUser)
	h.Get(":shortId", c.Show)
}

func (c *complaintController) Show(ctx *fiber.Ctx) error {
	shortId := ctx.Params("shortId")

	res, err := c.complaintService.GetByShortId(ctx.Context(), shortId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show complaint", res))
}

func (c *complaintController) ListByUser(ctx *fiber.Ctx) error {
	userId := ctx.Query("user_id")
	if userId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing user_id query parameter")
	}

	res, err := c.complaintService.ListByUser(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list complaints", res))
}
