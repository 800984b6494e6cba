package controller

import (
	"interview-content-be/internal/dto"
	"interview-content-be/internal/pkg/serverutils"
	"interview-content-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IInterviewController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	SaveAnswer(ctx *fiber.Ctx) error
	Finalize(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
}

type interviewController struct {
	interviewService service.IInterviewService
}

func NewInterviewController(interviewService service.IInterviewService) IInterviewController {
	return &interviewController{
		interviewService: interviewService,
	}
}

func (c *interviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/interview/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("sessions", c.Index)
	h.Post("session", c.CreateSession)
	h.Get("session/:id", c.Show)
	h.Post("session/:id/answer", c.SaveAnswer)
	h.Post("session/:id/finalize", c.Finalize)
}

func (c *interviewController) CreateSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	orgIdStr, _ := ctx.Locals("organization_id").(string)
	orgId, _ := uuid.Parse(orgIdStr)

	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.interviewService.CreateSession(ctx.Context(), orgId, userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create interview session", res))
}

func (c *interviewController) SaveAnswer(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	orgIdStr, _ := ctx.Locals("organization_id").(string)
	orgId, _ := uuid.Parse(orgIdStr)

	var req dto.SaveAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err = serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.interviewService.SaveAnswer(ctx.Context(), orgId, id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save answer", res))
}

func (c *interviewController) Finalize(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	orgIdStr, _ := ctx.Locals("organization_id").(string)
	orgId, _ := uuid.Parse(orgIdStr)

	res, err := c.interviewService.Finalize(ctx.Context(), orgId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success finalize session", res))
}

func (c *interviewController) Show(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	orgIdStr, _ := ctx.Locals("organization_id").(string)
	orgId, _ := uuid.Parse(orgIdStr)

	res, err := c.interviewService.Get(ctx.Context(), orgId, id)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("Session not found", nil))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *interviewController) Index(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	orgIdStr, _ := ctx.Locals("organization_id").(string)
	orgId, _ := uuid.Parse(orgIdStr)

	var query dto.ListSessionsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}

	err := serverutils.ValidateRequest(query)
	if err != nil {
		return err
	}

	res, err := c.interviewService.ListByUser(ctx.Context(), orgId, userId, &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list sessions", res))
}
