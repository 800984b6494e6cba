package controller

import (
	"interview-content-be/internal/dto"
	"interview-content-be/internal/pkg/serverutils"
	"interview-content-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IGenerationController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Jobs(ctx *fiber.Ctx) error
}

type generationController struct {
	generationService service.IGenerationService
}

func NewGenerationController(generationService service.IGenerationService) IGenerationController {
	return &generationController{
		generationService: generationService,
	}
}

func (c *generationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/generation/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("session/:id/generate", c.Generate)
	h.Get("session/:id/jobs", c.Jobs)
}

func (c *generationController) Generate(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	orgIdStr, _ := ctx.Locals("organization_id").(string)
	orgId, _ := uuid.Parse(orgIdStr)

	var req dto.GenerateContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err = serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.generationService.GenerateDerivedContent(ctx.Context(), orgId, id, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success generate derived content", res))
}

func (c *generationController) Jobs(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	orgIdStr, _ := ctx.Locals("organization_id").(string)
	orgId, _ := uuid.Parse(orgIdStr)

	res, err := c.generationService.ListJobs(ctx.Context(), orgId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list generation jobs", res))
}
