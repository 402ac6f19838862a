package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/photoclientpro/photoclient-backend/internal/models"
	"github.com/photoclientpro/photoclient-backend/internal/service"
	"github.com/photoclientpro/photoclient-backend/pkg/utils"
)

type WorkflowHandler struct {
	workflowService *service.WorkflowService
	validator       *utils.Validator
}

func NewWorkflowHandler(workflowService *service.WorkflowService, validator *utils.Validator) *WorkflowHandler {
	return &WorkflowHandler{
		workflowService: workflowService,
		validator:       validator,
	}
}

func (h *WorkflowHandler) GetChecklist(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	checklist, err := h.workflowService.GetChecklist(clientID, photographerID(c), false)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(checklist, ""))
}

func (h *WorkflowHandler) GetSharedChecklist(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	checklist, err := h.workflowService.GetChecklist(clientID, clientID, true)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(checklist, ""))
}

func (h *WorkflowHandler) ToggleItem(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var req models.ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	checklist, err := h.workflowService.ToggleItem(clientID, photographerID(c), req.Item, req.Done)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(checklist, "Checklist updated"))
}
