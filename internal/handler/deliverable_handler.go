package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/photoclientpro/photoclient-backend/internal/models"
	"github.com/photoclientpro/photoclient-backend/internal/service"
)

type DeliverableHandler struct {
	deliverableService *service.DeliverableService
}

func NewDeliverableHandler(deliverableService *service.DeliverableService) *DeliverableHandler {
	return &DeliverableHandler{deliverableService: deliverableService}
}

func (h *DeliverableHandler) ListDeliverables(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	items, err := h.deliverableService.ListForClient(clientID, photographerID(c), false)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(items, ""))
}

func (h *DeliverableHandler) ListSharedDeliverables(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	items, err := h.deliverableService.ListForClient(clientID, clientID, true)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(items, ""))
}

func (h *DeliverableHandler) SubmitForReview(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	name, err := deliverableNameParam(c)
	if err != nil {
		return respondError(c, err)
	}

	status, err := h.deliverableService.Submit(clientID, photographerID(c), name)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(status, "Deliverable submitted for review"))
}

func (h *DeliverableHandler) Approve(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	name, err := deliverableNameParam(c)
	if err != nil {
		return respondError(c, err)
	}

	status, err := h.deliverableService.Approve(clientID, photographerID(c), name, false)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(status, "Deliverable approved"))
}

func (h *DeliverableHandler) ApproveShared(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	name, err := deliverableNameParam(c)
	if err != nil {
		return respondError(c, err)
	}

	status, err := h.deliverableService.Approve(clientID, clientID, name, true)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(status, "Deliverable approved"))
}

func (h *DeliverableHandler) RequestRevisions(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	name, err := deliverableNameParam(c)
	if err != nil {
		return respondError(c, err)
	}

	status, err := h.deliverableService.RequestRevisions(clientID, photographerID(c), name)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(status, "Revisions requested"))
}
