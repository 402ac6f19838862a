package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/photoclientpro/photoclient-backend/internal/models"
	"github.com/photoclientpro/photoclient-backend/internal/service"
	"github.com/photoclientpro/photoclient-backend/pkg/utils"
)

type ClientHandler struct {
	clientService *service.ClientService
	validator     *utils.Validator
}

func NewClientHandler(clientService *service.ClientService, validator *utils.Validator) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
		validator:     validator,
	}
}

func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	var req models.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	client, err := h.clientService.CreateClient(photographerID(c), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(client, "Client created successfully"))
}

func (h *ClientHandler) GetClient(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	client, err := h.clientService.GetClient(clientID, photographerID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(client, ""))
}

func (h *ClientHandler) GetSharedClient(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	client, err := h.clientService.GetSharedClient(clientID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(client, ""))
}

func (h *ClientHandler) ListClients(c *fiber.Ctx) error {
	clients, err := h.clientService.ListClients(
		photographerID(c),
		c.Query("search"),
		c.Query("payment_status"),
	)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(clients, ""))
}

func (h *ClientHandler) CategorizedClients(c *fiber.Ctx) error {
	categories, err := h.clientService.CategorizedClients(photographerID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(categories, ""))
}

func (h *ClientHandler) UpdateClient(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var req models.UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	client, err := h.clientService.UpdateClient(clientID, photographerID(c), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(client, "Client updated successfully"))
}

func (h *ClientHandler) DeleteClient(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.clientService.DeleteClient(clientID, photographerID(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Client deleted successfully"))
}
