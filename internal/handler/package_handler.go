package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/photoclientpro/photoclient-backend/internal/models"
	"github.com/photoclientpro/photoclient-backend/internal/service"
)

type PackageHandler struct {
	packageService *service.PackageService
}

func NewPackageHandler(packageService *service.PackageService) *PackageHandler {
	return &PackageHandler{packageService: packageService}
}

func (h *PackageHandler) GetAllPackages(c *fiber.Ctx) error {
	packages, err := h.packageService.GetAllPackages()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(packages, ""))
}

func (h *PackageHandler) GetPackage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid package ID"))
	}

	pkg, err := h.packageService.GetPackageByID(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(pkg, ""))
}
