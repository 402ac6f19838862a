package handler

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/photoclientpro/photoclient-backend/internal/models"
	"go.uber.org/zap"
)

var errorLogger = zap.NewNop()

// SetLogger routes handler-level error logging. Called once from main.
func SetLogger(l *zap.Logger) {
	errorLogger = l
}

// respondError maps service errors onto HTTP statuses. Anything
// unrecognized is internal: the detail goes to the log, the client gets a
// generic message.
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *models.ValidationError
	var quotaErr *models.QuotaExceededError

	switch {
	case errors.Is(err, models.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrUnauthorized):
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrNoPackage):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	case errors.As(err, &quotaErr):
		return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse(err.Error()))
	}

	errorLogger.Error("request failed",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
}

func photographerID(c *fiber.Ctx) uuid.UUID {
	return c.Locals("photographerID").(uuid.UUID)
}

func clientIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, models.NewValidationError("invalid client ID")
	}
	return id, nil
}

// deliverableNameParam unescapes the :name segment; catalog names contain
// spaces.
func deliverableNameParam(c *fiber.Ctx) (string, error) {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || name == "" {
		return "", models.NewValidationError("invalid deliverable name")
	}
	return name, nil
}

func folderTypeParam(c *fiber.Ctx) (models.FolderType, error) {
	folder, err := models.ParseFolderType(c.Params("folderType"))
	if err != nil {
		return "", models.NewValidationError("invalid folder type %q", c.Params("folderType"))
	}
	return folder, nil
}
