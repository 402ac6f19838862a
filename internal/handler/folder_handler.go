package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/photoclientpro/photoclient-backend/internal/models"
	"github.com/photoclientpro/photoclient-backend/internal/service"
	"github.com/photoclientpro/photoclient-backend/pkg/utils"
)

type FolderHandler struct {
	folderService *service.FolderService
	validator     *utils.Validator
}

func NewFolderHandler(folderService *service.FolderService, validator *utils.Validator) *FolderHandler {
	return &FolderHandler{
		folderService: folderService,
		validator:     validator,
	}
}

func (h *FolderHandler) ListFiles(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	folder, err := folderTypeParam(c)
	if err != nil {
		return respondError(c, err)
	}

	listing, err := h.folderService.ListFiles(clientID, photographerID(c), folder, false)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(listing, ""))
}

func (h *FolderHandler) ListSharedFiles(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	folder, err := folderTypeParam(c)
	if err != nil {
		return respondError(c, err)
	}

	listing, err := h.folderService.ListFiles(clientID, clientID, folder, true)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(listing, ""))
}

func (h *FolderHandler) UploadFiles(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	folder, err := folderTypeParam(c)
	if err != nil {
		return respondError(c, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid multipart form"))
	}

	files := form.File["files"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("No files provided"))
	}

	result, err := h.folderService.UploadFiles(clientID, photographerID(c), folder, files)
	if err != nil {
		return respondError(c, err)
	}

	message := "All files uploaded"
	if !result.AllSucceeded() {
		message = "Some files failed to upload"
	}
	return c.JSON(models.SuccessResponse(result, message))
}

func (h *FolderHandler) DownloadFile(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	folder, err := folderTypeParam(c)
	if err != nil {
		return respondError(c, err)
	}

	fileName := c.Query("file")
	if fileName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Missing file parameter"))
	}

	url, err := h.folderService.PresignDownload(clientID, photographerID(c), folder, fileName, false)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"url": url}, ""))
}

func (h *FolderHandler) DownloadSharedFile(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	folder, err := folderTypeParam(c)
	if err != nil {
		return respondError(c, err)
	}

	fileName := c.Query("file")
	if fileName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Missing file parameter"))
	}

	url, err := h.folderService.PresignDownload(clientID, clientID, folder, fileName, true)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"url": url}, ""))
}

func (h *FolderHandler) DeleteFile(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	folder, err := folderTypeParam(c)
	if err != nil {
		return respondError(c, err)
	}

	fileName := c.Query("file")
	if fileName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Missing file parameter"))
	}

	if err := h.folderService.DeleteFile(clientID, photographerID(c), folder, fileName); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "File deleted successfully"))
}

// MoveFiles advances a batch of files one pipeline stage. Partial success
// returns 200 with the per-file breakdown.
func (h *FolderHandler) MoveFiles(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var req models.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	result, err := h.folderService.MoveSelection(clientID, photographerID(c), req.Source, req.Target, req.FileNames)
	if err != nil {
		return respondError(c, err)
	}

	message := "All files moved"
	if !result.AllSucceeded() {
		message = "Some files failed to move"
	}
	return c.JSON(models.SuccessResponse(result, message))
}
