package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/photoclientpro/photoclient-backend/internal/models"
	"github.com/photoclientpro/photoclient-backend/internal/service"
	"github.com/photoclientpro/photoclient-backend/pkg/utils"
)

type CommentHandler struct {
	commentService *service.CommentService
	validator      *utils.Validator
}

func NewCommentHandler(commentService *service.CommentService, validator *utils.Validator) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		validator:      validator,
	}
}

func (h *CommentHandler) ListComments(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	photoPath := c.Query("photo_path")
	if photoPath == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Missing photo_path parameter"))
	}

	thread, err := h.commentService.ListComments(clientID, photoPath)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(thread, ""))
}

func (h *CommentHandler) AddComment(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var req models.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	comment, err := h.commentService.AddComment(clientID, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(comment, "Comment added"))
}

// ResolveComments takes a multipart form with the replacement photo under
// "file" and the object path under "photo_path". The upload replaces the
// photo in place, then all open comments on that path are resolved.
func (h *CommentHandler) ResolveComments(c *fiber.Ctx) error {
	clientID, err := clientIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	photoPath := c.FormValue("photo_path")
	if photoPath == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Missing photo_path field"))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Missing replacement file"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Could not read replacement file"))
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Could not read replacement file"))
	}

	resolved, err := h.commentService.ResolveWithReplacement(clientID, photographerID(c), photoPath, content)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"resolved_count": resolved}, "Comments resolved"))
}
