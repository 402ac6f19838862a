package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/photoclientpro/photoclient-backend/internal/models"
	"go.uber.org/zap"
)

// PhotoReplacer overwrites a photo in place, keeping its path stable.
type PhotoReplacer interface {
	ReplacePhoto(clientID uuid.UUID, photoPath string, content []byte) error
}

type CommentService struct {
	comments CommentStore
	clients  ClientStore
	photos   PhotoReplacer
	logger   *zap.Logger
}

func NewCommentService(comments CommentStore, clients ClientStore, photos PhotoReplacer, logger *zap.Logger) *CommentService {
	return &CommentService{
		comments: comments,
		clients:  clients,
		photos:   photos,
		logger:   logger,
	}
}

// AddComment appends to a photo's thread. Whitespace-only text is rejected
// before anything is written.
func (s *CommentService) AddComment(clientID uuid.UUID, req models.AddCommentRequest) (*models.PhotoComment, error) {
	text := strings.TrimSpace(req.Comment)
	if text == "" {
		return nil, models.NewValidationError("comment cannot be empty")
	}

	if _, err := s.clients.GetByID(clientID); err != nil {
		return nil, err
	}

	comment := &models.PhotoComment{
		ClientID:       clientID,
		PhotoPath:      req.PhotoPath,
		Comment:        text,
		CommenterName:  strings.TrimSpace(req.CommenterName),
		CommenterEmail: strings.TrimSpace(req.CommenterEmail),
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns the thread oldest-first plus the derived badge.
func (s *CommentService) ListComments(clientID uuid.UUID, photoPath string) (*models.CommentThread, error) {
	if _, err := s.clients.GetByID(clientID); err != nil {
		return nil, err
	}

	comments, err := s.comments.GetByClientAndPath(clientID, photoPath)
	if err != nil {
		return nil, err
	}

	return &models.CommentThread{
		Comments: comments,
		Status:   commentStatus(comments),
	}, nil
}

func commentStatus(comments []models.PhotoComment) models.CommentStatus {
	if len(comments) == 0 {
		return models.CommentsNone
	}
	for _, c := range comments {
		if !c.Resolved() {
			return models.CommentsOpen
		}
	}
	return models.CommentsResolved
}

// ResolveWithReplacement swaps the photo for a corrected version and closes
// every open comment on it. Only the client's photographer may do this.
// The replacement goes first: if it fails the comments stay open. If the
// replacement lands but resolution fails, the error tells the actor to
// retry resolution; the new photo is already in place.
func (s *CommentService) ResolveWithReplacement(clientID, actorID uuid.UUID, photoPath string, content []byte) (int64, error) {
	client, err := s.clients.GetByID(clientID)
	if err != nil {
		return 0, err
	}
	if client.PhotographerID != actorID {
		return 0, models.ErrUnauthorized
	}

	if err := s.photos.ReplacePhoto(client.ID, photoPath, content); err != nil {
		return 0, fmt.Errorf("failed to replace photo: %w", err)
	}

	resolved, err := s.comments.ResolveOpen(client.ID, photoPath, actorID, time.Now())
	if err != nil {
		s.logger.Error("photo replaced but comment resolution failed",
			zap.String("photo", photoPath), zap.Error(err))
		return 0, fmt.Errorf("photo replaced but comments could not be resolved: %w", err)
	}

	return resolved, nil
}
