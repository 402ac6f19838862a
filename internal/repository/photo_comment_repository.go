package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/photoclientpro/photoclient-backend/internal/models"
	"gorm.io/gorm"
)

type PhotoCommentRepository struct {
	db *gorm.DB
}

func NewPhotoCommentRepository(db *gorm.DB) *PhotoCommentRepository {
	return &PhotoCommentRepository{db: db}
}

func (r *PhotoCommentRepository) Create(comment *models.PhotoComment) error {
	return r.db.Create(comment).Error
}

// GetByClientAndPath returns the photo's thread oldest-first; the order is
// what makes the thread readable as a conversation.
func (r *PhotoCommentRepository) GetByClientAndPath(clientID uuid.UUID, photoPath string) ([]models.PhotoComment, error) {
	var comments []models.PhotoComment
	err := r.db.
		Where("client_id = ? AND photo_path = ?", clientID, photoPath).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// ResolveOpen stamps every unresolved comment on the photo. Returns the
// number of comments resolved.
func (r *PhotoCommentRepository) ResolveOpen(clientID uuid.UUID, photoPath string, actorID uuid.UUID, now time.Time) (int64, error) {
	result := r.db.Model(&models.PhotoComment{}).
		Where("client_id = ? AND photo_path = ? AND resolved_at IS NULL", clientID, photoPath).
		Updates(map[string]interface{}{
			"resolved_at": now,
			"resolved_by": actorID,
			"updated_at":  now,
		})
	return result.RowsAffected, result.Error
}

func (r *PhotoCommentRepository) DeleteByClient(clientID uuid.UUID) error {
	return r.db.Where("client_id = ?", clientID).Delete(&models.PhotoComment{}).Error
}
