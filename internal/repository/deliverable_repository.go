package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/photoclientpro/photoclient-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DeliverableRepository struct {
	db *gorm.DB
}

func NewDeliverableRepository(db *gorm.DB) *DeliverableRepository {
	return &DeliverableRepository{db: db}
}

func (r *DeliverableRepository) GetByClient(clientID uuid.UUID) ([]models.DeliverableStatus, error) {
	var rows []models.DeliverableStatus
	err := r.db.Where("client_id = ?", clientID).Find(&rows).Error
	return rows, err
}

func (r *DeliverableRepository) GetByClientAndName(clientID uuid.UUID, name string) (*models.DeliverableStatus, error) {
	var row models.DeliverableStatus
	err := r.db.Where("client_id = ? AND deliverable_name = ?", clientID, name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Upsert writes the status keyed by (client_id, deliverable_name). The
// natural key makes repeated writes idempotent; callers never branch on
// insert-vs-update.
func (r *DeliverableRepository) Upsert(clientID uuid.UUID, name string, status models.DeliverableState) (*models.DeliverableStatus, error) {
	row := models.DeliverableStatus{
		ClientID:        clientID,
		DeliverableName: name,
		Status:          status,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "client_id"}, {Name: "deliverable_name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}

	return r.GetByClientAndName(clientID, name)
}

func (r *DeliverableRepository) DeleteByClient(clientID uuid.UUID) error {
	return r.db.Where("client_id = ?", clientID).Delete(&models.DeliverableStatus{}).Error
}
