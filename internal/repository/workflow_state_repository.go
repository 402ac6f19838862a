package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/photoclientpro/photoclient-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WorkflowStateRepository struct {
	db *gorm.DB
}

func NewWorkflowStateRepository(db *gorm.DB) *WorkflowStateRepository {
	return &WorkflowStateRepository{db: db}
}

func (r *WorkflowStateRepository) GetByClient(clientID uuid.UUID) (*models.WorkflowState, error) {
	var state models.WorkflowState
	err := r.db.Where("client_id = ?", clientID).First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *WorkflowStateRepository) Upsert(state *models.WorkflowState) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "client_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"coverage_done":  state.CoverageDone,
			"selection_done": state.SelectionDone,
			"editing_done":   state.EditingDone,
			"review_done":    state.ReviewDone,
			"delivery_done":  state.DeliveryDone,
			"updated_at":     time.Now(),
		}),
	}).Create(state).Error
}

func (r *WorkflowStateRepository) DeleteByClient(clientID uuid.UUID) error {
	return r.db.Where("client_id = ?", clientID).Delete(&models.WorkflowState{}).Error
}
