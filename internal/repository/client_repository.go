package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/photoclientpro/photoclient-backend/internal/models"
	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

func (r *ClientRepository) GetByID(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// GetByPhotographer lists a photographer's clients, newest first, with
// optional name/contact search and payment-status filter.
func (r *ClientRepository) GetByPhotographer(photographerID uuid.UUID, search string, paymentStatus string) ([]models.Client, error) {
	query := r.db.Where("photographer_id = ?", photographerID)

	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR contact ILIKE ?", like, like)
	}
	if paymentStatus != "" {
		query = query.Where("payment_status = ?", paymentStatus)
	}

	var clients []models.Client
	err := query.Order("created_at DESC").Find(&clients).Error
	return clients, err
}

func (r *ClientRepository) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

func (r *ClientRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Client{}, "id = ?", id).Error
}
