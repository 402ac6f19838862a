package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/photoclientpro/photoclient-backend/internal/models"
	"gorm.io/gorm"
)

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) GetByID(id uuid.UUID) (*models.Package, error) {
	var pkg models.Package
	err := r.db.First(&pkg, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepository) GetAll() ([]models.Package, error) {
	var packages []models.Package
	err := r.db.Order("price ASC").Find(&packages).Error
	return packages, err
}
