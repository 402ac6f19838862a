package service

import (
	"github.com/google/uuid"
	"github.com/photoclientpro/photoclient-backend/internal/models"
)

type PackageService struct {
	packages PackageStore
}

func NewPackageService(packages PackageStore) *PackageService {
	return &PackageService{packages: packages}
}

func (s *PackageService) GetAllPackages() ([]models.Package, error) {
	return s.packages.GetAll()
}

func (s *PackageService) GetPackageByID(id uuid.UUID) (*models.Package, error) {
	return s.packages.GetByID(id)
}
