package database

import (
	"log"
	"os"

	"github.com/photoclientpro/photoclient-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase() *gorm.DB {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Client{},
		&models.Package{},
		&models.DeliverableStatus{},
		&models.PhotoComment{},
		&models.WorkflowState{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	seedPackages(db)

	return db
}

// seedPackages inserts the package catalog if it is not present yet.
// Package edits go through the database directly, not the API.
func seedPackages(db *gorm.DB) {
	packages := []models.Package{
		{
			Name:            "Essential Portrait Package",
			Price:           499,
			MaxEditedPhotos: 30,
			Includes: []string{
				"2 hour session",
				"Online gallery",
				"Print release",
			},
			Deliverables: []string{
				"Edited Photos Delivered",
				"Online Gallery Published",
			},
		},
		{
			Name:            "Classic Wedding Package",
			Price:           1899,
			MaxEditedPhotos: 60,
			Includes: []string{
				"8 hours of coverage",
				"Second shooter",
				"Online gallery",
			},
			Deliverables: []string{
				"Album Design Ready",
				"Highlight Video Ready (3-5 min)",
				"Edited Photos Delivered",
				"Raw Files Shared",
			},
		},
		{
			Name:            "Premium Wedding Package",
			Price:           3499,
			MaxEditedPhotos: 100,
			Includes: []string{
				"Full day coverage",
				"Second shooter",
				"Engagement session",
				"Online gallery",
			},
			Deliverables: []string{
				"Album Design Ready",
				"Laminated Frame(s) Ready",
				"Picstory Created (30s)",
				"Reel Videos Edited (2 x 30s)",
				"Highlight Video Ready (3-5 min)",
				"Full Video Ready",
				"Calendar Designed",
				"Raw Files Shared",
			},
		},
	}

	for _, pkg := range packages {
		var count int64
		db.Model(&models.Package{}).Where("name = ?", pkg.Name).Count(&count)
		if count == 0 {
			if err := db.Create(&pkg).Error; err != nil {
				log.Fatalf("Failed to seed package: %v", err)
			}
		}
	}
}
