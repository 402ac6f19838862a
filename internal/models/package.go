package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Package is a pricing/service tier. Deliverables is the canonical catalog
// of work products a client on this package must receive; MaxEditedPhotos is
// the quota enforced on the selected/final photo stages.
type Package struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name            string    `json:"name" gorm:"not null"`
	Price           float64   `json:"price" gorm:"not null"`
	MaxEditedPhotos int       `json:"max_edited_photos" gorm:"not null;default:0"`
	Includes        []string  `json:"includes" gorm:"type:json;serializer:json"`
	Deliverables    []string  `json:"deliverables" gorm:"type:json;serializer:json"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (p *Package) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *Package) HasDeliverable(name string) bool {
	for _, d := range p.Deliverables {
		if d == name {
			return true
		}
	}
	return false
}
