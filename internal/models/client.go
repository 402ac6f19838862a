package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentUnpaid, PaymentPartial, PaymentPaid:
		return true
	}
	return false
}

type Client struct {
	ID             uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string        `json:"name" gorm:"not null"`
	Contact        string        `json:"contact"`
	Location       string        `json:"location"`
	Description    string        `json:"description"`
	EventType      string        `json:"event_type"` // wedding / portrait / corporate / event / product / other
	EventDate      *time.Time    `json:"event_date"`
	DueDate        *time.Time    `json:"due_date"`
	PaymentStatus  PaymentStatus `json:"payment_status" gorm:"type:varchar(16);not null;default:'unpaid'"`
	PackageID      *uuid.UUID    `json:"package_id" gorm:"type:uuid"`
	PhotographerID uuid.UUID     `json:"photographer_id" gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type ClientRequest struct {
	Name          string        `json:"name" validate:"required"`
	Contact       string        `json:"contact"`
	Location      string        `json:"location"`
	Description   string        `json:"description"`
	EventType     string        `json:"event_type"`
	EventDate     *time.Time    `json:"event_date"`
	DueDate       *time.Time    `json:"due_date"`
	PaymentStatus PaymentStatus `json:"payment_status" validate:"omitempty,oneof=unpaid partial paid"`
	PackageID     *uuid.UUID    `json:"package_id"`
}

type UpdateClientRequest struct {
	Name          *string        `json:"name"`
	Contact       *string        `json:"contact"`
	Location      *string        `json:"location"`
	Description   *string        `json:"description"`
	EventType     *string        `json:"event_type"`
	EventDate     *time.Time     `json:"event_date"`
	DueDate       *time.Time     `json:"due_date"`
	PaymentStatus *PaymentStatus `json:"payment_status" validate:"omitempty,oneof=unpaid partial paid"`
	PackageID     *uuid.UUID     `json:"package_id"`
}

// ClientCategories groups a photographer's clients by where the engagement
// stands relative to today (event date vs due date).
type ClientCategories struct {
	Upcoming   []Client `json:"upcoming"`
	InProgress []Client `json:"in_progress"`
	Completed  []Client `json:"completed"`
}
