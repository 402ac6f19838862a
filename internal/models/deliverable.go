package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliverableState string

const (
	DeliverableNotStarted      DeliverableState = "not-started"
	DeliverablePendingReview   DeliverableState = "pending-review"
	DeliverableRevisionsNeeded DeliverableState = "revisions-needed"
	DeliverableApproved        DeliverableState = "approved"
)

func (s DeliverableState) Valid() bool {
	switch s {
	case DeliverableNotStarted, DeliverablePendingReview, DeliverableRevisionsNeeded, DeliverableApproved:
		return true
	}
	return false
}

// DeliverableStatus tracks one deliverable for one client. At most one row
// exists per (client_id, deliverable_name); a missing row means not-started.
type DeliverableStatus struct {
	ID              uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	ClientID        uuid.UUID        `json:"client_id" gorm:"type:uuid;not null;uniqueIndex:idx_client_deliverable"`
	DeliverableName string           `json:"deliverable_name" gorm:"not null;uniqueIndex:idx_client_deliverable"`
	Status          DeliverableState `json:"status" gorm:"type:varchar(32);not null;default:'not-started'"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func (d *DeliverableStatus) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// DeliverableItem is the API view of one catalog entry: the package defines
// the name, the status row (if any) defines the state.
type DeliverableItem struct {
	Name   string           `json:"name"`
	Status DeliverableState `json:"status"`
}
