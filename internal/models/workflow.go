package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkflowState persists the manually toggled checklist items for a client.
// Auto-derived items (package, payment, deliverables) never appear here.
type WorkflowState struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ClientID      uuid.UUID `json:"client_id" gorm:"type:uuid;not null;uniqueIndex"`
	CoverageDone  bool      `json:"coverage_done" gorm:"not null;default:false"`
	SelectionDone bool      `json:"selection_done" gorm:"not null;default:false"`
	EditingDone   bool      `json:"editing_done" gorm:"not null;default:false"`
	ReviewDone    bool      `json:"review_done" gorm:"not null;default:false"`
	DeliveryDone  bool      `json:"delivery_done" gorm:"not null;default:false"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (w *WorkflowState) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

type ChecklistStatus string

const (
	ChecklistPending    ChecklistStatus = "pending"
	ChecklistInProgress ChecklistStatus = "in-progress"
	ChecklistDone       ChecklistStatus = "done"
)

type ChecklistItemID string

const (
	ItemPackage      ChecklistItemID = "package"
	ItemCoverage     ChecklistItemID = "coverage"
	ItemSelection    ChecklistItemID = "selection"
	ItemEditing      ChecklistItemID = "editing"
	ItemDeliverables ChecklistItemID = "deliverables"
	ItemReview       ChecklistItemID = "review"
	ItemDelivery     ChecklistItemID = "delivery"
	ItemPayment      ChecklistItemID = "payment"
)

// Toggleable reports whether the item carries a manual flag. Package and
// payment are derived from the client row, deliverables from its status rows.
func (id ChecklistItemID) Toggleable() bool {
	switch id {
	case ItemCoverage, ItemSelection, ItemEditing, ItemReview, ItemDelivery:
		return true
	}
	return false
}

type ChecklistSubItem struct {
	Name   string           `json:"name"`
	Status DeliverableState `json:"status"`
}

type ChecklistItem struct {
	ID          ChecklistItemID    `json:"id"`
	Label       string             `json:"label"`
	Status      ChecklistStatus    `json:"status"`
	AutoChecked bool               `json:"auto_checked"`
	SubItems    []ChecklistSubItem `json:"sub_items,omitempty"`
}

type Checklist struct {
	Items              []ChecklistItem `json:"items"`
	CompletedCount     int             `json:"completed_count"`
	TotalCount         int             `json:"total_count"`
	ProgressPercentage float64         `json:"progress_percentage"`
}

type ToggleRequest struct {
	Item ChecklistItemID `json:"item" validate:"required"`
	Done bool            `json:"done"`
}
