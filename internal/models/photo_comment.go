package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentStatus is the derived per-photo badge.
type CommentStatus string

const (
	CommentsNone     CommentStatus = "none"          // no comments at all
	CommentsOpen     CommentStatus = "has-comments"  // at least one unresolved
	CommentsResolved CommentStatus = "resolved"      // comments exist, all resolved
)

type PhotoComment struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	ClientID       uuid.UUID  `json:"client_id" gorm:"type:uuid;not null;index:idx_comment_photo"`
	PhotoPath      string     `json:"photo_path" gorm:"not null;index:idx_comment_photo"`
	Comment        string     `json:"comment" gorm:"not null"`
	CommenterName  string     `json:"commenter_name"`
	CommenterEmail string     `json:"commenter_email"`
	ResolvedAt     *time.Time `json:"resolved_at"`
	ResolvedBy     *uuid.UUID `json:"resolved_by" gorm:"type:uuid"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (p *PhotoComment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *PhotoComment) Resolved() bool {
	return p.ResolvedAt != nil
}

type AddCommentRequest struct {
	PhotoPath      string `json:"photo_path" validate:"required"`
	Comment        string `json:"comment" validate:"required"`
	CommenterName  string `json:"commenter_name"`
	CommenterEmail string `json:"commenter_email" validate:"omitempty,email"`
}

// CommentThread is a photo's comment list plus its derived badge.
type CommentThread struct {
	Comments []PhotoComment `json:"comments"`
	Status   CommentStatus  `json:"status"`
}
