package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback is a post-resolution rating. The unique index enforces at most
// one record per (complaint, user) pair.
type Feedback struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	ComplaintID string    `gorm:"uniqueIndex:idx_feedback_complaint_user" json:"complaint_id"`
	UserID      string    `gorm:"uniqueIndex:idx_feedback_complaint_user" json:"user_id"`
	Rating      int       `gorm:"check:rating >= 1 AND rating <= 5" json:"rating"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return
}
