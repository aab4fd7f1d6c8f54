package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComplaintCategory string

const (
	CategoryMaintenance ComplaintCategory = "maintenance"
	CategoryCleanliness ComplaintCategory = "cleanliness"
	CategorySecurity    ComplaintCategory = "security"
	CategoryOther       ComplaintCategory = "other"
)

type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in-progress"
	ComplaintResolved   ComplaintStatus = "resolved"
	ComplaintClosed     ComplaintStatus = "closed"
)

type ComplaintPriority string

const (
	PriorityLow    ComplaintPriority = "low"
	PriorityMedium ComplaintPriority = "medium"
	PriorityHigh   ComplaintPriority = "high"
)

// Complaint is a facility complaint filed by an occupant. Status moves
// pending -> in-progress -> resolved, with closed reachable from any
// non-terminal state. EscalationLevel never decreases while the complaint
// is still open, and ResolvedAt is stamped exactly once.
type Complaint struct {
	ID              string            `gorm:"primaryKey" json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Category        ComplaintCategory `gorm:"type:varchar(20);check:category IN ('maintenance','cleanliness','security','other')" json:"category"`
	Location        string            `json:"location"`
	Status          ComplaintStatus   `gorm:"type:varchar(20);check:status IN ('pending','in-progress','resolved','closed')" json:"status"`
	Priority        ComplaintPriority `gorm:"type:varchar(10);check:priority IN ('low','medium','high')" json:"priority"`
	UserID          string            `gorm:"index" json:"user_id"`
	AssigneeID      *string           `json:"assignee_id,omitempty"`
	ResponseMessage string            `json:"response_message,omitempty"`
	ResponseBy      string            `json:"response_by,omitempty"`
	ResponseAt      *time.Time        `json:"response_at,omitempty"`
	ResolutionNotes string            `json:"resolution_notes,omitempty"`
	EscalationLevel int               `json:"escalation_level"`
	IsUrgent        bool              `json:"is_urgent"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	ResolvedAt      *time.Time        `json:"resolved_at,omitempty"`
}

func (c *Complaint) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

// IsOpen reports whether the complaint still accepts edits and escalation.
func (c *Complaint) IsOpen() bool {
	return c.Status == ComplaintPending || c.Status == ComplaintInProgress
}

func (c *Complaint) IsTerminal() bool {
	return c.Status == ComplaintResolved || c.Status == ComplaintClosed
}

// AgeDays is the whole number of days since the complaint was filed.
func (c *Complaint) AgeDays(now time.Time) int {
	if now.Before(c.CreatedAt) {
		return 0
	}
	return int(now.Sub(c.CreatedAt).Hours() / 24)
}
