package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event request statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ParseStatus validates a status value against the known set.
func ParseStatus(s string) (string, bool) {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return s, true
	}
	return "", false
}

// EventRequest is a student-submitted proposal for an event or rehearsal slot,
// reviewed by an admin through the status field.
type EventRequest struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Reference         uuid.UUID `json:"reference" gorm:"type:char(36);uniqueIndex"`
	EventTitle        string    `json:"event_title" gorm:"size:255;not null"`
	Department        string    `json:"department" gorm:"size:255"`
	StudentID         string    `json:"student_id" gorm:"size:64;index"`
	EventDescription  string    `json:"event_description" gorm:"type:text"`
	RehearsalDate     string    `json:"rehearsal_date" gorm:"size:64"`
	ParticipantsNames string    `json:"participants_names" gorm:"type:text"`
	PracticeTiming    string    `json:"practice_timing" gorm:"size:128"`
	Status            string    `json:"status" gorm:"size:32;not null;default:'pending';index"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// BeforeCreate assigns the public reference before inserting the record.
func (r *EventRequest) BeforeCreate(tx *gorm.DB) error {
	if r.Reference == uuid.Nil {
		r.Reference = uuid.New()
	}
	return nil
}
