package model

import "time"

// Event represents a published event listing. Managed by admins, readable by any
// authenticated user.
type Event struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	Title                string    `json:"title" gorm:"size:255;not null"`
	Description          string    `json:"description" gorm:"type:text"`
	RegistrationDeadline string    `json:"registration_deadline" gorm:"size:64"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
