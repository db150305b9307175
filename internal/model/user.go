package model

import "time"

// User represents a registered student account.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	StudentID    string    `json:"student_id" gorm:"uniqueIndex;size:64;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
