package models

import "gorm.io/gorm"

const (
	FeedbackPending   = "pending"
	FeedbackResponded = "responded"
)

// Feedback may come from a logged-in user (UserID set) or anonymously.
type Feedback struct {
	gorm.Model
	UserID        *uint  `gorm:"index" json:"user_id,omitempty"`
	Name          string `gorm:"not null" json:"name"`
	Email         string `gorm:"not null" json:"email"`
	Message       string `gorm:"type:text;not null" json:"message"`
	AdminResponse string `gorm:"type:text" json:"admin_response"`
	Status        string `gorm:"default:pending" json:"status"`
}
