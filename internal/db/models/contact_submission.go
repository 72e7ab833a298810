package models

import "time"

// ContactSubmission is one message sent through the public contact form.
// Rows are never changed after creation except IsRead.
type ContactSubmission struct {
	ID        uint64    `gorm:"primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	Email     string    `gorm:"size:254;not null"`
	Subject   string    `gorm:"size:200;not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
	IsRead    bool      `gorm:"not null;index"`
}
