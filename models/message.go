package models

import "time"

// Message represents a single guestbook entry. AuthorName is a free-text
// display name, deliberately not a foreign key: anonymous posting is allowed
// even when an account exists.
type Message struct {
	ID         uint      `gorm:"primaryKey;column:message_id"`
	AuthorName string    `gorm:"column:author_name;size:50;not null"`
	Body       string    `gorm:"column:body;type:text;not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

// TableName overrides the table name used by GORM
func (Message) TableName() string {
	return "message"
}
