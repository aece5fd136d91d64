package models

// User represents a registered account in the database.
type User struct {
	ID           uint   `gorm:"primaryKey;column:user_id"`
	Username     string `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string `gorm:"column:pw_hash;not null"`
}

// TableName overrides the table name used by User to `user`
func (User) TableName() string {
	return "user"
}
