// Package entity defines the domain entities for the account feature.
package entity

import "time"

// User represents a registered account.
type User struct {
	// ID is assigned by the database on insert.
	ID uint `gorm:"primaryKey;autoIncrement"`

	// Name is the display name shown after login.
	Name string `gorm:"size:255;not null"`

	// Email is the login key. It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password, never the plaintext.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is set on insert and never written again. The column defaults
	// to CURRENT_TIMESTAMP for rows inserted outside gorm; precision 0 keeps
	// that default valid on MySQL.
	CreatedAt time.Time `gorm:"<-:create;not null;precision:0;default:CURRENT_TIMESTAMP"`
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "users"
}
