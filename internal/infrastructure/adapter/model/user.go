package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"uniqueIndex;not null;size:64"`
	PasswordHash string    `gorm:"not null;size:128"`
	Cash         int64     `gorm:"not null"` // Cash balance in cents
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
	TradeCount   uint64    `gorm:"default:0"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
