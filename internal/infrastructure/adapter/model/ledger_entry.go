package model

import (
	"time"
)

// LedgerEntry represents the database model for the append-only trade ledger.
// Rows are only ever inserted; share deltas are signed.
type LedgerEntry struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	UserID     uint64    `gorm:"not null;index:idx_ledger_user_symbol"`
	Symbol     string    `gorm:"not null;size:16;index:idx_ledger_user_symbol"`
	Shares     int64     `gorm:"not null"`
	PriceCents int64     `gorm:"not null"`
	Side       string    `gorm:"not null;size:8"`
	CreatedAt  time.Time `gorm:"not null;index"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for LedgerEntry
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}
