package database

import (
	"time"
)

// Abstract entity, all other entities should be derived from it
type BaseEntity struct {
	ID uint64 `gorm:"primaryKey"`
}

// A crowdfunding campaign. CampaignID is the base58 public key of a
// freshly generated keypair, unique for the lifetime of the store.
// AmountRaised is only ever increased by contributions and always equals
// the sum of the campaign's contribution amounts.
type Campaign struct {
	BaseEntity
	CampaignID   string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Creator      string `gorm:"type:varchar(50);index;not null"`
	Title        string `gorm:"type:varchar(256);not null"`
	Description  string `gorm:"type:text"`
	ImageURL     string `gorm:"type:varchar(512)"`
	GoalAmount   float64
	AmountRaised float64
	Deadline     time.Time
	Active       bool
	CreatedAt    time.Time
}

// A single pledge towards a campaign, append-only
type Contribution struct {
	BaseEntity
	CampaignID  string `gorm:"type:varchar(50);index;not null"`
	Contributor string `gorm:"type:varchar(50);index"`
	Amount      float64
	Timestamp   time.Time
}

// Per-wallet transaction history entry. Data is a type-specific JSON
// document, Signature is the signature of the side-channel transfer that
// accompanied the operation. A bounded number of entries is retained per
// wallet, oldest evicted first.
type LedgerEntry struct {
	BaseEntity
	EntryID   string          `gorm:"type:varchar(60);uniqueIndex;not null"`
	Wallet    string          `gorm:"type:varchar(50);index;not null"`
	Type      LedgerEntryType `gorm:"type:varchar(20);not null"`
	Data      string          `gorm:"type:text"`
	Signature string          `gorm:"type:varchar(120)"`
	Timestamp time.Time
}
