package database

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func FetchCampaign(db *gorm.DB, campaignID string) (Campaign, error) {
	var campaign Campaign
	err := db.Where(&Campaign{CampaignID: campaignID}).First(&campaign).Error
	return campaign, err
}

// FetchCampaignForUpdate locks the campaign row for the duration of the
// surrounding transaction. Mutations must operate on a row fetched this
// way, never on a copy read before the transaction started.
func FetchCampaignForUpdate(db *gorm.DB, campaignID string) (Campaign, error) {
	var campaign Campaign
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(&Campaign{CampaignID: campaignID}).First(&campaign).Error
	return campaign, err
}

func FetchAllCampaigns(db *gorm.DB) ([]Campaign, error) {
	var campaigns []Campaign
	err := db.Order("id asc").Find(&campaigns).Error
	return campaigns, err
}

func FetchCampaignsByCreator(db *gorm.DB, creator string) ([]Campaign, error) {
	var campaigns []Campaign
	err := db.Where(&Campaign{Creator: creator}).Order("id asc").Find(&campaigns).Error
	return campaigns, err
}

func FetchContributions(db *gorm.DB, campaignID string) ([]Contribution, error) {
	var contributions []Contribution
	err := db.Where(&Contribution{CampaignID: campaignID}).Order("id asc").Find(&contributions).Error
	return contributions, err
}

func CreateCampaign(db *gorm.DB, c *Campaign) error {
	return db.Create(c).Error
}

// Append a contribution and increase the campaign's raised amount in the
// same transaction. The increment runs in the database so that a stale
// in-memory amount can never overwrite a committed one. The caller wraps
// this in DoInTransaction together with the ledger append.
func AddContribution(db *gorm.DB, campaign *Campaign, c *Contribution) error {
	if err := db.Create(c).Error; err != nil {
		return err
	}
	err := db.Model(campaign).
		Update("amount_raised", gorm.Expr("amount_raised + ?", c.Amount)).Error
	if err != nil {
		return err
	}
	campaign.AmountRaised += c.Amount
	return nil
}

// Only the active column is written; other columns may have been updated
// concurrently since the row was read
func DeactivateCampaign(db *gorm.DB, campaign *Campaign) error {
	campaign.Active = false
	return db.Model(campaign).Update("active", false).Error
}

func AppendLedgerEntry(db *gorm.DB, e *LedgerEntry) error {
	return db.Create(e).Error
}

func FetchLedgerEntries(db *gorm.DB, wallet string) ([]LedgerEntry, error) {
	var entries []LedgerEntry
	err := db.Where(&LedgerEntry{Wallet: wallet}).Order("id asc").Find(&entries).Error
	return entries, err
}

func CountLedgerEntries(db *gorm.DB, wallet string) (int64, error) {
	var count int64
	err := db.Model(&LedgerEntry{}).Where(&LedgerEntry{Wallet: wallet}).Count(&count).Error
	return count, err
}

// Delete the n oldest ledger entries of the wallet (FIFO eviction)
func DeleteOldestLedgerEntries(db *gorm.DB, wallet string, n int) error {
	if n <= 0 {
		return nil
	}
	var ids []uint64
	err := db.Model(&LedgerEntry{}).
		Where(&LedgerEntry{Wallet: wallet}).
		Order("id asc").
		Limit(n).
		Pluck("id", &ids).Error
	if err != nil {
		return err
	}
	return db.Delete(&LedgerEntry{}, ids).Error
}
