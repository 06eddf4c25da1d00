// Package ledger keeps the per-wallet history of completed operations.
// Entries are append-only and never mutated; each wallet retains at most
// MaxEntriesPerWallet entries, evicting the oldest first.
package ledger

import (
	"encoding/json"
	"fmt"
	"time"

	"fundrr-backend/database"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const MaxEntriesPerWallet = 50

// Record appends an entry to the wallet's history and evicts the oldest
// entries past the retention bound. Runs against the transaction handle of
// the lifecycle operation so that the append commits or rolls back together
// with the store mutation.
func Record(db *gorm.DB, wallet string, entryType database.LedgerEntryType, data map[string]interface{}, signature string, now time.Time) error {
	doc, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "failed to encode ledger entry data")
	}
	entry := database.LedgerEntry{
		EntryID:   newEntryID(now),
		Wallet:    wallet,
		Type:      entryType,
		Data:      string(doc),
		Signature: signature,
		Timestamp: now,
	}
	if err := database.AppendLedgerEntry(db, &entry); err != nil {
		return err
	}

	count, err := database.CountLedgerEntries(db, wallet)
	if err != nil {
		return err
	}
	if count > MaxEntriesPerWallet {
		return database.DeleteOldestLedgerEntries(db, wallet, int(count)-MaxEntriesPerWallet)
	}
	return nil
}

// Query returns the wallet's retained entries in insertion order. Unknown
// wallets yield an empty sequence, not an error.
func Query(db *gorm.DB, wallet string) ([]database.LedgerEntry, error) {
	return database.FetchLedgerEntries(db, wallet)
}

// Entry ids compose the creation timestamp with a random suffix
func newEntryID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}
