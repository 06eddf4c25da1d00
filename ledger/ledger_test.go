package ledger

import (
	"testing"
	"time"

	"fundrr-backend/config"
	"fundrr-backend/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.ConnectAndInitializeTestDB(&config.DBConfig{})
	require.NoError(t, err)
	return db
}

func TestQueryUnknownWallet(t *testing.T) {
	db := newTestDB(t)

	entries, err := Query(db, "unknown-wallet")
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestRecordAndQueryOrder(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()

	for i := 0; i < 5; i++ {
		err := Record(db, "wallet", database.LedgerContribution, map[string]interface{}{
			"seq": i,
		}, "sig", now.Add(time.Duration(i)*time.Second))
		require.NoError(t, err)
	}

	entries, err := Query(db, "wallet")
	require.NoError(t, err)
	require.Len(t, entries, 5)
	for i, entry := range entries {
		data, err := entry.DecodeData()
		require.NoError(t, err)
		require.Equal(t, float64(i), data["seq"])
	}
}

func TestRetentionBound(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()

	for i := 1; i <= MaxEntriesPerWallet+10; i++ {
		err := Record(db, "wallet", database.LedgerContribution, map[string]interface{}{
			"seq": i,
		}, "sig", now.Add(time.Duration(i)*time.Second))
		require.NoError(t, err)
	}

	// The oldest entries are evicted, the remaining ones keep their order
	entries, err := Query(db, "wallet")
	require.NoError(t, err)
	require.Len(t, entries, MaxEntriesPerWallet)

	first, err := entries[0].DecodeData()
	require.NoError(t, err)
	require.Equal(t, float64(11), first["seq"])
	last, err := entries[len(entries)-1].DecodeData()
	require.NoError(t, err)
	require.Equal(t, float64(MaxEntriesPerWallet+10), last["seq"])
}

func TestRetentionIsPerWallet(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()

	for i := 0; i < MaxEntriesPerWallet+5; i++ {
		err := Record(db, "busy", database.LedgerContribution, nil, "sig", now)
		require.NoError(t, err)
	}
	err := Record(db, "quiet", database.LedgerCampaignCreated, nil, "sig", now)
	require.NoError(t, err)

	busy, err := Query(db, "busy")
	require.NoError(t, err)
	require.Len(t, busy, MaxEntriesPerWallet)

	quiet, err := Query(db, "quiet")
	require.NoError(t, err)
	require.Len(t, quiet, 1)
}
