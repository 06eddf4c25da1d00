package routes

import (
	"testing"

	"fundrr-backend/chain"
	"fundrr-backend/services/config"
	"fundrr-backend/services/context"

	"github.com/stretchr/testify/require"
)

// Each test gets a fresh store and transfer stub so tests stay independent
func newTestContext(t *testing.T) (context.ServicesContext, *chain.StubTransferClient) {
	t.Helper()

	cfg := &config.Config{
		Campaigns: config.CampaignConfig{
			FeeCollector:            chain.NewCampaignID(),
			EscrowWallet:            chain.NewCampaignID(),
			CreationFeeLamports:     100_000,
			WithdrawalFeeLamports:   100_000,
			ContributionCapLamports: 1_000_000,
			CacheTTLSeconds:         60,
		},
	}
	transfer := chain.NewStubTransferClient()
	ctx, err := context.BuildTestContext(cfg, transfer)
	require.NoError(t, err)
	return ctx, transfer
}
