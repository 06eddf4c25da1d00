package campaign

import (
	"context"
	"testing"
	"time"

	"fundrr-backend/chain"
	"fundrr-backend/database"

	"github.com/stretchr/testify/require"
)

func TestGetUnknownCampaign(t *testing.T) {
	service, _, _ := newTestService(t)

	_, _, err := service.Get("unknown")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListAnnotatesCreator(t *testing.T) {
	service, _, _ := newTestService(t)
	creator := chain.NewCampaignID()
	other := chain.NewCampaignID()

	result, err := service.Create(context.Background(), creator, "Campaign", "", 10, 30, "")
	require.NoError(t, err)

	// The campaign list is cached but the annotation is per requesting
	// wallet, computed fresh on every call
	views, err := service.List(creator)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, result.CampaignID, views[0].CampaignID)
	require.True(t, views[0].IsCreator)

	views, err = service.List(other)
	require.NoError(t, err)
	require.False(t, views[0].IsCreator)
}

func TestListCacheExpires(t *testing.T) {
	service, _, clock := newTestService(t)
	creator := chain.NewCampaignID()

	_, err := service.Create(context.Background(), creator, "First", "", 10, 30, "")
	require.NoError(t, err)
	views, err := service.List(creator)
	require.NoError(t, err)
	require.Len(t, views, 1)

	// A row inserted behind the service's back is not visible within the TTL
	hidden := database.Campaign{
		CampaignID: chain.NewCampaignID(),
		Creator:    creator,
		Title:      "Second",
		GoalAmount: 10,
		Deadline:   clock.Now().Add(24 * time.Hour),
		Active:     true,
		CreatedAt:  clock.Now(),
	}
	require.NoError(t, database.CreateCampaign(service.DB(), &hidden))

	views, err = service.List(creator)
	require.NoError(t, err)
	require.Len(t, views, 1)

	clock.AdvanceNow(61 * time.Second)
	views, err = service.List(creator)
	require.NoError(t, err)
	require.Len(t, views, 2)
}

func TestListInvalidatedByMutations(t *testing.T) {
	service, _, _ := newTestService(t)
	creator := chain.NewCampaignID()
	contributor := chain.NewCampaignID()

	first, err := service.Create(context.Background(), creator, "First", "", 10, 30, "")
	require.NoError(t, err)
	views, err := service.List(creator)
	require.NoError(t, err)
	require.Len(t, views, 1)

	// Reads directly after a write are never stale
	_, err = service.Create(context.Background(), creator, "Second", "", 10, 30, "")
	require.NoError(t, err)
	views, err = service.List(creator)
	require.NoError(t, err)
	require.Len(t, views, 2)

	_, err = service.Contribute(context.Background(), contributor, first.CampaignID, 4)
	require.NoError(t, err)
	views, err = service.List(creator)
	require.NoError(t, err)
	require.Equal(t, float64(4), views[0].AmountRaised)

	_, err = service.Contribute(context.Background(), contributor, first.CampaignID, 6)
	require.NoError(t, err)
	_, err = service.Withdraw(context.Background(), creator, first.CampaignID)
	require.NoError(t, err)
	views, err = service.List(creator)
	require.NoError(t, err)
	require.False(t, views[0].Active)
}

func TestListByCreator(t *testing.T) {
	service, _, _ := newTestService(t)
	creator := chain.NewCampaignID()
	other := chain.NewCampaignID()

	_, err := service.Create(context.Background(), creator, "Mine", "", 10, 30, "")
	require.NoError(t, err)
	_, err = service.Create(context.Background(), other, "Theirs", "", 10, 30, "")
	require.NoError(t, err)

	campaigns, err := service.ListByCreator(creator)
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	require.Equal(t, "Mine", campaigns[0].Title)

	campaigns, err = service.ListByCreator(chain.NewCampaignID())
	require.NoError(t, err)
	require.Empty(t, campaigns)
}
