package campaign

import (
	"time"

	"fundrr-backend/database"

	"gorm.io/gorm"
)

// Campaign annotated for a specific requesting wallet
type View struct {
	database.Campaign
	IsCreator bool
}

// List returns all campaigns annotated for the requesting wallet. The
// campaign data is served from a single shared cache slot for the
// configured TTL; the IsCreator annotation is computed fresh on every call
// since the cache is not per-wallet. Any successful mutation invalidates
// the slot, so a read directly after a write is never stale.
func (s *Service) List(wallet string) ([]View, error) {
	campaigns, ok := s.listCache.Get(s.now())
	if !ok {
		var err error
		campaigns, err = database.FetchAllCampaigns(s.db)
		if err != nil {
			return nil, err
		}
		s.listCache.Set(campaigns, s.now())
	}

	views := make([]View, len(campaigns))
	for i := range campaigns {
		views[i] = View{
			Campaign:  campaigns[i],
			IsCreator: campaigns[i].Creator == wallet,
		}
	}
	return views, nil
}

// Get returns the campaign and its contributions, or ErrNotFound for an
// unknown identifier. Absence is an explicit outcome, never synthesized
// placeholder data.
func (s *Service) Get(campaignID string) (*database.Campaign, []database.Contribution, error) {
	campaign, err := s.fetch(campaignID)
	if err != nil {
		return nil, nil, err
	}
	contributions, err := database.FetchContributions(s.db, campaignID)
	if err != nil {
		return nil, nil, err
	}
	return &campaign, contributions, nil
}

// ListByCreator filters the store on the creator wallet, uncached
func (s *Service) ListByCreator(wallet string) ([]database.Campaign, error) {
	return database.FetchCampaignsByCreator(s.db, wallet)
}

// CacheAge reports how long ago the campaign list slot was filled, zero
// when the slot is empty
func (s *Service) CacheAge() time.Duration {
	return s.listCache.Age(s.now())
}

// DB exposes the service's store handle for read-only consumers
// (transaction history routes)
func (s *Service) DB() *gorm.DB {
	return s.db
}

// Metadata resolves the campaign's stored URL into description/image
// values, degrading to the stored raw values on any failure
func (s *Service) Metadata(campaign *database.Campaign) Metadata {
	return s.metadata.Resolve(campaign.ImageURL, campaign.Description, campaign.ImageURL)
}
