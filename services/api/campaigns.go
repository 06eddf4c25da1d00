package api

import (
	"time"

	"fundrr-backend/campaign"
	"fundrr-backend/database"
)

type ApiCampaign struct {
	CampaignID   string    `json:"campaignId"`
	Creator      string    `json:"creator"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	GoalAmount   float64   `json:"goalAmount"`
	AmountRaised float64   `json:"amountRaised"`
	Deadline     time.Time `json:"deadline"`
	IsActive     bool      `json:"isActive"`
	IsCreator    bool      `json:"isCreator"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewApiCampaign(c *database.Campaign, isCreator bool) ApiCampaign {
	return ApiCampaign{
		CampaignID:   c.CampaignID,
		Creator:      c.Creator,
		Title:        c.Title,
		Description:  c.Description,
		ImageURL:     c.ImageURL,
		GoalAmount:   c.GoalAmount,
		AmountRaised: c.AmountRaised,
		Deadline:     c.Deadline,
		IsActive:     c.Active,
		IsCreator:    isCreator,
		CreatedAt:    c.CreatedAt,
	}
}

type ApiContribution struct {
	Contributor string    `json:"contributor"`
	Amount      float64   `json:"amount"`
	Timestamp   time.Time `json:"timestamp"`
}

type ApiCampaignDetail struct {
	ApiCampaign
	Contributions []ApiContribution `json:"contributions"`
}

func NewApiCampaignDetail(c *database.Campaign, contributions []database.Contribution, metadata campaign.Metadata) ApiCampaignDetail {
	detail := ApiCampaignDetail{
		ApiCampaign:   NewApiCampaign(c, false),
		Contributions: make([]ApiContribution, len(contributions)),
	}
	detail.Description = metadata.Description
	detail.ImageURL = metadata.ImageURL
	for i, contribution := range contributions {
		detail.Contributions[i] = ApiContribution{
			Contributor: contribution.Contributor,
			Amount:      contribution.Amount,
			Timestamp:   contribution.Timestamp,
		}
	}
	return detail
}

type ApiLedgerEntry struct {
	EntryID   string                 `json:"id"`
	Type      string                 `json:"type"`
	Data      map[string]interface{} `json:"data"`
	Signature string                 `json:"signature"`
	Timestamp time.Time              `json:"timestamp"`
}

func NewApiLedgerEntry(e *database.LedgerEntry) ApiLedgerEntry {
	// Undecodable data documents are served as empty rather than failing
	// the whole history response
	data, _ := e.DecodeData()
	return ApiLedgerEntry{
		EntryID:   e.EntryID,
		Type:      string(e.Type),
		Data:      data,
		Signature: e.Signature,
		Timestamp: e.Timestamp,
	}
}
