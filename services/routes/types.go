package routes

type CreateCampaignRequest struct {
	Creator      string  `json:"creator" validate:"required,sol-address"`
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description"`
	GoalAmount   float64 `json:"goalAmount" validate:"required,gt=0"`
	DurationDays int     `json:"durationDays" validate:"required,gt=0"`
	ImageURL     string  `json:"imageUrl"`
}

type CreateCampaignResponse struct {
	CampaignID string `json:"campaignId"`
	Signature  string `json:"signature"`
}

type ContributeRequest struct {
	Contributor string  `json:"contributor" validate:"required,sol-address"`
	CampaignID  string  `json:"campaignId" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
}

type WithdrawRequest struct {
	Creator    string `json:"creator" validate:"required,sol-address"`
	CampaignID string `json:"campaignId" validate:"required"`
}

type TransferResponse struct {
	Signature string `json:"signature"`
}

type PriceResponse struct {
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}
