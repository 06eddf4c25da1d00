package database

type LedgerEntryType string

const (
	LedgerCampaignCreated LedgerEntryType = "campaign_created"
	LedgerContribution    LedgerEntryType = "contribution"
	LedgerWithdrawal      LedgerEntryType = "withdrawal"
	LedgerRefund          LedgerEntryType = "refund"
)
