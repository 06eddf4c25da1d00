// Package campaign holds the campaign store mutation paths and the query
// layer. All state lives in the database handle owned by the service; a
// fresh service over a fresh store is fully isolated, there is no
// process-wide state.
package campaign

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fundrr-backend/chain"
	"fundrr-backend/database"
	"fundrr-backend/ledger"
	"fundrr-backend/logger"
	"fundrr-backend/utils"

	"github.com/gagliardetto/solana-go"
	"gorm.io/gorm"
)

const defaultCacheTTL = 60 * time.Second

type Config struct {
	// Destination of the creation and withdrawal fee transfers
	FeeCollector string
	// Destination of the (capped) contribution transfers
	EscrowWallet string

	CreationFeeLamports   uint64
	WithdrawalFeeLamports uint64
	// Upper bound on the lamports moved by a single contribution transfer.
	// The campaign itself is always credited with the requested amount;
	// the transfer is capped to bound the demo risk.
	ContributionCapLamports uint64

	CacheTTL time.Duration
}

type Service struct {
	db       *gorm.DB
	transfer chain.TransferClient
	cfg      Config

	listCache *utils.TimedCache[[]database.Campaign]
	metadata  *MetadataResolver

	now func() time.Time
}

func NewService(db *gorm.DB, transfer chain.TransferClient, cfg Config) *Service {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Service{
		db:        db,
		transfer:  transfer,
		cfg:       cfg,
		listCache: utils.NewTimedCache[[]database.Campaign](ttl),
		metadata:  NewMetadataResolver(),
		now:       time.Now,
	}
}

type CreateResult struct {
	CampaignID string
	Signature  string
}

// Create inserts a new campaign after the creation fee transfer has been
// confirmed. The transfer goes first: a failed transfer leaves the store
// untouched, and a failed insert after a confirmed transfer never produces
// a campaign without its ledger entry.
func (s *Service) Create(ctx context.Context, creator, title, description string, goalAmount float64, durationDays int, imageURL string) (*CreateResult, error) {
	if !chain.ValidAddress(creator) {
		return nil, ErrInvalidAddress
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("%w: title", ErrMissingField)
	}
	if goalAmount <= 0 {
		return nil, ErrInvalidAmount
	}
	if durationDays <= 0 {
		return nil, ErrInvalidDuration
	}

	campaignID := chain.NewCampaignID()
	signature, err := s.transfer.Transfer(ctx, s.cfg.FeeCollector, s.cfg.CreationFeeLamports,
		"fundrr:create:"+campaignID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTransferFailed, err)
	}

	now := s.now()
	campaign := database.Campaign{
		CampaignID:   campaignID,
		Creator:      creator,
		Title:        title,
		Description:  description,
		ImageURL:     imageURL,
		GoalAmount:   goalAmount,
		AmountRaised: 0,
		Deadline:     now.Add(time.Duration(durationDays) * 24 * time.Hour),
		Active:       true,
		CreatedAt:    now,
	}
	err = database.DoInTransaction(s.db,
		func(tx *gorm.DB) error {
			return database.CreateCampaign(tx, &campaign)
		},
		func(tx *gorm.DB) error {
			return ledger.Record(tx, creator, database.LedgerCampaignCreated, map[string]interface{}{
				"campaignId": campaignID,
				"name":       title,
				"goalAmount": goalAmount,
				"fee":        s.cfg.CreationFeeLamports,
			}, signature, now)
		},
	)
	if err != nil {
		return nil, err
	}
	s.listCache.Invalidate()

	logger.Info("campaign %s created by %s, goal %f", campaignID, creator, goalAmount)
	return &CreateResult{CampaignID: campaignID, Signature: signature}, nil
}

// Contribute credits the campaign with the requested amount once the
// capped side-channel transfer has been confirmed. Contributions are
// rejected on inactive, expired or already fully funded campaigns; a
// contribution that crosses the goal is accepted. The store mutation
// operates on a locked re-read of the row, so a contribution committed
// while this one was waiting for its transfer is never overwritten.
func (s *Service) Contribute(ctx context.Context, contributor, campaignID string, amount float64) (string, error) {
	if !chain.ValidAddress(contributor) {
		return "", ErrInvalidAddress
	}
	if amount <= 0 {
		return "", ErrInvalidAmount
	}

	// Reject hopeless requests before moving any funds
	campaign, err := s.fetch(campaignID)
	if err != nil {
		return "", err
	}
	if err := s.contributable(&campaign); err != nil {
		return "", err
	}

	signature, err := s.transfer.Transfer(ctx, s.cfg.EscrowWallet, s.transferLamports(amount),
		"fundrr:contribute:"+campaignID)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrTransferFailed, err)
	}

	now := s.now()
	err = database.DoInTransaction(s.db,
		func(tx *gorm.DB) error {
			// The row may have changed during the transfer window
			locked, err := database.FetchCampaignForUpdate(tx, campaignID)
			if err != nil {
				return err
			}
			if err := s.contributable(&locked); err != nil {
				return err
			}
			contribution := database.Contribution{
				CampaignID:  campaignID,
				Contributor: contributor,
				Amount:      amount,
				Timestamp:   now,
			}
			return database.AddContribution(tx, &locked, &contribution)
		},
		func(tx *gorm.DB) error {
			return ledger.Record(tx, contributor, database.LedgerContribution, map[string]interface{}{
				"campaignId": campaignID,
				"amount":     amount,
			}, signature, now)
		},
	)
	if err != nil {
		return "", err
	}
	s.listCache.Invalidate()

	return signature, nil
}

// Withdraw deactivates the campaign. Only the creator may withdraw, only
// while the campaign is active, and only once the goal has been reached or
// the deadline has passed. Deactivation is terminal: the active and
// withdrawable checks are repeated on a locked re-read of the row, so of
// two withdrawals overlapping in the transfer window only one succeeds.
func (s *Service) Withdraw(ctx context.Context, creator, campaignID string) (string, error) {
	campaign, err := s.fetch(campaignID)
	if err != nil {
		return "", err
	}
	if campaign.Creator != creator {
		return "", ErrNotCreator
	}
	if !campaign.Active {
		return "", ErrNotActive
	}
	if !campaign.Withdrawable(s.now()) {
		return "", ErrWithdrawLocked
	}

	signature, err := s.transfer.Transfer(ctx, s.cfg.FeeCollector, s.cfg.WithdrawalFeeLamports,
		"fundrr:withdraw:"+campaignID)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrTransferFailed, err)
	}

	now := s.now()
	var amountRaised float64
	err = database.DoInTransaction(s.db,
		func(tx *gorm.DB) error {
			locked, err := database.FetchCampaignForUpdate(tx, campaignID)
			if err != nil {
				return err
			}
			if !locked.Active {
				return ErrNotActive
			}
			if !locked.Withdrawable(s.now()) {
				return ErrWithdrawLocked
			}
			amountRaised = locked.AmountRaised
			return database.DeactivateCampaign(tx, &locked)
		},
		func(tx *gorm.DB) error {
			return ledger.Record(tx, creator, database.LedgerWithdrawal, map[string]interface{}{
				"campaignId":   campaignID,
				"amountRaised": amountRaised,
				"fee":          s.cfg.WithdrawalFeeLamports,
			}, signature, now)
		},
	)
	if err != nil {
		return "", err
	}
	s.listCache.Invalidate()

	logger.Info("campaign %s withdrawn by creator, raised %f", campaignID, amountRaised)
	return signature, nil
}

func (s *Service) contributable(c *database.Campaign) error {
	if !c.Active {
		return ErrNotActive
	}
	if c.Expired(s.now()) {
		return ErrExpired
	}
	if c.GoalReached() {
		return ErrFullyFunded
	}
	return nil
}

func (s *Service) fetch(campaignID string) (database.Campaign, error) {
	campaign, err := database.FetchCampaign(s.db, campaignID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return campaign, ErrNotFound
	}
	return campaign, err
}

// The transfer moves min(amount, cap) lamports; the campaign is credited
// with the full requested amount regardless
func (s *Service) transferLamports(amount float64) uint64 {
	lamports := uint64(amount * float64(solana.LAMPORTS_PER_SOL))
	if s.cfg.ContributionCapLamports > 0 && lamports > s.cfg.ContributionCapLamports {
		return s.cfg.ContributionCapLamports
	}
	return lamports
}
