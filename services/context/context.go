package context

import (
	"fundrr-backend/chain"
	"fundrr-backend/database"
	"fundrr-backend/logger"
	"fundrr-backend/services/config"

	"gorm.io/gorm"
)

type ServicesContext interface {
	Config() *config.Config
	DB() *gorm.DB
	TransferClient() chain.TransferClient
}

type servicesContext struct {
	config   *config.Config
	db       *gorm.DB
	transfer chain.TransferClient
}

func BuildContext() (ServicesContext, error) {
	ctx := servicesContext{}

	cfg, err := config.BuildConfig()
	if err != nil {
		return nil, err
	}
	ctx.config = cfg
	logger.Init(cfg.Logger)

	ctx.db, err = database.ConnectAndInitialize(&cfg.DB)
	if err != nil {
		return nil, err
	}

	ctx.transfer, err = chain.NewTransferClient(&cfg.Chain)
	if err != nil {
		return nil, err
	}

	return &ctx, nil
}

func (c *servicesContext) Config() *config.Config { return c.config }

func (c *servicesContext) DB() *gorm.DB { return c.db }

func (c *servicesContext) TransferClient() chain.TransferClient { return c.transfer }
