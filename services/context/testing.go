package context

import (
	"fundrr-backend/chain"
	"fundrr-backend/database"
	"fundrr-backend/services/config"
)

func BuildTestContext(cfg *config.Config, transfer chain.TransferClient) (ServicesContext, error) {
	ctx := servicesContext{}
	var err error

	ctx.config = cfg
	ctx.transfer = transfer

	ctx.db, err = database.ConnectAndInitializeTestDB(&cfg.DB)
	if err != nil {
		return nil, err
	}
	return &ctx, nil
}
